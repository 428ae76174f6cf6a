package widgets

import (
	"time"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// LayoutDirection selects how a container arranges its children.
type LayoutDirection int

const (
	// LayoutNone leaves child bounds where the caller put them.
	LayoutNone LayoutDirection = iota
	LayoutHorizontal
	LayoutVertical
)

// Alignment places children on the cross axis of a layout.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	// AlignStretch fills the cross axis. On the main axis it behaves
	// like AlignStart.
	AlignStretch
)

// Padding is the inset between a container's bounds and its content
// area.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// PaddingUniform returns equal padding on all sides.
func PaddingUniform(amount float32) Padding {
	return Padding{Left: amount, Top: amount, Right: amount, Bottom: amount}
}

// PaddingSymmetric returns padding mirrored horizontally and vertically.
func PaddingSymmetric(horizontal, vertical float32) Padding {
	return Padding{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}

// Container groups widgets and optionally lays them out along an axis.
// Children are positioned in absolute window coordinates when a layout
// direction is set; with LayoutNone their bounds are left untouched.
//
// Children drawn later paint on top, so event routing walks them in
// reverse.
type Container struct {
	BaseWidget
	children  []Widget
	direction LayoutDirection
	alignment Alignment
	padding   Padding
	spacing   float32
}

// NewContainer creates an empty container with the given id and no
// layout direction.
func NewContainer(id ID) *Container {
	return &Container{BaseWidget: NewBaseWidget(id)}
}

// WithBounds places the container, lays out its children, and returns it
// for chaining.
func (c *Container) WithBounds(bounds rx.Rect) *Container {
	c.SetBounds(bounds)
	return c
}

// WithLayout sets the layout direction and returns the container for
// chaining.
func (c *Container) WithLayout(direction LayoutDirection) *Container {
	c.SetLayoutDirection(direction)
	return c
}

// WithPadding sets the padding and returns the container for chaining.
func (c *Container) WithPadding(padding Padding) *Container {
	c.SetPadding(padding)
	return c
}

// WithSpacing sets the gap between children and returns the container
// for chaining.
func (c *Container) WithSpacing(spacing float32) *Container {
	c.SetSpacing(spacing)
	return c
}

// AddChild appends a child on top of the existing ones and lays out.
func (c *Container) AddChild(child Widget) {
	c.children = append(c.children, child)
	c.layoutChildren()
}

// RemoveChild takes the child with the given id out of the container and
// returns it.
func (c *Container) RemoveChild(id ID) Widget {
	for i, child := range c.children {
		if child.ID() == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.layoutChildren()
			return child
		}
	}
	return nil
}

// Child returns the direct child with the given id.
func (c *Container) Child(id ID) (Widget, bool) {
	for _, child := range c.children {
		if child.ID() == id {
			return child, true
		}
	}
	return nil, false
}

// Children returns the children in paint order, bottom first.
func (c *Container) Children() []Widget {
	out := make([]Widget, len(c.children))
	copy(out, c.children)
	return out
}

// ChildCount returns the number of direct children.
func (c *Container) ChildCount() int {
	return len(c.children)
}

// ClearChildren removes every child.
func (c *Container) ClearChildren() {
	c.children = nil
}

// SetLayoutDirection changes how children are arranged and lays out.
func (c *Container) SetLayoutDirection(direction LayoutDirection) {
	c.direction = direction
	c.layoutChildren()
}

// LayoutDirection returns the current layout direction.
func (c *Container) LayoutDirection() LayoutDirection {
	return c.direction
}

// SetAlignment changes the cross-axis placement and lays out.
func (c *Container) SetAlignment(alignment Alignment) {
	c.alignment = alignment
	c.layoutChildren()
}

// Alignment returns the cross-axis placement.
func (c *Container) Alignment() Alignment {
	return c.alignment
}

// SetPadding changes the content inset and lays out.
func (c *Container) SetPadding(padding Padding) {
	c.padding = padding
	c.layoutChildren()
}

// Padding returns the content inset.
func (c *Container) Padding() Padding {
	return c.padding
}

// SetSpacing changes the gap between children and lays out.
func (c *Container) SetSpacing(spacing float32) {
	c.spacing = spacing
	c.layoutChildren()
}

// Spacing returns the gap between children.
func (c *Container) Spacing() float32 {
	return c.spacing
}

// SetBounds places the container and lays out its children.
func (c *Container) SetBounds(bounds rx.Rect) {
	c.BaseWidget.SetBounds(bounds)
	c.layoutChildren()
}

// ContentArea returns the bounds inset by the padding.
func (c *Container) ContentArea() rx.Rect {
	bounds := c.Bounds()
	area := rx.NewRect(
		bounds.X+c.padding.Left,
		bounds.Y+c.padding.Top,
		bounds.Width-c.padding.Horizontal(),
		bounds.Height-c.padding.Vertical(),
	)
	if area.Width < 0 {
		area.Width = 0
	}
	if area.Height < 0 {
		area.Height = 0
	}
	return area
}

func (c *Container) layoutChildren() {
	switch c.direction {
	case LayoutHorizontal:
		c.layoutAxis(true)
	case LayoutVertical:
		c.layoutAxis(false)
	}
}

// layoutAxis arranges children along one axis. Each child gets its
// preferred main-axis extent, scaled down proportionally when the total
// would overflow the content area. The cross axis follows the alignment.
func (c *Container) layoutAxis(horizontal bool) {
	if len(c.children) == 0 {
		return
	}
	area := c.ContentArea()

	sizes := make([]rx.Size, len(c.children))
	var totalMain float32
	for i, child := range c.children {
		sizes[i] = child.PreferredSize()
		if horizontal {
			totalMain += sizes[i].Width
		} else {
			totalMain += sizes[i].Height
		}
	}

	availMain := area.Width
	crossExtent := area.Height
	if !horizontal {
		availMain = area.Height
		crossExtent = area.Width
	}
	availMain -= c.spacing * float32(len(c.children)-1)

	scale := float32(1)
	if availMain > 0 && totalMain > availMain {
		scale = availMain / totalMain
	}

	offset := area.X
	if !horizontal {
		offset = area.Y
	}
	for i, child := range c.children {
		main := sizes[i].Width
		cross := sizes[i].Height
		if !horizontal {
			main = sizes[i].Height
			cross = sizes[i].Width
		}
		main *= scale
		if cross > crossExtent {
			cross = crossExtent
		}

		var crossPos float32
		switch c.alignment {
		case AlignCenter:
			crossPos = (crossExtent - cross) / 2
		case AlignEnd:
			crossPos = crossExtent - cross
		case AlignStretch:
			crossPos = 0
			cross = crossExtent
		default:
			crossPos = 0
		}

		if horizontal {
			child.SetBounds(rx.NewRect(offset, area.Y+crossPos, main, cross))
		} else {
			child.SetBounds(rx.NewRect(area.X+crossPos, offset, cross, main))
		}
		offset += main + c.spacing
	}
}

// PreferredSize reports the room the children want plus padding. With
// LayoutNone it is the extent of the children relative to the container
// origin, or a 100x100 fallback when empty.
func (c *Container) PreferredSize() rx.Size {
	if len(c.children) == 0 {
		return rx.NewSize(100, 100)
	}

	switch c.direction {
	case LayoutHorizontal:
		var width, height float32
		for _, child := range c.children {
			size := child.PreferredSize()
			width += size.Width
			if size.Height > height {
				height = size.Height
			}
		}
		width += c.spacing * float32(len(c.children)-1)
		return rx.NewSize(width+c.padding.Horizontal(), height+c.padding.Vertical())

	case LayoutVertical:
		var width, height float32
		for _, child := range c.children {
			size := child.PreferredSize()
			height += size.Height
			if size.Width > width {
				width = size.Width
			}
		}
		height += c.spacing * float32(len(c.children)-1)
		return rx.NewSize(width+c.padding.Horizontal(), height+c.padding.Vertical())

	default:
		bounds := c.Bounds()
		var right, bottom float32
		for _, child := range c.children {
			b := child.Bounds()
			if r := b.Right() - bounds.X; r > right {
				right = r
			}
			if bo := b.Bottom() - bounds.Y; bo > bottom {
				bottom = bo
			}
		}
		return rx.NewSize(right+c.padding.Right, bottom+c.padding.Bottom)
	}
}

// HandleEvent offers the event to the children from topmost to bottom
// and stops at the first consumer.
func (c *Container) HandleEvent(event rx.Event) (bool, error) {
	if !c.IsVisible() || !c.IsEnabled() {
		return false, nil
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		consumed, err := c.children[i].HandleEvent(event)
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}
	return false, nil
}

// Update advances every child by delta.
func (c *Container) Update(delta time.Duration) error {
	for _, child := range c.children {
		if err := child.Update(delta); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the container background and then its visible children in
// paint order. Children are not clipped to the content area; the drawing
// contract has no clip stack.
func (c *Container) Render(ctx platform.DrawingContext) error {
	if !c.IsVisible() {
		return nil
	}
	if err := c.RenderBase(ctx); err != nil {
		return err
	}
	for _, child := range c.children {
		if child.IsVisible() {
			if err := child.Render(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
