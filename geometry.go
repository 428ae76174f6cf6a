package rx

import "math"

// ============================================================================
// Point
// ============================================================================

// Point is a position in window coordinates.
type Point struct {
	X, Y float32
}

// NewPoint creates a point.
func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale multiplies both components by a factor.
func (p Point) Scale(factor float32) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// DistanceTo returns the euclidean distance to another point.
func (p Point) DistanceTo(other Point) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// ============================================================================
// Size
// ============================================================================

// Size is a width and height in window coordinates.
type Size struct {
	Width, Height float32
}

// NewSize creates a size.
func NewSize(width, height float32) Size {
	return Size{Width: width, Height: height}
}

// SquareSize creates a size with equal sides.
func SquareSize(side float32) Size {
	return Size{Width: side, Height: side}
}

// Area returns width times height.
func (s Size) Area() float32 {
	return s.Width * s.Height
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale multiplies both dimensions by a factor.
func (s Size) Scale(factor float32) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// ============================================================================
// Rect
// ============================================================================

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a rectangle.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom creates a rectangle from a position and size.
func RectFrom(pos Point, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Area returns width times height.
func (r Rect) Area() float32 {
	return r.Width * r.Height
}

// Empty reports whether either dimension is zero or negative.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the right edge x coordinate.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the bottom edge y coordinate.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersection returns the overlapping region. The second result is false
// when the rectangles do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	left := max32(r.X, other.X)
	right := min32(r.Right(), other.Right())
	top := max32(r.Y, other.Y)
	bottom := min32(r.Bottom(), other.Bottom())
	if left < right && top < bottom {
		return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
	}
	return Rect{}, false
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	left := min32(r.X, other.X)
	right := max32(r.Right(), other.Right())
	top := min32(r.Y, other.Y)
	bottom := max32(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Expand grows the rectangle by the given amount on all sides.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + 2*amount,
		Height: r.Height + 2*amount,
	}
}

// Contract shrinks the rectangle by the given amount on all sides.
func (r Rect) Contract(amount float32) Rect {
	return r.Expand(-amount)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
