//go:build darwin

package cocoa

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Geometry structs matching the AppKit ABI. CGFloat is 64-bit on every
// supported platform.
type nsPoint struct {
	X, Y float64
}

type nsSize struct {
	Width, Height float64
}

type nsRect struct {
	Origin nsPoint
	Size   nsSize
}

// NSWindow style masks.
const (
	styleMaskBorderless     = 0
	styleMaskTitled         = 1 << 0
	styleMaskClosable       = 1 << 1
	styleMaskMiniaturizable = 1 << 2
	styleMaskResizable      = 1 << 3
)

const (
	backingStoreBuffered    = 2
	activationPolicyRegular = 0
	floatingWindowLevel     = 3
	anyEventMask            = ^uint64(0)
	defaultRunLoopMode      = "kCFRunLoopDefaultMode"
	appKitPath              = "/System/Library/Frameworks/AppKit.framework/AppKit"
)

// NSEvent types.
const (
	eventLeftMouseDown     = 1
	eventLeftMouseUp       = 2
	eventRightMouseDown    = 3
	eventRightMouseUp      = 4
	eventMouseMoved        = 5
	eventLeftMouseDragged  = 6
	eventRightMouseDragged = 7
	eventKeyDown           = 10
	eventKeyUp             = 11
	eventFlagsChanged      = 12
	eventScrollWheel       = 22
	eventOtherMouseDown    = 25
	eventOtherMouseUp      = 26
	eventOtherMouseDragged = 27
)

// NSEvent modifier flag bits.
const (
	flagShift   = 1 << 17
	flagControl = 1 << 18
	flagOption  = 1 << 19
	flagCommand = 1 << 20
)

var (
	classNSApplication     objc.Class
	classNSWindow          objc.Class
	classNSString          objc.Class
	classNSDate            objc.Class
	classNSDictionary      objc.Class
	classNSColor           objc.Class
	classNSScreen          objc.Class
	classNSGraphicsCtx     objc.Class
	classNSAutoreleasePool objc.Class
	classNSObject          objc.Class

	selSharedApplication   objc.SEL
	selSetActivationPolicy objc.SEL
	selActivateIgnoring    objc.SEL
	selFinishLaunching     objc.SEL
	selNextEvent           objc.SEL
	selSendEvent           objc.SEL
	selUpdateWindows       objc.SEL

	selAlloc              objc.SEL
	selInit               objc.SEL
	selDrain              objc.SEL
	selInitWithRect       objc.SEL
	selSetTitle           objc.SEL
	selSetReleasedOnClose objc.SEL
	selMakeKeyAndFront    objc.SEL
	selOrderOut           objc.SEL
	selClose              objc.SEL
	selSetDelegate        objc.SEL
	selSetLevel           objc.SEL
	selToggleFullScreen   objc.SEL
	selSetContentSize     objc.SEL
	selSetTopLeftPoint    objc.SEL
	selFrame              objc.SEL
	selContentView        objc.SEL
	selContentRect        objc.SEL
	selMainScreen         objc.SEL

	selStringWithUTF8 objc.SEL
	selUTF8String     objc.SEL

	selDistantPast     objc.SEL
	selDistantFuture   objc.SEL
	selDateWithSeconds objc.SEL

	selType          objc.SEL
	selWindow        objc.SEL
	selLocation      objc.SEL
	selScrollDeltaX  objc.SEL
	selScrollDeltaY  objc.SEL
	selKeyCode       objc.SEL
	selModifierFlags objc.SEL
	selCharacters    objc.SEL
	selButtonNumber  objc.SEL
	selObject        objc.SEL

	selGraphicsCtxWithWindow objc.SEL
	selSetCurrentContext     objc.SEL
	selFlushGraphics         objc.SEL
	selFlushWindow           objc.SEL
	selColorWithCalibrated   objc.SEL
	selSet                   objc.SEL
	selDrawAtPoint           objc.SEL
	selDictWithObject        objc.SEL

	nsRectFill           func(nsRect)
	nsFrameRectWithWidth func(nsRect, float64)

	foregroundColorAttr objc.ID

	// runLoopMode is interned once and reused by every event dequeue.
	runLoopMode objc.ID
)

// loadAppKit resolves the framework, the classes and selectors the backend
// uses, and the two C drawing helpers. Called once from Initialize.
func loadAppKit() error {
	appKit, err := purego.Dlopen(appKitPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return platform.WrapError(platform.ErrPlatformInit, "failed to load AppKit", err)
	}

	registerClasses()
	registerSelectors()
	runLoopMode = nsString(defaultRunLoopMode)

	purego.RegisterLibFunc(&nsRectFill, appKit, "NSRectFill")
	purego.RegisterLibFunc(&nsFrameRectWithWidth, appKit, "NSFrameRectWithWidth")

	sym, err := purego.Dlsym(appKit, "NSForegroundColorAttributeName")
	if err != nil {
		return platform.WrapError(platform.ErrPlatformInit,
			"failed to resolve NSForegroundColorAttributeName", err)
	}
	foregroundColorAttr = *(*objc.ID)(unsafe.Pointer(sym))
	return nil
}

func registerClasses() {
	classNSApplication = objc.GetClass("NSApplication")
	classNSWindow = objc.GetClass("NSWindow")
	classNSString = objc.GetClass("NSString")
	classNSDate = objc.GetClass("NSDate")
	classNSDictionary = objc.GetClass("NSDictionary")
	classNSColor = objc.GetClass("NSColor")
	classNSScreen = objc.GetClass("NSScreen")
	classNSGraphicsCtx = objc.GetClass("NSGraphicsContext")
	classNSAutoreleasePool = objc.GetClass("NSAutoreleasePool")
	classNSObject = objc.GetClass("NSObject")
}

func registerSelectors() {
	selSharedApplication = objc.RegisterName("sharedApplication")
	selSetActivationPolicy = objc.RegisterName("setActivationPolicy:")
	selActivateIgnoring = objc.RegisterName("activateIgnoringOtherApps:")
	selFinishLaunching = objc.RegisterName("finishLaunching")
	selNextEvent = objc.RegisterName("nextEventMatchingMask:untilDate:inMode:dequeue:")
	selSendEvent = objc.RegisterName("sendEvent:")
	selUpdateWindows = objc.RegisterName("updateWindows")

	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selDrain = objc.RegisterName("drain")
	selInitWithRect = objc.RegisterName("initWithContentRect:styleMask:backing:defer:")
	selSetTitle = objc.RegisterName("setTitle:")
	selSetReleasedOnClose = objc.RegisterName("setReleasedWhenClosed:")
	selMakeKeyAndFront = objc.RegisterName("makeKeyAndOrderFront:")
	selOrderOut = objc.RegisterName("orderOut:")
	selClose = objc.RegisterName("close")
	selSetDelegate = objc.RegisterName("setDelegate:")
	selSetLevel = objc.RegisterName("setLevel:")
	selToggleFullScreen = objc.RegisterName("toggleFullScreen:")
	selSetContentSize = objc.RegisterName("setContentSize:")
	selSetTopLeftPoint = objc.RegisterName("setFrameTopLeftPoint:")
	selFrame = objc.RegisterName("frame")
	selContentView = objc.RegisterName("contentView")
	selContentRect = objc.RegisterName("contentRectForFrameRect:")
	selMainScreen = objc.RegisterName("mainScreen")

	selStringWithUTF8 = objc.RegisterName("stringWithUTF8String:")
	selUTF8String = objc.RegisterName("UTF8String")

	selDistantPast = objc.RegisterName("distantPast")
	selDistantFuture = objc.RegisterName("distantFuture")
	selDateWithSeconds = objc.RegisterName("dateWithTimeIntervalSinceNow:")

	selType = objc.RegisterName("type")
	selWindow = objc.RegisterName("window")
	selLocation = objc.RegisterName("locationInWindow")
	selScrollDeltaX = objc.RegisterName("scrollingDeltaX")
	selScrollDeltaY = objc.RegisterName("scrollingDeltaY")
	selKeyCode = objc.RegisterName("keyCode")
	selModifierFlags = objc.RegisterName("modifierFlags")
	selCharacters = objc.RegisterName("characters")
	selButtonNumber = objc.RegisterName("buttonNumber")
	selObject = objc.RegisterName("object")

	selGraphicsCtxWithWindow = objc.RegisterName("graphicsContextWithWindow:")
	selSetCurrentContext = objc.RegisterName("setCurrentContext:")
	selFlushGraphics = objc.RegisterName("flushGraphics")
	selFlushWindow = objc.RegisterName("flushWindow")
	selColorWithCalibrated = objc.RegisterName("colorWithCalibratedRed:green:blue:alpha:")
	selSet = objc.RegisterName("set")
	selDrawAtPoint = objc.RegisterName("drawAtPoint:withAttributes:")
	selDictWithObject = objc.RegisterName("dictionaryWithObject:forKey:")
}

// nsString builds an autoreleased NSString from a Go string.
func nsString(s string) objc.ID {
	bytes := make([]byte, len(s)+1)
	copy(bytes, s)
	return objc.ID(classNSString).Send(selStringWithUTF8, unsafe.Pointer(&bytes[0]))
}

// goString copies a NUL-terminated C string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var bytes []byte
	for {
		b := *(*byte)(unsafe.Pointer(p))
		if b == 0 {
			break
		}
		bytes = append(bytes, b)
		p++
	}
	return string(bytes)
}

// nsStringToGo reads an NSString through its UTF-8 view.
func nsStringToGo(ns objc.ID) string {
	if ns == 0 {
		return ""
	}
	return goString(objc.Send[uintptr](ns, selUTF8String))
}

// screenHeight is the height of the main screen, needed to flip between
// the top-left coordinates of the platform API and the bottom-left
// coordinates of AppKit.
func screenHeight() float64 {
	screen := objc.ID(classNSScreen).Send(selMainScreen)
	if screen == 0 {
		return 0
	}
	return objc.Send[nsRect](screen, selFrame).Size.Height
}
