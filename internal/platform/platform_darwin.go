//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>

static double clk_screen_height(void) {
	return [[[NSScreen screens] firstObject] frame].size.height;
}

static double clk_screen_width(void) {
	return [[[NSScreen screens] firstObject] frame].size.width;
}

static void clk_set_floating(void *win) {
	NSWindow *w = (NSWindow *)win;
	[w setLevel:NSFloatingWindowLevel];
	[w setCollectionBehavior:NSWindowCollectionBehaviorCanJoinAllSpaces |
		NSWindowCollectionBehaviorFullScreenAuxiliary];
}

// Screen coordinates arrive top-left based; Cocoa's origin is bottom-left,
// so y flips against the primary screen height.
static void clk_move(void *win, double x, double topY) {
	NSWindow *w = (NSWindow *)win;
	[w setFrameTopLeftPoint:NSMakePoint(x, clk_screen_height() - topY)];
}

static void clk_position(void *win, double *x, double *topY) {
	NSWindow *w = (NSWindow *)win;
	NSRect f = [w frame];
	*x = f.origin.x;
	*topY = clk_screen_height() - (f.origin.y + f.size.height);
}
*/
import "C"

import (
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// cocoaController elevates the clock to NSFloatingWindowLevel so it stays
// above application windows, full-screen ones included.
type cocoaController struct {
	win unsafe.Pointer
}

// New captures the NSWindow behind a realized Fyne window. Returns the
// no-op controller when the handle is unavailable.
func New(w fyne.Window) Controller {
	native, ok := w.(driver.NativeWindow)
	if !ok {
		return Noop()
	}

	ctrl := Controller(Noop())
	native.RunNative(func(ctx any) {
		if c, ok := ctx.(driver.MacWindowContext); ok && c.NSWindow != 0 {
			ctrl = &cocoaController{win: unsafe.Pointer(c.NSWindow)}
		}
	})
	return ctrl
}

func (c *cocoaController) Name() string { return "cocoa" }

func (c *cocoaController) RaiseAboveAll() error {
	C.clk_set_floating(c.win)
	return nil
}

func (c *cocoaController) Move(x, y int) error {
	C.clk_move(c.win, C.double(x), C.double(y))
	return nil
}

func (c *cocoaController) Position() (int, int, error) {
	var x, y C.double
	C.clk_position(c.win, &x, &y)
	return int(x), int(y), nil
}

func (c *cocoaController) ScreenWidth() (int, error) {
	return int(C.clk_screen_width()), nil
}
