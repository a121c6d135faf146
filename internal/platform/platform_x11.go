//go:build linux || freebsd || openbsd || netbsd

package platform

/*
#cgo LDFLAGS: -lX11

#include <string.h>
#include <X11/Xlib.h>
#include <X11/Xatom.h>

#define CLK_NET_WM_STATE_ADD 1

static int clk_set_above(Display *d, Window w) {
	Atom state = XInternAtom(d, "_NET_WM_STATE", False);
	Atom above = XInternAtom(d, "_NET_WM_STATE_ABOVE", False);
	if (state == None || above == None) {
		return 0;
	}

	XEvent e;
	memset(&e, 0, sizeof(e));
	e.xclient.type = ClientMessage;
	e.xclient.window = w;
	e.xclient.message_type = state;
	e.xclient.format = 32;
	e.xclient.data.l[0] = CLK_NET_WM_STATE_ADD;
	e.xclient.data.l[1] = (long)above;

	Status ok = XSendEvent(d, DefaultRootWindow(d), False,
		SubstructureRedirectMask | SubstructureNotifyMask, &e);
	XFlush(d);
	return ok != 0;
}

static int clk_translate(Display *d, Window w, int *x, int *y) {
	Window child;
	return XTranslateCoordinates(d, w, DefaultRootWindow(d), 0, 0, x, y, &child);
}
*/
import "C"

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// x11Controller speaks EWMH to whichever window manager is running.
// Always-on-top is a _NET_WM_STATE_ABOVE request; honoring it is the
// window manager's choice.
type x11Controller struct {
	dpy *C.Display
	win C.Window
}

// New captures the X11 window handle behind a realized Fyne window. On
// Wayland sessions or when no display connection can be opened the no-op
// controller is returned and the clock simply loses relocation and
// stacking control.
func New(w fyne.Window) Controller {
	native, ok := w.(driver.NativeWindow)
	if !ok {
		return Noop()
	}

	ctrl := Controller(Noop())
	native.RunNative(func(ctx any) {
		c, ok := ctx.(driver.X11WindowContext)
		if !ok || c.WindowHandle == 0 {
			return
		}
		dpy := C.XOpenDisplay(nil)
		if dpy == nil {
			return
		}
		ctrl = &x11Controller{dpy: dpy, win: C.Window(c.WindowHandle)}
	})
	return ctrl
}

func (c *x11Controller) Name() string { return "x11" }

func (c *x11Controller) RaiseAboveAll() error {
	if C.clk_set_above(c.dpy, c.win) == 0 {
		return errors.New("platform: _NET_WM_STATE_ABOVE request rejected")
	}
	return nil
}

func (c *x11Controller) Move(x, y int) error {
	C.XMoveWindow(c.dpy, c.win, C.int(x), C.int(y))
	C.XFlush(c.dpy)
	return nil
}

func (c *x11Controller) Position() (int, int, error) {
	var x, y C.int
	if C.clk_translate(c.dpy, c.win, &x, &y) == 0 {
		return 0, 0, errors.New("platform: window is on a different screen")
	}
	return int(x), int(y), nil
}

func (c *x11Controller) ScreenWidth() (int, error) {
	return int(C.XDisplayWidth(c.dpy, C.XDefaultScreen(c.dpy))), nil
}
