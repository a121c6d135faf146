// Package platform is the boundary to the host window manager: raising the
// clock above other windows, moving it, and reading screen geometry. Every
// call is best-effort; callers log failures and continue.
package platform

import "errors"

// ErrUnsupported is returned by every method of the no-op controller, used
// on hosts where no native window handle is available.
var ErrUnsupported = errors.New("platform: window control unsupported on this host")

// Controller manipulates the realized native window. Implementations are
// selected once at startup by New; all methods must be called from the UI
// thread.
type Controller interface {
	// Name identifies the backend ("cocoa", "x11", "win32", "noop").
	Name() string
	// RaiseAboveAll keeps the window above normal application windows.
	RaiseAboveAll() error
	// Move places the window's top-left corner at screen pixel (x, y).
	Move(x, y int) error
	// Position reads the window's top-left corner in screen pixels.
	Position() (x, y int, err error)
	// ScreenWidth reads the primary screen's width in pixels.
	ScreenWidth() (int, error)
}

type noopController struct{}

// Noop returns the fallback controller whose methods all fail with
// ErrUnsupported.
func Noop() Controller { return noopController{} }

func (noopController) Name() string                { return "noop" }
func (noopController) RaiseAboveAll() error        { return ErrUnsupported }
func (noopController) Move(int, int) error         { return ErrUnsupported }
func (noopController) Position() (int, int, error) { return 0, 0, ErrUnsupported }
func (noopController) ScreenWidth() (int, error)   { return 0, ErrUnsupported }
