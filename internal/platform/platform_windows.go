//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	hwndTopmost = ^uintptr(0) // (HWND)-1

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	smCxScreen = 0
)

type winRect struct {
	left, top, right, bottom int32
}

type win32Controller struct {
	hwnd uintptr
}

// New captures the HWND behind a realized Fyne window.
func New(w fyne.Window) Controller {
	native, ok := w.(driver.NativeWindow)
	if !ok {
		return Noop()
	}

	ctrl := Controller(Noop())
	native.RunNative(func(ctx any) {
		if c, ok := ctx.(driver.WindowsWindowContext); ok && c.HWND != 0 {
			ctrl = &win32Controller{hwnd: c.HWND}
		}
	})
	return ctrl
}

func (c *win32Controller) Name() string { return "win32" }

func (c *win32Controller) RaiseAboveAll() error {
	ok, _, err := procSetWindowPos.Call(c.hwnd, hwndTopmost,
		0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	if ok == 0 {
		return fmt.Errorf("platform: SetWindowPos(HWND_TOPMOST): %w", err)
	}
	return nil
}

func (c *win32Controller) Move(x, y int) error {
	ok, _, err := procSetWindowPos.Call(c.hwnd, 0,
		uintptr(int32(x)), uintptr(int32(y)), 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
	if ok == 0 {
		return fmt.Errorf("platform: SetWindowPos(move): %w", err)
	}
	return nil
}

func (c *win32Controller) Position() (int, int, error) {
	var r winRect
	ok, _, err := procGetWindowRect.Call(c.hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return 0, 0, fmt.Errorf("platform: GetWindowRect: %w", err)
	}
	return int(r.left), int(r.top), nil
}

func (c *win32Controller) ScreenWidth() (int, error) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	if w == 0 {
		return 0, fmt.Errorf("platform: GetSystemMetrics(SM_CXSCREEN) returned 0")
	}
	return int(w), nil
}
