//go:build !darwin && !linux && !windows && !freebsd && !openbsd && !netbsd

package platform

import "fyne.io/fyne/v2"

// New has no native backend for this host; window control degrades to the
// no-op controller.
func New(fyne.Window) Controller {
	return Noop()
}
