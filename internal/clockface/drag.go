package clockface

import "fyne.io/fyne/v2"

// DragTracker is the two-state (idle/dragging) gesture tracker for window
// relocation. The press point is recorded in window-local coordinates; it
// equals the offset between the cursor's screen position and the window's
// top-left corner, so moving the window by Delta keeps that offset fixed
// and the window follows the cursor rigidly.
type DragTracker struct {
	anchor fyne.Position
	active bool
}

// Press enters the dragging state, anchoring on the press point.
func (d *DragTracker) Press(p fyne.Position) {
	d.anchor = p
	d.active = true
}

// Release returns to idle. Safe to call when already idle.
func (d *DragTracker) Release() {
	d.active = false
}

func (d *DragTracker) Active() bool {
	return d.active
}

// Delta reports how far the window must move so the anchor sits back under
// the cursor. Zero when the cursor has not strayed from the anchor.
func (d *DragTracker) Delta(cursor fyne.Position) (dx, dy float32) {
	return cursor.X - d.anchor.X, cursor.Y - d.anchor.Y
}
