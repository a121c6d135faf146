// Package clockface renders the HH:MM:SS.mmm display and handles the
// mouse gestures that move and dismiss the clock window.
package clockface

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"deskclock/internal/apptheme"
	"deskclock/internal/timefmt"
)

const (
	TimeTextSize   = 28
	MillisTextSize = 16

	// Fixed chrome around the three text regions.
	WidthPadding  = 30
	HeightPadding = 20

	leftInset    = 10
	separatorGap = 2
)

// Face is the single widget of the application: three fixed-width text
// regions over a dark panel. Drag relocation and right-click dismissal are
// delegated to the owner through callbacks so the widget stays free of
// window-manager concerns.
type Face struct {
	widget.BaseWidget

	timeText *canvas.Text
	sep      *canvas.Text
	millis   *canvas.Text

	drag DragTracker

	onDrag    func(dx, dy float32)
	onDismiss func()
}

var (
	_ fyne.Widget       = (*Face)(nil)
	_ fyne.Draggable    = (*Face)(nil)
	_ desktop.Mouseable = (*Face)(nil)
)

func New(onDrag func(dx, dy float32), onDismiss func()) *Face {
	f := &Face{onDrag: onDrag, onDismiss: onDismiss}

	f.timeText = canvas.NewText("00:00:00", apptheme.TimeColor)
	f.timeText.TextSize = TimeTextSize
	f.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	f.sep = canvas.NewText(".", apptheme.AccentColor)
	f.sep.TextSize = TimeTextSize
	f.sep.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	f.millis = canvas.NewText("000", apptheme.AccentColor)
	f.millis.TextSize = MillisTextSize
	f.millis.TextStyle = fyne.TextStyle{Monospace: true}

	f.ExtendBaseWidget(f)
	return f
}

// SetTime re-renders the display fields from a fresh clock reading.
// Must be called on the UI thread.
func (f *Face) SetTime(t time.Time) {
	clock, millis := timefmt.Fields(t)
	if f.timeText.Text != clock {
		f.timeText.Text = clock
		f.timeText.Refresh()
	}
	if f.millis.Text != millis {
		f.millis.Text = millis
		f.millis.Refresh()
	}
}

// MouseDown starts a drag on the primary button and dismisses on the
// secondary button, regardless of drag state.
func (f *Face) MouseDown(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		if f.onDismiss != nil {
			f.onDismiss()
		}
	case desktop.MouseButtonPrimary:
		f.drag.Press(ev.Position)
	}
}

func (f *Face) MouseUp(*desktop.MouseEvent) {
	f.drag.Release()
}

// Dragged repositions the window so the press point stays under the
// cursor. Applied per event, never batched.
func (f *Face) Dragged(ev *fyne.DragEvent) {
	if !f.drag.Active() || f.onDrag == nil {
		return
	}
	dx, dy := f.drag.Delta(ev.Position)
	if dx != 0 || dy != 0 {
		f.onDrag(dx, dy)
	}
}

func (f *Face) DragEnd() {
	f.drag.Release()
}

func (f *Face) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(apptheme.PanelColor)
	return &faceRenderer{face: f, bg: bg}
}

type faceRenderer struct {
	face *Face
	bg   *canvas.Rectangle
}

func (r *faceRenderer) MinSize() fyne.Size {
	t := r.face.timeText.MinSize()
	s := r.face.sep.MinSize()
	m := r.face.millis.MinSize()

	width := t.Width + s.Width + m.Width + WidthPadding
	height := fyne.Max(t.Height, m.Height) + HeightPadding
	return fyne.NewSize(width, height)
}

func (r *faceRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	x := float32(leftInset)
	for i, obj := range []*canvas.Text{r.face.timeText, r.face.sep, r.face.millis} {
		if i == 1 {
			x += separatorGap
		}
		min := obj.MinSize()
		obj.Resize(min)
		obj.Move(fyne.NewPos(x, (size.Height-min.Height)/2))
		x += min.Width
	}
}

func (r *faceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.face.timeText, r.face.sep, r.face.millis}
}

func (r *faceRenderer) Refresh() {
	canvas.Refresh(r.face)
}

func (r *faceRenderer) Destroy() {}
