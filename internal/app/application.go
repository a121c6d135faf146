// Package app wires the clock face, tick scheduler and window-manager
// boundary into the running desktop widget.
package app

import (
	"context"
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"

	"deskclock/internal/apptheme"
	"deskclock/internal/clockface"
	"deskclock/internal/logger"
	"deskclock/internal/platform"
	"deskclock/internal/ticker"
)

const (
	AppID   = "io.deskclock.deskclock"
	AppName = "deskclock"

	// Initial placement margins from the top-right screen corner, pixels.
	MarginRight = 40
	MarginTop   = 40
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	face    *clockface.Face
	ctrl    platform.Controller
	sched   *ticker.Scheduler
	log     logger.Logger

	cancel context.CancelFunc
}

// New builds the widget on a borderless splash window. The only fatal
// condition is the driver being unable to provide one; every later
// platform nicety degrades silently.
func New(fyneApp fyne.App, log logger.Logger) (*Application, error) {
	fyneApp.Settings().SetTheme(apptheme.New())

	a := &Application{
		fyneApp: fyneApp,
		log:     log,
		ctrl:    platform.Noop(),
		sched:   ticker.NewScheduler(clockwork.NewRealClock(), ticker.DefaultInterval),
	}

	window, err := newBorderlessWindow(fyneApp)
	if err != nil {
		return nil, err
	}
	a.window = window

	a.face = clockface.New(a.moveBy, a.dismiss)
	window.SetContent(a.face)
	window.Resize(a.face.MinSize())

	fyneApp.Lifecycle().SetOnStarted(a.onStarted)
	fyneApp.Lifecycle().SetOnStopped(a.stopTicking)

	log.Info("ClockWidget", "initialized", map[string]interface{}{
		"interval": ticker.DefaultInterval.String(),
	})
	return a, nil
}

func newBorderlessWindow(a fyne.App) (fyne.Window, error) {
	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		return nil, errors.New("app: desktop driver unavailable, cannot create borderless window")
	}
	return drv.CreateSplashWindow(), nil
}

// Run shows the window and blocks in the toolkit event loop until the
// clock is dismissed or the process is told to stop.
func (a *Application) Run() {
	a.window.Show()
	a.fyneApp.Run()
}

// Stop dismisses the widget from outside the event loop (signal path).
func (a *Application) Stop() {
	a.stopTicking()
	fyne.Do(a.fyneApp.Quit)
}

// onStarted runs once the event loop is live: grab the native window
// handle, elevate and place the window, then start the tick loop.
func (a *Application) onStarted() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	go func() {
		fyne.DoAndWait(a.setupNative)
		a.sched.Run(ctx, a.tick)
	}()
}

func (a *Application) setupNative() {
	a.ctrl = platform.New(a.window)
	a.elevate()
	a.placeTopRight()
}

func (a *Application) elevate() {
	err := a.ctrl.RaiseAboveAll()
	fields := map[string]interface{}{"backend": a.ctrl.Name()}

	// The Cocoa floating-level call gets an explicit diagnostic either
	// way; elsewhere success and failure are equally quiet.
	cocoa := a.ctrl.Name() == "cocoa"
	switch {
	case err == nil && cocoa:
		a.log.Info("ClockWidget", "window elevated to floating level", fields)
	case err == nil:
		a.log.Debug("ClockWidget", "always-on-top attribute set", fields)
	default:
		fields["error"] = err.Error()
		if cocoa {
			a.log.Warning("ClockWidget", "failed to set floating window level", fields)
		} else {
			a.log.Debug("ClockWidget", "always-on-top attribute unavailable", fields)
		}
	}
}

func (a *Application) placeTopRight() {
	screenWidth, err := a.ctrl.ScreenWidth()
	if err != nil {
		a.log.Debug("ClockWidget", "screen size unavailable, keeping driver placement", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	width := int(a.face.MinSize().Width * a.window.Canvas().Scale())
	x, y := placeAt(screenWidth, width)
	if err := a.ctrl.Move(x, y); err != nil {
		a.log.Debug("ClockWidget", "initial placement failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// placeAt anchors the window near the top-right corner of the screen.
func placeAt(screenWidth, windowWidth int) (x, y int) {
	return screenWidth - windowWidth - MarginRight, MarginTop
}

func (a *Application) tick(now time.Time) {
	fyne.Do(func() {
		a.face.SetTime(now)
	})
}

// moveBy applies one drag motion. Runs on the UI thread; a host without
// window control simply ignores the gesture.
func (a *Application) moveBy(dx, dy float32) {
	x, y, err := a.ctrl.Position()
	if err != nil {
		return
	}
	scale := a.window.Canvas().Scale()
	_ = a.ctrl.Move(x+int(dx*scale), y+int(dy*scale))
}

// dismiss handles right-click: stop ticking and leave the event loop.
// Runs on the UI thread.
func (a *Application) dismiss() {
	a.log.Info("ClockWidget", "dismissed", nil)
	a.stopTicking()
	a.fyneApp.Quit()
}

func (a *Application) stopTicking() {
	if a.cancel != nil {
		a.cancel()
	}
}
