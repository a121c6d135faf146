// deskclock is a borderless always-on-top desktop clock showing
// HH:MM:SS.mmm. Drag it anywhere with the primary mouse button;
// right-click to dismiss. It takes no arguments.
package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"deskclock/internal/app"
	"deskclock/internal/logger"
	"deskclock/internal/shutdown"
)

func main() {
	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	application, err := app.New(fyneapp.NewWithID(app.AppID), log)
	if err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	sd := shutdown.NewManager(log)
	sd.Register(application)
	sd.Listen()

	application.Run()
}
