// Package apptheme supplies the clock's dark palette and its monospaced
// display font.
package apptheme

import (
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Face palette, shared with the clockface renderer.
var (
	PanelColor  = color.NRGBA{R: 0x11, G: 0x13, B: 0x18, A: 0xFF}
	TimeColor   = color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	AccentColor = color.NRGBA{R: 0x9A, G: 0xC1, B: 0xFF, A: 0xFF}
)

const preferredFamily = "JetBrainsMono"

// Theme overrides the monospace font with the preferred family when it can
// be found on the host, falling back silently to the toolkit's bundled
// monospace otherwise.
type Theme struct {
	fyne.Theme
	mono     fyne.Resource
	monoBold fyne.Resource
}

func New() *Theme {
	t := &Theme{Theme: theme.DefaultTheme()}
	t.mono = loadFont(preferredFamily + "-Regular.ttf")
	t.monoBold = loadFont(preferredFamily + "-Bold.ttf")
	return t
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace {
		if style.Bold && t.monoBold != nil {
			return t.monoBold
		}
		if t.mono != nil {
			return t.mono
		}
	}
	return t.Theme.Font(style)
}

// fontDirs lists the conventional per-platform font locations. Misses are
// fine; the first readable match wins.
func fontDirs() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".local", "share", "fonts"),
		filepath.Join(home, ".fonts"),
		filepath.Join(home, "Library", "Fonts"),
		"/usr/share/fonts/truetype/jetbrains-mono",
		"/usr/share/fonts/TTF",
		"/usr/share/fonts",
		"/Library/Fonts",
		`C:\Windows\Fonts`,
	}
}

func loadFont(name string) fyne.Resource {
	for _, dir := range fontDirs() {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		return fyne.NewStaticResource(name, data)
	}
	return nil
}
