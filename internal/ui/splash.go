package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// NewSplash creates the launch screen with the app title and subtitle
func NewSplash(loc *Localization) fyne.CanvasObject {
	title := canvas.NewText(loc.GetText(KeyAppTitle), theme.Color(theme.ColorNamePrimary))
	title.TextSize = theme.Size(theme.SizeNameHeadingText) * 1.6
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := canvas.NewText(loc.GetText(KeySubtitle), theme.Color(theme.ColorNameForeground))
	subtitle.TextStyle = fyne.TextStyle{Italic: true}
	subtitle.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(title, subtitle))
}

// ShowSplash shows the splash screen for d and then calls done on the Fyne
// thread
func ShowSplash(window fyne.Window, loc *Localization, d time.Duration, done func()) {
	window.SetContent(NewSplash(loc))
	time.AfterFunc(d, func() {
		fyne.Do(done)
	})
}
