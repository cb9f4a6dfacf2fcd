package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MeditationTheme is a dark, low-contrast theme for the name display. The
// script forms are rendered with the Symbol text style, which this theme
// maps to the configured Hebrew font when one is available.
type MeditationTheme struct {
	scriptFont fyne.Resource
}

// NewMeditationTheme creates the theme. An empty fontPath keeps the default
// symbol font.
func NewMeditationTheme(fontPath string) fyne.Theme {
	t := &MeditationTheme{}
	if fontPath == "" {
		return t
	}
	res, err := fyne.LoadResourceFromPath(fontPath)
	if err != nil {
		log.Printf("Script font %s not loaded: %v", fontPath, err)
		return t
	}
	t.scriptFont = res
	return t
}

// Color returns theme colors
func (t *MeditationTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 12, G: 10, B: 24, A: 255} // Night indigo
	case theme.ColorNameForeground:
		return color.RGBA{R: 238, G: 232, B: 214, A: 255} // Parchment
	case theme.ColorNamePrimary:
		return color.RGBA{R: 212, G: 175, B: 55, A: 255} // Gold
	case theme.ColorNameButton:
		return color.RGBA{R: 34, G: 30, B: 58, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *MeditationTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Symbol && t.scriptFont != nil {
		return t.scriptFont
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MeditationTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *MeditationTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// HasScriptFont reports whether a custom script font was loaded
func (t *MeditationTheme) HasScriptFont() bool {
	return t.scriptFont != nil
}
