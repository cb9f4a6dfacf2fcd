package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "names72.png"
)

// LoadIconResource loads the application icon from the resource directory
func LoadIconResource(resourceDir string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join(resourceDir, AppIcon))
}
