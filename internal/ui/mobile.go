package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// IsMobileDevice checks if the app is running on a mobile device
func IsMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

// touchTarget enlarges obj to a comfortable touch target on mobile devices
func touchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !IsMobileDevice() {
		return obj
	}
	return container.NewGridWrap(fyne.NewSize(MinTouchTargetSize*1.5, MinTouchTargetSize), obj)
}
