// Package ui contains the Fyne user interface: the name display, the
// navigation and playback controls, and the details, about, print and
// review dialogs. Player snapshots are applied on the Fyne thread.
package ui
