// Package tui is the terminal rendition of the meditation screen, built on
// Bubble Tea. Key auto-repeat reaches the player as individual navigation
// steps and is throttled by its debounce.
package tui
