package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconRestart  = "⟲"
	IconLoop     = "🔁"
	IconLeft     = "◀"
	IconRight    = "▶"
	IconSpeaker  = "🔊"
	IconStop     = "■"
	IconDetails  = "+"
	IconInfo     = "i"
	IconPrint    = "🖨"
	IconLanguage = "🌐"
)

// Text fragments
const (
	SpeedLabelFormat = "%.1fx"
	DashPlaceholder  = "—"
)

// Layout sizing
const (
	NameTextSize    float32 = 96
	CounterTextSize float32 = 18
	MeaningMinWidth float32 = 280

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	DetailsDialogWidth  float32 = 420
	DetailsDialogHeight float32 = 480
)

// Gesture timing
const (
	// HoldThreshold separates a tap from a press-and-hold on the arrows
	HoldThreshold = 100 * time.Millisecond
)

// Delays
const (
	SplashDuration = 2 * time.Second
	FlashDuration  = 600 * time.Millisecond
)
