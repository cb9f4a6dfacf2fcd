package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// HoldButton is a button that reports press-and-hold in addition to taps.
// OnHold(true) fires when the pointer goes down and OnHold(false) when it
// is released or cancelled. A release after HoldThreshold suppresses the
// tap that follows it.
type HoldButton struct {
	widget.Button

	OnHold func(pressed bool)

	pressed   bool
	pressedAt time.Time
	heldFor   time.Duration
	now       func() time.Time
}

var (
	_ desktop.Mouseable = (*HoldButton)(nil)
	_ mobile.Touchable  = (*HoldButton)(nil)
)

// NewHoldButton creates a new hold-aware button
func NewHoldButton(label string, onTapped func(), onHold func(pressed bool)) *HoldButton {
	b := &HoldButton{OnHold: onHold, now: time.Now}
	b.Text = label
	b.OnTapped = onTapped
	b.ExtendBaseWidget(b)
	return b
}

// Tapped handles a completed tap
func (b *HoldButton) Tapped(e *fyne.PointEvent) {
	if b.heldFor >= HoldThreshold {
		b.heldFor = 0
		return
	}
	b.Button.Tapped(e)
}

// MouseDown handles desktop mouse press events
func (b *HoldButton) MouseDown(*desktop.MouseEvent) {
	b.press()
}

// MouseUp handles desktop mouse release events
func (b *HoldButton) MouseUp(*desktop.MouseEvent) {
	b.release()
}

// TouchDown handles touch down events
func (b *HoldButton) TouchDown(*mobile.TouchEvent) {
	b.press()
}

// TouchUp handles touch up events
func (b *HoldButton) TouchUp(*mobile.TouchEvent) {
	b.release()
}

// TouchCancel handles touch cancel events
func (b *HoldButton) TouchCancel(*mobile.TouchEvent) {
	b.release()
	b.heldFor = 0
}

func (b *HoldButton) press() {
	if b.pressed || b.Disabled() {
		return
	}
	b.pressed = true
	b.pressedAt = b.now()
	b.heldFor = 0
	if b.OnHold != nil {
		b.OnHold(true)
	}
}

func (b *HoldButton) release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.heldFor = b.now().Sub(b.pressedAt)
	if b.OnHold != nil {
		b.OnHold(false)
	}
}
