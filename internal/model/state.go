package model

import (
	"math"
	"time"
)

// Speed limits and defaults
const (
	MinSpeed     = 0.5
	MaxSpeed     = 3.0
	DefaultSpeed = 1.0
)

// PlayerState is a point-in-time copy of the sequence player handed to
// renderers. Mutating it has no effect on the player.
type PlayerState struct {
	Position           int
	State              PlaybackState
	Speed              float64
	LoopEnabled        bool
	NavigatingManually bool
	Completed          bool   // the final name was reached at least once
	Cycle              int    // incremented on every restart
	SessionID          string // identifies the current run from position 0
}

// AtEnd reports whether the player sits on the final name
func (s PlayerState) AtEnd() bool {
	return s.Position >= LastPosition
}

// IsPausedAtEnd reports whether a primary tap would restart the sequence
func (s PlayerState) IsPausedAtEnd() bool {
	return s.State == PlaybackPaused && s.AtEnd()
}

// ShowControls reports whether the full control panel should be visible
func (s PlayerState) ShowControls() bool {
	return !s.State.IsActive()
}

// Interval returns the automatic advance interval for the current speed
func (s PlayerState) Interval() time.Duration {
	return IntervalFor(s.Speed)
}

// IntervalFor converts a speed multiplier to the advance interval
func IntervalFor(speed float64) time.Duration {
	return time.Duration(float64(time.Second) / ClampSpeed(speed))
}

// ClampSpeed bounds speed to [MinSpeed, MaxSpeed]
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) {
		return DefaultSpeed
	}
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
