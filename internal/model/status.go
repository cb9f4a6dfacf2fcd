package model

// PlaybackState represents the status of the sequence player
type PlaybackState string

const (
	// PlaybackStopped means the player was closed and accepts no more commands
	PlaybackStopped PlaybackState = "Stopped"

	// PlaybackPlaying means the sequence advances automatically
	PlaybackPlaying PlaybackState = "Playing"

	// PlaybackPaused means the sequence is held on the current position
	PlaybackPaused PlaybackState = "Paused"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if the sequence is advancing on its own
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackPlaying
}

// IsFinished returns true if the player can no longer change state
func (ps PlaybackState) IsFinished() bool {
	return ps == PlaybackStopped
}

// Direction is the direction of a manual navigation step
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns a short label for the direction
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}
