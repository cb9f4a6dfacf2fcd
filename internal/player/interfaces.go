package player

import (
	"github.com/ytget/names72/internal/model"
)

// Sequencer defines the interface of the sequence player used by the
// presentation layer.
type Sequencer interface {
	SetUpdateCallback(func(model.PlayerState))
	SetCompletionCallback(func(sessionID string))
	Snapshot() model.PlayerState

	Start()
	Restart()
	Pause()
	Resume()
	TapPrimary()

	NavigateLeft()
	NavigateRight()
	StartContinuousNavigation(dir model.Direction)
	StopContinuousNavigation()

	SetSpeed(speed float64)
	SetLoop(enabled bool)
	ToggleLoop()

	// EnterBackground and EnterForeground follow the application lifecycle
	EnterBackground()
	EnterForeground()

	Close()
}
