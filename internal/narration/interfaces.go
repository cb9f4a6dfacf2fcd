package narration

import (
	"context"
	"io"
)

// Narrator defines the interface for narration playback used by the
// presentation layer.
type Narrator interface {
	Play(ctx context.Context, position int, onDone func(error))
	Stop()
	IsPlaying() bool
	Verify() []string
	Close() error
}

// Sink renders decoded audio. Play replaces anything queued and calls done
// from another goroutine once the buffer has drained; Stop discards queued
// audio without calling done.
type Sink interface {
	Play(pcm PCM, done func()) error
	Stop()
	Close() error
}

// DecodeFunc turns an encoded clip into PCM
type DecodeFunc func(r io.Reader) (PCM, error)
