package player

import (
	"sync/atomic"
	"time"

	"github.com/ytget/names72/internal/clock"
)

// task is a cancellable scheduled callback. The token is captured by the
// callback at schedule time; cancel flips it and the callback checks it
// under the player lock before acting.
type task struct {
	timer clock.Timer
	live  *atomic.Bool
}

func (t *task) cancel() {
	if t == nil {
		return
	}
	t.live.Store(false)
	t.timer.Stop()
}

// schedule runs fn after d while holding the player lock, unless the task
// was cancelled first or the player was closed
func (p *Player) schedule(d time.Duration, fn func()) *task {
	live := &atomic.Bool{}
	live.Store(true)

	t := &task{live: live}
	t.timer = p.clock.AfterFunc(d, func() {
		p.mu.Lock()
		if !live.Load() || p.closed {
			p.mu.Unlock()
			return
		}
		fn()
		p.mu.Unlock()
		p.flush()
	})
	return t
}
