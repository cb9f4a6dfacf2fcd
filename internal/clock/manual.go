package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock that moves only on Advance. Due callbacks run in
// deadline order, ties in scheduling order, on the advancing goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *Manual
	at      time.Time
	seq     int
	fn      func()
	done    bool
	stopped bool
}

// NewManual creates a manual clock reading start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Clock
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc implements Clock
func (c *Manual) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d, firing every timer that falls due,
// including ones scheduled by callbacks along the way
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		c.now = next.at
		next.done = true
		c.mu.Unlock()
		next.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Pending returns the number of timers that are still armed
func (c *Manual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.done && !t.stopped {
			n++
		}
	}
	return n
}

func (c *Manual) nextDueLocked(target time.Time) *manualTimer {
	armed := make([]*manualTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.done && !t.stopped {
			armed = append(armed, t)
		}
	}
	c.timers = armed
	if len(armed) == 0 {
		return nil
	}

	sort.Slice(armed, func(i, j int) bool {
		if armed[i].at.Equal(armed[j].at) {
			return armed[i].seq < armed[j].seq
		}
		return armed[i].at.Before(armed[j].at)
	})
	if armed[0].at.After(target) {
		return nil
	}
	return armed[0]
}
