package player

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/ytget/names72/internal/clock"
	"github.com/ytget/names72/internal/model"
)

// Timing constants
const (
	// TapDebounceInterval is the minimum gap between accepted manual steps
	TapDebounceInterval = 150 * time.Millisecond

	// ContinuousNavigationInterval is the repeat cadence while an arrow is held
	ContinuousNavigationInterval = 150 * time.Millisecond

	// EndDwell is how long the final name stays on screen before auto-pause
	EndDwell = 1 * time.Second
)

// Options configures a new Player
type Options struct {
	Clock clock.Clock
	Speed float64
	Loop  bool
}

// Player is the sequence state machine. It is safe for concurrent use; every
// transition is serialized by an internal mutex.
type Player struct {
	mu    sync.Mutex
	clock clock.Clock

	position           int
	state              model.PlaybackState
	speed              float64
	loop               bool
	navigatingManually bool
	completed          bool
	cycle              int
	sessionID          string

	holding  [2]bool
	lastTap  time.Time
	advance  *task
	navigate [2]*task

	wasActive bool
	closed    bool

	onUpdate     func(model.PlayerState)
	onCompletion func(sessionID string)

	// pending notifications, delivered outside the lock by flush
	delivering         bool
	pendingUpdate      bool
	pendingCompletions []string

	completedCounter metric.Int64Counter
}

// NewService creates a paused player positioned on the first name
func NewService(opts Options) *Player {
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}

	speed := opts.Speed
	if speed == 0 {
		speed = model.DefaultSpeed
	}

	counter, err := meter.Int64Counter(
		"names72.sequence.completed",
		metric.WithDescription("Number of times the final name was reached"),
	)
	if err != nil {
		logger.Warn("failed to create completion counter", "error", err)
	}

	return &Player{
		clock:            clk,
		position:         model.FirstPosition,
		state:            model.PlaybackPaused,
		speed:            model.ClampSpeed(speed),
		loop:             opts.Loop,
		completedCounter: counter,
	}
}

// SetUpdateCallback sets the callback invoked with a fresh snapshot after
// every state change. Callbacks run outside the player lock.
func (p *Player) SetUpdateCallback(callback func(model.PlayerState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// SetCompletionCallback sets the callback invoked when the final name is
// reached by automatic advance
func (p *Player) SetCompletionCallback(callback func(sessionID string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onCompletion = callback
}

// Snapshot returns a copy of the current state
func (p *Player) Snapshot() model.PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Start begins automatic playback from the first name
func (p *Player) Start() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.restartLocked()
}

// Restart is an alias of Start
func (p *Player) Restart() {
	p.Start()
}

// Pause holds the sequence on the current name. Calling it while paused has
// no effect beyond cancelling any pending advance.
func (p *Player) Pause() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.pauseLocked()
}

// Resume continues automatic playback from the current name. On the final
// name it only forces the paused state.
func (p *Player) Resume() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.resumeLocked()
}

// TapPrimary toggles playback: paused on the final name restarts, paused
// elsewhere resumes, playing pauses.
func (p *Player) TapPrimary() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	if p.state.IsActive() {
		p.pauseLocked()
		return
	}
	if p.position >= model.LastPosition {
		p.restartLocked()
		return
	}
	p.resumeLocked()
}

// NavigateLeft steps one name back, wrapping from the first to the last
func (p *Player) NavigateLeft() {
	p.step(model.DirectionLeft)
}

// NavigateRight steps one name forward, wrapping from the last to the first
func (p *Player) NavigateRight() {
	p.step(model.DirectionRight)
}

func (p *Player) step(dir model.Direction) {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.stepLocked(dir)
}

// StartContinuousNavigation repeats single steps in dir every
// ContinuousNavigationInterval until StopContinuousNavigation is called.
// Automatic playback is paused first so the two never run together.
func (p *Player) StartContinuousNavigation(dir model.Direction) {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || !validDirection(dir) {
		return
	}

	if p.state.IsActive() {
		p.pauseLocked()
	}
	p.holding[dir] = true
	p.scheduleNavigationLocked(dir)
	logger.Debug("continuous navigation started", "direction", dir.String())
}

// StopContinuousNavigation cancels pending repeats in both directions and
// resets the debounce clock so an immediate tap is accepted
func (p *Player) StopContinuousNavigation() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.stopNavigationLocked()
}

// SetSpeed changes the playback speed. While playing, the pending advance is
// rescheduled at the new interval immediately.
func (p *Player) SetSpeed(speed float64) {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speed = model.ClampSpeed(speed)
	if speed == p.speed {
		return
	}
	p.speed = speed
	p.pendingUpdate = true

	// the final dwell or loop-restart delay keeps its own timing
	if p.state.IsActive() && p.position < model.LastPosition {
		p.scheduleAdvanceLocked()
	}
}

// SetLoop enables or disables restarting after the final name
func (p *Player) SetLoop(enabled bool) {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.loop == enabled {
		return
	}
	p.loop = enabled
	p.pendingUpdate = true
}

// ToggleLoop flips the loop setting
func (p *Player) ToggleLoop() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.loop = !p.loop
	p.pendingUpdate = true
}

// EnterBackground pauses playback and remembers whether it was running
func (p *Player) EnterBackground() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.wasActive = p.state.IsActive()
	if p.wasActive {
		p.pauseLocked()
	}
}

// EnterForeground resumes playback if it was running when the app left the
// foreground
func (p *Player) EnterForeground() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	if p.wasActive {
		p.wasActive = false
		p.resumeLocked()
	}
}

// Close cancels every pending schedule and stops the player for good
func (p *Player) Close() {
	defer p.flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.advance.cancel()
	p.advance = nil
	p.stopNavigationLocked()
	p.state = model.PlaybackStopped
	p.closed = true
	p.pendingUpdate = true
}

// restartLocked moves to the first name and starts automatic playback
func (p *Player) restartLocked() {
	p.stopNavigationLocked()

	p.position = model.FirstPosition
	p.state = model.PlaybackPlaying
	p.navigatingManually = false
	p.cycle++
	p.sessionID = newSessionID()
	p.pendingUpdate = true

	logger.Info("sequence started", "session", p.sessionID, "speed", p.speed, "loop", p.loop)
	p.scheduleAdvanceLocked()
}

func (p *Player) pauseLocked() {
	p.advance.cancel()
	p.advance = nil
	p.state = model.PlaybackPaused
	p.navigatingManually = false
	p.pendingUpdate = true
}

func (p *Player) resumeLocked() {
	if p.position >= model.LastPosition {
		logger.Debug("resume ignored on final name")
		p.advance.cancel()
		p.advance = nil
		if p.state != model.PlaybackPaused {
			p.state = model.PlaybackPaused
			p.pendingUpdate = true
		}
		return
	}

	p.stopNavigationLocked()
	p.state = model.PlaybackPlaying
	p.navigatingManually = false
	p.pendingUpdate = true
	p.scheduleAdvanceLocked()
}

// scheduleAdvanceLocked replaces the automatic-advance slot with a fresh
// schedule at the current interval
func (p *Player) scheduleAdvanceLocked() {
	p.advance.cancel()
	interval := model.IntervalFor(p.speed)

	var slot *task
	slot = p.schedule(interval, func() {
		if p.advance != slot || !p.state.IsActive() {
			return
		}
		p.advanceLocked()
		// keep ticking unless advanceLocked replaced the slot or stopped playback
		if p.advance == slot && p.state.IsActive() {
			p.scheduleAdvanceLocked()
		}
	})
	p.advance = slot
}

// advanceLocked moves one name forward without wrapping. Reaching the final
// name marks the sequence completed and either schedules the loop restart
// or the dwell before pausing.
func (p *Player) advanceLocked() {
	if p.position >= model.LastPosition {
		logger.Debug("advance ignored on final name", "position", p.position)
		return
	}

	p.position++
	p.pendingUpdate = true
	if p.position < model.LastPosition {
		return
	}

	p.completed = true
	p.pendingCompletions = append(p.pendingCompletions, p.sessionID)
	if p.completedCounter != nil {
		p.completedCounter.Add(context.Background(), 1)
	}
	logger.Info("sequence completed", "session", p.sessionID, "loop", p.loop)

	p.advance.cancel()
	if p.loop {
		var slot *task
		slot = p.schedule(model.IntervalFor(p.speed), func() {
			if p.advance != slot || !p.state.IsActive() {
				return
			}
			p.restartLocked()
		})
		p.advance = slot
		return
	}

	var slot *task
	slot = p.schedule(EndDwell, func() {
		if p.advance != slot || !p.state.IsActive() {
			return
		}
		p.advance = nil
		p.state = model.PlaybackPaused
		p.pendingUpdate = true
		logger.Debug("auto-paused on final name", "session", p.sessionID)
	})
	p.advance = slot
}

// stepLocked applies one debounced manual step
func (p *Player) stepLocked(dir model.Direction) bool {
	now := p.clock.Now()
	if now.Sub(p.lastTap) < TapDebounceInterval {
		return false
	}
	p.lastTap = now

	p.position = model.StepPosition(p.position, dir)
	p.navigatingManually = true
	p.pendingUpdate = true
	return true
}

func (p *Player) scheduleNavigationLocked(dir model.Direction) {
	if !p.holding[dir] {
		return
	}
	p.navigate[dir].cancel()

	var slot *task
	slot = p.schedule(ContinuousNavigationInterval, func() {
		if p.navigate[dir] != slot || !p.holding[dir] {
			return
		}
		p.stepLocked(dir)
		p.scheduleNavigationLocked(dir)
	})
	p.navigate[dir] = slot
}

func (p *Player) stopNavigationLocked() {
	for i := range p.navigate {
		p.navigate[i].cancel()
		p.navigate[i] = nil
		p.holding[i] = false
	}
	p.lastTap = time.Time{}
}

func (p *Player) snapshotLocked() model.PlayerState {
	return model.PlayerState{
		Position:           p.position,
		State:              p.state,
		Speed:              p.speed,
		LoopEnabled:        p.loop,
		NavigatingManually: p.navigatingManually,
		Completed:          p.completed,
		Cycle:              p.cycle,
		SessionID:          p.sessionID,
	}
}

// flush delivers pending notifications outside the lock. A flush that finds
// another delivery in progress leaves its work to that loop.
func (p *Player) flush() {
	p.mu.Lock()
	if p.delivering {
		p.mu.Unlock()
		return
	}
	p.delivering = true

	for p.pendingUpdate || len(p.pendingCompletions) > 0 {
		update := p.pendingUpdate
		completions := p.pendingCompletions
		p.pendingUpdate = false
		p.pendingCompletions = nil

		snapshot := p.snapshotLocked()
		onUpdate := p.onUpdate
		onCompletion := p.onCompletion
		p.mu.Unlock()

		if update && onUpdate != nil {
			onUpdate(snapshot)
		}
		if onCompletion != nil {
			for _, id := range completions {
				onCompletion(id)
			}
		}

		p.mu.Lock()
	}

	p.delivering = false
	p.mu.Unlock()
}

func validDirection(dir model.Direction) bool {
	return dir == model.DirectionLeft || dir == model.DirectionRight
}

// newSessionID generates an identifier for one run of the sequence
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
