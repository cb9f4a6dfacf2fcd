package review

import (
	"sync"
	"time"

	"github.com/ytget/names72/internal/clock"
)

// Trigger is a usage milestone that makes a review request appropriate
type Trigger int

const (
	TriggerFirstCompletion Trigger = iota
	TriggerAudioUsed
	TriggerDetailsViewed
	TriggerPrintUsed
	TriggerLongTermUse
)

var triggerNames = map[Trigger]string{
	TriggerFirstCompletion: "first_completion",
	TriggerAudioUsed:       "audio_used",
	TriggerDetailsViewed:   "details_viewed",
	TriggerPrintUsed:       "print_used",
	TriggerLongTermUse:     "long_term_use",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return "unknown"
}

// Policy defaults
const (
	DefaultPromptDelay   = 1 * time.Second
	DefaultCheckInterval = 30 * time.Second
	DefaultLongTermUse   = 3 * 24 * time.Hour
)

// Options configures a Policy. Zero durations fall back to the defaults.
type Options struct {
	Clock         clock.Clock
	FirstLaunch   time.Time
	PromptDelay   time.Duration
	CheckInterval time.Duration
	LongTermUse   time.Duration
}

// Policy asks for a review at most once, shortly after the first trigger
type Policy struct {
	mu            sync.Mutex
	clock         clock.Clock
	firstLaunch   time.Time
	promptDelay   time.Duration
	checkInterval time.Duration
	longTermUse   time.Duration

	reached   map[Trigger]bool
	requested bool
	pending   clock.Timer
	ticker    clock.Timer
	stopped   bool

	prompt func()
}

// NewPolicy creates a policy that calls prompt when a review should be
// requested
func NewPolicy(opts Options, prompt func()) *Policy {
	p := &Policy{
		clock:         opts.Clock,
		firstLaunch:   opts.FirstLaunch,
		promptDelay:   opts.PromptDelay,
		checkInterval: opts.CheckInterval,
		longTermUse:   opts.LongTermUse,
		reached:       make(map[Trigger]bool),
		prompt:        prompt,
	}
	if p.clock == nil {
		p.clock = clock.System()
	}
	if p.firstLaunch.IsZero() {
		p.firstLaunch = p.clock.Now()
	}
	if p.promptDelay <= 0 {
		p.promptDelay = DefaultPromptDelay
	}
	if p.checkInterval <= 0 {
		p.checkInterval = DefaultCheckInterval
	}
	if p.longTermUse <= 0 {
		p.longTermUse = DefaultLongTermUse
	}
	return p
}

// Record marks a milestone as reached and re-evaluates the policy
func (p *Policy) Record(t Trigger) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reached[t] {
		return
	}
	p.reached[t] = true
	p.checkLocked()
}

// Check re-evaluates the policy
func (p *Policy) Check() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checkLocked()
}

// Start re-evaluates the policy periodically until Stop
func (p *Policy) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil || p.stopped {
		return
	}
	p.scheduleTickLocked()
}

// Stop cancels the periodic check and any pending prompt
func (p *Policy) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}

// Requested reports whether the prompt has been shown
func (p *Policy) Requested() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requested
}

func (p *Policy) scheduleTickLocked() {
	p.ticker = p.clock.AfterFunc(p.checkInterval, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.stopped {
			return
		}
		p.checkLocked()
		p.scheduleTickLocked()
	})
}

func (p *Policy) checkLocked() {
	if p.requested || p.pending != nil || p.stopped {
		return
	}

	trigger, ok := p.firstTriggerLocked()
	if !ok {
		return
	}

	logger.Info("review trigger reached", "trigger", trigger.String())
	p.pending = p.clock.AfterFunc(p.promptDelay, p.fire)
}

// firstTriggerLocked returns the highest priority trigger reached so far
func (p *Policy) firstTriggerLocked() (Trigger, bool) {
	for _, t := range []Trigger{TriggerFirstCompletion, TriggerAudioUsed, TriggerDetailsViewed, TriggerPrintUsed} {
		if p.reached[t] {
			return t, true
		}
	}
	if p.clock.Now().Sub(p.firstLaunch) >= p.longTermUse {
		return TriggerLongTermUse, true
	}
	return 0, false
}

func (p *Policy) fire() {
	p.mu.Lock()
	p.pending = nil
	if p.requested || p.stopped {
		p.mu.Unlock()
		return
	}
	p.requested = true
	p.mu.Unlock()

	logger.Info("requesting review")
	if p.prompt != nil {
		p.prompt()
	}
}
