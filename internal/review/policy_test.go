package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/names72/internal/clock"
)

func newTestClock() *clock.Manual {
	return clock.NewManual(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
}

func newTestPolicy(c *clock.Manual) (*Policy, *int) {
	prompts := 0
	p := NewPolicy(Options{Clock: c}, func() { prompts++ })
	return p, &prompts
}

func TestTrigger_String(t *testing.T) {
	tests := []struct {
		trigger  Trigger
		expected string
	}{
		{TriggerFirstCompletion, "first_completion"},
		{TriggerAudioUsed, "audio_used"},
		{TriggerDetailsViewed, "details_viewed"},
		{TriggerPrintUsed, "print_used"},
		{TriggerLongTermUse, "long_term_use"},
		{Trigger(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.trigger.String())
	}
}

func TestPolicy_PromptsOneSecondAfterTrigger(t *testing.T) {
	for _, trigger := range []Trigger{TriggerFirstCompletion, TriggerAudioUsed, TriggerDetailsViewed, TriggerPrintUsed} {
		t.Run(trigger.String(), func(t *testing.T) {
			clock := newTestClock()
			p, prompts := newTestPolicy(clock)

			p.Record(trigger)
			clock.Advance(999 * time.Millisecond)
			assert.Equal(t, 0, *prompts)
			assert.False(t, p.Requested())

			clock.Advance(time.Millisecond)
			assert.Equal(t, 1, *prompts)
			assert.True(t, p.Requested())
		})
	}
}

func TestPolicy_AsksAtMostOnce(t *testing.T) {
	clock := newTestClock()
	p, prompts := newTestPolicy(clock)

	p.Record(TriggerAudioUsed)
	p.Record(TriggerDetailsViewed)
	p.Record(TriggerAudioUsed)
	clock.Advance(time.Second)

	p.Record(TriggerPrintUsed)
	p.Check()
	clock.Advance(time.Minute)

	assert.Equal(t, 1, *prompts)
}

func TestPolicy_NoTriggerNoPrompt(t *testing.T) {
	clock := newTestClock()
	p, prompts := newTestPolicy(clock)

	p.Check()
	clock.Advance(time.Hour)
	assert.Equal(t, 0, *prompts)
}

func TestPolicy_LongTermUseFromPeriodicCheck(t *testing.T) {
	clock := newTestClock()
	p, prompts := newTestPolicy(clock)
	p.Start()
	defer p.Stop()

	clock.Advance(DefaultLongTermUse - time.Minute)
	assert.Equal(t, 0, *prompts)

	// next 30s check after the three-day mark, then the 1s delay
	clock.Advance(time.Minute + DefaultCheckInterval + DefaultPromptDelay)
	assert.Equal(t, 1, *prompts)
}

func TestPolicy_FirstLaunchOption(t *testing.T) {
	clock := newTestClock()
	prompts := 0
	p := NewPolicy(Options{
		Clock:       clock,
		FirstLaunch: clock.Now().Add(-4 * 24 * time.Hour),
	}, func() { prompts++ })

	p.Check()
	clock.Advance(DefaultPromptDelay)
	assert.Equal(t, 1, prompts)
}

func TestPolicy_StopCancelsPendingPrompt(t *testing.T) {
	clock := newTestClock()
	p, prompts := newTestPolicy(clock)
	p.Start()

	p.Record(TriggerFirstCompletion)
	p.Stop()
	clock.Advance(time.Hour)

	assert.Equal(t, 0, *prompts)
	assert.False(t, p.Requested())

	p.Start()
	p.Record(TriggerPrintUsed)
	clock.Advance(time.Hour)
	assert.Equal(t, 0, *prompts, "a stopped policy stays stopped")
}

func TestPolicy_NilPrompt(t *testing.T) {
	clock := newTestClock()
	p := NewPolicy(Options{Clock: clock}, nil)

	p.Record(TriggerAudioUsed)
	clock.Advance(time.Second)
	assert.True(t, p.Requested())
}
