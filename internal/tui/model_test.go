package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/names72/internal/catalog"
	"github.com/ytget/names72/internal/model"
	"github.com/ytget/names72/internal/narration"
)

type fakePlayer struct {
	mu       sync.Mutex
	state    model.PlayerState
	update   func(model.PlayerState)
	complete func(string)
	calls    []string
}

func (f *fakePlayer) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakePlayer) SetUpdateCallback(cb func(model.PlayerState)) { f.update = cb }
func (f *fakePlayer) SetCompletionCallback(cb func(string))        { f.complete = cb }
func (f *fakePlayer) Snapshot() model.PlayerState                  { return f.state }
func (f *fakePlayer) Start()                                       { f.record("Start") }
func (f *fakePlayer) Restart()                                     { f.record("Restart") }
func (f *fakePlayer) Pause()                                       { f.record("Pause") }
func (f *fakePlayer) Resume()                                      { f.record("Resume") }
func (f *fakePlayer) StopContinuousNavigation()                    { f.record("StopContinuous") }
func (f *fakePlayer) SetLoop(bool)                                 { f.record("SetLoop") }
func (f *fakePlayer) ToggleLoop()                                  { f.record("ToggleLoop") }
func (f *fakePlayer) EnterBackground()                             { f.record("EnterBackground") }
func (f *fakePlayer) EnterForeground()                             { f.record("EnterForeground") }
func (f *fakePlayer) Close()                                       { f.record("Close") }

func (f *fakePlayer) TapPrimary() {
	f.record("TapPrimary")
	if f.state.State == model.PlaybackPlaying {
		f.state.State = model.PlaybackPaused
	} else {
		f.state.State = model.PlaybackPlaying
	}
}

func (f *fakePlayer) NavigateLeft() {
	f.record("NavigateLeft")
	f.state.Position = model.StepPosition(f.state.Position, model.DirectionLeft)
}

func (f *fakePlayer) NavigateRight() {
	f.record("NavigateRight")
	f.state.Position = model.StepPosition(f.state.Position, model.DirectionRight)
}

func (f *fakePlayer) StartContinuousNavigation(dir model.Direction) {
	f.record("StartContinuous:" + dir.String())
}

func (f *fakePlayer) SetSpeed(speed float64) {
	f.record(fmt.Sprintf("SetSpeed:%.2f", speed))
	f.state.Speed = model.ClampSpeed(speed)
}

type fakeNarrator struct {
	playing bool
	played  []int
	playErr error
	onDone  func(error)
}

func (n *fakeNarrator) Play(_ context.Context, position int, onDone func(error)) {
	n.played = append(n.played, position)
	if n.playErr != nil {
		onDone(n.playErr)
		return
	}
	n.playing = true
	n.onDone = onDone
}

func (n *fakeNarrator) Stop() {
	if !n.playing {
		return
	}
	n.playing = false
	n.onDone(narration.ErrStopped)
}

func (n *fakeNarrator) IsPlaying() bool  { return n.playing }
func (n *fakeNarrator) Verify() []string { return nil }
func (n *fakeNarrator) Close() error     { return nil }

func newTestModel(t *testing.T) (*Model, *fakePlayer, *fakeNarrator) {
	t.Helper()
	csv := "Number,Hebrew,Transliteration,Astrology,Angel,Keyword,Meaning,Application,Question,Practice,Reference,Scripture\n" +
		"1,abc,Vehu,Leo,Vehuiah,Time travel,Healing the past,Apply,Ask?,Breathe,Psalm 3:4,But thou O Lord\n"
	c, err := catalog.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	p := &fakePlayer{state: model.PlayerState{State: model.PlaybackPaused, Speed: model.DefaultSpeed, Cycle: 1}}
	n := &fakeNarrator{}
	m := NewModel(Options{Player: p, Catalog: c, Narrator: n})
	return m, p, n
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeys_DispatchToPlayer(t *testing.T) {
	m, p, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(keyRunes("l"))
	m.Update(keyRunes("r"))
	m.Update(keyRunes("o"))

	assert.Equal(t, []string{"TapPrimary", "NavigateLeft", "NavigateRight", "Restart", "ToggleLoop"}, p.calls)
}

func TestKeys_SpeedSteps(t *testing.T) {
	m, p, _ := newTestModel(t)

	m.Update(keyRunes("+"))
	m.Update(keyRunes("+"))
	m.Update(keyRunes("-"))

	assert.Equal(t, []string{"SetSpeed:1.25", "SetSpeed:1.50", "SetSpeed:1.25"}, p.calls)
	assert.Contains(t, m.View(), "1.25x")
}

func TestKeys_Quit(t *testing.T) {
	m, _, n := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, n.playing)

	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, n.playing)
	assert.Empty(t, m.View())
}

func TestView_ShowsNameAndMeaningWhenPaused(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, model.VisualOrder(model.ScriptForm(0)))
	assert.Contains(t, view, "1 / 72")
	assert.Contains(t, view, "Healing the past")
	assert.Contains(t, view, "Paused")
}

func TestView_HidesMeaningWhilePlaying(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	assert.Contains(t, view, "Playing")
	assert.NotContains(t, view, "Healing the past")
}

func TestView_Details(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(keyRunes("d"))
	view := m.View()
	assert.Contains(t, view, "1. Vehu")
	assert.Contains(t, view, "Psalm 3:4")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "No description is available")
}

func TestPlayerUpdates_ArriveThroughEvents(t *testing.T) {
	m, p, _ := newTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	p.state.Position = 9
	p.update(p.state)

	msg := cmd()
	_, next := m.Update(msg)
	assert.NotNil(t, next, "the event listener is re-armed")
	assert.Contains(t, m.View(), "10 / 72")
}

func TestPlayerCompletion_ShowsNotice(t *testing.T) {
	m, p, _ := newTestModel(t)

	p.complete("session")
	m.Update(m.waitForEvent())

	assert.Contains(t, m.View(), "All 72 Names scanned")
}

func TestNarration_ToggleAndStopOnNavigation(t *testing.T) {
	m, p, n := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{0}, n.played)
	assert.Contains(t, m.View(), "listening")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, n.playing)
	assert.Equal(t, 1, p.state.Position)

	m.Update(m.waitForEvent())
	assert.NotContains(t, m.View(), "listening")
}

func TestNarration_MissingClip(t *testing.T) {
	m, _, n := newTestModel(t)
	n.playErr = narration.ErrClipNotFound

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(m.waitForEvent())

	assert.Contains(t, m.View(), "No recording is available")
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	short := m.View()

	m.Update(keyRunes("?"))

	assert.Contains(t, m.View(), "faster")
	assert.NotContains(t, short, "faster")
}

func TestWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, 40, m.width)
	assert.Equal(t, 40, m.help.Width)
}
