package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/names72/internal/catalog"
	"github.com/ytget/names72/internal/model"
	"github.com/ytget/names72/internal/narration"
	"github.com/ytget/names72/internal/player"
)

const (
	// SpeedStep is the speed change per key press
	SpeedStep = 0.25

	eventBuffer  = 64
	detailsWidth = 72
)

// refreshMsg tells the model to re-read the player snapshot
type refreshMsg struct{}

// completeMsg reports the end of a run without loop
type completeMsg string

// narrationDoneMsg reports the end of a narration clip
type narrationDoneMsg struct{ err error }

// Options holds the collaborators of the terminal model. Narrator may be nil.
type Options struct {
	Player   player.Sequencer
	Catalog  *catalog.Catalog
	Narrator narration.Narrator
}

type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	counter lipgloss.Style
	status  lipgloss.Style
	meaning lipgloss.Style
	heading lipgloss.Style
	notice  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
		counter: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		meaning: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

// Model is the Bubble Tea model of the terminal meditation screen. Player
// callbacks arrive on other goroutines and are fed to Update through an
// event channel.
type Model struct {
	player   player.Sequencer
	catalog  *catalog.Catalog
	narrator narration.Narrator

	keys   keyMap
	help   help.Model
	styles styles
	events chan tea.Msg

	state       model.PlayerState
	showDetails bool
	narrating   bool
	notice      string
	width       int
	quitting    bool
}

// NewModel creates the model and registers its player callbacks
func NewModel(opts Options) *Model {
	m := &Model{
		player:   opts.Player,
		catalog:  opts.Catalog,
		narrator: opts.Narrator,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
		events:   make(chan tea.Msg, eventBuffer),
	}
	m.state = m.player.Snapshot()
	m.player.SetUpdateCallback(func(model.PlayerState) { m.post(refreshMsg{}) })
	m.player.SetCompletionCallback(func(sessionID string) { m.post(completeMsg(sessionID)) })
	return m
}

// Run starts the terminal program and blocks until it exits or ctx ends
func Run(ctx context.Context, opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// post queues msg without blocking the caller; refreshes are coalesced
// by reading the latest snapshot, so a full buffer may drop them
func (m *Model) post(msg tea.Msg) {
	select {
	case m.events <- msg:
	default:
	}
}

func (m *Model) waitForEvent() tea.Msg {
	return <-m.events
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, m.waitForEvent

	case completeMsg:
		m.notice = "All 72 Names scanned"
		return m, m.waitForEvent

	case narrationDoneMsg:
		m.narrating = m.narrator != nil && m.narrator.IsPlaying()
		if errors.Is(msg.err, narration.ErrClipNotFound) || errors.Is(msg.err, narration.ErrNoOutput) {
			m.notice = "No recording is available for this Name"
		}
		return m, m.waitForEvent

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stopNarration()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tap):
		m.player.TapPrimary()
	case key.Matches(msg, m.keys.Left):
		m.player.NavigateLeft()
	case key.Matches(msg, m.keys.Right):
		m.player.NavigateRight()
	case key.Matches(msg, m.keys.Restart):
		m.player.Restart()
	case key.Matches(msg, m.keys.Loop):
		m.player.ToggleLoop()
	case key.Matches(msg, m.keys.Faster):
		m.player.SetSpeed(m.state.Speed + SpeedStep)
	case key.Matches(msg, m.keys.Slower):
		m.player.SetSpeed(m.state.Speed - SpeedStep)
	case key.Matches(msg, m.keys.Narration):
		m.toggleNarration()
	case key.Matches(msg, m.keys.Details):
		m.showDetails = !m.showDetails
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

// refresh reads the player snapshot; leaving a name silences its clip
func (m *Model) refresh() {
	next := m.player.Snapshot()
	if next.Position != m.state.Position {
		m.stopNarration()
	}
	m.state = next
}

func (m *Model) toggleNarration() {
	if m.narrator == nil {
		m.notice = "No recording is available for this Name"
		return
	}
	if m.narrator.IsPlaying() {
		m.stopNarration()
		return
	}
	m.narrating = true
	m.narrator.Play(context.Background(), m.state.Position, func(err error) {
		m.post(narrationDoneMsg{err: err})
	})
}

func (m *Model) stopNarration() {
	if m.narrator != nil && m.narrator.IsPlaying() {
		m.narrator.Stop()
	}
	m.narrating = false
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("72 Names of God"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.name.Render(model.VisualOrder(model.ScriptForm(m.state.Position))))
	b.WriteString("\n")
	b.WriteString(m.styles.counter.Render(model.CounterLabel(m.state.Position)))
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.statusLine()))
	b.WriteString("\n\n")

	if m.state.ShowControls() {
		b.WriteString(m.styles.meaning.Render(m.meaning()))
		b.WriteString("\n\n")
		if m.showDetails {
			b.WriteString(m.details())
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString(m.styles.notice.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) statusLine() string {
	parts := []string{m.state.State.String(), fmt.Sprintf("%.2fx", m.state.Speed)}
	if m.state.LoopEnabled {
		parts = append(parts, "loop")
	}
	if m.narrating {
		parts = append(parts, "listening")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) meaning() string {
	rec, ok := m.catalog.Lookup(m.state.Position)
	if !ok || rec.Meaning == "" {
		return "—"
	}
	return rec.Meaning
}

func (m *Model) details() string {
	rec, ok := m.catalog.Lookup(m.state.Position)
	if !ok {
		return "No description is available for this Name\n"
	}

	width := detailsWidth
	if m.width > 0 && m.width < width {
		width = m.width
	}
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(m.styles.heading.Render(fmt.Sprintf("%d. %s", rec.Number, rec.GetDisplayTitle())))
	b.WriteString("\n")
	for _, section := range rec.Sections() {
		b.WriteString(m.styles.heading.Render(section.Title))
		b.WriteString("\n")
		b.WriteString(body.Render(section.Content))
		b.WriteString("\n")
	}
	return b.String()
}
