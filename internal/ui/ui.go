package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jaap/internal/quote"
	"github.com/five82/jaap/internal/state"
)

// Options configures the UI.
type Options struct {
	Session     *state.Session
	Quotes      *quote.Cache
	Log         *slog.Logger
	RefreshTick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	session     *state.Session
	quotes      *quote.Cache
	log         *slog.Logger
	keys        keyMap
	refreshTick time.Duration

	// Layout
	width  int
	height int
	ready  bool

	// Data
	snapshot state.Snapshot
	quote    quote.Snapshot

	// Tap feedback
	pulseSeq       int
	pulsing        bool
	cycleCompleted bool // last tap finished a mala

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	quotes := opts.Quotes
	if quotes == nil {
		quotes = &quote.Cache{}
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tick := opts.RefreshTick
	if tick <= 0 {
		tick = DefaultRefreshInterval
	}
	return Model{
		session:     opts.Session,
		quotes:      quotes,
		log:         log,
		keys:        DefaultKeyMap(),
		refreshTick: tick,
		snapshot:    opts.Session.Snapshot(),
		quote:       quotes.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.refreshTick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.quote = m.quotes.Snapshot()
		return m, tickCmd(m.refreshTick)

	case pulseEndMsg:
		if int(msg) == m.pulseSeq {
			m.pulsing = false
		}
		return m, nil

	case resetConfirmedMsg:
		m.session.Reset()
		m.snapshot = m.session.Snapshot()
		m.cycleCompleted = false
		m.log.Info("counter reset")
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(GetTheme(m.snapshot.Prefs.Theme), m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tap):
		return m.tap()

	case key.Matches(msg, m.keys.ToggleMode):
		m.session.ToggleMode()
		m.snapshot = m.session.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.session.CycleTheme()
		m.snapshot = m.session.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSound):
		m.session.ToggleSound()
		m.snapshot = m.session.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.modal = newResetModal(m.snapshot.Counter.TotalCount)
		return m, nil
	}

	return m, nil
}

func (m Model) tap() (tea.Model, tea.Cmd) {
	tap := m.session.Tap()
	m.snapshot = m.session.Snapshot()
	m.cycleCompleted = tap.CycleCompleted
	m.pulseSeq++
	m.pulsing = true
	return m, pulseCmd(m.pulseSeq)
}

// renderMain renders the full counter screen.
func (m Model) renderMain() string {
	theme := GetTheme(m.snapshot.Prefs.Theme)
	styles := theme.Styles()
	bg := NewBgStyle(theme.Background)

	width := min(m.width, ContentWidth)
	sections := []string{
		m.renderHeader(styles, bg, width),
		m.renderModeSwitch(styles, bg),
		m.renderTotal(styles, bg),
		m.renderBead(styles),
	}
	if card := m.renderCycleCard(styles, bg, width); card != "" {
		sections = append(sections, card)
	}
	if m.height == 0 || m.height >= CompactHeight {
		sections = append(sections, m.renderQuote(styles, width))
	}
	sections = append(sections, m.renderFooter(styles, bg))

	centered := make([]string, len(sections))
	for i, s := range sections {
		centered[i] = bg.Center(s, m.width)
	}
	return bg.Fill(strings.Join(centered, "\n"+bg.Center("", m.width)+"\n"), m.width, m.height)
}

// Messages

type tickMsg time.Time

type pulseEndMsg int

type resetConfirmedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func pulseCmd(seq int) tea.Cmd {
	return tea.Tick(PulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg(seq)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
