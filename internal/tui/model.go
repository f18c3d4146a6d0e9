package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gideonmt/remytype/internal/corpus"
	"github.com/gideonmt/remytype/internal/session"
	"github.com/gideonmt/remytype/internal/settings"
	"github.com/gideonmt/remytype/internal/stats"
)

const defaultTickInterval = 100 * time.Millisecond

type screen int

const (
	screenMenu screen = iota
	screenTest
	screenResults
	screenStats
	screenSettings
)

type menuItem int

const (
	menuStart menuItem = iota
	menuStats
	menuSettings
	menuQuit

	menuCount
)

func (i menuItem) label() string {
	switch i {
	case menuStart:
		return "Start Test"
	case menuStats:
		return "View Statistics"
	case menuSettings:
		return "Settings"
	case menuQuit:
		return "Quit"
	default:
		return ""
	}
}

// TextSource supplies target text for a new test.
type TextSource interface {
	Generate(lang string, count int) string
}

// Options tune the interface.
type Options struct {
	// ArmOnStart starts the test timer when the test opens rather than on
	// the first keystroke.
	ArmOnStart bool
	// TickInterval is how often a running test re-checks its time limit.
	TickInterval time.Duration
}

type tickMsg struct {
	id int
}

// Model implements the Bubble Tea typing UI. It routes each key to the
// engine or the settings store depending on the active screen.
type Model struct {
	text     TextSource
	settings *settings.Store
	lifetime *stats.Lifetime
	engine   *session.Engine
	opts     Options

	keys keyMap
	help help.Model

	screen   screen
	menuItem menuItem
	tickID   int

	width  int
	height int
}

// NewModel constructs the typing TUI over explicitly owned components.
func NewModel(text TextSource, st *settings.Store, lifetime *stats.Lifetime, engine *session.Engine, opts Options) *Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	return &Model{
		text:     text,
		settings: st,
		lifetime: lifetime,
		engine:   engine,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenTest:
			m.updateTest(msg)
		case screenResults:
			if key.Matches(msg, m.keys.Back) {
				m.engine.Reset()
				m.screen = screenMenu
			}
		case screenStats:
			if key.Matches(msg, m.keys.Back) {
				m.screen = screenMenu
			}
		case screenSettings:
			m.updateSettings(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuItem > 0 {
			m.menuItem--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuItem < menuCount-1 {
			m.menuItem++
		}
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		switch m.menuItem {
		case menuStart:
			return m.startTest()
		case menuStats:
			m.screen = screenStats
		case menuSettings:
			m.screen = screenSettings
		case menuQuit:
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) updateTest(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.engine.Reset()
		m.screen = screenMenu
		return
	case key.Matches(msg, m.keys.Delete):
		m.engine.Backspace()
	case msg.Type == tea.KeySpace:
		m.engine.Type(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.engine.TypeRunes(msg.Runes)
	}
	m.checkFinished()
}

func (m *Model) updateSettings(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settings.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.settings.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.settings.ModifySelected(false)
	case key.Matches(msg, m.keys.Right):
		m.settings.ModifySelected(true)
	case key.Matches(msg, m.keys.Back):
		m.screen = screenMenu
	}
}

func (m *Model) startTest() tea.Cmd {
	cfg := m.settings.Settings()
	text := m.text.Generate(cfg.Language, corpus.WordsFor(cfg))
	m.engine.Start(text, session.RulesFor(cfg, m.opts.ArmOnStart))
	m.screen = screenTest
	m.tickID++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.opts.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != m.tickID || m.screen != screenTest {
		return nil
	}
	m.engine.Tick()
	if m.checkFinished() {
		return nil
	}
	return m.tick()
}

func (m *Model) checkFinished() bool {
	if m.screen != screenTest || m.engine.State() != session.StateFinished {
		return false
	}
	m.screen = screenResults
	if res, ok := m.engine.Result(); ok {
		log.Printf("session finished: mode=%s words=%d wpm=%.1f accuracy=%.1f%% errors=%d duration=%s",
			res.Mode, res.Words, res.WPM, res.Accuracy, res.Errors, res.Duration.Round(time.Millisecond))
	}
	return true
}
