package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/session"
	"github.com/gideonmt/remytype/internal/settings"
	"github.com/gideonmt/remytype/internal/stats"
)

type fixedText struct {
	text  string
	calls []int
}

func (f *fixedText) Generate(_ string, count int) string {
	f.calls = append(f.calls, count)
	return f.text
}

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestModel(t *testing.T, mode model.Mode, text string) (*Model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	initial := settings.Defaults()
	initial.Mode = mode
	initial.WordCount = settings.MinWordCount
	initial.TimeLimit = settings.MinTimeLimit
	st := settings.New(initial, []string{"english_200", "english_1k"})
	lifetime := stats.NewLifetime()
	engine := session.New(lifetime, session.WithClock(clock.Now))
	return NewModel(&fixedText{text: text}, st, lifetime, engine, Options{}), clock
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenuNavigationClamps(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab")

	press(m, tea.KeyUp)
	require.Equal(t, menuStart, m.menuItem)

	for i := 0; i < 10; i++ {
		press(m, tea.KeyDown)
	}
	require.Equal(t, menuQuit, m.menuItem)
	require.True(t, isQuit(press(m, tea.KeyEnter)))
}

func TestMenuOpensScreens(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab")

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, screenStats, m.screen)
	require.Contains(t, m.View(), "No tests completed yet.")
	press(m, tea.KeyEsc)
	require.Equal(t, screenMenu, m.screen)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, screenSettings, m.screen)
	press(m, tea.KeyEnter)
	require.Equal(t, screenMenu, m.screen)
}

func TestStartTestUsesSettings(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab cd")
	text := m.text.(*fixedText)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, screenTest, m.screen)
	require.Equal(t, session.StateRunning, m.engine.State())
	require.Equal(t, []int{settings.MinWordCount}, text.calls)
	require.Equal(t, []rune("ab cd"), m.engine.Target())
	require.Contains(t, m.View(), "Press any key to start...")
}

func TestTypingToEndShowsResults(t *testing.T) {
	m, clock := newTestModel(t, model.ModeWords, "ab cd")
	press(m, tea.KeyEnter)

	typeText(m, "ab")
	clock.Advance(6 * time.Second)
	typeText(m, " cx")

	require.Equal(t, screenResults, m.screen)
	res, ok := m.engine.Result()
	require.True(t, ok)
	require.Equal(t, 1, res.Errors)
	require.Equal(t, 2, res.Words)
	require.Equal(t, 1, res.Missed['d'])
	require.EqualValues(t, 1, m.lifetime.Summary().TotalTests)

	view := m.View()
	require.Contains(t, view, "Test Complete!")
	require.Contains(t, view, "Most missed")

	press(m, tea.KeyEnter)
	require.Equal(t, screenMenu, m.screen)
	require.Equal(t, session.StateIdle, m.engine.State())
}

func TestBackspaceInTest(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab cd")
	press(m, tea.KeyEnter)

	typeText(m, "ax")
	press(m, tea.KeyBackspace)
	require.Equal(t, 1, m.engine.Cursor())
	require.Equal(t, 1, m.engine.Errors())
}

func TestEscAbandonsTest(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab cd")
	press(m, tea.KeyEnter)
	typeText(m, "ab")

	press(m, tea.KeyEsc)
	require.Equal(t, screenMenu, m.screen)
	require.Equal(t, session.StateIdle, m.engine.State())
	require.EqualValues(t, 0, m.lifetime.Summary().TotalTests)
}

func TestQuitOnlyFromMenu(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "qq qq")
	press(m, tea.KeyEnter)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.False(t, isQuit(cmd))
	require.Equal(t, 1, m.engine.Cursor())

	press(m, tea.KeyEsc)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.True(t, isQuit(cmd))
}

func TestInterruptQuitsAnywhere(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab")
	press(m, tea.KeyEnter)
	require.True(t, isQuit(press(m, tea.KeyCtrlC)))
}

func TestSettingsScreenModifiesStore(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab")
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, screenSettings, m.screen)

	press(m, tea.KeyRight)
	require.Equal(t, model.ModeTime, m.settings.Settings().Mode)

	press(m, tea.KeyDown)
	press(m, tea.KeyRight)
	require.Equal(t, settings.MinWordCount+settings.WordCountStep, m.settings.Settings().WordCount)
	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)
	require.Equal(t, settings.MinWordCount, m.settings.Settings().WordCount)

	require.Contains(t, m.View(), "→ Word Count")
}

func TestStaleTickIgnored(t *testing.T) {
	m, _ := newTestModel(t, model.ModeTime, "ab cd")
	press(m, tea.KeyEnter)
	require.Equal(t, 1, m.tickID)

	_, cmd := m.Update(tickMsg{id: 0})
	require.Nil(t, cmd)

	_, cmd = m.Update(tickMsg{id: m.tickID})
	require.NotNil(t, cmd)
}

func TestTickFinishesExpiredTimeSession(t *testing.T) {
	m, clock := newTestModel(t, model.ModeTime, "ab cd")
	press(m, tea.KeyEnter)
	typeText(m, "a")

	clock.Advance(time.Duration(settings.MinTimeLimit) * time.Second)
	_, cmd := m.Update(tickMsg{id: m.tickID})
	require.Nil(t, cmd)
	require.Equal(t, screenResults, m.screen)

	res, ok := m.engine.Result()
	require.True(t, ok)
	require.Equal(t, model.ModeTime, res.Mode)
	require.Equal(t, time.Duration(settings.MinTimeLimit)*time.Second, res.Duration)
}

func TestWindowSizeUpdatesLayout(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Equal(t, 70, m.contentWidth())
	require.Contains(t, m.View(), "Start Test")
}
