package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/session"
	"github.com/gideonmt/remytype/internal/settings"
	"github.com/gideonmt/remytype/internal/stats"
)

const (
	appTitle       = "RemyType"
	fallbackWidth  = 80
	missedKeysShow = 5
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	headingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	cardStyle     = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.renderMenu()
	case screenTest:
		body = m.renderTest()
	case screenResults:
		body = m.renderResults()
	case screenStats:
		body = m.renderStats()
	case screenSettings:
		body = m.renderSettings()
	}
	header := titleStyle.Render(appTitle)
	footer := footerStyle.Render(m.help.View(m.keys.forScreen(m.screen)))
	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, header, "", body, "", footer)
	}
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.Place(m.width, lipgloss.Height(header), lipgloss.Center, lipgloss.Top, header),
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body),
		lipgloss.Place(m.width, lipgloss.Height(footer), lipgloss.Center, lipgloss.Bottom, footer),
	)
}

func (m *Model) renderMenu() string {
	lines := []string{headingStyle.Render("Welcome to RemyType!"), ""}
	for i := menuItem(0); i < menuCount; i++ {
		if i == m.menuItem {
			lines = append(lines, selectedStyle.Render("→ "+i.label()))
			continue
		}
		lines = append(lines, labelStyle.Render("  "+i.label()))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return fallbackWidth
	}
	w := m.width * 7 / 10
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderTest() string {
	target := m.engine.Target()
	input := m.engine.Input()
	cursorIndex := -1
	if len(input) < len(target) {
		cursorIndex = len(input)
	}

	width := m.contentWidth()
	lines := wrapLines(buildStyledRunes(target, input, cursorIndex), width)
	start, end := visibleWindow(len(lines), lineForIndex(lines, cursorIndex), m.settings.Settings().LinesToDisplay)
	text := lipgloss.NewStyle().Width(width).Render(renderLines(lines[start:end]))

	return lipgloss.JoinVertical(lipgloss.Center,
		footerStyle.Render(m.renderProgress()),
		"",
		text,
		"",
		m.renderLiveStats(),
	)
}

func (m *Model) renderProgress() string {
	if _, ok := m.engine.StartedAt(); !ok {
		return "Press any key to start..."
	}
	segments := []string{
		fmt.Sprintf("Time: %ds", int(m.engine.Elapsed().Seconds())),
		fmt.Sprintf("Progress: %d/%d", m.engine.Cursor(), len(m.engine.Target())),
	}
	if m.engine.Rules().Mode == model.ModeTime {
		segments = append(segments, fmt.Sprintf("Left: %ds", int(m.engine.Remaining().Seconds()+0.999)))
	}
	return strings.Join(segments, " | ")
}

func (m *Model) renderLiveStats() string {
	if m.engine.State() != session.StateRunning || m.engine.Cursor() == 0 {
		return ""
	}
	line := fmt.Sprintf("WPM %.1f · Accuracy %.1f%% · Errors %d",
		m.engine.LiveWPM(), m.engine.LiveAccuracy(), m.engine.Errors())
	return footerStyle.Render(line)
}

func (m *Model) renderResults() string {
	res, ok := m.engine.Result()
	if !ok {
		return ""
	}
	rows := []string{
		headingStyle.Render("Test Complete!"),
		"",
		labelStyle.Render("WPM: ") + valueStyle.Render(fmt.Sprintf("%.1f", res.WPM)),
		labelStyle.Render("Accuracy: ") + valueStyle.Render(fmt.Sprintf("%.1f%%", res.Accuracy)),
		labelStyle.Render("Errors: ") + errorsStyle.Render(fmt.Sprintf("%d", res.Errors)),
		labelStyle.Render("Words: ") + valueStyle.Render(fmt.Sprintf("%d", res.Words)),
		labelStyle.Render("Time: ") + valueStyle.Render(fmt.Sprintf("%.1fs", res.Duration.Seconds())),
	}
	if missed := stats.TopMissed(res.Missed, missedKeysShow); len(missed) > 0 {
		keys := make([]string, len(missed))
		for i, mk := range missed {
			keys[i] = fmt.Sprintf("%s×%d", stats.KeyLabel(mk.Char), mk.Count)
		}
		rows = append(rows, labelStyle.Render("Most missed: ")+errorsStyle.Render(strings.Join(keys, " ")))
	}
	return cardStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderStats() string {
	summary := m.lifetime.Summary()
	rows := []string{headingStyle.Render("Your Statistics"), ""}
	if summary.TotalTests == 0 {
		rows = append(rows, labelStyle.Render("No tests completed yet."))
	} else {
		for _, line := range stats.SummaryLines(summary) {
			rows = append(rows, valueStyle.Render(line))
		}
	}
	return cardStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderSettings() string {
	cfg := m.settings.Settings()
	rows := []string{headingStyle.Render("Settings"), ""}
	for _, f := range settings.Fields() {
		line := f.Label() + ": " + settingValue(cfg, f)
		if f == m.settings.Selected() {
			rows = append(rows, selectedStyle.Render("→ "+line))
			continue
		}
		rows = append(rows, labelStyle.Render("  "+line))
	}
	return cardStyle.Render(strings.Join(rows, "\n"))
}

func settingValue(cfg model.Settings, f settings.Field) string {
	switch f {
	case settings.FieldMode:
		if cfg.Mode == model.ModeWords {
			return fmt.Sprintf("Words (%d)", cfg.WordCount)
		}
		return fmt.Sprintf("Time (%ds)", cfg.TimeLimit)
	case settings.FieldWordCount:
		return fmt.Sprintf("%d words", cfg.WordCount)
	case settings.FieldTimeLimit:
		return fmt.Sprintf("%d seconds", cfg.TimeLimit)
	case settings.FieldLanguage:
		return cfg.Language
	case settings.FieldLinesToDisplay:
		return fmt.Sprintf("%d lines", cfg.LinesToDisplay)
	default:
		return ""
	}
}
