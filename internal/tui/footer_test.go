package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/session"
)

func TestRenderProgressBeforeFirstKey(t *testing.T) {
	m, _ := newTestModel(t, model.ModeWords, "ab cd")
	m.startTest()

	if out := m.renderProgress(); out != "Press any key to start..." {
		t.Fatalf("expected start prompt, got %q", out)
	}
	if out := m.renderLiveStats(); out != "" {
		t.Fatalf("expected no live stats before typing, got %q", out)
	}
}

func TestRenderProgressFormats(t *testing.T) {
	m, clock := newTestModel(t, model.ModeWords, "ab cd")
	m.startTest()
	m.engine.Type('a')
	clock.Advance(3 * time.Second)
	m.engine.Type('x')

	out := m.renderProgress()
	if !containsAll(out, []string{"Time: 3s", "Progress: 2/5"}) {
		t.Fatalf("progress missing expected segments: %s", out)
	}
	if strings.Contains(out, "Left:") {
		t.Fatalf("words mode should not show remaining time: %s", out)
	}

	stats := m.renderLiveStats()
	if !containsAll(stats, []string{"WPM", "Accuracy 50.0%", "Errors 1"}) {
		t.Fatalf("live stats missing expected segments: %s", stats)
	}
}

func TestRenderProgressTimeMode(t *testing.T) {
	m, clock := newTestModel(t, model.ModeTime, "ab cd")
	m.startTest()
	m.engine.Type('a')
	clock.Advance(5 * time.Second)

	out := m.renderProgress()
	if !containsAll(out, []string{"Time: 5s", "Left: 10s"}) {
		t.Fatalf("progress missing expected segments: %s", out)
	}
	if m.engine.State() != session.StateRunning {
		t.Fatalf("expected session still running")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
