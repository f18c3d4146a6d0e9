// Package session implements the typing test state machine: it scores each
// keystroke against the target text, applies the Words/Time termination rules,
// and reports the finished result to a Recorder.
package session

import (
	"time"

	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/stats"
)

// State is the lifecycle stage of the engine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rules are fixed for the lifetime of one session.
type Rules struct {
	Mode       model.Mode
	WordTarget int
	TimeLimit  time.Duration
	// ArmOnStart starts the timer in Start instead of on the first keystroke.
	ArmOnStart bool
}

// RulesFor derives session rules from settings.
func RulesFor(s model.Settings, armOnStart bool) Rules {
	return Rules{
		Mode:       s.Mode,
		WordTarget: s.WordCount,
		TimeLimit:  s.TimeLimitDuration(),
		ArmOnStart: armOnStart,
	}
}

// Recorder receives each finished session exactly once.
type Recorder interface {
	Record(model.SessionResult)
}

// Engine owns one typing attempt at a time.
type Engine struct {
	now      func() time.Time
	recorder Recorder

	state  State
	rules  Rules
	target []rune
	input  []rune
	errors int
	missed map[rune]int

	startedAt *time.Time
	endedAt   *time.Time

	result    model.SessionResult
	hasResult bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an idle engine reporting finished sessions to rec. A nil
// recorder discards results.
func New(rec Recorder, opts ...Option) *Engine {
	e := &Engine{
		now:      time.Now,
		recorder: rec,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a new session over target, discarding any previous one.
func (e *Engine) Start(target string, rules Rules) {
	e.state = StateRunning
	e.rules = rules
	e.target = []rune(target)
	e.input = make([]rune, 0, len(e.target))
	e.errors = 0
	e.missed = map[rune]int{}
	e.startedAt = nil
	e.endedAt = nil
	if rules.ArmOnStart {
		e.arm(e.now())
	}
}

// Type feeds one character. It is a no-op unless the session is running.
func (e *Engine) Type(r rune) {
	if e.state != StateRunning {
		return
	}
	if len(e.input) >= len(e.target) {
		return
	}
	now := e.now()
	e.arm(now)

	if e.timeUp(now) {
		e.finish(now)
		return
	}

	pos := len(e.input)
	expected := e.target[pos]
	e.input = append(e.input, r)
	if r != expected {
		e.errors++
		e.missed[expected]++
	}

	if e.rules.Mode == model.ModeWords && stats.CountWords(e.input) >= e.rules.WordTarget {
		e.finish(now)
		return
	}
	if len(e.input) == len(e.target) {
		e.finish(now)
	}
}

// TypeRunes feeds several characters in order, stopping once the session ends.
func (e *Engine) TypeRunes(runes []rune) {
	for _, r := range runes {
		if e.state != StateRunning {
			return
		}
		e.Type(r)
	}
}

// Backspace removes the last typed character. Errors already counted stay.
func (e *Engine) Backspace() {
	if e.state != StateRunning || len(e.input) == 0 {
		return
	}
	e.input = e.input[:len(e.input)-1]
}

// Tick finishes a Time session whose limit has passed without further input.
// It reports whether the session finished.
func (e *Engine) Tick() bool {
	if e.state != StateRunning || e.startedAt == nil {
		return false
	}
	now := e.now()
	if !e.timeUp(now) {
		return false
	}
	e.finish(now)
	return true
}

// Reset abandons or closes the current session and returns to idle. The last
// result stays readable until the next session finishes.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.input = nil
	e.startedAt = nil
	e.endedAt = nil
}

func (e *Engine) arm(now time.Time) {
	if e.startedAt != nil {
		return
	}
	t := now
	e.startedAt = &t
}

func (e *Engine) timeUp(now time.Time) bool {
	if e.rules.Mode != model.ModeTime || e.startedAt == nil {
		return false
	}
	return now.Sub(*e.startedAt) >= e.rules.TimeLimit
}

func (e *Engine) finish(now time.Time) {
	if e.startedAt == nil {
		return
	}
	end := now
	e.endedAt = &end
	duration := end.Sub(*e.startedAt)
	words := stats.CountWords(e.input)

	missed := make(map[rune]int, len(e.missed))
	for ch, n := range e.missed {
		missed[ch] = n
	}
	e.result = model.SessionResult{
		StartedAt:  *e.startedAt,
		EndedAt:    end,
		Duration:   duration,
		Mode:       e.rules.Mode,
		TypedChars: len(e.input),
		Errors:     e.errors,
		Words:      words,
		WPM:        stats.WPM(words, duration),
		Accuracy:   stats.Accuracy(len(e.input), e.errors),
		Missed:     missed,
	}
	e.hasResult = true
	if e.recorder != nil {
		e.recorder.Record(e.result)
	}
	e.state = StateFinished
}

// State returns the lifecycle stage.
func (e *Engine) State() State {
	return e.state
}

// Rules returns the rules of the current or last session.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Target returns the text to type.
func (e *Engine) Target() []rune {
	return append([]rune(nil), e.target...)
}

// Input returns the characters typed so far.
func (e *Engine) Input() []rune {
	return append([]rune(nil), e.input...)
}

// Cursor is the index of the next character to type.
func (e *Engine) Cursor() int {
	return len(e.input)
}

// Errors returns the number of mismatched keystrokes this session.
func (e *Engine) Errors() int {
	return e.errors
}

// StartedAt returns when the timer was armed.
func (e *Engine) StartedAt() (time.Time, bool) {
	if e.startedAt == nil {
		return time.Time{}, false
	}
	return *e.startedAt, true
}

// EndedAt returns when the session finished.
func (e *Engine) EndedAt() (time.Time, bool) {
	if e.endedAt == nil {
		return time.Time{}, false
	}
	return *e.endedAt, true
}

// Elapsed returns the time since the timer was armed, frozen once finished.
func (e *Engine) Elapsed() time.Duration {
	if e.startedAt == nil {
		return 0
	}
	if e.endedAt != nil {
		return e.endedAt.Sub(*e.startedAt)
	}
	return e.now().Sub(*e.startedAt)
}

// Remaining returns the time left in a Time session, never negative.
func (e *Engine) Remaining() time.Duration {
	if e.rules.Mode != model.ModeTime {
		return 0
	}
	left := e.rules.TimeLimit - e.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// LiveWPM is the running speed for display; it does not affect scoring.
func (e *Engine) LiveWPM() float64 {
	return stats.WPM(stats.CountWords(e.input), e.Elapsed())
}

// LiveAccuracy is the running accuracy for display.
func (e *Engine) LiveAccuracy() float64 {
	return stats.Accuracy(len(e.input), e.errors)
}

// Result returns the most recently finished session.
func (e *Engine) Result() (model.SessionResult, bool) {
	return e.result, e.hasResult
}
