// Package model defines shared data structures.
package model

import "time"

// Mode selects how a typing test terminates.
type Mode int

const (
	// ModeWords ends a test once the configured number of words is typed.
	ModeWords Mode = iota
	// ModeTime ends a test once the time limit has elapsed.
	ModeTime
)

// String returns the lowercase mode name used in config files and flags.
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseMode maps a config/flag value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "words":
		return ModeWords, true
	case "time":
		return ModeTime, true
	default:
		return ModeWords, false
	}
}

// Settings defines user-configurable test parameters.
type Settings struct {
	Mode           Mode
	WordCount      int
	TimeLimit      int // seconds
	Language       string
	LinesToDisplay int
}

// TimeLimitDuration returns the time limit as a duration.
func (s Settings) TimeLimitDuration() time.Duration {
	return time.Duration(s.TimeLimit) * time.Second
}

// TextOptions controls decoration of generated text.
type TextOptions struct {
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// SessionResult captures a finished typing session.
type SessionResult struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Duration   time.Duration
	Mode       Mode
	TypedChars int
	Errors     int
	Words      int
	WPM        float64
	Accuracy   float64 // percent, 0-100
	Missed     map[rune]int
}

// LifetimeSummary is a read-only snapshot of aggregate statistics.
type LifetimeSummary struct {
	TotalTests       int
	TotalWordsTyped  int
	TotalTimeSeconds int64
	BestWPM          float64
	AverageWPM       float64
	AverageAccuracy  float64
}
