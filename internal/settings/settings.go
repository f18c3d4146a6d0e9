// Package settings holds the user-adjustable test parameters and the
// clamped/cyclic adjustments the settings screen applies to them.
package settings

import (
	"github.com/gideonmt/remytype/internal/model"
)

// Field identifies one adjustable setting, in display order.
type Field int

const (
	FieldMode Field = iota
	FieldWordCount
	FieldTimeLimit
	FieldLanguage
	FieldLinesToDisplay

	fieldCount
)

// Bounds of the numeric fields.
const (
	MinWordCount  = 10
	MaxWordCount  = 200
	WordCountStep = 10

	MinTimeLimit  = 15
	MaxTimeLimit  = 300
	TimeLimitStep = 15

	MinLines  = 1
	MaxLines  = 10
	LinesStep = 1
)

// Label returns the display name of the field.
func (f Field) Label() string {
	switch f {
	case FieldMode:
		return "Test Mode"
	case FieldWordCount:
		return "Word Count"
	case FieldTimeLimit:
		return "Time Limit"
	case FieldLanguage:
		return "Language"
	case FieldLinesToDisplay:
		return "Display Lines"
	default:
		return ""
	}
}

// Fields returns all fields in display order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// Defaults returns the initial settings of a fresh process.
func Defaults() model.Settings {
	return model.Settings{
		Mode:           model.ModeTime,
		WordCount:      50,
		TimeLimit:      30,
		Language:       "english_200",
		LinesToDisplay: 3,
	}
}

// Store owns the settings and the settings-screen cursor.
type Store struct {
	settings  model.Settings
	languages []string
	selected  Field
}

// New returns a store over the closed set of languages. Numeric values are
// clamped into range; an unknown language is replaced by the first one.
func New(initial model.Settings, languages []string) *Store {
	s := &Store{
		settings:  initial,
		languages: append([]string(nil), languages...),
	}
	s.settings.WordCount = clamp(s.settings.WordCount, MinWordCount, MaxWordCount)
	s.settings.TimeLimit = clamp(s.settings.TimeLimit, MinTimeLimit, MaxTimeLimit)
	s.settings.LinesToDisplay = clamp(s.settings.LinesToDisplay, MinLines, MaxLines)
	if s.settings.Mode != model.ModeWords && s.settings.Mode != model.ModeTime {
		s.settings.Mode = model.ModeTime
	}
	if len(s.languages) > 0 && s.languageIndex() < 0 {
		s.settings.Language = s.languages[0]
	}
	return s
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// Languages returns the closed set of selectable languages.
func (s *Store) Languages() []string {
	return append([]string(nil), s.languages...)
}

// Selected returns the field under the cursor.
func (s *Store) Selected() Field {
	return s.selected
}

// MoveUp moves the cursor up, stopping at the first field.
func (s *Store) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves the cursor down, stopping at the last field.
func (s *Store) MoveDown() {
	if s.selected < fieldCount-1 {
		s.selected++
	}
}

// ModifySelected adjusts the field under the cursor.
func (s *Store) ModifySelected(increase bool) {
	s.Modify(s.selected, increase)
}

// Modify adjusts one field. Mode and language cycle; numeric fields step and
// stop at their bounds. Unknown fields are ignored.
func (s *Store) Modify(field Field, increase bool) {
	switch field {
	case FieldMode:
		if s.settings.Mode == model.ModeWords {
			s.settings.Mode = model.ModeTime
		} else {
			s.settings.Mode = model.ModeWords
		}
	case FieldWordCount:
		s.settings.WordCount = step(s.settings.WordCount, WordCountStep, MinWordCount, MaxWordCount, increase)
	case FieldTimeLimit:
		s.settings.TimeLimit = step(s.settings.TimeLimit, TimeLimitStep, MinTimeLimit, MaxTimeLimit, increase)
	case FieldLanguage:
		s.cycleLanguage(increase)
	case FieldLinesToDisplay:
		s.settings.LinesToDisplay = step(s.settings.LinesToDisplay, LinesStep, MinLines, MaxLines, increase)
	}
}

func (s *Store) cycleLanguage(increase bool) {
	n := len(s.languages)
	if n == 0 {
		return
	}
	idx := s.languageIndex()
	if idx < 0 {
		idx = 0
	}
	if increase {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	s.settings.Language = s.languages[idx]
}

func (s *Store) languageIndex() int {
	for i, l := range s.languages {
		if l == s.settings.Language {
			return i
		}
	}
	return -1
}

func step(v, delta, lo, hi int, increase bool) int {
	if increase {
		if v >= hi {
			return v
		}
		return clamp(v+delta, lo, hi)
	}
	if v <= lo {
		return v
	}
	return clamp(v-delta, lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
