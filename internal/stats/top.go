package stats

import (
	"sort"
)

// MissedKey is a character and how often it was mistyped.
type MissedKey struct {
	Char  rune
	Count int
}

// TopMissed returns the n most frequently missed characters, most missed
// first, ties broken by character.
func TopMissed(missed map[rune]int, n int) []MissedKey {
	if n <= 0 || len(missed) == 0 {
		return nil
	}
	items := make([]MissedKey, 0, len(missed))
	for ch, count := range missed {
		if count <= 0 {
			continue
		}
		items = append(items, MissedKey{Char: ch, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// KeyLabel renders a character for display.
func KeyLabel(r rune) string {
	if r == ' ' {
		return "<space>"
	}
	return string(r)
}
