// Package stats contains statistics calculations and reporting.
package stats

import (
	"time"
	"unicode"
)

// WPM computes words per minute. A zero or negative duration yields 0.
func WPM(words int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	minutes := d.Seconds() / 60.0
	if minutes <= 0 {
		return 0
	}
	return float64(words) / minutes
}

// Accuracy returns the percentage of typed characters that were correct.
// No typed characters yields 0. Errors are sticky across backspaces and can
// exceed typed, so the result is clamped to [0, 100].
func Accuracy(typed, errors int) float64 {
	if typed <= 0 {
		return 0
	}
	acc := float64(typed-errors) / float64(typed) * 100
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// CountWords counts whitespace-delimited words.
func CountWords(runes []rune) int {
	count := 0
	inWord := false
	for _, r := range runes {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
