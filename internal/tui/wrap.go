// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const wrongSpaceMark = '•'

type styledRune struct {
	s       string
	width   int
	isSpace bool
	index   int
}

func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		typed := i < len(inputRunes)
		if typed {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = wrongSpaceMark
				style = incorrectStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if target != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
			style = currentWordStyle
		}
		if i == cursorIndex && !typed {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
			index:   i,
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

// wrapLines breaks runes into lines no wider than width, preferring to break
// at spaces. The space a line breaks on is dropped.
func wrapLines(runes []styledRune, width int) [][]styledRune {
	if width <= 0 {
		return [][]styledRune{runes}
	}
	var lines [][]styledRune
	line := make([]styledRune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				lines = append(lines, line[:lastSpaceIdx])
				line = append(make([]styledRune, 0, width), line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, line)
				line = make([]styledRune, 0, width)
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(lines, line)
}

// lineForIndex returns the line holding rune index idx, or the last line
// when idx is past the end (or negative, meaning the text is complete).
func lineForIndex(lines [][]styledRune, idx int) int {
	if idx < 0 {
		return len(lines) - 1
	}
	for i, line := range lines {
		if len(line) > 0 && line[len(line)-1].index >= idx {
			return i
		}
	}
	return len(lines) - 1
}

// visibleWindow picks n lines to show out of total so the cursor line is
// visible, keeping one line of context above it when there is room.
func visibleWindow(total, cursorLine, n int) (start, end int) {
	if n <= 0 || total <= n {
		return 0, total
	}
	context := 0
	if n > 2 {
		context = 1
	}
	start = cursorLine - context
	if start > total-n {
		start = total - n
	}
	if start < 0 {
		start = 0
	}
	return start, start + n
}

func renderLines(lines [][]styledRune) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, item := range line {
			b.WriteString(item.s)
		}
		rendered[i] = b.String()
	}
	return strings.Join(rendered, "\n")
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
