package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// formatTable aligns rows into columns sized to their widest cell. Headers
// are optional; when present they are followed by a rule line.
func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+2)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
		total := len(columnGap) * (colCount - 1)
		for _, w := range widths {
			total += w
		}
		lines = append(lines, strings.Repeat("─", total))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString(columnGap)
		}
		if rightAlignCols[i] {
			b.WriteString(runewidth.FillLeft(cell, width))
		} else if i < len(widths)-1 {
			b.WriteString(runewidth.FillRight(cell, width))
		} else {
			b.WriteString(cell)
		}
	}
	return b.String()
}
