package stats

import (
	"fmt"
	"io"

	"github.com/gideonmt/remytype/internal/model"
)

// SummaryRows returns label/value pairs describing a lifetime summary.
func SummaryRows(s model.LifetimeSummary) [][]string {
	hours := s.TotalTimeSeconds / 3600
	minutes := (s.TotalTimeSeconds % 3600) / 60
	return [][]string{
		{"Total Tests", fmt.Sprintf("%d", s.TotalTests)},
		{"Average WPM", fmt.Sprintf("%.1f", s.AverageWPM)},
		{"Best WPM", fmt.Sprintf("%.1f", s.BestWPM)},
		{"Average Accuracy", fmt.Sprintf("%.1f%%", s.AverageAccuracy)},
		{"Total Words Typed", fmt.Sprintf("%d", s.TotalWordsTyped)},
		{"Total Time", fmt.Sprintf("%dh %dm", hours, minutes)},
	}
}

// SummaryLines formats the summary as an aligned two-column table.
func SummaryLines(s model.LifetimeSummary) []string {
	return formatTable(nil, SummaryRows(s), map[int]bool{1: true})
}

// RenderSummary prints the lifetime summary.
func RenderSummary(w io.Writer, s model.LifetimeSummary) error {
	if s.TotalTests == 0 {
		_, err := fmt.Fprintln(w, "No tests completed.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range SummaryLines(s) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
