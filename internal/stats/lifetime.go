package stats

import (
	"math"

	"github.com/gideonmt/remytype/internal/model"
)

// Lifetime is the running summary of every finished session in this process.
// Samples are folded in once and never revised.
type Lifetime struct {
	totalTests       int
	totalWordsTyped  int
	totalTimeSeconds int64
	bestWPM          float64
	averageWPM       float64
	averageAccuracy  float64
}

// NewLifetime returns an empty aggregate.
func NewLifetime() *Lifetime {
	return &Lifetime{}
}

// Record folds one finished session into the aggregate.
func (l *Lifetime) Record(r model.SessionResult) {
	l.totalTests++
	l.totalWordsTyped += r.Words
	l.totalTimeSeconds += int64(math.Floor(r.Duration.Seconds()))
	if r.WPM > l.bestWPM {
		l.bestWPM = r.WPM
	}
	n := float64(l.totalTests)
	l.averageWPM = (l.averageWPM*(n-1) + r.WPM) / n
	l.averageAccuracy = (l.averageAccuracy*(n-1) + r.Accuracy) / n
}

// Summary returns a snapshot of the aggregate.
func (l *Lifetime) Summary() model.LifetimeSummary {
	return model.LifetimeSummary{
		TotalTests:       l.totalTests,
		TotalWordsTyped:  l.totalWordsTyped,
		TotalTimeSeconds: l.totalTimeSeconds,
		BestWPM:          l.bestWPM,
		AverageWPM:       l.averageWPM,
		AverageAccuracy:  l.averageAccuracy,
	}
}
