// Package mastery defines the per-child learner profile aggregate and
// the per-topic mastery records it owns. Records are mutated only
// through this package so the bookkeeping invariants
// (attempts = correct + incorrect, pKnown in [0,1], bounded window)
// hold everywhere.
package mastery

import (
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
)

// SignalType identifies the source of the most recent mastery evidence.
type SignalType string

const (
	SignalQuiz       SignalType = "quiz"
	SignalEvaluation SignalType = "evaluation"
)

// Trend summarizes the recent direction of a topic's performance window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

const (
	// WindowSize bounds the performance window (FIFO of outcomes).
	WindowSize = 10

	// trendMinSamples is the minimum window length before a trend other
	// than stable can be reported.
	trendMinSamples = 4

	// trendMargin is how far the recent half must diverge from the
	// earlier half before the trend leaves stable.
	trendMargin = 0.15
)

// TopicMastery holds all mastery-related state for one (child, topic).
type TopicMastery struct {
	Topic             string     `json:"topic"`
	SubjectID         string     `json:"subjectId"`
	PKnown            float64    `json:"pKnown"`
	Attempts          int        `json:"attempts"`
	CorrectCount      int        `json:"correctCount"`
	IncorrectCount    int        `json:"incorrectCount"`
	AverageTimeMs     float64    `json:"averageTimeMs"`
	RecentTrend       Trend      `json:"recentTrend"`
	PerformanceWindow []bool     `json:"performanceWindow"`
	FirstAttempt      time.Time  `json:"firstAttempt"`
	LastAttempt       time.Time  `json:"lastAttempt"`
	LastSignalType    SignalType `json:"lastSignalType"`
	NextProbeDate     *time.Time `json:"nextProbeDate,omitempty"`
	ProbeIntervalDays int        `json:"probeIntervalDays,omitempty"`
}

// NewTopicMastery creates a record for a topic's first observation,
// seeded at the grade's BKT prior.
func NewTopicMastery(topic, subjectID string, params bkt.Params) *TopicMastery {
	return &TopicMastery{
		Topic:       topic,
		SubjectID:   subjectID,
		PKnown:      params.PInit,
		RecentTrend: TrendStable,
	}
}

// Accuracy returns the lifetime accuracy ratio for this topic.
func (tm *TopicMastery) Accuracy() float64 {
	if tm.Attempts == 0 {
		return 0
	}
	return float64(tm.CorrectCount) / float64(tm.Attempts)
}

// RecordOutcome applies one binary observation: BKT posterior update,
// attempt counters, rolling performance window, running answer-time
// average and trend recomputation.
func (tm *TopicMastery) RecordOutcome(correct bool, timeMs int, params bkt.Params, now time.Time) {
	tm.PKnown = bkt.Update(tm.PKnown, correct, params)

	tm.Attempts++
	if correct {
		tm.CorrectCount++
	} else {
		tm.IncorrectCount++
	}

	if timeMs > 0 {
		tm.AverageTimeMs += (float64(timeMs) - tm.AverageTimeMs) / float64(tm.Attempts)
	}

	tm.PerformanceWindow = append(tm.PerformanceWindow, correct)
	if len(tm.PerformanceWindow) > WindowSize {
		tm.PerformanceWindow = tm.PerformanceWindow[len(tm.PerformanceWindow)-WindowSize:]
	}

	if tm.FirstAttempt.IsZero() {
		tm.FirstAttempt = now
	}
	tm.LastAttempt = now
	tm.LastSignalType = SignalQuiz
	tm.RecentTrend = windowTrend(tm.PerformanceWindow)
}

// windowTrend compares the recent half of the window against the
// earlier half. The trend leaves stable only when the halves diverge
// by more than trendMargin.
func windowTrend(window []bool) Trend {
	if len(window) < trendMinSamples {
		return TrendStable
	}

	mid := len(window) / 2
	earlier := accuracyOf(window[:mid])
	recent := accuracyOf(window[mid:])

	switch {
	case recent-earlier > trendMargin:
		return TrendImproving
	case earlier-recent > trendMargin:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func accuracyOf(outcomes []bool) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range outcomes {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes))
}
