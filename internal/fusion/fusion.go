// Package fusion combines independent mastery signals into a single
// posterior. Each signal is weighted by reporter confidence, an
// exponential recency decay, and the log of its sample size, so a
// fresh teacher evaluation can outweigh a stale quiz average without
// erasing it.
package fusion

import (
	"math"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
)

const (
	// HalfLifeDays halves a signal's recency weight every two weeks.
	HalfLifeDays = 14.0

	// ConfidenceEvaluation is the base confidence of teacher
	// evaluations. Teachers see reasoning, not just answers.
	ConfidenceEvaluation = 0.95

	// ConfidenceQuiz is the base confidence of quiz-derived signals.
	ConfidenceQuiz = 0.65
)

// Signal is one piece of mastery evidence. Signals are ephemeral
// fusion inputs and are never persisted.
type Signal struct {
	Type        mastery.SignalType
	PKnown      float64
	Confidence  float64 // [0,1]
	RecencyDays float64
	SampleSize  int
}

// Result is the fused posterior and the signal type that carried the
// most weight.
type Result struct {
	PKnown   float64
	Dominant mastery.SignalType
}

// RecencyDecay returns the multiplicative weight for evidence that is
// the given number of days old. Monotonically decreasing, 1.0 at zero.
func RecencyDecay(days float64) float64 {
	if days <= 0 {
		return 1
	}
	return math.Exp(-math.Ln2 * days / HalfLifeDays)
}

// Weight computes a signal's fusion weight:
// confidence × recency decay × ln(1 + samples).
func Weight(s Signal) float64 {
	samples := s.SampleSize
	if samples < 0 {
		samples = 0
	}
	return bkt.Clamp01(s.Confidence) * RecencyDecay(s.RecencyDays) * math.Log(1+float64(samples))
}

// Fuse combines signals into one posterior. A single signal passes
// through unchanged. When every weight degenerates to zero (zero
// confidence or zero samples across the board) the plain average of
// the inputs is used instead.
func Fuse(signals []Signal) Result {
	if len(signals) == 0 {
		return Result{}
	}
	if len(signals) == 1 {
		return Result{PKnown: bkt.Clamp01(signals[0].PKnown), Dominant: signals[0].Type}
	}

	var weightedSum, totalWeight float64
	var dominant mastery.SignalType
	maxWeight := -1.0

	for _, s := range signals {
		w := Weight(s)
		weightedSum += w * s.PKnown
		totalWeight += w
		if w > maxWeight {
			maxWeight = w
			dominant = s.Type
		}
	}

	if totalWeight == 0 {
		sum := 0.0
		for _, s := range signals {
			sum += s.PKnown
		}
		return Result{PKnown: bkt.Clamp01(sum / float64(len(signals))), Dominant: signals[0].Type}
	}

	return Result{PKnown: bkt.Clamp01(weightedSum / totalWeight), Dominant: dominant}
}
