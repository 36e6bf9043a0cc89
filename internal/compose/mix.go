package compose

import (
	"math"
	"math/rand"
)

const (
	// ReviewRatio is the target share of review (mastered) questions.
	ReviewRatio = 0.2

	// TargetRatio is the target share of learning-band questions.
	TargetRatio = 0.5

	// WeakRatio is the normal share of weak-band questions.
	WeakRatio = 0.3

	// SuppressedWeakRatio replaces WeakRatio when frustration signals
	// call for easing off difficult material.
	SuppressedWeakRatio = 0.1
)

// Mix is the per-quiz topic allocation. Transient, rebuilt per quiz.
type Mix struct {
	ReviewTopics  []string
	TargetTopics  []string
	WeakTopics    []string
	QuestionCount int
}

// MixDifficulty samples a topic mix for a quiz of the given size.
// Band quotas follow the 20/50/30 target ratios (weak share drops to
// 10% when allowDifficult is false), with the rounding remainder
// reconciled into the target band. Sampling is uniform without
// replacement within each band; a short band simply yields fewer
// questions — the shortfall is never filled from another band.
func MixDifficulty(c Classification, total int, allowDifficult bool, rng *rand.Rand) Mix {
	if total <= 0 {
		return Mix{}
	}

	weakRatio := WeakRatio
	if !allowDifficult {
		weakRatio = SuppressedWeakRatio
	}

	reviewCount := int(math.Round(float64(total) * ReviewRatio))
	weakCount := int(math.Round(float64(total) * weakRatio))
	targetCount := total - reviewCount - weakCount
	if targetCount < 0 {
		targetCount = 0
	}

	m := Mix{
		ReviewTopics: sample(c.Mastered, reviewCount, rng),
		TargetTopics: sample(c.Learning, targetCount, rng),
		WeakTopics:   sample(c.Weak, weakCount, rng),
	}
	m.QuestionCount = len(m.ReviewTopics) + len(m.TargetTopics) + len(m.WeakTopics)
	return m
}

// OrderTopics flattens the mix easy-to-hard: review first as warm-up,
// then target, then weak.
func OrderTopics(m Mix) []string {
	ordered := make([]string, 0, m.QuestionCount)
	ordered = append(ordered, m.ReviewTopics...)
	ordered = append(ordered, m.TargetTopics...)
	ordered = append(ordered, m.WeakTopics...)
	return ordered
}

// sample draws up to n topics uniformly without replacement using a
// partial Fisher–Yates shuffle of a copy of the pool.
func sample(pool []string, n int, rng *rand.Rand) []string {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	drawn := make([]string, len(pool))
	copy(drawn, pool)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(drawn)-i)
		drawn[i], drawn[j] = drawn[j], drawn[i]
	}
	return drawn[:n]
}
