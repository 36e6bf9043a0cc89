// Package compose turns a learner profile into an ordered topic plan
// for the external question generator: classification into
// weak/learning/mastered bands, a stratified difficulty mix under
// target ratios, and review-mode biasing after long practice gaps.
package compose

import (
	"sort"

	"github.com/abhisek/adaptiq/internal/mastery"
)

// Classification buckets candidate topics by mastery band. It is
// transient, recomputed for every quiz setup.
type Classification struct {
	Weak     []string
	Learning []string
	Mastered []string
}

// Classify buckets the candidate topics using the profile's posterior,
// with the neutral default for topics never observed. Buckets are
// sorted for deterministic downstream sampling.
func Classify(p *mastery.Profile, topicIDs []string) Classification {
	var c Classification
	for _, topic := range topicIDs {
		switch mastery.BandFor(p.PKnownOf(topic)) {
		case mastery.BandWeak:
			c.Weak = append(c.Weak, topic)
		case mastery.BandMastered:
			c.Mastered = append(c.Mastered, topic)
		default:
			c.Learning = append(c.Learning, topic)
		}
	}
	sort.Strings(c.Weak)
	sort.Strings(c.Learning)
	sort.Strings(c.Mastered)
	return c
}
