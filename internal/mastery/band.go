package mastery

// Band buckets a topic by its mastery posterior.
type Band string

const (
	BandWeak     Band = "weak"
	BandLearning Band = "learning"
	BandMastered Band = "mastered"
)

const (
	// WeakThreshold is the exclusive upper bound of the weak band.
	WeakThreshold = 0.5

	// MasteredThreshold is the inclusive lower bound of the mastered band.
	MasteredThreshold = 0.8

	// DefaultPKnown is the neutral posterior assumed for topics with no
	// mastery record yet.
	DefaultPKnown = 0.5
)

// BandFor returns the classification band for a posterior.
func BandFor(pKnown float64) Band {
	switch {
	case pKnown < WeakThreshold:
		return BandWeak
	case pKnown >= MasteredThreshold:
		return BandMastered
	default:
		return BandLearning
	}
}
