// Package bkt implements the Bayesian Knowledge Tracing update used to
// estimate per-topic mastery from sequential right/wrong observations.
package bkt

// Params holds the fixed BKT model parameters for a learner.
type Params struct {
	// PInit is the prior probability a new topic is already known.
	PInit float64
	// PTransit is the probability of learning the topic on each attempt.
	PTransit float64
	// PSlip is the probability of answering wrong despite knowing the topic.
	PSlip float64
	// PGuess is the probability of answering right without knowing the topic.
	PGuess float64
}

// Update computes the BKT posterior after a single observation.
//
// Correct:   p' = p(1-slip) / (p(1-slip) + (1-p)guess)
// Incorrect: p' = p*slip / (p*slip + (1-p)(1-guess))
//
// The learning transition is then applied: pFinal = p' + (1-p')*transit.
// The result is always clamped to [0,1]. Degenerate parameter choices
// that zero a denominator return pKnown unchanged.
func Update(pKnown float64, correct bool, p Params) float64 {
	pKnown = Clamp01(pKnown)

	var evidence float64
	if correct {
		denom := pKnown*(1-p.PSlip) + (1-pKnown)*p.PGuess
		if denom == 0 {
			return pKnown
		}
		evidence = pKnown * (1 - p.PSlip) / denom
	} else {
		denom := pKnown*p.PSlip + (1-pKnown)*(1-p.PGuess)
		if denom == 0 {
			return pKnown
		}
		evidence = pKnown * p.PSlip / denom
	}

	return Clamp01(evidence + (1-evidence)*p.PTransit)
}

// Clamp01 clamps v to the closed interval [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
