package bkt

// Grade-banded parameter sets. Younger learners guess and slip more,
// so their bands tolerate noisier observations.
var (
	earlyParams  = Params{PInit: 0.25, PTransit: 0.12, PSlip: 0.22, PGuess: 0.30}
	middleParams = Params{PInit: 0.30, PTransit: 0.10, PSlip: 0.18, PGuess: 0.25}
	upperParams  = Params{PInit: 0.35, PTransit: 0.08, PSlip: 0.12, PGuess: 0.20}
)

// ParamsForGrade returns the BKT parameter set for a school grade.
// Grade 0 is kindergarten.
func ParamsForGrade(grade int) Params {
	switch {
	case grade <= 2:
		return earlyParams
	case grade <= 5:
		return middleParams
	default:
		return upperParams
	}
}
