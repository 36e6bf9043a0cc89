package bkt

import (
	"math"
	"testing"
)

func TestUpdate_RangeInvariant(t *testing.T) {
	params := ParamsForGrade(4)

	for _, start := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		for _, correct := range []bool{true, false} {
			got := Update(start, correct, params)
			if got < 0 || got > 1 {
				t.Errorf("Update(%v, %v) = %v, out of [0,1]", start, correct, got)
			}
		}
	}
}

func TestUpdate_CorrectSequenceConverges(t *testing.T) {
	params := ParamsForGrade(4)
	p := params.PInit

	for i := 0; i < 20; i++ {
		next := Update(p, true, params)
		if next <= p {
			t.Fatalf("attempt %d: expected monotonic increase, got %v -> %v", i, p, next)
		}
		p = next
	}
	if p < 0.95 {
		t.Errorf("after 20 correct answers p = %v, want near 1", p)
	}
}

func TestUpdate_IncorrectSequenceDecays(t *testing.T) {
	params := ParamsForGrade(4)
	p := 0.9

	for i := 0; i < 20; i++ {
		next := Update(p, false, params)
		p = next
	}
	// Transit keeps the floor above zero, but the posterior must settle low.
	if p > 0.5 {
		t.Errorf("after 20 wrong answers p = %v, want well below mastery", p)
	}
}

func TestUpdate_DegenerateDenominator(t *testing.T) {
	// slip=1 and guess=0 zero the correct-answer denominator at p=0.
	degenerate := Params{PInit: 0.3, PTransit: 0.1, PSlip: 1.0, PGuess: 0.0}
	if got := Update(0.0, true, degenerate); got != 0.0 {
		t.Errorf("expected pKnown unchanged on zero denominator, got %v", got)
	}
	// slip=0 and guess=1 zero the incorrect-answer denominator at p=0.
	degenerate = Params{PInit: 0.3, PTransit: 0.1, PSlip: 0.0, PGuess: 1.0}
	if got := Update(0.0, false, degenerate); got != 0.0 {
		t.Errorf("expected pKnown unchanged on zero denominator, got %v", got)
	}
}

func TestUpdate_WrongAnswerLowersPosterior(t *testing.T) {
	params := ParamsForGrade(4)
	before := 0.8
	after := Update(before, false, params)
	if after >= before {
		t.Errorf("wrong answer should lower posterior: %v -> %v", before, after)
	}
}

func TestParamsForGrade_Bands(t *testing.T) {
	tests := []struct {
		grade     int
		wantSlip  float64
		wantGuess float64
	}{
		{0, 0.22, 0.30},
		{2, 0.22, 0.30},
		{3, 0.18, 0.25},
		{5, 0.18, 0.25},
		{6, 0.12, 0.20},
		{8, 0.12, 0.20},
	}
	for _, tt := range tests {
		p := ParamsForGrade(tt.grade)
		if math.Abs(p.PSlip-tt.wantSlip) > 1e-9 || math.Abs(p.PGuess-tt.wantGuess) > 1e-9 {
			t.Errorf("grade %d: slip/guess = %v/%v, want %v/%v",
				tt.grade, p.PSlip, p.PGuess, tt.wantSlip, tt.wantGuess)
		}
	}
	// Younger bands must tolerate more noise.
	if ParamsForGrade(1).PSlip <= ParamsForGrade(7).PSlip {
		t.Error("early band should have higher slip than upper band")
	}
}
