package fusion

import (
	"math"
	"testing"

	"github.com/abhisek/adaptiq/internal/mastery"
)

func TestFuse_SingleSignalPassthrough(t *testing.T) {
	s := Signal{Type: mastery.SignalQuiz, PKnown: 0.42, Confidence: 0.65, RecencyDays: 3, SampleSize: 5}
	got := Fuse([]Signal{s})
	if got.PKnown != 0.42 {
		t.Errorf("PKnown = %v, want 0.42", got.PKnown)
	}
	if got.Dominant != mastery.SignalQuiz {
		t.Errorf("Dominant = %q, want quiz", got.Dominant)
	}
}

func TestFuse_IdenticalSignalsReproduceValue(t *testing.T) {
	s := Signal{Type: mastery.SignalQuiz, PKnown: 0.7, Confidence: 0.65, RecencyDays: 2, SampleSize: 10}
	got := Fuse([]Signal{s, s})
	if math.Abs(got.PKnown-0.7) > 1e-9 {
		t.Errorf("PKnown = %v, want 0.7", got.PKnown)
	}
}

func TestFuse_FreshEvaluationDominatesStaleQuiz(t *testing.T) {
	eval := Signal{Type: mastery.SignalEvaluation, PKnown: 0.9, Confidence: ConfidenceEvaluation, RecencyDays: 1, SampleSize: 5}
	quiz := Signal{Type: mastery.SignalQuiz, PKnown: 0.3, Confidence: ConfidenceQuiz, RecencyDays: 30, SampleSize: 5}

	got := Fuse([]Signal{eval, quiz})
	if got.PKnown <= 0.6 {
		t.Errorf("fused PKnown = %v, want > 0.6", got.PKnown)
	}
	if got.Dominant != mastery.SignalEvaluation {
		t.Errorf("Dominant = %q, want evaluation", got.Dominant)
	}
}

func TestFuse_ZeroWeightFallsBackToMean(t *testing.T) {
	a := Signal{Type: mastery.SignalQuiz, PKnown: 0.2, Confidence: 0, SampleSize: 0}
	b := Signal{Type: mastery.SignalQuiz, PKnown: 0.6, Confidence: 0, SampleSize: 0}

	got := Fuse([]Signal{a, b})
	if math.Abs(got.PKnown-0.4) > 1e-9 {
		t.Errorf("PKnown = %v, want plain average 0.4", got.PKnown)
	}
}

func TestFuse_Empty(t *testing.T) {
	got := Fuse(nil)
	if got.PKnown != 0 || got.Dominant != "" {
		t.Errorf("Fuse(nil) = %+v, want zero result", got)
	}
}

func TestRecencyDecay(t *testing.T) {
	if RecencyDecay(0) != 1 {
		t.Error("decay at day 0 should be 1")
	}
	if math.Abs(RecencyDecay(HalfLifeDays)-0.5) > 1e-9 {
		t.Errorf("decay at half-life = %v, want 0.5", RecencyDecay(HalfLifeDays))
	}
	if RecencyDecay(7) <= RecencyDecay(14) {
		t.Error("decay must be monotonically decreasing")
	}
}

func TestWeight_SampleSizeGrowsLogarithmically(t *testing.T) {
	base := Signal{Type: mastery.SignalQuiz, PKnown: 0.5, Confidence: 1}
	small := base
	small.SampleSize = 1
	large := base
	large.SampleSize = 100

	ws, wl := Weight(small), Weight(large)
	if wl <= ws {
		t.Error("more samples must weigh more")
	}
	if wl > ws*10 {
		t.Errorf("sample weight should grow sub-linearly: %v vs %v", ws, wl)
	}
}
