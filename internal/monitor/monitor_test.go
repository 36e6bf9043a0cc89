package monitor

import "testing"

func TestFatigue_RapidWrongAnswersAfterBaseline(t *testing.T) {
	f := NewFatigueState()

	// Baseline: five 10s answers, no detection possible.
	for i := 0; i < 5; i++ {
		if f.Observe(10000, true) {
			t.Fatal("detection must not fire during baseline")
		}
	}
	if f.AverageAnswerTime != 10000 {
		t.Fatalf("baseline = %v, want 10000", f.AverageAnswerTime)
	}

	// Three rapid wrong answers: recent-3 avg 4s < 5s and accuracy 0.
	fired := false
	for i := 0; i < 3; i++ {
		fired = f.Observe(4000, false)
	}
	if !fired {
		t.Error("expected fatigue to fire on the third rapid wrong answer")
	}
	if !f.FatigueDetected {
		t.Error("FatigueDetected should latch")
	}
}

func TestFatigue_FastButAccurateNotFlagged(t *testing.T) {
	f := NewFatigueState()
	for i := 0; i < 5; i++ {
		f.Observe(10000, true)
	}
	for i := 0; i < 3; i++ {
		if f.Observe(4000, true) {
			t.Fatal("fast correct answers must not be flagged as fatigue")
		}
	}
	if f.FatigueDetected {
		t.Error("FatigueDetected should stay false for accurate rushing")
	}
}

func TestFatigue_SlowWrongAnswersNotFlagged(t *testing.T) {
	f := NewFatigueState()
	for i := 0; i < 5; i++ {
		f.Observe(10000, true)
	}
	// Wrong but unhurried: accuracy collapses but speed does not.
	for i := 0; i < 3; i++ {
		if f.Observe(11000, false) {
			t.Fatal("slow wrong answers alone must not fire fatigue")
		}
	}
}

func TestFrustration_ThreeConsecutiveWrongBlocksTopic(t *testing.T) {
	fr := NewFrustrationState()

	fr.Observe("fractions", false)
	fr.Observe("fractions", false)
	if fr.IsBlocked("fractions") {
		t.Fatal("two wrong answers must not block")
	}
	fr.Observe("fractions", false)
	if !fr.IsBlocked("fractions") {
		t.Fatal("third consecutive wrong answer should block the topic")
	}
}

func TestFrustration_CorrectAnswerResetsCounter(t *testing.T) {
	fr := NewFrustrationState()

	fr.Observe("fractions", false)
	fr.Observe("fractions", false)
	fr.Observe("fractions", true)
	if fr.ConsecutiveErrors["fractions"] != 0 {
		t.Errorf("counter = %d, want 0 after a correct answer", fr.ConsecutiveErrors["fractions"])
	}
	fr.Observe("fractions", false)
	fr.Observe("fractions", false)
	if fr.IsBlocked("fractions") {
		t.Error("topic should not be blocked after a reset")
	}
}

func TestFrustration_AllTopicsBlockedEndsSession(t *testing.T) {
	fr := NewFrustrationState()

	for i := 0; i < 3; i++ {
		fr.Observe("fractions", false)
	}
	ended := false
	for i := 0; i < 3; i++ {
		ended = fr.Observe("decimals", false)
	}
	if !ended {
		t.Error("session should end once every seen topic is blocked")
	}
}

func TestFrustration_CooldownResets(t *testing.T) {
	fr := NewFrustrationState()

	for i := 0; i < 3; i++ {
		fr.Observe("fractions", false)
	}
	if !fr.IsBlocked("fractions") {
		t.Fatal("setup: fractions should be blocked")
	}

	// Alternate on a healthy topic until the cooldown expires.
	for i := 0; i < CooldownQuestions; i++ {
		fr.Observe("decimals", true)
	}
	if fr.IsBlocked("fractions") {
		t.Error("cooldown should have cleared the blocked set")
	}
	if fr.QuestionsSinceBlock != 0 {
		t.Errorf("QuestionsSinceBlock = %d, want 0 after reset", fr.QuestionsSinceBlock)
	}
}

func TestMonitor_Verdicts(t *testing.T) {
	m := New()

	for i := 0; i < 5; i++ {
		if v := m.ObserveAnswer("fractions", 10000, true); v != Continue {
			t.Fatalf("verdict = %v during baseline, want Continue", v)
		}
	}
	m.ObserveAnswer("fractions", 4000, false)
	m.ObserveAnswer("fractions", 4000, false)
	if v := m.ObserveAnswer("fractions", 4000, false); v != EndFatigued {
		t.Errorf("verdict = %v, want EndFatigued", v)
	}
}

func TestMonitor_AllowDifficult(t *testing.T) {
	m := New()
	if !m.AllowDifficult() {
		t.Error("fresh monitor should allow difficult questions")
	}
	for i := 0; i < 3; i++ {
		m.ObserveAnswer("fractions", 9000, false)
	}
	if m.AllowDifficult() {
		t.Error("an active block should suppress difficulty")
	}
}
