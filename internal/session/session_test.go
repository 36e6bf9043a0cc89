package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/quizgen"
	"github.com/abhisek/adaptiq/internal/topics"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testProfile() *mastery.Profile {
	params := bkt.ParamsForGrade(4)
	p := mastery.NewProfile("child-1", "family-1")
	set := func(topic string, pKnown float64) {
		tm := p.Topic(topic, string(topics.SubjectMath), params)
		tm.PKnown = pKnown
		tm.Attempts = 5
		tm.LastAttempt = testNow.AddDate(0, 0, -2)
	}
	set("counting", 0.92)
	set("addition", 0.85)
	set("fractions", 0.30)
	set("decimals", 0.20)
	set("geometry", 0.41)
	return p
}

func countByDifficulty(plan Plan) map[quizgen.Difficulty]int {
	counts := make(map[quizgen.Difficulty]int)
	for _, s := range plan.Slots {
		if !s.Probe {
			counts[s.Difficulty]++
		}
	}
	return counts
}

func TestBuildPlanStratifiedMix(t *testing.T) {
	p := testProfile()
	rng := rand.New(rand.NewSource(1))

	plan := BuildPlan(p, topics.SubjectMath, 10, testNow.AddDate(0, 0, -3), true, testNow, rng)

	if len(plan.Slots) != 10 {
		t.Fatalf("slots = %d, want 10", len(plan.Slots))
	}
	counts := countByDifficulty(plan)
	if counts[quizgen.DifficultyReview] != 2 {
		t.Errorf("review slots = %d, want 2", counts[quizgen.DifficultyReview])
	}
	if counts[quizgen.DifficultyTarget] != 5 {
		t.Errorf("target slots = %d, want 5", counts[quizgen.DifficultyTarget])
	}
	if counts[quizgen.DifficultyWeak] != 3 {
		t.Errorf("weak slots = %d, want 3", counts[quizgen.DifficultyWeak])
	}
	if plan.ReviewMode {
		t.Error("review mode set after a 3-day gap")
	}

	// Warm-up ordering: every review slot precedes every weak slot.
	lastReview, firstWeak := -1, len(plan.Slots)
	for i, s := range plan.Slots {
		switch s.Difficulty {
		case quizgen.DifficultyReview:
			lastReview = i
		case quizgen.DifficultyWeak:
			if i < firstWeak {
				firstWeak = i
			}
		}
	}
	if lastReview > firstWeak {
		t.Errorf("review slot at %d after weak slot at %d", lastReview, firstWeak)
	}
}

func TestBuildPlanSuppressedDifficulty(t *testing.T) {
	p := testProfile()
	rng := rand.New(rand.NewSource(1))

	plan := BuildPlan(p, topics.SubjectMath, 10, testNow.AddDate(0, 0, -3), false, testNow, rng)

	counts := countByDifficulty(plan)
	if counts[quizgen.DifficultyWeak] != 1 {
		t.Errorf("suppressed weak slots = %d, want 1", counts[quizgen.DifficultyWeak])
	}
	if counts[quizgen.DifficultyTarget] != 7 {
		t.Errorf("suppressed target slots = %d, want 7", counts[quizgen.DifficultyTarget])
	}
}

func TestBuildPlanProbeBlockFirst(t *testing.T) {
	p := testProfile()
	tm := p.TopicMastery["counting"]
	due := testNow.AddDate(0, 0, -1)
	tm.NextProbeDate = &due
	tm.ProbeIntervalDays = 28

	plan := BuildPlan(p, topics.SubjectMath, 10, testNow.AddDate(0, 0, -3), true, testNow, rand.New(rand.NewSource(1)))

	if len(plan.ProbeTopics) != 1 || plan.ProbeTopics[0] != "counting" {
		t.Fatalf("probe topics = %v, want [counting]", plan.ProbeTopics)
	}
	for i := 0; i < 3; i++ {
		s := plan.Slots[i]
		if !s.Probe || s.Topic != "counting" || s.Difficulty != quizgen.DifficultyReview {
			t.Errorf("slot %d = %+v, want counting probe at review difficulty", i, s)
		}
	}
	if plan.Slots[3].Probe {
		t.Error("probe block longer than 3 slots")
	}
}

func TestBuildPlanReviewModeAfterGap(t *testing.T) {
	p := testProfile()
	stale := p.Topic("multiplication", string(topics.SubjectMath), bkt.ParamsForGrade(4))
	stale.PKnown = 0.85
	stale.Attempts = 4
	stale.LastAttempt = testNow.AddDate(0, 0, -40)

	plan := BuildPlan(p, topics.SubjectMath, 10, testNow.AddDate(0, 0, -30), true, testNow, rand.New(rand.NewSource(1)))

	if !plan.ReviewMode {
		t.Fatal("review mode not set after a 30-day gap")
	}
	found := false
	for _, s := range plan.Slots {
		if s.Topic == "multiplication" && s.Difficulty == quizgen.DifficultyReview {
			found = true
		}
	}
	if !found {
		t.Error("stale topic missing from review slots after gap")
	}
}

func smallPlan(slots ...Slot) Plan {
	return Plan{Slots: slots}
}

func TestSessionCompletes(t *testing.T) {
	plan := smallPlan(
		Slot{Topic: "addition", Difficulty: quizgen.DifficultyReview},
		Slot{Topic: "fractions", Difficulty: quizgen.DifficultyTarget},
	)
	s := New("child-1", plan, testNow)

	if s.SessionID == "" {
		t.Error("session ID not assigned")
	}
	s.SubmitAnswer(true, 9000)
	if s.Finished {
		t.Fatal("finished with a slot remaining")
	}
	s.SubmitAnswer(false, 12000)

	if !s.Finished || s.EndReason != EndCompleted {
		t.Errorf("end = (%v, %q), want finished with %q", s.Finished, s.EndReason, EndCompleted)
	}
	if s.EarlyExit {
		t.Error("completed session marked as early exit")
	}
	if s.CurrentSlot() != nil {
		t.Error("finished session still serving slots")
	}
}

func TestSessionEndsOnFatigue(t *testing.T) {
	slots := make([]Slot, 12)
	for i := range slots {
		slots[i] = Slot{Topic: "addition", Difficulty: quizgen.DifficultyTarget}
	}
	s := New("child-1", smallPlan(slots...), testNow)

	for i := 0; i < 5; i++ {
		s.SubmitAnswer(true, 10000)
	}
	s.SubmitAnswer(false, 3000)
	s.SubmitAnswer(false, 3000)
	s.SubmitAnswer(false, 3000)

	if !s.Finished || s.EndReason != EndFatigue {
		t.Fatalf("end = (%v, %q), want finished with %q", s.Finished, s.EndReason, EndFatigue)
	}
	if !s.EarlyExit || s.Encouragement == "" {
		t.Error("fatigued exit missing early-exit flag or encouragement")
	}

	// Terminal: further submissions are ignored.
	before := len(s.Answers)
	s.SubmitAnswer(true, 10000)
	if len(s.Answers) != before {
		t.Error("finished session accepted an answer")
	}
}

func TestSessionEndsOnFrustration(t *testing.T) {
	slots := make([]Slot, 6)
	for i := range slots {
		slots[i] = Slot{Topic: "fractions", Difficulty: quizgen.DifficultyWeak}
	}
	s := New("child-1", smallPlan(slots...), testNow)

	s.SubmitAnswer(false, 15000)
	s.SubmitAnswer(false, 15000)
	s.SubmitAnswer(false, 15000)

	if !s.Finished || s.EndReason != EndFrustration {
		t.Fatalf("end = (%v, %q), want finished with %q", s.Finished, s.EndReason, EndFrustration)
	}
	if s.Encouragement == "" {
		t.Error("frustrated exit missing encouragement")
	}
}

func TestSessionAbandon(t *testing.T) {
	s := New("child-1", smallPlan(Slot{Topic: "addition"}), testNow)
	s.Abandon()
	if !s.Finished || s.EndReason != EndAbandoned || !s.EarlyExit {
		t.Errorf("abandon end = (%v, %q, %v)", s.Finished, s.EndReason, s.EarlyExit)
	}
}

func TestSummarizeSplitsProbesFromGraded(t *testing.T) {
	plan := smallPlan(
		Slot{Topic: "counting", Difficulty: quizgen.DifficultyReview, Probe: true},
		Slot{Topic: "counting", Difficulty: quizgen.DifficultyReview, Probe: true},
		Slot{Topic: "counting", Difficulty: quizgen.DifficultyReview, Probe: true},
		Slot{Topic: "fractions", Difficulty: quizgen.DifficultyWeak},
		Slot{Topic: "decimals", Difficulty: quizgen.DifficultyWeak},
	)
	s := New("child-1", plan, testNow)

	s.SubmitAnswer(true, 8000)
	s.SubmitAnswer(false, 9000)
	s.SubmitAnswer(true, 8500)
	s.SubmitAnswer(true, 14000)
	s.SubmitAnswer(false, 16000)

	sum := s.Summarize(testNow.Add(4 * time.Minute))

	if sum.Questions != 5 || sum.Correct != 3 {
		t.Errorf("tally = %d/%d, want 3/5", sum.Correct, sum.Questions)
	}
	if sum.Duration != 4*time.Minute {
		t.Errorf("duration = %v, want 4m", sum.Duration)
	}
	if len(sum.GradedAnswers) != 2 {
		t.Fatalf("graded answers = %d, want 2", len(sum.GradedAnswers))
	}
	if sum.GradedAnswers[0].Topic != "fractions" || sum.GradedAnswers[1].Topic != "decimals" {
		t.Errorf("graded order = %v", sum.GradedAnswers)
	}

	res, ok := sum.ProbeResults["counting"]
	if !ok {
		t.Fatal("probe result missing for counting")
	}
	if res.Correct != 2 || res.Total != 3 || !res.Passed {
		t.Errorf("probe result = %+v, want 2/3 pass", res)
	}
}
