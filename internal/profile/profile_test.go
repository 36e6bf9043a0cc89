package profile

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/probe"
	"github.com/abhisek/adaptiq/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := NewService(st, zap.NewNop(), 4)
	svc.now = func() time.Time { return testNow }
	svc.retry = RetryConfig{MaxAttempts: 1, Multiplier: 1}
	return svc
}

func TestInitializeProfileIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p1, err := svc.InitializeProfile(ctx, "child-1", "family-1")
	if err != nil {
		t.Fatalf("InitializeProfile: %v", err)
	}
	if p1.ChildID != "child-1" || len(p1.TopicMastery) != 0 {
		t.Errorf("fresh profile = %+v", p1)
	}

	p1.TotalQuizzes = 3
	if err := svc.persist(ctx, p1); err != nil {
		t.Fatalf("persist: %v", err)
	}

	p2, err := svc.InitializeProfile(ctx, "child-1", "family-1")
	if err != nil {
		t.Fatalf("second InitializeProfile: %v", err)
	}
	if p2.TotalQuizzes != 3 {
		t.Errorf("second initialize reset the profile: TotalQuizzes = %d", p2.TotalQuizzes)
	}
}

// A child with no profile finishes a 5-question quiz on one topic with
// 4 correct: the profile is created lazily and the topic record shows
// the full replay.
func TestProcessQuizResultFirstContact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := QuizResult{
		SessionID: "s1",
		ChildID:   "child-1",
		FamilyID:  "family-1",
		SubjectID: "math",
		Answers: []QuizAnswer{
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 9000},
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 8000},
			{Topic: "fractions", Difficulty: "target", Correct: false, TimeMs: 14000},
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 8500},
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 7000},
		},
		EndReason:   "completed",
		Duration:    4 * time.Minute,
		CompletedAt: testNow,
	}

	p, err := svc.ProcessQuizResult(ctx, res)
	if err != nil {
		t.Fatalf("ProcessQuizResult: %v", err)
	}

	tm, ok := p.TopicMastery["fractions"]
	if !ok {
		t.Fatal("fractions record missing")
	}
	if tm.Attempts != 5 || tm.CorrectCount != 4 || tm.IncorrectCount != 1 {
		t.Errorf("counters = (%d, %d, %d), want (5, 4, 1)", tm.Attempts, tm.CorrectCount, tm.IncorrectCount)
	}
	if tm.PKnown <= bkt.ParamsForGrade(4).PInit {
		t.Errorf("pKnown = %.3f, want above the grade prior after 4/5 correct", tm.PKnown)
	}
	if p.TotalQuizzes != 1 || p.TotalQuestions != 5 {
		t.Errorf("totals = (%d, %d), want (1, 5)", p.TotalQuizzes, p.TotalQuestions)
	}

	// Persisted, not just in memory.
	stored, err := svc.Get(ctx, "child-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored == nil || stored.TopicMastery["fractions"].Attempts != 5 {
		t.Error("profile not persisted after quiz result")
	}
}

func TestProcessQuizResultSchedulesProbeOnMastery(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	answers := make([]QuizAnswer, 10)
	for i := range answers {
		answers[i] = QuizAnswer{Topic: "addition", Difficulty: "target", Correct: true, TimeMs: 6000}
	}
	p, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers: answers, EndReason: "completed", CompletedAt: testNow,
	})
	if err != nil {
		t.Fatalf("ProcessQuizResult: %v", err)
	}

	tm := p.TopicMastery["addition"]
	if tm.PKnown < mastery.MasteredThreshold {
		t.Fatalf("pKnown = %.3f after 10 straight correct, want mastered", tm.PKnown)
	}
	if tm.NextProbeDate == nil || tm.ProbeIntervalDays != probe.FirstIntervalDays {
		t.Errorf("probe schedule = (%v, %d), want first interval set", tm.NextProbeDate, tm.ProbeIntervalDays)
	}
	wantDate := testNow.AddDate(0, 0, probe.FirstIntervalDays)
	if !tm.NextProbeDate.Equal(wantDate) {
		t.Errorf("NextProbeDate = %v, want %v", tm.NextProbeDate, wantDate)
	}
}

func TestProcessQuizResultFailedProbeDemotes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Build a mastered topic with a schedule.
	answers := make([]QuizAnswer, 10)
	for i := range answers {
		answers[i] = QuizAnswer{Topic: "addition", Difficulty: "target", Correct: true, TimeMs: 6000}
	}
	_, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers: answers, EndReason: "completed", CompletedAt: testNow,
	})
	if err != nil {
		t.Fatalf("setup quiz: %v", err)
	}

	later := testNow.AddDate(0, 0, 30)
	p, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s2", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Probes:      map[string]probe.Result{"addition": probe.Evaluate(1, 3)},
		EndReason:   "completed",
		CompletedAt: later,
	})
	if err != nil {
		t.Fatalf("probe quiz: %v", err)
	}

	tm := p.TopicMastery["addition"]
	if tm.PKnown != probe.DemotedPKnown {
		t.Errorf("pKnown = %.3f after failed probe, want %.2f", tm.PKnown, probe.DemotedPKnown)
	}
	if tm.ProbeIntervalDays != probe.FirstIntervalDays {
		t.Errorf("interval = %d after failed probe, want reset to %d", tm.ProbeIntervalDays, probe.FirstIntervalDays)
	}
}

func TestProcessEvaluationFusesWithQuizSignal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Existing quiz signal around the prior.
	_, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers: []QuizAnswer{
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 9000},
			{Topic: "fractions", Difficulty: "target", Correct: false, TimeMs: 12000},
			{Topic: "fractions", Difficulty: "target", Correct: true, TimeMs: 9000},
		},
		EndReason: "completed", CompletedAt: testNow.AddDate(0, 0, -7),
	})
	if err != nil {
		t.Fatalf("setup quiz: %v", err)
	}
	before := mustGet(t, svc, "child-1").TopicMastery["fractions"].PKnown

	p, err := svc.ProcessEvaluation(ctx, Evaluation{
		EvaluationID:  "eval-1",
		ChildID:       "child-1",
		FamilyID:      "family-1",
		SubjectID:     "math",
		Score:         0.9,
		QuestionCount: 20,
		TopicScores:   map[string]float64{"fractions": 0.95},
		CompletedAt:   testNow,
	})
	if err != nil {
		t.Fatalf("ProcessEvaluation: %v", err)
	}

	tm := p.TopicMastery["fractions"]
	if tm.PKnown <= before {
		t.Errorf("pKnown = %.3f, want pulled above %.3f by a strong fresh evaluation", tm.PKnown, before)
	}
	if tm.PKnown >= 0.95 {
		t.Errorf("pKnown = %.3f, want below the raw evaluation score (quiz signal retained)", tm.PKnown)
	}
	if tm.LastSignalType != mastery.SignalEvaluation {
		t.Errorf("LastSignalType = %q, want evaluation dominant", tm.LastSignalType)
	}
}

func TestProcessEvaluationNewTopicAdoptsEvidence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.ProcessEvaluation(ctx, Evaluation{
		EvaluationID: "eval-1",
		ChildID:      "child-1",
		FamilyID:     "family-1",
		SubjectID:    "math",
		Score:        0.4,
		WeakTopics:   []string{"decimals"},
		CompletedAt:  testNow,
	})
	if err != nil {
		t.Fatalf("ProcessEvaluation: %v", err)
	}

	tm := p.TopicMastery["decimals"]
	if tm == nil || tm.PKnown != weakTopicEvidence {
		t.Errorf("new topic posterior = %+v, want evidence passthrough %.1f", tm, weakTopicEvidence)
	}
}

func TestProcessEvaluationRejectsInvalid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		eval Evaluation
	}{
		{"missing id", Evaluation{ChildID: "child-1", Score: 0.5}},
		{"missing child", Evaluation{EvaluationID: "e1", Score: 0.5}},
		{"score out of range", Evaluation{EvaluationID: "e1", ChildID: "child-1", Score: 1.5}},
		{"unknown topic", Evaluation{EvaluationID: "e1", ChildID: "child-1", Score: 0.5, WeakTopics: []string{"astrology"}}},
	}
	for _, tt := range tests {
		if _, err := svc.ProcessEvaluation(ctx, tt.eval); err == nil {
			t.Errorf("%s: ProcessEvaluation accepted invalid input", tt.name)
		}
	}

	// Best-effort tier swallows the same failures.
	svc.IngestEvaluation(ctx, Evaluation{ChildID: "child-1"})
	if p, err := svc.Get(ctx, "child-1"); err != nil || p != nil {
		t.Errorf("invalid ingest created a profile: (%v, %v)", p, err)
	}
}

func TestBootstrapMatchesSequential(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers: []QuizAnswer{
			{Topic: "fractions", Difficulty: "weak", Correct: false, TimeMs: 15000},
			{Topic: "fractions", Difficulty: "weak", Correct: true, TimeMs: 11000},
			{Topic: "addition", Difficulty: "review", Correct: true, TimeMs: 5000},
			{Topic: "fractions", Difficulty: "weak", Correct: true, TimeMs: 9000},
		},
		EndReason: "completed", CompletedAt: testNow,
	}
	sequential, err := svc.ProcessQuizResult(ctx, res)
	if err != nil {
		t.Fatalf("ProcessQuizResult: %v", err)
	}

	rebuilt, err := svc.BootstrapProfile(ctx, "child-1", "family-1")
	if err != nil {
		t.Fatalf("BootstrapProfile: %v", err)
	}

	if rebuilt.TotalQuizzes != 1 || rebuilt.TotalQuestions != 4 {
		t.Errorf("rebuilt totals = (%d, %d), want (1, 4)", rebuilt.TotalQuizzes, rebuilt.TotalQuestions)
	}
	for topic, want := range sequential.TopicMastery {
		got, ok := rebuilt.TopicMastery[topic]
		if !ok {
			t.Errorf("rebuilt profile missing topic %q", topic)
			continue
		}
		if got.PKnown != want.PKnown {
			t.Errorf("%s: rebuilt pKnown = %.6f, sequential %.6f", topic, got.PKnown, want.PKnown)
		}
		if got.Attempts != want.Attempts || got.CorrectCount != want.CorrectCount {
			t.Errorf("%s: rebuilt counters = (%d, %d), sequential (%d, %d)",
				topic, got.Attempts, got.CorrectCount, want.Attempts, want.CorrectCount)
		}
	}
}

func TestBootstrapReplaysProbeHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Master a topic, then fail its retention probe a month later.
	answers := make([]QuizAnswer, 10)
	for i := range answers {
		answers[i] = QuizAnswer{Topic: "addition", Difficulty: "target", Correct: true, TimeMs: 6000}
	}
	_, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers: answers, EndReason: "completed", CompletedAt: testNow,
	})
	if err != nil {
		t.Fatalf("setup quiz: %v", err)
	}
	sequential, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s2", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Probes:      map[string]probe.Result{"addition": probe.Evaluate(1, 3)},
		EndReason:   "completed",
		CompletedAt: testNow.AddDate(0, 0, 30),
	})
	if err != nil {
		t.Fatalf("probe quiz: %v", err)
	}

	rebuilt, err := svc.BootstrapProfile(ctx, "child-1", "family-1")
	if err != nil {
		t.Fatalf("BootstrapProfile: %v", err)
	}

	tm := rebuilt.TopicMastery["addition"]
	if tm.PKnown != probe.DemotedPKnown {
		t.Errorf("rebuilt pKnown = %.4f, want demoted %.2f", tm.PKnown, probe.DemotedPKnown)
	}
	if tm.ProbeIntervalDays != probe.FirstIntervalDays {
		t.Errorf("rebuilt interval = %d, want reset to %d", tm.ProbeIntervalDays, probe.FirstIntervalDays)
	}
	if rebuilt.TotalQuizzes != sequential.TotalQuizzes {
		t.Errorf("rebuilt TotalQuizzes = %d, sequential %d", rebuilt.TotalQuizzes, sequential.TotalQuizzes)
	}
	want := sequential.TopicMastery["addition"]
	if tm.PKnown != want.PKnown || !tm.NextProbeDate.Equal(*want.NextProbeDate) {
		t.Errorf("rebuilt schedule (%.4f, %v) diverges from sequential (%.4f, %v)",
			tm.PKnown, tm.NextProbeDate, want.PKnown, want.NextProbeDate)
	}
}

func TestSnapshotProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SnapshotProfile(ctx, "nobody"); err == nil {
		t.Error("snapshot of missing profile did not error")
	}

	_, err := svc.ProcessQuizResult(ctx, QuizResult{
		SessionID: "s1", ChildID: "child-1", FamilyID: "family-1", SubjectID: "math",
		Answers:   []QuizAnswer{{Topic: "addition", Difficulty: "target", Correct: true, TimeMs: 6000}},
		EndReason: "completed", CompletedAt: testNow,
	})
	if err != nil {
		t.Fatalf("setup quiz: %v", err)
	}

	snap, err := svc.SnapshotProfile(ctx, "child-1")
	if err != nil {
		t.Fatalf("SnapshotProfile: %v", err)
	}
	if snap.Sequence == 0 {
		t.Error("snapshot sequence not stamped from the event log")
	}
	if snap.Profile.TopicMastery["addition"] == nil {
		t.Error("snapshot profile missing topic state")
	}
}

func mustGet(t *testing.T, svc *Service, childID string) *mastery.Profile {
	t.Helper()
	p, err := svc.Get(context.Background(), childID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p == nil {
		t.Fatalf("no profile for %s", childID)
	}
	return p
}
