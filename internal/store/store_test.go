package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only exercised with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileGetMissing(t *testing.T) {
	s := openTestStore(t)
	p, err := s.Profiles().Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != nil {
		t.Errorf("Get(missing) = %+v, want nil", p)
	}
}

func TestProfilePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := mastery.NewProfile("child-1", "family-1")
	tm := p.Topic("fractions", "math", bkt.ParamsForGrade(4))
	tm.PKnown = 0.71
	tm.Attempts = 3
	tm.CorrectCount = 2
	tm.IncorrectCount = 1
	p.TotalQuizzes = 1
	p.TotalQuestions = 3
	p.Touch(time.Now())

	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, "child-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil after Put")
	}
	if got.FamilyID != "family-1" || got.TotalQuizzes != 1 {
		t.Errorf("profile header = (%q, %d)", got.FamilyID, got.TotalQuizzes)
	}
	gotTM, ok := got.TopicMastery["fractions"]
	if !ok {
		t.Fatal("fractions mastery missing after round trip")
	}
	if gotTM.PKnown != 0.71 || gotTM.Attempts != 3 {
		t.Errorf("fractions = (%.2f, %d), want (0.71, 3)", gotTM.PKnown, gotTM.Attempts)
	}
}

func TestProfilePutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := mastery.NewProfile("child-1", "family-1")
	p.TotalQuizzes = 1
	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	p.TotalQuizzes = 2
	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, err := repo.Get(ctx, "child-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalQuizzes != 2 {
		t.Errorf("TotalQuizzes = %d, want 2 (last writer wins)", got.TotalQuizzes)
	}
}

func TestProfileSubscribe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	var seen []string
	unsub := repo.Subscribe(func(p *mastery.Profile) {
		seen = append(seen, p.ChildID)
	})

	if err := repo.Put(ctx, mastery.NewProfile("child-1", "family-1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	unsub()
	if err := repo.Put(ctx, mastery.NewProfile("child-2", "family-1")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if len(seen) != 1 || seen[0] != "child-1" {
		t.Errorf("notifications = %v, want [child-1]", seen)
	}
}

func TestAnswerHistoryOrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	answers := []AnswerEventData{
		{SessionID: "s1", ChildID: "child-1", Topic: "addition", SubjectID: "math", Difficulty: "target", Correct: true, TimeMs: 9000},
		{SessionID: "s1", ChildID: "child-1", Topic: "fractions", SubjectID: "math", Difficulty: "weak", Correct: false, TimeMs: 15000},
		{SessionID: "s2", ChildID: "child-1", Topic: "fractions", SubjectID: "math", Difficulty: "weak", Correct: true, TimeMs: 11000},
		{SessionID: "s2", ChildID: "child-2", Topic: "phonics", SubjectID: "reading", Difficulty: "target", Correct: true, TimeMs: 7000},
	}
	for _, a := range answers {
		if err := events.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("AppendAnswer: %v", err)
		}
	}

	got, err := events.AnswerHistory(ctx, "child-1", QueryOpts{})
	if err != nil {
		t.Fatalf("AnswerHistory: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("history length = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("history out of order at %d: %d then %d", i, got[i-1].Sequence, got[i].Sequence)
		}
	}
	if got[0].Topic != "addition" || got[2].SessionID != "s2" {
		t.Errorf("history content = %+v", got)
	}

	limited, err := events.AnswerHistory(ctx, "child-1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("AnswerHistory limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited history length = %d, want 2", len(limited))
	}
}

func TestProbeHistoryOrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	when := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	probes := []ProbeEventData{
		{ChildID: "child-1", Topic: "addition", Correct: 3, Total: 3, Passed: true, NextIntervalDays: 56, SessionID: "s1", Timestamp: when},
		{ChildID: "child-1", Topic: "fractions", Correct: 1, Total: 3, Passed: false, NextIntervalDays: 28, SessionID: "s2", Timestamp: when.AddDate(0, 0, 30)},
		{ChildID: "child-2", Topic: "phonics", Correct: 2, Total: 3, Passed: true, NextIntervalDays: 56, SessionID: "s3"},
	}
	for _, p := range probes {
		if err := events.AppendProbe(ctx, p); err != nil {
			t.Fatalf("AppendProbe: %v", err)
		}
	}

	got, err := events.ProbeHistory(ctx, "child-1", QueryOpts{})
	if err != nil {
		t.Fatalf("ProbeHistory: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("history out of order: %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[1].Topic != "fractions" || got[1].Passed || got[1].NextIntervalDays != 28 {
		t.Errorf("history content = %+v", got)
	}
	if !got[0].Timestamp.Equal(when) {
		t.Errorf("timestamp = %v, want stamped %v", got[0].Timestamp, when)
	}
}

func TestLastSessionEnd(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	when, err := events.LastSessionEnd(ctx, "child-1", "math")
	if err != nil {
		t.Fatalf("LastSessionEnd: %v", err)
	}
	if !when.IsZero() {
		t.Errorf("LastSessionEnd with no sessions = %v, want zero", when)
	}

	err = events.AppendQuizSession(ctx, QuizSessionEventData{
		SessionID: "s1", ChildID: "child-1", SubjectID: "math",
		QuestionCount: 10, CorrectCount: 7, EndReason: "completed",
		Duration: 4 * time.Minute,
	})
	if err != nil {
		t.Fatalf("AppendQuizSession: %v", err)
	}

	when, err = events.LastSessionEnd(ctx, "child-1", "math")
	if err != nil {
		t.Fatalf("LastSessionEnd: %v", err)
	}
	if when.IsZero() {
		t.Error("LastSessionEnd zero after a session was recorded")
	}

	other, err := events.LastSessionEnd(ctx, "child-1", "reading")
	if err != nil {
		t.Fatalf("LastSessionEnd other subject: %v", err)
	}
	if !other.IsZero() {
		t.Error("session leaked across subjects")
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Snapshots()

	latest, err := repo.Latest(ctx, "child-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest != nil {
		t.Errorf("Latest with no snapshots = %+v, want nil", latest)
	}

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		p := mastery.NewProfile("child-1", "family-1")
		p.TotalQuizzes = i + 1
		err := repo.Save(ctx, &Snapshot{
			ChildID:   "child-1",
			Sequence:  int64(10 * (i + 1)),
			Timestamp: base.AddDate(0, 0, i),
			Profile:   p,
		})
		if err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	latest, err = repo.Latest(ctx, "child-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.Sequence != 40 || latest.Profile.TotalQuizzes != 4 {
		t.Fatalf("Latest = %+v, want sequence 40", latest)
	}

	if err := repo.Prune(ctx, "child-1", 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	latest, err = repo.Latest(ctx, "child-1")
	if err != nil {
		t.Fatalf("Latest after prune: %v", err)
	}
	if latest == nil || latest.Sequence != 40 {
		t.Errorf("Latest after prune = %+v, want sequence 40 kept", latest)
	}
}
