package mastery

import (
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
)

var testParams = bkt.ParamsForGrade(4)

func record(tm *TopicMastery, outcomes ...bool) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, ok := range outcomes {
		tm.RecordOutcome(ok, 8000, testParams, now.Add(time.Duration(i)*time.Minute))
	}
}

func TestRecordOutcome_CounterInvariant(t *testing.T) {
	tm := NewTopicMastery("fractions", "math", testParams)
	record(tm, true, false, true, true, false)

	if tm.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", tm.Attempts)
	}
	if tm.CorrectCount != 3 || tm.IncorrectCount != 2 {
		t.Errorf("Correct/Incorrect = %d/%d, want 3/2", tm.CorrectCount, tm.IncorrectCount)
	}
	if tm.Attempts != tm.CorrectCount+tm.IncorrectCount {
		t.Error("attempts must equal correct + incorrect")
	}
	if tm.PKnown < 0 || tm.PKnown > 1 {
		t.Errorf("PKnown = %v, out of [0,1]", tm.PKnown)
	}
}

func TestRecordOutcome_WindowEvictsOldest(t *testing.T) {
	tm := NewTopicMastery("fractions", "math", testParams)

	// 3 wrong, then 12 correct: window keeps only the last 10.
	record(tm, false, false, false)
	record(tm, true, true, true, true, true, true, true, true, true, true, true, true)

	if len(tm.PerformanceWindow) != WindowSize {
		t.Fatalf("window length = %d, want %d", len(tm.PerformanceWindow), WindowSize)
	}
	for i, ok := range tm.PerformanceWindow {
		if !ok {
			t.Errorf("window[%d] = false, old outcomes should have been evicted", i)
		}
	}
}

func TestRecordOutcome_Timestamps(t *testing.T) {
	tm := NewTopicMastery("fractions", "math", testParams)
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	tm.RecordOutcome(true, 5000, testParams, first)
	tm.RecordOutcome(true, 5000, testParams, second)

	if !tm.FirstAttempt.Equal(first) {
		t.Errorf("FirstAttempt = %v, want %v", tm.FirstAttempt, first)
	}
	if !tm.LastAttempt.Equal(second) {
		t.Errorf("LastAttempt = %v, want %v", tm.LastAttempt, second)
	}
	if tm.LastSignalType != SignalQuiz {
		t.Errorf("LastSignalType = %q, want quiz", tm.LastSignalType)
	}
}

func TestRecordOutcome_AverageTime(t *testing.T) {
	tm := NewTopicMastery("fractions", "math", testParams)
	now := time.Now()

	tm.RecordOutcome(true, 4000, testParams, now)
	tm.RecordOutcome(true, 8000, testParams, now)

	if tm.AverageTimeMs != 6000 {
		t.Errorf("AverageTimeMs = %v, want 6000", tm.AverageTimeMs)
	}
}

func TestWindowTrend(t *testing.T) {
	tests := []struct {
		name   string
		window []bool
		want   Trend
	}{
		{"too short", []bool{true, false, true}, TrendStable},
		{"improving", []bool{false, false, false, true, true, true}, TrendImproving},
		{"declining", []bool{true, true, true, false, false, false}, TrendDeclining},
		{"flat", []bool{true, false, true, false, true, false}, TrendStable},
		{"within margin", []bool{true, true, true, false, true, true, true, true}, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTrend(tt.window); got != tt.want {
				t.Errorf("windowTrend(%v) = %q, want %q", tt.window, got, tt.want)
			}
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		pKnown float64
		want   Band
	}{
		{0.0, BandWeak},
		{0.49, BandWeak},
		{0.5, BandLearning},
		{0.79, BandLearning},
		{0.8, BandMastered},
		{1.0, BandMastered},
	}
	for _, tt := range tests {
		if got := BandFor(tt.pKnown); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.pKnown, got, tt.want)
		}
	}
}

func TestProfile_TopicLazyInit(t *testing.T) {
	p := NewProfile("child-1", "family-1")

	tm := p.Topic("fractions", "math", testParams)
	if tm.PKnown != testParams.PInit {
		t.Errorf("new topic PKnown = %v, want prior %v", tm.PKnown, testParams.PInit)
	}
	if p.Topic("fractions", "math", testParams) != tm {
		t.Error("Topic should return the same record on repeat access")
	}
	if got := p.PKnownOf("unseen"); got != DefaultPKnown {
		t.Errorf("PKnownOf(unseen) = %v, want neutral default %v", got, DefaultPKnown)
	}
}
