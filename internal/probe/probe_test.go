package probe

import (
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func masteredTopic(topic, subject string, pKnown float64) *mastery.TopicMastery {
	tm := mastery.NewTopicMastery(topic, subject, bkt.ParamsForGrade(4))
	tm.PKnown = pKnown
	return tm
}

func TestNeedsProbe_UnscheduledNeverDue(t *testing.T) {
	tm := masteredTopic("fractions", "math", 0.9)
	if NeedsProbe(tm, now) {
		t.Error("topic with no scheduled probe must never be due")
	}
}

func TestNeedsProbe_RequiresMasteryAndDate(t *testing.T) {
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		pKnown float64
		next   *time.Time
		want   bool
	}{
		{"due", 0.9, &past, true},
		{"not yet due", 0.9, &future, false},
		{"demoted below mastery", 0.7, &past, false},
		{"exactly at threshold", 0.8, &past, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := masteredTopic("fractions", "math", tt.pKnown)
			tm.NextProbeDate = tt.next
			tm.ProbeIntervalDays = FirstIntervalDays
			if got := NeedsProbe(tm, now); got != tt.want {
				t.Errorf("NeedsProbe = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleIfMastered(t *testing.T) {
	tm := masteredTopic("fractions", "math", 0.85)
	ScheduleIfMastered(tm, now)

	if tm.ProbeIntervalDays != FirstIntervalDays {
		t.Errorf("interval = %d, want %d", tm.ProbeIntervalDays, FirstIntervalDays)
	}
	want := now.AddDate(0, 0, FirstIntervalDays)
	if tm.NextProbeDate == nil || !tm.NextProbeDate.Equal(want) {
		t.Errorf("NextProbeDate = %v, want %v", tm.NextProbeDate, want)
	}

	// Second call must not reschedule.
	later := now.AddDate(0, 0, 5)
	ScheduleIfMastered(tm, later)
	if !tm.NextProbeDate.Equal(want) {
		t.Error("existing schedule must not be overwritten")
	}

	// Learning-band topics are never scheduled.
	learning := masteredTopic("decimals", "math", 0.6)
	ScheduleIfMastered(learning, now)
	if learning.NextProbeDate != nil {
		t.Error("learning topic must not get a probe schedule")
	}
}

func TestRecordResult_PassDoublesInterval(t *testing.T) {
	tm := masteredTopic("fractions", "math", 0.9)
	ScheduleIfMastered(tm, now)

	intervals := []int{56, 112, 168, 168} // doubling, capped at 168
	for _, want := range intervals {
		RecordResult(tm, Evaluate(3, 3), now)
		if tm.ProbeIntervalDays != want {
			t.Fatalf("interval = %d, want %d", tm.ProbeIntervalDays, want)
		}
	}
}

func TestRecordResult_FailResetsAndDemotes(t *testing.T) {
	tm := masteredTopic("fractions", "math", 0.92)
	tm.ProbeIntervalDays = 112
	next := now
	tm.NextProbeDate = &next

	RecordResult(tm, Evaluate(1, 3), now)

	if tm.ProbeIntervalDays != FirstIntervalDays {
		t.Errorf("interval = %d, want reset to %d", tm.ProbeIntervalDays, FirstIntervalDays)
	}
	if tm.PKnown != DemotedPKnown {
		t.Errorf("PKnown = %v, want exactly %v", tm.PKnown, DemotedPKnown)
	}
	want := now.AddDate(0, 0, FirstIntervalDays)
	if !tm.NextProbeDate.Equal(want) {
		t.Errorf("NextProbeDate = %v, want %v", tm.NextProbeDate, want)
	}
}

func TestEvaluate_PassThreshold(t *testing.T) {
	tests := []struct {
		correct, total int
		want           bool
	}{
		{3, 3, true},
		{2, 3, true},
		{1, 3, false},
		{0, 3, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := Evaluate(tt.correct, tt.total).Passed; got != tt.want {
			t.Errorf("Evaluate(%d/%d).Passed = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestSelectDue_CapsPerSubject(t *testing.T) {
	p := mastery.NewProfile("child-1", "family-1")

	addDue := func(topic, subject string, overdueDays int) {
		tm := masteredTopic(topic, subject, 0.9)
		next := now.AddDate(0, 0, -overdueDays)
		tm.NextProbeDate = &next
		tm.ProbeIntervalDays = FirstIntervalDays
		p.TopicMastery[topic] = tm
	}

	addDue("fractions", "math", 10)
	addDue("decimals", "math", 5)
	addDue("geometry", "math", 1)
	addDue("phonics", "reading", 3)

	got := SelectDue(p, now)

	if len(got) != 3 {
		t.Fatalf("selected %d topics, want 3 (2 math + 1 reading): %v", len(got), got)
	}
	// Most overdue math topics win; geometry is cut by the cap.
	if got[0] != "fractions" || got[1] != "decimals" {
		t.Errorf("math order = %v, want fractions then decimals", got[:2])
	}
	for _, topic := range got {
		if topic == "geometry" {
			t.Error("geometry should be excluded by the per-subject cap")
		}
	}
}
