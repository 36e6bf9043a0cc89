package compose

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func profileWith(pKnowns map[string]float64) *mastery.Profile {
	p := mastery.NewProfile("child-1", "family-1")
	for topic, pk := range pKnowns {
		tm := mastery.NewTopicMastery(topic, "math", bkt.ParamsForGrade(4))
		tm.PKnown = pk
		p.TopicMastery[topic] = tm
	}
	return p
}

func TestClassify_Bands(t *testing.T) {
	p := profileWith(map[string]float64{
		"subtraction": 0.2,
		"decimals":    0.6,
		"fractions":   0.9,
	})

	c := Classify(p, []string{"subtraction", "decimals", "fractions", "geometry"})

	if len(c.Weak) != 1 || c.Weak[0] != "subtraction" {
		t.Errorf("Weak = %v, want [subtraction]", c.Weak)
	}
	// Unseen topics default to the neutral 0.5 posterior: learning band.
	if len(c.Learning) != 2 {
		t.Errorf("Learning = %v, want decimals and geometry", c.Learning)
	}
	if len(c.Mastered) != 1 || c.Mastered[0] != "fractions" {
		t.Errorf("Mastered = %v, want [fractions]", c.Mastered)
	}
}

func ampleClassification() Classification {
	return Classification{
		Weak:     []string{"w1", "w2", "w3", "w4", "w5"},
		Learning: []string{"l1", "l2", "l3", "l4", "l5", "l6", "l7"},
		Mastered: []string{"m1", "m2", "m3", "m4"},
	}
}

func TestMixDifficulty_TargetRatios(t *testing.T) {
	m := MixDifficulty(ampleClassification(), 10, true, testRng())

	if len(m.ReviewTopics) != 2 || len(m.TargetTopics) != 5 || len(m.WeakTopics) != 3 {
		t.Errorf("mix = %d/%d/%d, want 2/5/3",
			len(m.ReviewTopics), len(m.TargetTopics), len(m.WeakTopics))
	}
	if m.QuestionCount != 10 {
		t.Errorf("QuestionCount = %d, want 10", m.QuestionCount)
	}
}

func TestMixDifficulty_SuppressedWeakRatio(t *testing.T) {
	m := MixDifficulty(ampleClassification(), 10, false, testRng())

	if len(m.WeakTopics) != 1 {
		t.Errorf("weak = %d, want 1 under suppression", len(m.WeakTopics))
	}
	// Remainder reconciles into target: 10 - 2 - 1.
	if len(m.TargetTopics) != 7 {
		t.Errorf("target = %d, want 7", len(m.TargetTopics))
	}
	if m.QuestionCount != 10 {
		t.Errorf("QuestionCount = %d, want 10", m.QuestionCount)
	}
}

func TestMixDifficulty_ShortBandNotRedistributed(t *testing.T) {
	c := ampleClassification()
	c.Weak = []string{"w1"}

	m := MixDifficulty(c, 10, true, testRng())

	if len(m.WeakTopics) != 1 {
		t.Errorf("weak = %v, want exactly the one available topic", m.WeakTopics)
	}
	if m.QuestionCount >= 10 {
		t.Errorf("QuestionCount = %d, want < 10 (shortfall never redistributed)", m.QuestionCount)
	}

	seen := make(map[string]bool)
	for _, topic := range OrderTopics(m) {
		if seen[topic] {
			t.Errorf("topic %q duplicated in mix", topic)
		}
		seen[topic] = true
	}
}

func TestMixDifficulty_SamplesWithoutReplacement(t *testing.T) {
	c := Classification{Learning: []string{"a", "b", "c"}}
	m := MixDifficulty(c, 6, true, testRng())

	if len(m.TargetTopics) != 3 {
		t.Fatalf("target = %v, want all 3 available", m.TargetTopics)
	}
	seen := make(map[string]bool)
	for _, topic := range m.TargetTopics {
		if seen[topic] {
			t.Fatalf("topic %q drawn twice", topic)
		}
		seen[topic] = true
	}
}

func TestOrderTopics_WarmUpOrdering(t *testing.T) {
	m := Mix{
		ReviewTopics: []string{"r1", "r2"},
		TargetTopics: []string{"t1"},
		WeakTopics:   []string{"w1"},
	}
	got := OrderTopics(m)
	want := []string{"r1", "r2", "t1", "w1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestShouldEnterReviewMode(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if ShouldEnterReviewMode(time.Time{}, now) {
		t.Error("no session history should not trigger review mode")
	}
	if ShouldEnterReviewMode(now.AddDate(0, 0, -20), now) {
		t.Error("20-day gap is below the threshold")
	}
	if !ShouldEnterReviewMode(now.AddDate(0, 0, -21), now) {
		t.Error("21-day gap should trigger review mode")
	}
}

func TestSelectReviewTopics_OldestFirstCapped(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := mastery.NewProfile("child-1", "family-1")

	add := func(topic, subject string, pKnown float64, staleDays int) {
		tm := mastery.NewTopicMastery(topic, subject, bkt.ParamsForGrade(4))
		tm.PKnown = pKnown
		tm.LastAttempt = now.AddDate(0, 0, -staleDays)
		p.TopicMastery[topic] = tm
	}

	add("oldest", "math", 0.9, 60)
	add("older", "math", 0.8, 45)
	add("old", "math", 0.7, 30)
	add("fourth", "math", 0.75, 25)
	add("fresh", "math", 0.9, 5)      // too recent
	add("shaky", "math", 0.5, 60)     // below pKnown floor
	add("reading1", "reading", 0.9, 60) // different subject

	got := SelectReviewTopics(p, "math", now)

	want := []string{"oldest", "older", "old"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMergeReviewTopics_DedupAndBound(t *testing.T) {
	m := Mix{
		ReviewTopics:  []string{"r1"},
		TargetTopics:  []string{"t1", "t2", "t3", "t4", "t5"},
		WeakTopics:    []string{"w1", "w2"},
		QuestionCount: 8,
	}

	merged := MergeReviewTopics(m, []string{"r1", "g1", "g2", "g3"}, 10)

	// Cap is 30% of 10 = 3 review slots.
	if len(merged.ReviewTopics) != 3 {
		t.Fatalf("review bucket = %v, want 3 entries", merged.ReviewTopics)
	}
	seen := make(map[string]int)
	for _, topic := range OrderTopics(merged) {
		seen[topic]++
		if seen[topic] > 1 {
			t.Errorf("topic %q duplicated after merge", topic)
		}
	}
	if merged.QuestionCount != 10 {
		t.Errorf("QuestionCount = %d, want 10", merged.QuestionCount)
	}
}
