// Package probe schedules retention probes — short verification checks
// for topics a child has already mastered. Intervals expand on a pass
// and collapse on a fail, so forgetting is caught without re-testing
// solid topics every session. Weak and learning topics never get
// probes; normal sampling retests those.
package probe

import (
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/mastery"
)

const (
	// FirstIntervalDays is the initial probe interval for a newly
	// mastered topic, and the reset interval after a failed probe.
	FirstIntervalDays = 28

	// MaxIntervalDays caps the expanding interval at 24 weeks.
	MaxIntervalDays = 168

	// Questions is the length of a retention probe.
	Questions = 3

	// DemotedPKnown is the posterior assigned after a failed probe.
	// Low enough to schedule near-term review, high enough to keep
	// the topic out of the weak band.
	DemotedPKnown = 0.75

	// MaxDuePerSubject caps probe topics per subject in one quiz.
	MaxDuePerSubject = 2
)

// Result is the outcome of one administered probe.
type Result struct {
	Correct int
	Total   int
	Passed  bool
}

// Evaluate scores a probe. Passing requires at least two thirds
// correct (2 of 3 on a standard probe).
func Evaluate(correct, total int) Result {
	return Result{
		Correct: correct,
		Total:   total,
		Passed:  total > 0 && correct*3 >= total*2,
	}
}

// NeedsProbe reports whether a topic is due for verification: still in
// the mastered band, has a scheduled date, and the date has arrived.
func NeedsProbe(tm *mastery.TopicMastery, now time.Time) bool {
	return tm.PKnown >= mastery.MasteredThreshold &&
		tm.NextProbeDate != nil &&
		!now.Before(*tm.NextProbeDate)
}

// ScheduleIfMastered gives a mastered topic its first probe schedule.
// Topics already on a schedule, and topics below the mastered band,
// are left alone.
func ScheduleIfMastered(tm *mastery.TopicMastery, now time.Time) {
	if tm.NextProbeDate != nil || tm.PKnown < mastery.MasteredThreshold {
		return
	}
	next := now.AddDate(0, 0, FirstIntervalDays)
	tm.ProbeIntervalDays = FirstIntervalDays
	tm.NextProbeDate = &next
}

// RecordResult applies a probe outcome. A pass doubles the interval up
// to the cap. A fail resets the interval to the base and demotes the
// posterior to DemotedPKnown.
func RecordResult(tm *mastery.TopicMastery, res Result, now time.Time) {
	interval := tm.ProbeIntervalDays
	if interval <= 0 {
		interval = FirstIntervalDays
	}

	if res.Passed {
		interval *= 2
		if interval > MaxIntervalDays {
			interval = MaxIntervalDays
		}
	} else {
		interval = FirstIntervalDays
		tm.PKnown = DemotedPKnown
	}

	next := now.AddDate(0, 0, interval)
	tm.ProbeIntervalDays = interval
	tm.NextProbeDate = &next
	tm.LastSignalType = mastery.SignalQuiz
}

// SelectDue returns the topics due for a probe, most overdue first,
// capped at MaxDuePerSubject per subject.
func SelectDue(p *mastery.Profile, now time.Time) []string {
	type dueTopic struct {
		topic     string
		subjectID string
		overdue   float64
	}

	var due []dueTopic
	for topic, tm := range p.TopicMastery {
		if NeedsProbe(tm, now) {
			due = append(due, dueTopic{
				topic:     topic,
				subjectID: tm.SubjectID,
				overdue:   now.Sub(*tm.NextProbeDate).Hours() / 24,
			})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].topic < due[j].topic
	})

	perSubject := make(map[string]int)
	var selected []string
	for _, d := range due {
		if perSubject[d.subjectID] >= MaxDuePerSubject {
			continue
		}
		perSubject[d.subjectID]++
		selected = append(selected, d.topic)
	}
	return selected
}
