// Package monitor watches the live answer stream of a session for
// behavioral degradation. Two independent rule detectors run after
// every answered question: fatigue (rushing plus an accuracy collapse)
// and frustration (repeated errors on the same topics). Either can
// move the session to a terminal finished state; neither can pause or
// retry it. All state is session-scoped and dies with the session.
package monitor

const (
	// BaselineSamples is how many answers establish the baseline
	// answer time before fatigue detection activates.
	BaselineSamples = 5

	// recentTimeWindow is the size of the rolling answer-time window
	// compared against the baseline.
	recentTimeWindow = 3

	// recentAccuracyWindow is the size of the rolling correctness
	// window.
	recentAccuracyWindow = 5

	// speedDropRatio flags rushing: recent average answer time below
	// half the baseline.
	speedDropRatio = 0.5

	// accuracyFloor is the recent accuracy below which rushing counts
	// as fatigue. Both conditions are required so a fast-but-accurate
	// learner is never flagged.
	accuracyFloor = 0.4
)

// FatigueState tracks the speed/accuracy windows for one session.
type FatigueState struct {
	AverageAnswerTime float64 // baseline, ms; zero until established
	RecentAnswerTimes []float64
	RecentAccuracy    []bool
	FatigueDetected   bool

	baselineCount int
	baselineSum   float64
}

// NewFatigueState returns an empty fatigue detector.
func NewFatigueState() *FatigueState {
	return &FatigueState{}
}

// Observe records one answered question and reports whether fatigue
// fired on this observation. The first BaselineSamples answers only
// build the baseline; no detection happens during that phase. Once
// detected, the state stays latched.
func (f *FatigueState) Observe(elapsedMs int, correct bool) bool {
	if f.FatigueDetected {
		return false
	}

	if f.baselineCount < BaselineSamples {
		f.baselineCount++
		f.baselineSum += float64(elapsedMs)
		if f.baselineCount == BaselineSamples {
			f.AverageAnswerTime = f.baselineSum / BaselineSamples
		}
		return false
	}

	f.RecentAnswerTimes = append(f.RecentAnswerTimes, float64(elapsedMs))
	if len(f.RecentAnswerTimes) > recentTimeWindow {
		f.RecentAnswerTimes = f.RecentAnswerTimes[len(f.RecentAnswerTimes)-recentTimeWindow:]
	}
	f.RecentAccuracy = append(f.RecentAccuracy, correct)
	if len(f.RecentAccuracy) > recentAccuracyWindow {
		f.RecentAccuracy = f.RecentAccuracy[len(f.RecentAccuracy)-recentAccuracyWindow:]
	}

	// The time window must be full; the accuracy window evaluates over
	// whatever has accumulated so three rapid wrong answers right after
	// the baseline still register.
	if len(f.RecentAnswerTimes) < recentTimeWindow {
		return false
	}

	var timeSum float64
	for _, t := range f.RecentAnswerTimes {
		timeSum += t
	}
	rushing := timeSum/recentTimeWindow < f.AverageAnswerTime*speedDropRatio

	hits := 0
	for _, ok := range f.RecentAccuracy {
		if ok {
			hits++
		}
	}
	struggling := float64(hits)/float64(len(f.RecentAccuracy)) < accuracyFloor

	if rushing && struggling {
		f.FatigueDetected = true
		return true
	}
	return false
}
