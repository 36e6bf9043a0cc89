package monitor

// Verdict is the monitor's reaction to an answered question.
type Verdict int

const (
	// Continue means the session keeps serving questions.
	Continue Verdict = iota
	// EndFatigued ends the session because of a speed+accuracy drop.
	EndFatigued
	// EndFrustrated ends the session because every topic is blocked.
	EndFrustrated
)

// Monitor bundles the two per-session detectors. Construct one per
// session and discard it when the session finishes.
type Monitor struct {
	Fatigue     *FatigueState
	Frustration *FrustrationState
}

// New creates a fresh monitor for a session.
func New() *Monitor {
	return &Monitor{
		Fatigue:     NewFatigueState(),
		Frustration: NewFrustrationState(),
	}
}

// ObserveAnswer feeds one answered question through both detectors and
// returns the resulting verdict. Fatigue is checked first; it fires on
// the answer that completed the degraded window.
func (m *Monitor) ObserveAnswer(topic string, elapsedMs int, correct bool) Verdict {
	fatigued := m.Fatigue.Observe(elapsedMs, correct)
	frustrated := m.Frustration.Observe(topic, correct)

	switch {
	case fatigued:
		return EndFatigued
	case frustrated:
		return EndFrustrated
	default:
		return Continue
	}
}

// AllowDifficult reports whether the mixer may serve the normal share
// of weak-band questions. Any active block suppresses difficulty.
func (m *Monitor) AllowDifficult() bool {
	return len(m.Frustration.BlockedTopics) == 0
}
