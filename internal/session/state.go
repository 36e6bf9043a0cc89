package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/adaptiq/internal/monitor"
	"github.com/abhisek/adaptiq/internal/probe"
)

// EndReason records why a session reached its terminal state.
type EndReason string

const (
	EndCompleted   EndReason = "completed"
	EndFatigue     EndReason = "fatigue"
	EndFrustration EndReason = "frustration"
	EndAbandoned   EndReason = "abandoned"
)

// Encouragement messages shown when a session is ended early. The
// point of early exit is protecting the learner, so the copy is warm.
const (
	fatigueMessage     = "Great effort today! Let's take a break and come back fresh."
	frustrationMessage = "Those were tricky ones. We'll try them a different way next time!"
)

// Answer is one submitted answer from the session event stream.
type Answer struct {
	Topic     string
	Correct   bool
	ElapsedMs int
}

// State is the runtime state of an active session.
type State struct {
	SessionID string
	ChildID   string
	Plan      Plan

	// Monitor holds the session-scoped fatigue and frustration
	// detectors, constructed with the session and destroyed with it.
	Monitor *monitor.Monitor

	// Answers is the submitted answer stream in original order.
	Answers []Answer

	NextSlot  int
	StartTime time.Time

	Finished      bool
	EndReason     EndReason
	EarlyExit     bool
	Encouragement string
}

// New creates runtime state for a session starting now.
func New(childID string, plan Plan, now time.Time) *State {
	return &State{
		SessionID: uuid.NewString(),
		ChildID:   childID,
		Plan:      plan,
		Monitor:   monitor.New(),
		StartTime: now,
	}
}

// CurrentSlot returns the slot awaiting an answer, or nil when the
// session is finished or exhausted.
func (s *State) CurrentSlot() *Slot {
	if s.Finished || s.NextSlot >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.NextSlot]
}

// SubmitAnswer processes one answered question: records the outcome,
// feeds the behavior monitor, and advances the session. The monitor's
// verdict may move the session to its terminal state immediately; no
// further questions are issued after that.
func (s *State) SubmitAnswer(correct bool, elapsedMs int) {
	slot := s.CurrentSlot()
	if slot == nil {
		return
	}

	s.Answers = append(s.Answers, Answer{Topic: slot.Topic, Correct: correct, ElapsedMs: elapsedMs})
	s.NextSlot++

	switch s.Monitor.ObserveAnswer(slot.Topic, elapsedMs, correct) {
	case monitor.EndFatigued:
		s.finish(EndFatigue, true, fatigueMessage)
		return
	case monitor.EndFrustrated:
		s.finish(EndFrustration, true, frustrationMessage)
		return
	}

	if s.NextSlot >= len(s.Plan.Slots) {
		s.finish(EndCompleted, false, "")
	}
}

// Abandon ends the session from the caller's side (e.g. the child
// closed the quiz).
func (s *State) Abandon() {
	if !s.Finished {
		s.finish(EndAbandoned, true, "")
	}
}

func (s *State) finish(reason EndReason, earlyExit bool, message string) {
	s.Finished = true
	s.EndReason = reason
	s.EarlyExit = earlyExit
	s.Encouragement = message
}

// Summary aggregates the session after it finishes.
type Summary struct {
	SessionID      string
	ChildID        string
	Questions      int
	Correct        int
	Duration       time.Duration
	EndReason      EndReason
	EarlyExit      bool

	// GradedAnswers is the answer stream excluding probe slots, in
	// original order, ready for estimator replay.
	GradedAnswers []Answer

	// ProbeResults is the scored outcome per probe topic.
	ProbeResults map[string]probe.Result
}

// Summarize tallies the finished session, splitting graded answers
// from probe blocks and scoring each probe.
func (s *State) Summarize(endedAt time.Time) Summary {
	sum := Summary{
		SessionID:    s.SessionID,
		ChildID:      s.ChildID,
		Questions:    len(s.Answers),
		Duration:     endedAt.Sub(s.StartTime),
		EndReason:    s.EndReason,
		EarlyExit:    s.EarlyExit,
		ProbeResults: make(map[string]probe.Result),
	}

	probeCorrect := make(map[string]int)
	probeTotal := make(map[string]int)

	for i, ans := range s.Answers {
		if ans.Correct {
			sum.Correct++
		}
		if i < len(s.Plan.Slots) && s.Plan.Slots[i].Probe {
			probeTotal[ans.Topic]++
			if ans.Correct {
				probeCorrect[ans.Topic]++
			}
			continue
		}
		sum.GradedAnswers = append(sum.GradedAnswers, ans)
	}

	for topic, total := range probeTotal {
		sum.ProbeResults[topic] = probe.Evaluate(probeCorrect[topic], total)
	}
	return sum
}
