// Package session owns the runtime state of one quiz session: the
// composed plan, the live answer stream, and the behavior monitor that
// may end the session early. Session state is created at start, owned
// exclusively by the session, and discarded at the end — nothing here
// is persisted or shared across sessions.
package session

import (
	"math/rand"
	"time"

	"github.com/abhisek/adaptiq/internal/compose"
	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/probe"
	"github.com/abhisek/adaptiq/internal/quizgen"
	"github.com/abhisek/adaptiq/internal/topics"
)

// Slot is one planned question: a topic at a target difficulty.
// Probe slots belong to a retention probe block rather than the
// graded mix.
type Slot struct {
	Topic      string
	Difficulty quizgen.Difficulty
	Probe      bool
}

// Plan is the ordered question plan for one session.
type Plan struct {
	Slots       []Slot
	ProbeTopics []string
	ReviewMode  bool
}

// Topics returns the ordered topic list for the question generator.
func (p Plan) Topics() []string {
	out := make([]string, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = s.Topic
	}
	return out
}

// Difficulties returns the per-topic difficulty map for the generator.
func (p Plan) Difficulties() map[string]quizgen.Difficulty {
	m := make(map[string]quizgen.Difficulty, len(p.Slots))
	for _, s := range p.Slots {
		if _, ok := m[s.Topic]; !ok {
			m[s.Topic] = s.Difficulty
		}
	}
	return m
}

// BuildPlan composes a session plan: classification and the stratified
// mix, gap-review biasing, and due retention probes (a 3-question
// block per probe topic, served first since they cover mastered
// material). The rand source is injected so tests can be
// deterministic.
func BuildPlan(
	p *mastery.Profile,
	subject topics.Subject,
	questionCount int,
	lastSession time.Time,
	allowDifficult bool,
	now time.Time,
	rng *rand.Rand,
) Plan {
	classification := compose.Classify(p, topics.IDsBySubject(subject))
	mix := compose.MixDifficulty(classification, questionCount, allowDifficult, rng)

	reviewMode := compose.ShouldEnterReviewMode(lastSession, now)
	if reviewMode {
		mix = compose.MergeReviewTopics(mix, compose.SelectReviewTopics(p, string(subject), now), questionCount)
	}

	var probeTopics []string
	for _, topic := range probe.SelectDue(p, now) {
		if topics.SubjectOf(topic) == subject {
			probeTopics = append(probeTopics, topic)
		}
	}

	plan := Plan{ProbeTopics: probeTopics, ReviewMode: reviewMode}
	for _, topic := range probeTopics {
		for i := 0; i < probe.Questions; i++ {
			plan.Slots = append(plan.Slots, Slot{Topic: topic, Difficulty: quizgen.DifficultyReview, Probe: true})
		}
	}
	for _, topic := range mix.ReviewTopics {
		plan.Slots = append(plan.Slots, Slot{Topic: topic, Difficulty: quizgen.DifficultyReview})
	}
	for _, topic := range mix.TargetTopics {
		plan.Slots = append(plan.Slots, Slot{Topic: topic, Difficulty: quizgen.DifficultyTarget})
	}
	for _, topic := range mix.WeakTopics {
		plan.Slots = append(plan.Slots, Slot{Topic: topic, Difficulty: quizgen.DifficultyWeak})
	}
	return plan
}
