package mastery

import (
	"time"

	"github.com/abhisek/adaptiq/internal/bkt"
)

// SchemaVersion is the current profile document schema. Migrations are
// additive only: a loaded document with a lower version is usable
// as-is, and the next write stamps the current version.
const SchemaVersion = 1

// Profile is the per-child learner aggregate. One profile exists per
// child, created lazily on the first signal, and is mutated only by
// this module.
type Profile struct {
	ChildID        string                   `json:"childId"`
	FamilyID       string                   `json:"familyId"`
	TopicMastery   map[string]*TopicMastery `json:"topicMastery"`
	TotalQuizzes   int                      `json:"totalQuizzes"`
	TotalQuestions int                      `json:"totalQuestions"`
	LastUpdated    time.Time                `json:"lastUpdated"`
	Version        int                      `json:"version"`
}

// NewProfile returns the zero-value profile for a child. Calling it
// for the same identifiers always yields the same starting state.
func NewProfile(childID, familyID string) *Profile {
	return &Profile{
		ChildID:      childID,
		FamilyID:     familyID,
		TopicMastery: make(map[string]*TopicMastery),
		Version:      SchemaVersion,
	}
}

// Topic returns the mastery record for a topic, creating it at the
// grade prior on first access.
func (p *Profile) Topic(topic, subjectID string, params bkt.Params) *TopicMastery {
	if p.TopicMastery == nil {
		p.TopicMastery = make(map[string]*TopicMastery)
	}
	if tm, ok := p.TopicMastery[topic]; ok {
		return tm
	}
	tm := NewTopicMastery(topic, subjectID, params)
	p.TopicMastery[topic] = tm
	return tm
}

// PKnownOf returns the posterior for a topic, or the neutral default
// when the topic has never been observed.
func (p *Profile) PKnownOf(topic string) float64 {
	if tm, ok := p.TopicMastery[topic]; ok {
		return tm.PKnown
	}
	return DefaultPKnown
}

// MasteryPercent returns the share of tracked topics in the mastered
// band, as a percentage. Zero when nothing is tracked yet.
func (p *Profile) MasteryPercent() float64 {
	if len(p.TopicMastery) == 0 {
		return 0
	}
	mastered := 0
	for _, tm := range p.TopicMastery {
		if BandFor(tm.PKnown) == BandMastered {
			mastered++
		}
	}
	return 100 * float64(mastered) / float64(len(p.TopicMastery))
}

// Touch stamps the modification metadata before a write. The version
// counter is last-writer-wins; concurrent writers are not reconciled.
func (p *Profile) Touch(now time.Time) {
	p.LastUpdated = now
	if p.Version < SchemaVersion {
		p.Version = SchemaVersion
	}
}
