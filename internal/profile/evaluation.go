package profile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/fusion"
	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/topics"
)

// Evidence levels assumed when an evaluation names a topic without a
// per-topic score.
const (
	weakTopicEvidence   = 0.3
	strongTopicEvidence = 0.9
)

// Evaluation is a formal assessment result to fold into the mastery
// model. WeakTopics and StrongTopics carry topic names without scores;
// TopicScores carries per-topic accuracy where the source reported it.
type Evaluation struct {
	EvaluationID  string             `json:"evaluationId"`
	ChildID       string             `json:"childId"`
	FamilyID      string             `json:"familyId"`
	SubjectID     string             `json:"subjectId"`
	Score         float64            `json:"score"`
	QuestionCount int                `json:"questionCount"`
	WeakTopics    []string           `json:"weakTopics,omitempty"`
	StrongTopics  []string           `json:"strongTopics,omitempty"`
	TopicScores   map[string]float64 `json:"topicScores,omitempty"`
	CompletedAt   time.Time          `json:"completedAt"`
}

// Validate checks the fields a strict ingestion requires.
func (e Evaluation) Validate() error {
	if e.EvaluationID == "" {
		return fmt.Errorf("evaluation missing id")
	}
	if e.ChildID == "" {
		return fmt.Errorf("evaluation missing child id")
	}
	if e.Score < 0 || e.Score > 1 {
		return fmt.Errorf("evaluation score %v out of range", e.Score)
	}
	for topic := range e.topicEvidence() {
		if topics.SubjectOf(topic) == "" {
			return fmt.Errorf("evaluation references unknown topic %q", topic)
		}
	}
	return nil
}

// topicEvidence flattens an evaluation into per-topic evidence levels.
// Explicit scores win over the weak/strong lists.
func (e Evaluation) topicEvidence() map[string]float64 {
	evidence := make(map[string]float64)
	for _, topic := range e.WeakTopics {
		evidence[topic] = weakTopicEvidence
	}
	for _, topic := range e.StrongTopics {
		evidence[topic] = strongTopicEvidence
	}
	for topic, score := range e.TopicScores {
		evidence[topic] = score
	}
	return evidence
}

// ProcessEvaluation folds an evaluation into the child's profile.
// Each named topic's posterior becomes the fusion of the existing
// quiz-derived signal and the evaluation's evidence; topics with no
// prior record adopt the evaluation evidence directly. Strict: any
// validation or persistence failure is returned to the caller.
func (s *Service) ProcessEvaluation(ctx context.Context, eval Evaluation) (*mastery.Profile, error) {
	if err := eval.Validate(); err != nil {
		return nil, err
	}

	p, err := s.fetchOrInit(ctx, eval.ChildID, eval.FamilyID)
	if err != nil {
		return nil, err
	}

	now := eval.CompletedAt
	if now.IsZero() {
		now = s.now()
	}
	params := s.Params()

	evidence := eval.topicEvidence()
	names := make([]string, 0, len(evidence))
	for topic := range evidence {
		names = append(names, topic)
	}
	sort.Strings(names)

	for _, topic := range names {
		subject := string(topics.SubjectOf(topic))
		tm := p.Topic(topic, subject, params)
		before := mastery.BandFor(tm.PKnown)

		signals := []fusion.Signal{{
			Type:        mastery.SignalEvaluation,
			PKnown:      evidence[topic],
			Confidence:  fusion.ConfidenceEvaluation,
			RecencyDays: daysBetween(eval.CompletedAt, now),
			SampleSize:  evalSampleSize(eval),
		}}
		if tm.Attempts > 0 {
			signals = append(signals, fusion.Signal{
				Type:        mastery.SignalQuiz,
				PKnown:      tm.PKnown,
				Confidence:  fusion.ConfidenceQuiz,
				RecencyDays: daysBetween(tm.LastAttempt, now),
				SampleSize:  tm.Attempts,
			})
		}

		fused := fusion.Fuse(signals)
		tm.PKnown = fused.PKnown
		tm.LastSignalType = fused.Dominant

		s.recordTransition(ctx, eval.ChildID, topic, before, mastery.BandFor(tm.PKnown), tm.PKnown, "evaluation")
	}

	p.Touch(now)
	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}

	err = s.events.AppendEvaluation(ctx, store.EvaluationEventData{
		EvaluationID: eval.EvaluationID,
		ChildID:      eval.ChildID,
		SubjectID:    eval.SubjectID,
		Score:        eval.Score,
		WeakTopics:   eval.WeakTopics,
		StrongTopics: eval.StrongTopics,
		TopicScores:  eval.TopicScores,
	})
	if err != nil {
		s.log.Warn("evaluation event append failed",
			zap.String("evaluationId", eval.EvaluationID),
			zap.Error(err))
	}

	s.log.Info("evaluation processed",
		zap.String("childId", eval.ChildID),
		zap.String("evaluationId", eval.EvaluationID),
		zap.Int("topics", len(names)),
		zap.Float64("score", eval.Score))
	return p, nil
}

// IngestEvaluation is the best-effort tier of evaluation intake for
// callers that must not fail on bad input (bulk imports, third-party
// feeds). Failures are logged and swallowed.
func (s *Service) IngestEvaluation(ctx context.Context, eval Evaluation) {
	if _, err := s.ProcessEvaluation(ctx, eval); err != nil {
		s.log.Warn("evaluation ingest skipped",
			zap.String("evaluationId", eval.EvaluationID),
			zap.String("childId", eval.ChildID),
			zap.Error(err))
	}
}

// evalSampleSize returns the evaluation's question count, defaulting
// to one so the fusion weight never degenerates to zero.
func evalSampleSize(eval Evaluation) int {
	if eval.QuestionCount > 0 {
		return eval.QuestionCount
	}
	return 1
}

// daysBetween returns the age of then relative to now in days, never
// negative. A zero then counts as current.
func daysBetween(then, now time.Time) float64 {
	if then.IsZero() || !then.Before(now) {
		return 0
	}
	return now.Sub(then).Hours() / 24
}
