package profile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/probe"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/topics"
)

// QuizAnswer is one graded answer from a finished session, in original
// answer order.
type QuizAnswer struct {
	Topic      string
	Difficulty string
	Correct    bool
	TimeMs     int
}

// QuizResult is a finished session ready for ingestion: the graded
// answer stream plus the scored retention probes.
type QuizResult struct {
	SessionID string
	ChildID   string
	FamilyID  string
	SubjectID string

	// Answers is the graded stream; ProbeAnswers are the raw answers
	// from probe blocks, logged but excluded from estimator updates.
	Answers      []QuizAnswer
	ProbeAnswers []QuizAnswer
	Probes       map[string]probe.Result
	Plan         []store.PlanSlotSummary
	EndReason    string
	EarlyExit    bool
	ReviewMode   bool
	Duration     time.Duration
	CompletedAt  time.Time
}

// ProcessQuizResult folds a finished session into the child's profile:
// every graded answer updates its topic's posterior in answer order,
// probe outcomes adjust their schedules, newly mastered topics get a
// probe schedule, and the updated profile is persisted. The answer and
// session events are appended to the log best-effort.
func (s *Service) ProcessQuizResult(ctx context.Context, res QuizResult) (*mastery.Profile, error) {
	if res.ChildID == "" {
		return nil, fmt.Errorf("quiz result missing child id")
	}

	p, err := s.fetchOrInit(ctx, res.ChildID, res.FamilyID)
	if err != nil {
		return nil, err
	}

	now := res.CompletedAt
	if now.IsZero() {
		now = s.now()
	}
	params := s.Params()

	touched := make(map[string]bool)
	for _, ans := range res.Answers {
		subject := string(topics.SubjectOf(ans.Topic))
		tm := p.Topic(ans.Topic, subject, params)
		before := mastery.BandFor(tm.PKnown)
		tm.RecordOutcome(ans.Correct, ans.TimeMs, params, now)
		touched[ans.Topic] = true

		s.recordTransition(ctx, res.ChildID, ans.Topic, before, mastery.BandFor(tm.PKnown), tm.PKnown, "quiz")

		err := s.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:  res.SessionID,
			ChildID:    res.ChildID,
			Topic:      ans.Topic,
			SubjectID:  subject,
			Difficulty: ans.Difficulty,
			Correct:    ans.Correct,
			TimeMs:     ans.TimeMs,
			Timestamp:  now,
		})
		if err != nil {
			s.log.Warn("answer event append failed",
				zap.String("sessionId", res.SessionID),
				zap.String("topic", ans.Topic),
				zap.Error(err))
		}
	}

	for _, ans := range res.ProbeAnswers {
		err := s.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:  res.SessionID,
			ChildID:    res.ChildID,
			Topic:      ans.Topic,
			SubjectID:  string(topics.SubjectOf(ans.Topic)),
			Difficulty: ans.Difficulty,
			Probe:      true,
			Correct:    ans.Correct,
			TimeMs:     ans.TimeMs,
			Timestamp:  now,
		})
		if err != nil {
			s.log.Warn("probe answer event append failed",
				zap.String("sessionId", res.SessionID),
				zap.String("topic", ans.Topic),
				zap.Error(err))
		}
	}

	// Probe outcomes, in stable topic order.
	probeTopics := make([]string, 0, len(res.Probes))
	for topic := range res.Probes {
		probeTopics = append(probeTopics, topic)
	}
	sort.Strings(probeTopics)
	for _, topic := range probeTopics {
		s.applyProbeResult(ctx, p, topic, res.Probes[topic], res.SessionID, now)
	}

	// Topics that crossed into the mastered band start their probe
	// schedule now.
	for topic := range touched {
		probe.ScheduleIfMastered(p.TopicMastery[topic], now)
	}

	p.TotalQuizzes++
	p.TotalQuestions += len(res.Answers)
	p.Touch(now)

	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}

	err = s.events.AppendQuizSession(ctx, store.QuizSessionEventData{
		SessionID:     res.SessionID,
		ChildID:       res.ChildID,
		SubjectID:     res.SubjectID,
		QuestionCount: len(res.Answers) + probeQuestionCount(res.Probes),
		CorrectCount:  correctCount(res),
		EndReason:     res.EndReason,
		EarlyExit:     res.EarlyExit,
		ReviewMode:    res.ReviewMode,
		Duration:      res.Duration,
		Plan:          res.Plan,
	})
	if err != nil {
		s.log.Warn("session event append failed",
			zap.String("sessionId", res.SessionID),
			zap.Error(err))
	}

	s.log.Info("quiz result processed",
		zap.String("childId", res.ChildID),
		zap.String("sessionId", res.SessionID),
		zap.Int("answers", len(res.Answers)),
		zap.Int("probes", len(res.Probes)),
		zap.String("endReason", res.EndReason))
	return p, nil
}

// ProcessProbeResult applies a standalone probe outcome to a child's
// profile. The topic must already have a mastery record; probes are
// only ever scheduled for observed topics.
func (s *Service) ProcessProbeResult(ctx context.Context, childID, topic string, res probe.Result) (*mastery.Profile, error) {
	p, err := s.profiles.Get(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("no profile for child %q", childID)
	}
	if _, ok := p.TopicMastery[topic]; !ok {
		return nil, fmt.Errorf("no mastery record for topic %q", topic)
	}

	s.applyProbeResult(ctx, p, topic, res, "", s.now())
	p.Touch(s.now())
	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) applyProbeResult(ctx context.Context, p *mastery.Profile, topic string, res probe.Result, sessionID string, now time.Time) {
	tm, ok := p.TopicMastery[topic]
	if !ok {
		s.log.Warn("probe result for unknown topic",
			zap.String("childId", p.ChildID),
			zap.String("topic", topic))
		return
	}

	before := mastery.BandFor(tm.PKnown)
	probe.RecordResult(tm, res, now)
	s.recordTransition(ctx, p.ChildID, topic, before, mastery.BandFor(tm.PKnown), tm.PKnown, "probe")

	err := s.events.AppendProbe(ctx, store.ProbeEventData{
		ChildID:          p.ChildID,
		Topic:            topic,
		Correct:          res.Correct,
		Total:            res.Total,
		Passed:           res.Passed,
		NextIntervalDays: tm.ProbeIntervalDays,
		SessionID:        sessionID,
		Timestamp:        now,
	})
	if err != nil {
		s.log.Warn("probe event append failed",
			zap.String("childId", p.ChildID),
			zap.String("topic", topic),
			zap.Error(err))
	}
}

func probeQuestionCount(probes map[string]probe.Result) int {
	n := 0
	for _, res := range probes {
		n += res.Total
	}
	return n
}

func correctCount(res QuizResult) int {
	n := 0
	for _, ans := range res.Answers {
		if ans.Correct {
			n++
		}
	}
	for _, pr := range res.Probes {
		n += pr.Correct
	}
	return n
}
