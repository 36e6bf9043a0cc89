package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/answerevent"
	"github.com/abhisek/adaptiq/ent/probeevent"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
)

// eventRepo implements EventRepo using the ent client plus the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	create := r.client.AnswerEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetChildID(data.ChildID).
		SetTopic(data.Topic).
		SetSubjectID(data.SubjectID).
		SetDifficulty(data.Difficulty).
		SetProbe(data.Probe).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs)
	if !data.Timestamp.IsZero() {
		create.SetTimestamp(data.Timestamp)
	}
	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizSession(ctx context.Context, data QuizSessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	plan := make([]schema.PlanSlot, 0, len(data.Plan))
	for _, slot := range data.Plan {
		plan = append(plan, schema.PlanSlot{
			Topic:      slot.Topic,
			Difficulty: slot.Difficulty,
			Probe:      slot.Probe,
		})
	}
	_, err = r.client.QuizSessionEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetChildID(data.ChildID).
		SetSubjectID(data.SubjectID).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		SetEndReason(data.EndReason).
		SetEarlyExit(data.EarlyExit).
		SetReviewMode(data.ReviewMode).
		SetDurationMs(data.Duration.Milliseconds()).
		SetPlan(plan).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append quiz session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seq).
		SetEvaluationID(data.EvaluationID).
		SetChildID(data.ChildID).
		SetSubjectID(data.SubjectID).
		SetScore(data.Score).
		SetWeakTopics(data.WeakTopics).
		SetStrongTopics(data.StrongTopics).
		SetTopicScores(data.TopicScores).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendProbe(ctx context.Context, data ProbeEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	create := r.client.ProbeEvent.Create().
		SetSequence(seq).
		SetChildID(data.ChildID).
		SetTopic(data.Topic).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetNextIntervalDays(data.NextIntervalDays).
		SetSessionID(data.SessionID)
	if !data.Timestamp.IsZero() {
		create.SetTimestamp(data.Timestamp)
	}
	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("append probe event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMasteryTransition(ctx context.Context, data MasteryTransitionData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.MasteryTransitionEvent.Create().
		SetSequence(seq).
		SetChildID(data.ChildID).
		SetTopic(data.Topic).
		SetFromBand(data.FromBand).
		SetToBand(data.ToBand).
		SetPKnown(data.PKnown).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append mastery transition event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerHistory(ctx context.Context, childID string, opts QueryOpts) ([]AnswerRecord, error) {
	q := r.client.AnswerEvent.Query().
		Where(answerevent.ChildID(childID))

	if opts.After > 0 {
		q = q.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(answerevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(answerevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer history: %w", err)
	}

	records := make([]AnswerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AnswerRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:  row.SessionID,
				ChildID:    row.ChildID,
				Topic:      row.Topic,
				SubjectID:  row.SubjectID,
				Difficulty: row.Difficulty,
				Probe:      row.Probe,
				Correct:    row.Correct,
				TimeMs:     row.TimeMs,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) ProbeHistory(ctx context.Context, childID string, opts QueryOpts) ([]ProbeRecord, error) {
	q := r.client.ProbeEvent.Query().
		Where(probeevent.ChildID(childID))

	if opts.After > 0 {
		q = q.Where(probeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(probeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(probeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(probeevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(probeevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query probe history: %w", err)
	}

	records := make([]ProbeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ProbeRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ProbeEventData: ProbeEventData{
				ChildID:          row.ChildID,
				Topic:            row.Topic,
				Correct:          row.Correct,
				Total:            row.Total,
				Passed:           row.Passed,
				NextIntervalDays: row.NextIntervalDays,
				SessionID:        row.SessionID,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) LastSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) LastSessionEnd(ctx context.Context, childID, subjectID string) (time.Time, error) {
	row, err := r.client.QuizSessionEvent.Query().
		Where(
			quizsessionevent.ChildID(childID),
			quizsessionevent.SubjectID(subjectID),
		).
		Order(ent.Desc(quizsessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last session: %w", err)
	}
	return row.Timestamp, nil
}
