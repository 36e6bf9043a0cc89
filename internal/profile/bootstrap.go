package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/probe"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/topics"
)

// snapshotKeep is how many snapshots per child survive pruning.
const snapshotKeep = 5

// BootstrapProfile rebuilds a child's profile from the event log and
// persists the result, replacing whatever profile document exists.
// Answer and probe events are merged by global sequence, so a failed
// probe's demotion lands between the answers exactly where it did
// live, and a bootstrapped profile matches one built incrementally
// from the same history. Probe-block answers are logged but skipped;
// the scored ProbeEvent carries their effect.
func (s *Service) BootstrapProfile(ctx context.Context, childID, familyID string) (*mastery.Profile, error) {
	answers, err := s.events.AnswerHistory(ctx, childID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load answer history: %w", err)
	}
	probes, err := s.events.ProbeHistory(ctx, childID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load probe history: %w", err)
	}

	p := mastery.NewProfile(childID, familyID)
	params := s.Params()

	sessions := make(map[string]bool)
	replayed := 0

	// Newly mastered topics get their probe schedule at session
	// boundaries, as live processing schedules them at session end.
	curSession := ""
	touched := make(map[string]bool)
	var lastSeen time.Time
	flush := func() {
		for topic := range touched {
			probe.ScheduleIfMastered(p.TopicMastery[topic], lastSeen)
		}
		touched = make(map[string]bool)
	}

	ai, pi := 0, 0
	for ai < len(answers) || pi < len(probes) {
		if pi >= len(probes) || (ai < len(answers) && answers[ai].Sequence < probes[pi].Sequence) {
			rec := answers[ai]
			ai++
			if rec.SessionID != curSession {
				flush()
				curSession = rec.SessionID
			}
			lastSeen = rec.Timestamp
			sessions[rec.SessionID] = true
			if rec.Probe {
				continue
			}
			tm := p.Topic(rec.Topic, rec.SubjectID, params)
			tm.RecordOutcome(rec.Correct, rec.TimeMs, params, rec.Timestamp)
			touched[rec.Topic] = true
			replayed++
			continue
		}

		rec := probes[pi]
		pi++
		if rec.SessionID != "" {
			if rec.SessionID != curSession {
				flush()
				curSession = rec.SessionID
			}
			sessions[rec.SessionID] = true
		}
		lastSeen = rec.Timestamp
		tm, ok := p.TopicMastery[rec.Topic]
		if !ok {
			s.log.Warn("probe event for topic with no replayed answers",
				zap.String("childId", childID),
				zap.String("topic", rec.Topic))
			continue
		}
		probe.RecordResult(tm, probe.Result{
			Correct: rec.Correct,
			Total:   rec.Total,
			Passed:  rec.Passed,
		}, rec.Timestamp)
	}
	flush()

	p.TotalQuizzes = len(sessions)
	p.TotalQuestions = replayed
	p.Touch(s.now())

	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("profile bootstrapped from event log",
		zap.String("childId", childID),
		zap.Int("answers", replayed),
		zap.Int("sessions", len(sessions)),
		zap.Int("topics", len(p.TopicMastery)))
	return p, nil
}

// SnapshotProfile stores a point-in-time snapshot of the child's
// profile, stamped with the current event sequence, and prunes old
// snapshots.
func (s *Service) SnapshotProfile(ctx context.Context, childID string) (*store.Snapshot, error) {
	p, err := s.profiles.Get(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("no profile for child %q", childID)
	}

	seq, err := s.events.LastSequence(ctx)
	if err != nil {
		return nil, err
	}

	snap := &store.Snapshot{
		ChildID:   childID,
		Sequence:  seq,
		Timestamp: s.now(),
		Profile:   p,
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.snapshots.Prune(ctx, childID, snapshotKeep); err != nil {
		s.log.Warn("snapshot prune failed",
			zap.String("childId", childID),
			zap.Error(err))
	}

	s.log.Info("profile snapshot saved",
		zap.String("childId", childID),
		zap.Int64("sequence", seq))
	return snap, nil
}

// LastSessionEnd returns when the child last finished a session in a
// subject, for gap-review detection at composition time. Zero when no
// session has been recorded.
func (s *Service) LastSessionEnd(ctx context.Context, childID string, subject topics.Subject) (time.Time, error) {
	return s.events.LastSessionEnd(ctx, childID, string(subject))
}
