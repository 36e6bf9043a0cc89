// Package profile owns the lifecycle of mastery profiles: lazy
// creation, quiz and evaluation ingestion, probe results, event-log
// bootstrap, and snapshotting. All mutation of a persisted profile
// flows through the Service so persistence, event appends, and band
// transition audit stay consistent.
package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/store"
)

// Service coordinates profile reads and writes against the store.
type Service struct {
	profiles  store.ProfileRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       *zap.Logger

	grade int
	retry RetryConfig
	now   func() time.Time
}

// NewService creates a profile service for a child in the given grade.
func NewService(st *store.Store, logger *zap.Logger, grade int) *Service {
	return &Service{
		profiles:  st.Profiles(),
		events:    st.Events(),
		snapshots: st.Snapshots(),
		log:       logger,
		grade:     grade,
		retry:     DefaultRetryConfig(),
		now:       time.Now,
	}
}

// Params returns the BKT parameter set for the service's grade band.
func (s *Service) Params() bkt.Params {
	return bkt.ParamsForGrade(s.grade)
}

// Get returns the child's profile, or (nil, nil) when none exists.
func (s *Service) Get(ctx context.Context, childID string) (*mastery.Profile, error) {
	return s.profiles.Get(ctx, childID)
}

// InitializeProfile returns the child's profile, creating and
// persisting the zero-value profile on first contact. Repeated calls
// for the same child are idempotent.
func (s *Service) InitializeProfile(ctx context.Context, childID, familyID string) (*mastery.Profile, error) {
	p, err := s.profiles.Get(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p != nil {
		return p, nil
	}

	p = mastery.NewProfile(childID, familyID)
	p.Touch(s.now())
	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("profile initialized",
		zap.String("childId", childID),
		zap.String("familyId", familyID))
	return p, nil
}

// fetchOrInit loads the profile or builds a fresh in-memory one. The
// fresh profile is persisted together with whatever operation needed
// it, not separately.
func (s *Service) fetchOrInit(ctx context.Context, childID, familyID string) (*mastery.Profile, error) {
	p, err := s.profiles.Get(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		p = mastery.NewProfile(childID, familyID)
	}
	return p, nil
}

// persist writes the profile with the retry policy. Persistence
// failure after retries is surfaced to the caller; the in-memory
// profile is not rolled back.
func (s *Service) persist(ctx context.Context, p *mastery.Profile) error {
	err := withRetry(ctx, s.retry, func(ctx context.Context) error {
		return s.profiles.Put(ctx, p)
	})
	if err != nil {
		s.log.Error("profile write failed",
			zap.String("childId", p.ChildID),
			zap.Error(err))
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// recordTransition appends a band-change audit event. Audit appends
// are best-effort: a failure is logged, never propagated.
func (s *Service) recordTransition(ctx context.Context, childID, topic string, from, to mastery.Band, pKnown float64, trigger string) {
	if from == to {
		return
	}
	err := s.events.AppendMasteryTransition(ctx, store.MasteryTransitionData{
		ChildID:  childID,
		Topic:    topic,
		FromBand: string(from),
		ToBand:   string(to),
		PKnown:   pKnown,
		Trigger:  trigger,
	})
	if err != nil {
		s.log.Warn("mastery transition append failed",
			zap.String("childId", childID),
			zap.String("topic", topic),
			zap.Error(err))
		return
	}
	s.log.Info("mastery band transition",
		zap.String("childId", childID),
		zap.String("topic", topic),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Float64("pKnown", pKnown))
}
