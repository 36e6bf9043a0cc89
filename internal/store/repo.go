package store

import (
	"context"
	"time"

	"github.com/abhisek/adaptiq/internal/mastery"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures one answered question for the event log.
type AnswerEventData struct {
	SessionID  string
	ChildID    string
	Topic      string
	SubjectID  string
	Difficulty string
	Probe      bool
	Correct    bool
	TimeMs     int
	Timestamp  time.Time // domain time of the answer; zero means now
}

// AnswerRecord is an answer read back from the log, with its ordering
// metadata.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// PlanSlotSummary is one composed plan slot as recorded on the
// session event.
type PlanSlotSummary struct {
	Topic      string
	Difficulty string
	Probe      bool
}

// QuizSessionEventData captures one finished session for the event log.
type QuizSessionEventData struct {
	SessionID     string
	ChildID       string
	SubjectID     string
	QuestionCount int
	CorrectCount  int
	EndReason     string
	EarlyExit     bool
	ReviewMode    bool
	Duration      time.Duration
	Plan          []PlanSlotSummary
}

// EvaluationEventData captures an ingested evaluation result.
type EvaluationEventData struct {
	EvaluationID string
	ChildID      string
	SubjectID    string
	Score        float64
	WeakTopics   []string
	StrongTopics []string
	TopicScores  map[string]float64
}

// ProbeEventData captures one scored retention probe.
type ProbeEventData struct {
	ChildID          string
	Topic            string
	Correct          int
	Total            int
	Passed           bool
	NextIntervalDays int
	SessionID        string
	Timestamp        time.Time // domain time of the probe; zero means now
}

// ProbeRecord is a probe outcome read back from the log, with its
// ordering metadata.
type ProbeRecord struct {
	Sequence  int64
	Timestamp time.Time
	ProbeEventData
}

// MasteryTransitionData captures a band change.
type MasteryTransitionData struct {
	ChildID  string
	Topic    string
	FromBand string
	ToBand   string
	PKnown   float64
	Trigger  string
}

// ProfileRepo manages the current profile document per child.
type ProfileRepo interface {
	// Get returns the child's profile, or (nil, nil) when none exists.
	Get(ctx context.Context, childID string) (*mastery.Profile, error)

	// Put replaces the child's profile document (last writer wins) and
	// notifies subscribers.
	Put(ctx context.Context, p *mastery.Profile) error

	// Subscribe registers a callback invoked after every successful
	// Put. The returned func unregisters it.
	Subscribe(fn func(*mastery.Profile)) func()
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendQuizSession(ctx context.Context, data QuizSessionEventData) error
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error
	AppendProbe(ctx context.Context, data ProbeEventData) error
	AppendMasteryTransition(ctx context.Context, data MasteryTransitionData) error

	// AnswerHistory returns a child's answers ordered by sequence,
	// oldest first.
	AnswerHistory(ctx context.Context, childID string, opts QueryOpts) ([]AnswerRecord, error)

	// ProbeHistory returns a child's probe outcomes ordered by
	// sequence, oldest first.
	ProbeHistory(ctx context.Context, childID string, opts QueryOpts) ([]ProbeRecord, error)

	// LastSessionEnd returns the timestamp of the child's most recent
	// session event in a subject, or the zero time when none exists.
	LastSessionEnd(ctx context.Context, childID, subjectID string) (time.Time, error)

	// LastSequence returns the most recently assigned global sequence
	// number, zero when the log is empty.
	LastSequence(ctx context.Context) (int64, error)
}

// Snapshot represents a point-in-time capture of a child's profile.
type Snapshot struct {
	ChildID   string
	Sequence  int64
	Timestamp time.Time
	Profile   *mastery.Profile
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the child's most recent snapshot, or nil if none
	// exist.
	Latest(ctx context.Context, childID string) (*Snapshot, error)

	// Prune deletes all but the child's N most recent snapshots.
	Prune(ctx context.Context, childID string, keep int) error
}
