// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/answerevent"
	"github.com/abhisek/adaptiq/ent/evaluationevent"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/probeevent"
	"github.com/abhisek/adaptiq/ent/profile"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/schema"
	"github.com/abhisek/adaptiq/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent            = "AnswerEvent"
	TypeEvaluationEvent        = "EvaluationEvent"
	TypeMasteryTransitionEvent = "MasteryTransitionEvent"
	TypeProbeEvent             = "ProbeEvent"
	TypeProfile                = "Profile"
	TypeQuizSessionEvent       = "QuizSessionEvent"
	TypeSnapshot               = "Snapshot"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	child_id      *string
	topic         *string
	subject_id    *string
	difficulty    *string
	probe         *bool
	correct       *bool
	time_ms       *int
	addtime_ms    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnswerEvent, error)
	predicates    []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChildID sets the "child_id" field.
func (m *AnswerEventMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *AnswerEventMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *AnswerEventMutation) ResetChildID() {
	m.child_id = nil
}

// SetTopic sets the "topic" field.
func (m *AnswerEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *AnswerEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *AnswerEventMutation) ResetTopic() {
	m.topic = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *AnswerEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *AnswerEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *AnswerEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AnswerEventMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AnswerEventMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AnswerEventMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetProbe sets the "probe" field.
func (m *AnswerEventMutation) SetProbe(b bool) {
	m.probe = &b
}

// Probe returns the value of the "probe" field in the mutation.
func (m *AnswerEventMutation) Probe() (r bool, exists bool) {
	v := m.probe
	if v == nil {
		return
	}
	return *v, true
}

// OldProbe returns the old "probe" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldProbe(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbe: %w", err)
	}
	return oldValue.Probe, nil
}

// ResetProbe resets all changes to the "probe" field.
func (m *AnswerEventMutation) ResetProbe() {
	m.probe = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AnswerEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AnswerEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AnswerEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AnswerEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AnswerEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, answerevent.FieldSessionID)
	}
	if m.child_id != nil {
		fields = append(fields, answerevent.FieldChildID)
	}
	if m.topic != nil {
		fields = append(fields, answerevent.FieldTopic)
	}
	if m.subject_id != nil {
		fields = append(fields, answerevent.FieldSubjectID)
	}
	if m.difficulty != nil {
		fields = append(fields, answerevent.FieldDifficulty)
	}
	if m.probe != nil {
		fields = append(fields, answerevent.FieldProbe)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.time_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldSessionID:
		return m.SessionID()
	case answerevent.FieldChildID:
		return m.ChildID()
	case answerevent.FieldTopic:
		return m.Topic()
	case answerevent.FieldSubjectID:
		return m.SubjectID()
	case answerevent.FieldDifficulty:
		return m.Difficulty()
	case answerevent.FieldProbe:
		return m.Probe()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldTimeMs:
		return m.TimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerevent.FieldChildID:
		return m.OldChildID(ctx)
	case answerevent.FieldTopic:
		return m.OldTopic(ctx)
	case answerevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case answerevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case answerevent.FieldProbe:
		return m.OldProbe(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerevent.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case answerevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case answerevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case answerevent.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case answerevent.FieldProbe:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbe(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addtime_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldTimeMs:
		return m.AddedTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerevent.FieldChildID:
		m.ResetChildID()
		return nil
	case answerevent.FieldTopic:
		m.ResetTopic()
		return nil
	case answerevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case answerevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case answerevent.FieldProbe:
		m.ResetProbe()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// EvaluationEventMutation represents an operation that mutates the EvaluationEvent nodes in the graph.
type EvaluationEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	evaluation_id       *string
	child_id            *string
	subject_id          *string
	score               *float64
	addscore            *float64
	weak_topics         *[]string
	appendweak_topics   []string
	strong_topics       *[]string
	appendstrong_topics []string
	topic_scores        *map[string]float64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EvaluationEvent, error)
	predicates          []predicate.EvaluationEvent
}

var _ ent.Mutation = (*EvaluationEventMutation)(nil)

// evaluationeventOption allows management of the mutation configuration using functional options.
type evaluationeventOption func(*EvaluationEventMutation)

// newEvaluationEventMutation creates new mutation for the EvaluationEvent entity.
func newEvaluationEventMutation(c config, op Op, opts ...evaluationeventOption) *EvaluationEventMutation {
	m := &EvaluationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationEventID sets the ID field of the mutation.
func withEvaluationEventID(id int) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationEvent
		)
		m.oldValue = func(ctx context.Context) (*EvaluationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationEvent sets the old EvaluationEvent of the mutation.
func withEvaluationEvent(node *EvaluationEvent) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		m.oldValue = func(context.Context) (*EvaluationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *EvaluationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvaluationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvaluationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvaluationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvaluationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvaluationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvaluationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvaluationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *EvaluationEventMutation) SetEvaluationID(s string) {
	m.evaluation_id = &s
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *EvaluationEventMutation) EvaluationID() (r string, exists bool) {
	v := m.evaluation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldEvaluationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *EvaluationEventMutation) ResetEvaluationID() {
	m.evaluation_id = nil
}

// SetChildID sets the "child_id" field.
func (m *EvaluationEventMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *EvaluationEventMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *EvaluationEventMutation) ResetChildID() {
	m.child_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *EvaluationEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *EvaluationEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *EvaluationEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetScore sets the "score" field.
func (m *EvaluationEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EvaluationEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EvaluationEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EvaluationEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EvaluationEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetWeakTopics sets the "weak_topics" field.
func (m *EvaluationEventMutation) SetWeakTopics(s []string) {
	m.weak_topics = &s
	m.appendweak_topics = nil
}

// WeakTopics returns the value of the "weak_topics" field in the mutation.
func (m *EvaluationEventMutation) WeakTopics() (r []string, exists bool) {
	v := m.weak_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakTopics returns the old "weak_topics" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldWeakTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakTopics: %w", err)
	}
	return oldValue.WeakTopics, nil
}

// AppendWeakTopics adds s to the "weak_topics" field.
func (m *EvaluationEventMutation) AppendWeakTopics(s []string) {
	m.appendweak_topics = append(m.appendweak_topics, s...)
}

// AppendedWeakTopics returns the list of values that were appended to the "weak_topics" field in this mutation.
func (m *EvaluationEventMutation) AppendedWeakTopics() ([]string, bool) {
	if len(m.appendweak_topics) == 0 {
		return nil, false
	}
	return m.appendweak_topics, true
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (m *EvaluationEventMutation) ClearWeakTopics() {
	m.weak_topics = nil
	m.appendweak_topics = nil
	m.clearedFields[evaluationevent.FieldWeakTopics] = struct{}{}
}

// WeakTopicsCleared returns if the "weak_topics" field was cleared in this mutation.
func (m *EvaluationEventMutation) WeakTopicsCleared() bool {
	_, ok := m.clearedFields[evaluationevent.FieldWeakTopics]
	return ok
}

// ResetWeakTopics resets all changes to the "weak_topics" field.
func (m *EvaluationEventMutation) ResetWeakTopics() {
	m.weak_topics = nil
	m.appendweak_topics = nil
	delete(m.clearedFields, evaluationevent.FieldWeakTopics)
}

// SetStrongTopics sets the "strong_topics" field.
func (m *EvaluationEventMutation) SetStrongTopics(s []string) {
	m.strong_topics = &s
	m.appendstrong_topics = nil
}

// StrongTopics returns the value of the "strong_topics" field in the mutation.
func (m *EvaluationEventMutation) StrongTopics() (r []string, exists bool) {
	v := m.strong_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldStrongTopics returns the old "strong_topics" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldStrongTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrongTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrongTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrongTopics: %w", err)
	}
	return oldValue.StrongTopics, nil
}

// AppendStrongTopics adds s to the "strong_topics" field.
func (m *EvaluationEventMutation) AppendStrongTopics(s []string) {
	m.appendstrong_topics = append(m.appendstrong_topics, s...)
}

// AppendedStrongTopics returns the list of values that were appended to the "strong_topics" field in this mutation.
func (m *EvaluationEventMutation) AppendedStrongTopics() ([]string, bool) {
	if len(m.appendstrong_topics) == 0 {
		return nil, false
	}
	return m.appendstrong_topics, true
}

// ClearStrongTopics clears the value of the "strong_topics" field.
func (m *EvaluationEventMutation) ClearStrongTopics() {
	m.strong_topics = nil
	m.appendstrong_topics = nil
	m.clearedFields[evaluationevent.FieldStrongTopics] = struct{}{}
}

// StrongTopicsCleared returns if the "strong_topics" field was cleared in this mutation.
func (m *EvaluationEventMutation) StrongTopicsCleared() bool {
	_, ok := m.clearedFields[evaluationevent.FieldStrongTopics]
	return ok
}

// ResetStrongTopics resets all changes to the "strong_topics" field.
func (m *EvaluationEventMutation) ResetStrongTopics() {
	m.strong_topics = nil
	m.appendstrong_topics = nil
	delete(m.clearedFields, evaluationevent.FieldStrongTopics)
}

// SetTopicScores sets the "topic_scores" field.
func (m *EvaluationEventMutation) SetTopicScores(value map[string]float64) {
	m.topic_scores = &value
}

// TopicScores returns the value of the "topic_scores" field in the mutation.
func (m *EvaluationEventMutation) TopicScores() (r map[string]float64, exists bool) {
	v := m.topic_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicScores returns the old "topic_scores" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTopicScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicScores: %w", err)
	}
	return oldValue.TopicScores, nil
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (m *EvaluationEventMutation) ClearTopicScores() {
	m.topic_scores = nil
	m.clearedFields[evaluationevent.FieldTopicScores] = struct{}{}
}

// TopicScoresCleared returns if the "topic_scores" field was cleared in this mutation.
func (m *EvaluationEventMutation) TopicScoresCleared() bool {
	_, ok := m.clearedFields[evaluationevent.FieldTopicScores]
	return ok
}

// ResetTopicScores resets all changes to the "topic_scores" field.
func (m *EvaluationEventMutation) ResetTopicScores() {
	m.topic_scores = nil
	delete(m.clearedFields, evaluationevent.FieldTopicScores)
}

// Where appends a list predicates to the EvaluationEventMutation builder.
func (m *EvaluationEventMutation) Where(ps ...predicate.EvaluationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationEvent).
func (m *EvaluationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, evaluationevent.FieldTimestamp)
	}
	if m.evaluation_id != nil {
		fields = append(fields, evaluationevent.FieldEvaluationID)
	}
	if m.child_id != nil {
		fields = append(fields, evaluationevent.FieldChildID)
	}
	if m.subject_id != nil {
		fields = append(fields, evaluationevent.FieldSubjectID)
	}
	if m.score != nil {
		fields = append(fields, evaluationevent.FieldScore)
	}
	if m.weak_topics != nil {
		fields = append(fields, evaluationevent.FieldWeakTopics)
	}
	if m.strong_topics != nil {
		fields = append(fields, evaluationevent.FieldStrongTopics)
	}
	if m.topic_scores != nil {
		fields = append(fields, evaluationevent.FieldTopicScores)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.Sequence()
	case evaluationevent.FieldTimestamp:
		return m.Timestamp()
	case evaluationevent.FieldEvaluationID:
		return m.EvaluationID()
	case evaluationevent.FieldChildID:
		return m.ChildID()
	case evaluationevent.FieldSubjectID:
		return m.SubjectID()
	case evaluationevent.FieldScore:
		return m.Score()
	case evaluationevent.FieldWeakTopics:
		return m.WeakTopics()
	case evaluationevent.FieldStrongTopics:
		return m.StrongTopics()
	case evaluationevent.FieldTopicScores:
		return m.TopicScores()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.OldSequence(ctx)
	case evaluationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evaluationevent.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case evaluationevent.FieldChildID:
		return m.OldChildID(ctx)
	case evaluationevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case evaluationevent.FieldScore:
		return m.OldScore(ctx)
	case evaluationevent.FieldWeakTopics:
		return m.OldWeakTopics(ctx)
	case evaluationevent.FieldStrongTopics:
		return m.OldStrongTopics(ctx)
	case evaluationevent.FieldTopicScores:
		return m.OldTopicScores(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evaluationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evaluationevent.FieldEvaluationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case evaluationevent.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case evaluationevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case evaluationevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case evaluationevent.FieldWeakTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakTopics(v)
		return nil
	case evaluationevent.FieldStrongTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrongTopics(v)
		return nil
	case evaluationevent.FieldTopicScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicScores(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, evaluationevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.AddedSequence()
	case evaluationevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case evaluationevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationevent.FieldWeakTopics) {
		fields = append(fields, evaluationevent.FieldWeakTopics)
	}
	if m.FieldCleared(evaluationevent.FieldStrongTopics) {
		fields = append(fields, evaluationevent.FieldStrongTopics)
	}
	if m.FieldCleared(evaluationevent.FieldTopicScores) {
		fields = append(fields, evaluationevent.FieldTopicScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ClearField(name string) error {
	switch name {
	case evaluationevent.FieldWeakTopics:
		m.ClearWeakTopics()
		return nil
	case evaluationevent.FieldStrongTopics:
		m.ClearStrongTopics()
		return nil
	case evaluationevent.FieldTopicScores:
		m.ClearTopicScores()
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ResetField(name string) error {
	switch name {
	case evaluationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case evaluationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evaluationevent.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case evaluationevent.FieldChildID:
		m.ResetChildID()
		return nil
	case evaluationevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case evaluationevent.FieldScore:
		m.ResetScore()
		return nil
	case evaluationevent.FieldWeakTopics:
		m.ResetWeakTopics()
		return nil
	case evaluationevent.FieldStrongTopics:
		m.ResetStrongTopics()
		return nil
	case evaluationevent.FieldTopicScores:
		m.ResetTopicScores()
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent edge %s", name)
}

// MasteryTransitionEventMutation represents an operation that mutates the MasteryTransitionEvent nodes in the graph.
type MasteryTransitionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	child_id      *string
	topic         *string
	from_band     *string
	to_band       *string
	p_known       *float64
	addp_known    *float64
	trigger       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MasteryTransitionEvent, error)
	predicates    []predicate.MasteryTransitionEvent
}

var _ ent.Mutation = (*MasteryTransitionEventMutation)(nil)

// masterytransitioneventOption allows management of the mutation configuration using functional options.
type masterytransitioneventOption func(*MasteryTransitionEventMutation)

// newMasteryTransitionEventMutation creates new mutation for the MasteryTransitionEvent entity.
func newMasteryTransitionEventMutation(c config, op Op, opts ...masterytransitioneventOption) *MasteryTransitionEventMutation {
	m := &MasteryTransitionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryTransitionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryTransitionEventID sets the ID field of the mutation.
func withMasteryTransitionEventID(id int) masterytransitioneventOption {
	return func(m *MasteryTransitionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryTransitionEvent
		)
		m.oldValue = func(ctx context.Context) (*MasteryTransitionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryTransitionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryTransitionEvent sets the old MasteryTransitionEvent of the mutation.
func withMasteryTransitionEvent(node *MasteryTransitionEvent) masterytransitioneventOption {
	return func(m *MasteryTransitionEventMutation) {
		m.oldValue = func(context.Context) (*MasteryTransitionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryTransitionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryTransitionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryTransitionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryTransitionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryTransitionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MasteryTransitionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MasteryTransitionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MasteryTransitionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MasteryTransitionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MasteryTransitionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MasteryTransitionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MasteryTransitionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MasteryTransitionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetChildID sets the "child_id" field.
func (m *MasteryTransitionEventMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *MasteryTransitionEventMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *MasteryTransitionEventMutation) ResetChildID() {
	m.child_id = nil
}

// SetTopic sets the "topic" field.
func (m *MasteryTransitionEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *MasteryTransitionEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *MasteryTransitionEventMutation) ResetTopic() {
	m.topic = nil
}

// SetFromBand sets the "from_band" field.
func (m *MasteryTransitionEventMutation) SetFromBand(s string) {
	m.from_band = &s
}

// FromBand returns the value of the "from_band" field in the mutation.
func (m *MasteryTransitionEventMutation) FromBand() (r string, exists bool) {
	v := m.from_band
	if v == nil {
		return
	}
	return *v, true
}

// OldFromBand returns the old "from_band" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldFromBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromBand: %w", err)
	}
	return oldValue.FromBand, nil
}

// ResetFromBand resets all changes to the "from_band" field.
func (m *MasteryTransitionEventMutation) ResetFromBand() {
	m.from_band = nil
}

// SetToBand sets the "to_band" field.
func (m *MasteryTransitionEventMutation) SetToBand(s string) {
	m.to_band = &s
}

// ToBand returns the value of the "to_band" field in the mutation.
func (m *MasteryTransitionEventMutation) ToBand() (r string, exists bool) {
	v := m.to_band
	if v == nil {
		return
	}
	return *v, true
}

// OldToBand returns the old "to_band" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldToBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToBand: %w", err)
	}
	return oldValue.ToBand, nil
}

// ResetToBand resets all changes to the "to_band" field.
func (m *MasteryTransitionEventMutation) ResetToBand() {
	m.to_band = nil
}

// SetPKnown sets the "p_known" field.
func (m *MasteryTransitionEventMutation) SetPKnown(f float64) {
	m.p_known = &f
	m.addp_known = nil
}

// PKnown returns the value of the "p_known" field in the mutation.
func (m *MasteryTransitionEventMutation) PKnown() (r float64, exists bool) {
	v := m.p_known
	if v == nil {
		return
	}
	return *v, true
}

// OldPKnown returns the old "p_known" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldPKnown(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPKnown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPKnown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPKnown: %w", err)
	}
	return oldValue.PKnown, nil
}

// AddPKnown adds f to the "p_known" field.
func (m *MasteryTransitionEventMutation) AddPKnown(f float64) {
	if m.addp_known != nil {
		*m.addp_known += f
	} else {
		m.addp_known = &f
	}
}

// AddedPKnown returns the value that was added to the "p_known" field in this mutation.
func (m *MasteryTransitionEventMutation) AddedPKnown() (r float64, exists bool) {
	v := m.addp_known
	if v == nil {
		return
	}
	return *v, true
}

// ResetPKnown resets all changes to the "p_known" field.
func (m *MasteryTransitionEventMutation) ResetPKnown() {
	m.p_known = nil
	m.addp_known = nil
}

// SetTrigger sets the "trigger" field.
func (m *MasteryTransitionEventMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *MasteryTransitionEventMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the MasteryTransitionEvent entity.
// If the MasteryTransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryTransitionEventMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *MasteryTransitionEventMutation) ResetTrigger() {
	m.trigger = nil
}

// Where appends a list predicates to the MasteryTransitionEventMutation builder.
func (m *MasteryTransitionEventMutation) Where(ps ...predicate.MasteryTransitionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryTransitionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryTransitionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryTransitionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryTransitionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryTransitionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryTransitionEvent).
func (m *MasteryTransitionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryTransitionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, masterytransitionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, masterytransitionevent.FieldTimestamp)
	}
	if m.child_id != nil {
		fields = append(fields, masterytransitionevent.FieldChildID)
	}
	if m.topic != nil {
		fields = append(fields, masterytransitionevent.FieldTopic)
	}
	if m.from_band != nil {
		fields = append(fields, masterytransitionevent.FieldFromBand)
	}
	if m.to_band != nil {
		fields = append(fields, masterytransitionevent.FieldToBand)
	}
	if m.p_known != nil {
		fields = append(fields, masterytransitionevent.FieldPKnown)
	}
	if m.trigger != nil {
		fields = append(fields, masterytransitionevent.FieldTrigger)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryTransitionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masterytransitionevent.FieldSequence:
		return m.Sequence()
	case masterytransitionevent.FieldTimestamp:
		return m.Timestamp()
	case masterytransitionevent.FieldChildID:
		return m.ChildID()
	case masterytransitionevent.FieldTopic:
		return m.Topic()
	case masterytransitionevent.FieldFromBand:
		return m.FromBand()
	case masterytransitionevent.FieldToBand:
		return m.ToBand()
	case masterytransitionevent.FieldPKnown:
		return m.PKnown()
	case masterytransitionevent.FieldTrigger:
		return m.Trigger()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryTransitionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masterytransitionevent.FieldSequence:
		return m.OldSequence(ctx)
	case masterytransitionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case masterytransitionevent.FieldChildID:
		return m.OldChildID(ctx)
	case masterytransitionevent.FieldTopic:
		return m.OldTopic(ctx)
	case masterytransitionevent.FieldFromBand:
		return m.OldFromBand(ctx)
	case masterytransitionevent.FieldToBand:
		return m.OldToBand(ctx)
	case masterytransitionevent.FieldPKnown:
		return m.OldPKnown(ctx)
	case masterytransitionevent.FieldTrigger:
		return m.OldTrigger(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryTransitionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryTransitionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masterytransitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case masterytransitionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case masterytransitionevent.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case masterytransitionevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case masterytransitionevent.FieldFromBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromBand(v)
		return nil
	case masterytransitionevent.FieldToBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToBand(v)
		return nil
	case masterytransitionevent.FieldPKnown:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPKnown(v)
		return nil
	case masterytransitionevent.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryTransitionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryTransitionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, masterytransitionevent.FieldSequence)
	}
	if m.addp_known != nil {
		fields = append(fields, masterytransitionevent.FieldPKnown)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryTransitionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masterytransitionevent.FieldSequence:
		return m.AddedSequence()
	case masterytransitionevent.FieldPKnown:
		return m.AddedPKnown()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryTransitionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masterytransitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case masterytransitionevent.FieldPKnown:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPKnown(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryTransitionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryTransitionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryTransitionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryTransitionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MasteryTransitionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryTransitionEventMutation) ResetField(name string) error {
	switch name {
	case masterytransitionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case masterytransitionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case masterytransitionevent.FieldChildID:
		m.ResetChildID()
		return nil
	case masterytransitionevent.FieldTopic:
		m.ResetTopic()
		return nil
	case masterytransitionevent.FieldFromBand:
		m.ResetFromBand()
		return nil
	case masterytransitionevent.FieldToBand:
		m.ResetToBand()
		return nil
	case masterytransitionevent.FieldPKnown:
		m.ResetPKnown()
		return nil
	case masterytransitionevent.FieldTrigger:
		m.ResetTrigger()
		return nil
	}
	return fmt.Errorf("unknown MasteryTransitionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryTransitionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryTransitionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryTransitionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryTransitionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryTransitionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryTransitionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryTransitionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryTransitionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryTransitionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryTransitionEvent edge %s", name)
}

// ProbeEventMutation represents an operation that mutates the ProbeEvent nodes in the graph.
type ProbeEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	child_id              *string
	topic                 *string
	correct               *int
	addcorrect            *int
	total                 *int
	addtotal              *int
	passed                *bool
	next_interval_days    *int
	addnext_interval_days *int
	session_id            *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ProbeEvent, error)
	predicates            []predicate.ProbeEvent
}

var _ ent.Mutation = (*ProbeEventMutation)(nil)

// probeeventOption allows management of the mutation configuration using functional options.
type probeeventOption func(*ProbeEventMutation)

// newProbeEventMutation creates new mutation for the ProbeEvent entity.
func newProbeEventMutation(c config, op Op, opts ...probeeventOption) *ProbeEventMutation {
	m := &ProbeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProbeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProbeEventID sets the ID field of the mutation.
func withProbeEventID(id int) probeeventOption {
	return func(m *ProbeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProbeEvent
		)
		m.oldValue = func(ctx context.Context) (*ProbeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProbeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProbeEvent sets the old ProbeEvent of the mutation.
func withProbeEvent(node *ProbeEvent) probeeventOption {
	return func(m *ProbeEventMutation) {
		m.oldValue = func(context.Context) (*ProbeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProbeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProbeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProbeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProbeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProbeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ProbeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ProbeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ProbeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ProbeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ProbeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ProbeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ProbeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ProbeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetChildID sets the "child_id" field.
func (m *ProbeEventMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *ProbeEventMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *ProbeEventMutation) ResetChildID() {
	m.child_id = nil
}

// SetTopic sets the "topic" field.
func (m *ProbeEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ProbeEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *ProbeEventMutation) ResetTopic() {
	m.topic = nil
}

// SetCorrect sets the "correct" field.
func (m *ProbeEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ProbeEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *ProbeEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *ProbeEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ProbeEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetTotal sets the "total" field.
func (m *ProbeEventMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ProbeEventMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *ProbeEventMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ProbeEventMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ProbeEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetPassed sets the "passed" field.
func (m *ProbeEventMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ProbeEventMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ProbeEventMutation) ResetPassed() {
	m.passed = nil
}

// SetNextIntervalDays sets the "next_interval_days" field.
func (m *ProbeEventMutation) SetNextIntervalDays(i int) {
	m.next_interval_days = &i
	m.addnext_interval_days = nil
}

// NextIntervalDays returns the value of the "next_interval_days" field in the mutation.
func (m *ProbeEventMutation) NextIntervalDays() (r int, exists bool) {
	v := m.next_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldNextIntervalDays returns the old "next_interval_days" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldNextIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextIntervalDays: %w", err)
	}
	return oldValue.NextIntervalDays, nil
}

// AddNextIntervalDays adds i to the "next_interval_days" field.
func (m *ProbeEventMutation) AddNextIntervalDays(i int) {
	if m.addnext_interval_days != nil {
		*m.addnext_interval_days += i
	} else {
		m.addnext_interval_days = &i
	}
}

// AddedNextIntervalDays returns the value that was added to the "next_interval_days" field in this mutation.
func (m *ProbeEventMutation) AddedNextIntervalDays() (r int, exists bool) {
	v := m.addnext_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextIntervalDays resets all changes to the "next_interval_days" field.
func (m *ProbeEventMutation) ResetNextIntervalDays() {
	m.next_interval_days = nil
	m.addnext_interval_days = nil
}

// SetSessionID sets the "session_id" field.
func (m *ProbeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProbeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProbeEvent entity.
// If the ProbeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProbeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ProbeEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[probeevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ProbeEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[probeevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProbeEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, probeevent.FieldSessionID)
}

// Where appends a list predicates to the ProbeEventMutation builder.
func (m *ProbeEventMutation) Where(ps ...predicate.ProbeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProbeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProbeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProbeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProbeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProbeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProbeEvent).
func (m *ProbeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProbeEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, probeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, probeevent.FieldTimestamp)
	}
	if m.child_id != nil {
		fields = append(fields, probeevent.FieldChildID)
	}
	if m.topic != nil {
		fields = append(fields, probeevent.FieldTopic)
	}
	if m.correct != nil {
		fields = append(fields, probeevent.FieldCorrect)
	}
	if m.total != nil {
		fields = append(fields, probeevent.FieldTotal)
	}
	if m.passed != nil {
		fields = append(fields, probeevent.FieldPassed)
	}
	if m.next_interval_days != nil {
		fields = append(fields, probeevent.FieldNextIntervalDays)
	}
	if m.session_id != nil {
		fields = append(fields, probeevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProbeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case probeevent.FieldSequence:
		return m.Sequence()
	case probeevent.FieldTimestamp:
		return m.Timestamp()
	case probeevent.FieldChildID:
		return m.ChildID()
	case probeevent.FieldTopic:
		return m.Topic()
	case probeevent.FieldCorrect:
		return m.Correct()
	case probeevent.FieldTotal:
		return m.Total()
	case probeevent.FieldPassed:
		return m.Passed()
	case probeevent.FieldNextIntervalDays:
		return m.NextIntervalDays()
	case probeevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProbeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case probeevent.FieldSequence:
		return m.OldSequence(ctx)
	case probeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case probeevent.FieldChildID:
		return m.OldChildID(ctx)
	case probeevent.FieldTopic:
		return m.OldTopic(ctx)
	case probeevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case probeevent.FieldTotal:
		return m.OldTotal(ctx)
	case probeevent.FieldPassed:
		return m.OldPassed(ctx)
	case probeevent.FieldNextIntervalDays:
		return m.OldNextIntervalDays(ctx)
	case probeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown ProbeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProbeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case probeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case probeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case probeevent.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case probeevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case probeevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case probeevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case probeevent.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case probeevent.FieldNextIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextIntervalDays(v)
		return nil
	case probeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown ProbeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProbeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, probeevent.FieldSequence)
	}
	if m.addcorrect != nil {
		fields = append(fields, probeevent.FieldCorrect)
	}
	if m.addtotal != nil {
		fields = append(fields, probeevent.FieldTotal)
	}
	if m.addnext_interval_days != nil {
		fields = append(fields, probeevent.FieldNextIntervalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProbeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case probeevent.FieldSequence:
		return m.AddedSequence()
	case probeevent.FieldCorrect:
		return m.AddedCorrect()
	case probeevent.FieldTotal:
		return m.AddedTotal()
	case probeevent.FieldNextIntervalDays:
		return m.AddedNextIntervalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProbeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case probeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case probeevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case probeevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case probeevent.FieldNextIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown ProbeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProbeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(probeevent.FieldSessionID) {
		fields = append(fields, probeevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProbeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProbeEventMutation) ClearField(name string) error {
	switch name {
	case probeevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown ProbeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProbeEventMutation) ResetField(name string) error {
	switch name {
	case probeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case probeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case probeevent.FieldChildID:
		m.ResetChildID()
		return nil
	case probeevent.FieldTopic:
		m.ResetTopic()
		return nil
	case probeevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case probeevent.FieldTotal:
		m.ResetTotal()
		return nil
	case probeevent.FieldPassed:
		m.ResetPassed()
		return nil
	case probeevent.FieldNextIntervalDays:
		m.ResetNextIntervalDays()
		return nil
	case probeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown ProbeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProbeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProbeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProbeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProbeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProbeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProbeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProbeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProbeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProbeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProbeEvent edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op            Op
	typ           string
	id            *int
	child_id      *string
	family_id     *string
	data          *map[string]interface{}
	version       *int
	addversion    *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Profile, error)
	predicates    []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id int) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChildID sets the "child_id" field.
func (m *ProfileMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *ProfileMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *ProfileMutation) ResetChildID() {
	m.child_id = nil
}

// SetFamilyID sets the "family_id" field.
func (m *ProfileMutation) SetFamilyID(s string) {
	m.family_id = &s
}

// FamilyID returns the value of the "family_id" field in the mutation.
func (m *ProfileMutation) FamilyID() (r string, exists bool) {
	v := m.family_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyID returns the old "family_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldFamilyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyID: %w", err)
	}
	return oldValue.FamilyID, nil
}

// ResetFamilyID resets all changes to the "family_id" field.
func (m *ProfileMutation) ResetFamilyID() {
	m.family_id = nil
}

// SetData sets the "data" field.
func (m *ProfileMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ProfileMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ProfileMutation) ResetData() {
	m.data = nil
}

// SetVersion sets the "version" field.
func (m *ProfileMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProfileMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProfileMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProfileMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProfileMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.child_id != nil {
		fields = append(fields, profile.FieldChildID)
	}
	if m.family_id != nil {
		fields = append(fields, profile.FieldFamilyID)
	}
	if m.data != nil {
		fields = append(fields, profile.FieldData)
	}
	if m.version != nil {
		fields = append(fields, profile.FieldVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldChildID:
		return m.ChildID()
	case profile.FieldFamilyID:
		return m.FamilyID()
	case profile.FieldData:
		return m.Data()
	case profile.FieldVersion:
		return m.Version()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldChildID:
		return m.OldChildID(ctx)
	case profile.FieldFamilyID:
		return m.OldFamilyID(ctx)
	case profile.FieldData:
		return m.OldData(ctx)
	case profile.FieldVersion:
		return m.OldVersion(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case profile.FieldFamilyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyID(v)
		return nil
	case profile.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case profile.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, profile.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldChildID:
		m.ResetChildID()
		return nil
	case profile.FieldFamilyID:
		m.ResetFamilyID()
		return nil
	case profile.FieldData:
		m.ResetData()
		return nil
	case profile.FieldVersion:
		m.ResetVersion()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// QuizSessionEventMutation represents an operation that mutates the QuizSessionEvent nodes in the graph.
type QuizSessionEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	child_id          *string
	subject_id        *string
	question_count    *int
	addquestion_count *int
	correct_count     *int
	addcorrect_count  *int
	end_reason        *string
	early_exit        *bool
	review_mode       *bool
	duration_ms       *int64
	addduration_ms    *int64
	plan              *[]schema.PlanSlot
	appendplan        []schema.PlanSlot
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QuizSessionEvent, error)
	predicates        []predicate.QuizSessionEvent
}

var _ ent.Mutation = (*QuizSessionEventMutation)(nil)

// quizsessioneventOption allows management of the mutation configuration using functional options.
type quizsessioneventOption func(*QuizSessionEventMutation)

// newQuizSessionEventMutation creates new mutation for the QuizSessionEvent entity.
func newQuizSessionEventMutation(c config, op Op, opts ...quizsessioneventOption) *QuizSessionEventMutation {
	m := &QuizSessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizSessionEventID sets the ID field of the mutation.
func withQuizSessionEventID(id int) quizsessioneventOption {
	return func(m *QuizSessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizSessionEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizSessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizSessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizSessionEvent sets the old QuizSessionEvent of the mutation.
func withQuizSessionEvent(node *QuizSessionEvent) quizsessioneventOption {
	return func(m *QuizSessionEventMutation) {
		m.oldValue = func(context.Context) (*QuizSessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizSessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizSessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizSessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizSessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizSessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizSessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizSessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizSessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizSessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizSessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizSessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizSessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizSessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizSessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizSessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuizSessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChildID sets the "child_id" field.
func (m *QuizSessionEventMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *QuizSessionEventMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *QuizSessionEventMutation) ResetChildID() {
	m.child_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *QuizSessionEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *QuizSessionEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *QuizSessionEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *QuizSessionEventMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *QuizSessionEventMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *QuizSessionEventMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *QuizSessionEventMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *QuizSessionEventMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuizSessionEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuizSessionEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuizSessionEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuizSessionEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuizSessionEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetEndReason sets the "end_reason" field.
func (m *QuizSessionEventMutation) SetEndReason(s string) {
	m.end_reason = &s
}

// EndReason returns the value of the "end_reason" field in the mutation.
func (m *QuizSessionEventMutation) EndReason() (r string, exists bool) {
	v := m.end_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldEndReason returns the old "end_reason" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldEndReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndReason: %w", err)
	}
	return oldValue.EndReason, nil
}

// ResetEndReason resets all changes to the "end_reason" field.
func (m *QuizSessionEventMutation) ResetEndReason() {
	m.end_reason = nil
}

// SetEarlyExit sets the "early_exit" field.
func (m *QuizSessionEventMutation) SetEarlyExit(b bool) {
	m.early_exit = &b
}

// EarlyExit returns the value of the "early_exit" field in the mutation.
func (m *QuizSessionEventMutation) EarlyExit() (r bool, exists bool) {
	v := m.early_exit
	if v == nil {
		return
	}
	return *v, true
}

// OldEarlyExit returns the old "early_exit" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldEarlyExit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarlyExit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarlyExit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarlyExit: %w", err)
	}
	return oldValue.EarlyExit, nil
}

// ResetEarlyExit resets all changes to the "early_exit" field.
func (m *QuizSessionEventMutation) ResetEarlyExit() {
	m.early_exit = nil
}

// SetReviewMode sets the "review_mode" field.
func (m *QuizSessionEventMutation) SetReviewMode(b bool) {
	m.review_mode = &b
}

// ReviewMode returns the value of the "review_mode" field in the mutation.
func (m *QuizSessionEventMutation) ReviewMode() (r bool, exists bool) {
	v := m.review_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewMode returns the old "review_mode" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldReviewMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewMode: %w", err)
	}
	return oldValue.ReviewMode, nil
}

// ResetReviewMode resets all changes to the "review_mode" field.
func (m *QuizSessionEventMutation) ResetReviewMode() {
	m.review_mode = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *QuizSessionEventMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *QuizSessionEventMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *QuizSessionEventMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *QuizSessionEventMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *QuizSessionEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetPlan sets the "plan" field.
func (m *QuizSessionEventMutation) SetPlan(ss []schema.PlanSlot) {
	m.plan = &ss
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *QuizSessionEventMutation) Plan() (r []schema.PlanSlot, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the QuizSessionEvent entity.
// If the QuizSessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSessionEventMutation) OldPlan(ctx context.Context) (v []schema.PlanSlot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds ss to the "plan" field.
func (m *QuizSessionEventMutation) AppendPlan(ss []schema.PlanSlot) {
	m.appendplan = append(m.appendplan, ss...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *QuizSessionEventMutation) AppendedPlan() ([]schema.PlanSlot, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *QuizSessionEventMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[quizsessionevent.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *QuizSessionEventMutation) PlanCleared() bool {
	_, ok := m.clearedFields[quizsessionevent.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *QuizSessionEventMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, quizsessionevent.FieldPlan)
}

// Where appends a list predicates to the QuizSessionEventMutation builder.
func (m *QuizSessionEventMutation) Where(ps ...predicate.QuizSessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizSessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizSessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizSessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizSessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizSessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizSessionEvent).
func (m *QuizSessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizSessionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, quizsessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizsessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, quizsessionevent.FieldSessionID)
	}
	if m.child_id != nil {
		fields = append(fields, quizsessionevent.FieldChildID)
	}
	if m.subject_id != nil {
		fields = append(fields, quizsessionevent.FieldSubjectID)
	}
	if m.question_count != nil {
		fields = append(fields, quizsessionevent.FieldQuestionCount)
	}
	if m.correct_count != nil {
		fields = append(fields, quizsessionevent.FieldCorrectCount)
	}
	if m.end_reason != nil {
		fields = append(fields, quizsessionevent.FieldEndReason)
	}
	if m.early_exit != nil {
		fields = append(fields, quizsessionevent.FieldEarlyExit)
	}
	if m.review_mode != nil {
		fields = append(fields, quizsessionevent.FieldReviewMode)
	}
	if m.duration_ms != nil {
		fields = append(fields, quizsessionevent.FieldDurationMs)
	}
	if m.plan != nil {
		fields = append(fields, quizsessionevent.FieldPlan)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizSessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizsessionevent.FieldSequence:
		return m.Sequence()
	case quizsessionevent.FieldTimestamp:
		return m.Timestamp()
	case quizsessionevent.FieldSessionID:
		return m.SessionID()
	case quizsessionevent.FieldChildID:
		return m.ChildID()
	case quizsessionevent.FieldSubjectID:
		return m.SubjectID()
	case quizsessionevent.FieldQuestionCount:
		return m.QuestionCount()
	case quizsessionevent.FieldCorrectCount:
		return m.CorrectCount()
	case quizsessionevent.FieldEndReason:
		return m.EndReason()
	case quizsessionevent.FieldEarlyExit:
		return m.EarlyExit()
	case quizsessionevent.FieldReviewMode:
		return m.ReviewMode()
	case quizsessionevent.FieldDurationMs:
		return m.DurationMs()
	case quizsessionevent.FieldPlan:
		return m.Plan()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizSessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizsessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizsessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizsessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizsessionevent.FieldChildID:
		return m.OldChildID(ctx)
	case quizsessionevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case quizsessionevent.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case quizsessionevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case quizsessionevent.FieldEndReason:
		return m.OldEndReason(ctx)
	case quizsessionevent.FieldEarlyExit:
		return m.OldEarlyExit(ctx)
	case quizsessionevent.FieldReviewMode:
		return m.OldReviewMode(ctx)
	case quizsessionevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case quizsessionevent.FieldPlan:
		return m.OldPlan(ctx)
	}
	return nil, fmt.Errorf("unknown QuizSessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizsessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizsessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizsessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizsessionevent.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case quizsessionevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case quizsessionevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case quizsessionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case quizsessionevent.FieldEndReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndReason(v)
		return nil
	case quizsessionevent.FieldEarlyExit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarlyExit(v)
		return nil
	case quizsessionevent.FieldReviewMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewMode(v)
		return nil
	case quizsessionevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case quizsessionevent.FieldPlan:
		v, ok := value.([]schema.PlanSlot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizSessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizsessionevent.FieldSequence)
	}
	if m.addquestion_count != nil {
		fields = append(fields, quizsessionevent.FieldQuestionCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, quizsessionevent.FieldCorrectCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, quizsessionevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizSessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizsessionevent.FieldSequence:
		return m.AddedSequence()
	case quizsessionevent.FieldQuestionCount:
		return m.AddedQuestionCount()
	case quizsessionevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case quizsessionevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizsessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizsessionevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case quizsessionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case quizsessionevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizSessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizsessionevent.FieldPlan) {
		fields = append(fields, quizsessionevent.FieldPlan)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizSessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizSessionEventMutation) ClearField(name string) error {
	switch name {
	case quizsessionevent.FieldPlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown QuizSessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizSessionEventMutation) ResetField(name string) error {
	switch name {
	case quizsessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizsessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizsessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizsessionevent.FieldChildID:
		m.ResetChildID()
		return nil
	case quizsessionevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case quizsessionevent.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case quizsessionevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case quizsessionevent.FieldEndReason:
		m.ResetEndReason()
		return nil
	case quizsessionevent.FieldEarlyExit:
		m.ResetEarlyExit()
		return nil
	case quizsessionevent.FieldReviewMode:
		m.ResetReviewMode()
		return nil
	case quizsessionevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case quizsessionevent.FieldPlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown QuizSessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizSessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizSessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizSessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizSessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizSessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizSessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizSessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizSessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizSessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizSessionEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	child_id      *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChildID sets the "child_id" field.
func (m *SnapshotMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *SnapshotMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *SnapshotMutation) ResetChildID() {
	m.child_id = nil
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.child_id != nil {
		fields = append(fields, snapshot.FieldChildID)
	}
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldChildID:
		return m.ChildID()
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldChildID:
		return m.OldChildID(ctx)
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldChildID:
		m.ResetChildID()
		return nil
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
