// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// EvaluationEvent is the predicate function for evaluationevent builders.
type EvaluationEvent func(*sql.Selector)

// MasteryTransitionEvent is the predicate function for masterytransitionevent builders.
type MasteryTransitionEvent func(*sql.Selector)

// ProbeEvent is the predicate function for probeevent builders.
type ProbeEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// QuizSessionEvent is the predicate function for quizsessionevent builders.
type QuizSessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
