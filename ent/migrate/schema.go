// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "child_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "probe", Type: field.TypeBool, Default: false},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "child_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "strong_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_scores", Type: field.TypeJSON, Nullable: true},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[4]},
			},
		},
	}
	// MasteryTransitionEventsColumns holds the columns for the "mastery_transition_events" table.
	MasteryTransitionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "from_band", Type: field.TypeString},
		{Name: "to_band", Type: field.TypeString},
		{Name: "p_known", Type: field.TypeFloat64},
		{Name: "trigger", Type: field.TypeString},
	}
	// MasteryTransitionEventsTable holds the schema information for the "mastery_transition_events" table.
	MasteryTransitionEventsTable = &schema.Table{
		Name:       "mastery_transition_events",
		Columns:    MasteryTransitionEventsColumns,
		PrimaryKey: []*schema.Column{MasteryTransitionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterytransitionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryTransitionEventsColumns[1]},
			},
			{
				Name:    "masterytransitionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryTransitionEventsColumns[2]},
			},
			{
				Name:    "masterytransitionevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryTransitionEventsColumns[3]},
			},
			{
				Name:    "masterytransitionevent_topic",
				Unique:  false,
				Columns: []*schema.Column{MasteryTransitionEventsColumns[4]},
			},
		},
	}
	// ProbeEventsColumns holds the columns for the "probe_events" table.
	ProbeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "next_interval_days", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ProbeEventsTable holds the schema information for the "probe_events" table.
	ProbeEventsTable = &schema.Table{
		Name:       "probe_events",
		Columns:    ProbeEventsColumns,
		PrimaryKey: []*schema.Column{ProbeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "probeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[1]},
			},
			{
				Name:    "probeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[2]},
			},
			{
				Name:    "probeevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[3]},
			},
			{
				Name:    "probeevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[4]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "child_id", Type: field.TypeString, Unique: true},
		{Name: "family_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_family_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[2]},
			},
		},
	}
	// QuizSessionEventsColumns holds the columns for the "quiz_session_events" table.
	QuizSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "child_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "end_reason", Type: field.TypeString},
		{Name: "early_exit", Type: field.TypeBool, Default: false},
		{Name: "review_mode", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
	}
	// QuizSessionEventsTable holds the schema information for the "quiz_session_events" table.
	QuizSessionEventsTable = &schema.Table{
		Name:       "quiz_session_events",
		Columns:    QuizSessionEventsColumns,
		PrimaryKey: []*schema.Column{QuizSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[1]},
			},
			{
				Name:    "quizsessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[2]},
			},
			{
				Name:    "quizsessionevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[4]},
			},
			{
				Name:    "quizsessionevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "child_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_child_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		EvaluationEventsTable,
		MasteryTransitionEventsTable,
		ProbeEventsTable,
		ProfilesTable,
		QuizSessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
