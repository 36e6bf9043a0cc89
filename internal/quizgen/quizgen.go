// Package quizgen defines the boundary to the external question
// generator. The engine hands it an ordered topic list with per-topic
// target difficulty and the child's mastery percentage; it only ever
// reads back the question's topic and the submitted answer's
// correctness, never the question content.
package quizgen

import "context"

// Difficulty is the per-topic target difficulty derived from the
// topic's band in the composed mix.
type Difficulty string

const (
	DifficultyReview Difficulty = "review" // warm-up on mastered material
	DifficultyTarget Difficulty = "target" // learning-band stretch
	DifficultyWeak   Difficulty = "weak"   // remediation
)

// Request describes one quiz's worth of questions.
type Request struct {
	// Topics is the ordered topic list from the composer. One
	// question is generated per entry, in order.
	Topics []string

	// Difficulty maps each topic to its target difficulty.
	Difficulty map[string]Difficulty

	// MasteryPercent is the child's overall mastery share, for
	// generator-side calibration.
	MasteryPercent float64
}

// Question is one generated question. The engine treats Prompt and
// Options as opaque.
type Question struct {
	ID          string
	Topic       string
	Difficulty  Difficulty
	Prompt      string
	Options     []string
	AnswerIndex int
}

// Check reports whether the chosen option is correct.
func (q *Question) Check(optionIndex int) bool {
	return optionIndex == q.AnswerIndex
}

// Generator produces questions for a composed quiz plan.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]Question, error)
}
