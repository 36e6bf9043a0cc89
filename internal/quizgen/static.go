package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptiq/internal/topics"
)

// StaticGenerator is a placeholder Generator for tests and the CLI
// plan preview. It emits one fixed-form question per requested topic;
// the first option is always correct.
type StaticGenerator struct{}

// Generate implements Generator.
func (StaticGenerator) Generate(_ context.Context, req Request) ([]Question, error) {
	questions := make([]Question, 0, len(req.Topics))
	for i, topicID := range req.Topics {
		name := topicID
		if t, err := topics.Get(topicID); err == nil {
			name = t.Name
		}
		questions = append(questions, Question{
			ID:          fmt.Sprintf("static-%d-%s", i, topicID),
			Topic:       topicID,
			Difficulty:  req.Difficulty[topicID],
			Prompt:      fmt.Sprintf("Practice question %d: %s", i+1, name),
			Options:     []string{"A", "B", "C", "D"},
			AnswerIndex: 0,
		})
	}
	return questions, nil
}
