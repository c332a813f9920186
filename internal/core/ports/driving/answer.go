package driving

import "context"

// AnswerService produces grounded answers from the index.
type AnswerService interface {
	// Answer retrieves the topK closest chunks and generates an answer
	// citing them. topK <= 0 selects the configured default. When
	// nothing relevant is indexed, a fixed notice is returned instead
	// of calling the model.
	Answer(ctx context.Context, question string, topK int) (string, error)
}
