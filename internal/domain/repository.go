package domain

import "context"

// QuizRepository defines the interface for quiz catalog persistence.
// Implementations return (nil, nil) for a lookup that matches no quiz;
// translating that into a not-found error is the service layer's job.
type QuizRepository interface {
	// GetQuizByID retrieves a quiz with its questions in stored order.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// ListQuizzes returns the public catalog projection of every quiz.
	ListQuizzes(ctx context.Context) ([]QuizSummary, error)

	// ListQuizzesByCreator returns only quizzes authored by creatorID.
	ListQuizzesByCreator(ctx context.Context, creatorID string) ([]QuizSummary, error)

	// CreateQuiz persists a quiz and its questions.
	CreateQuiz(ctx context.Context, quiz *Quiz) error
}

// QuizResultRepository defines the interface for result persistence.
type QuizResultRepository interface {
	// CreateResult appends a new result row. It never upserts; every
	// submit call produces a distinct row.
	CreateResult(ctx context.Context, result *QuizResult) error

	// GetResultsByUserID returns a user's results, newest first.
	GetResultsByUserID(ctx context.Context, userID string) ([]QuizResult, error)
}

// TransactionManager runs a function within a storage transaction. The
// transaction is carried through the context so repositories stay unaware
// of transaction boundaries.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
