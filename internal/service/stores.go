package service

import (
	"context"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

// QuizStore is the read side of the quiz catalog the engine depends on.
type QuizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Quiz, error)
}

// QuestionStore loads a quiz's ordered question list with the answer key.
type QuestionStore interface {
	FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error)
}

// AttemptStore is the persisted attempt collection, one record per
// (quiz, student, attemptNumber).
type AttemptStore interface {
	FindByID(ctx context.Context, id string) (*models.Attempt, error)
	Create(ctx context.Context, attempt *models.Attempt) error
	// NextAttemptNumber atomically bumps and returns the per-(quiz, student)
	// counter, so two concurrent starts can never observe the same value.
	NextAttemptNumber(ctx context.Context, quizID, studentID string) (int, error)
	// Complete closes an in-progress attempt. Returns false when the attempt
	// was already completed, making a duplicate submit detectable.
	Complete(ctx context.Context, id string, completion models.AttemptCompletion) (bool, error)
	FindCompletedByQuiz(ctx context.Context, quizID string) ([]models.Attempt, error)
	FindCompletedByStudent(ctx context.Context, studentID string) ([]models.Attempt, error)
	HasCompleted(ctx context.Context, quizID, studentID string) (bool, error)
	CountInProgress(ctx context.Context, quizID string) (int64, error)
}

// QuizCatalog is the authoring side of the quiz collection.
type QuizCatalog interface {
	QuizStore
	Create(ctx context.Context, quiz *models.Quiz) error
	UpdateTotals(ctx context.Context, id string, totalMarks, questionsCount int) error
	FindPublished(ctx context.Context, classID, subjectID string) ([]models.Quiz, error)
}

// QuestionCatalog adds the writes used when a question set is created or
// replaced wholesale.
type QuestionCatalog interface {
	QuestionStore
	InsertMany(ctx context.Context, questions []models.Question) error
	DeleteByQuiz(ctx context.Context, quizID string) error
}

// AttemptActivity reports live attempts on a quiz. Question sets are locked
// while any exist.
type AttemptActivity interface {
	CountInProgress(ctx context.Context, quizID string) (int64, error)
}

// TxnRunner groups store writes into one atomic unit. Implemented by
// repository.TxnRunner over mongo transactions.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventSink publishes lifecycle events. Implemented by event.Publisher; a nil
// sink disables publishing.
type EventSink interface {
	Publish(eventType string, payload any) error
}
