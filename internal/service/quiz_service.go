package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

// QuizService is the authoring side of the quiz catalog: teachers publish
// quizzes and replace question sets; students read sanitized quizzes.
type QuizService struct {
	quizzes   QuizCatalog
	questions QuestionCatalog
	attempts  AttemptActivity
	txn       TxnRunner
	events    EventSink
	now       func() time.Time
}

func NewQuizService(
	quizzes QuizCatalog,
	questions QuestionCatalog,
	attempts AttemptActivity,
	txn TxnRunner,
	events EventSink,
) *QuizService {
	return &QuizService{
		quizzes:   quizzes,
		questions: questions,
		attempts:  attempts,
		txn:       txn,
		events:    events,
		now:       time.Now,
	}
}

// ValidateQuestions checks a question set before it reaches the store:
// numbering must be exactly 1..n, every question needs at least two options,
// positive marks, and an answer key that matches one of its options.
func ValidateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return models.NewValidationError("questions", "at least one question is required")
	}
	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		field := fmt.Sprintf("questions[%d]", i)
		if q.Text == "" {
			return models.NewValidationError(field, "text is required")
		}
		if q.QuestionNumber < 1 || q.QuestionNumber > len(questions) {
			return models.NewValidationError(field, "question_number out of range")
		}
		if seen[q.QuestionNumber] {
			return models.NewValidationError(field, "duplicate question_number")
		}
		seen[q.QuestionNumber] = true
		if len(q.Options) < 2 {
			return models.NewValidationError(field, "at least two options are required")
		}
		if q.Marks <= 0 {
			return models.NewValidationError(field, "marks must be positive")
		}
		valid := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				valid = true
				break
			}
		}
		if !valid {
			return models.NewValidationError(field, "correct_answer must equal one of the options")
		}
	}
	return nil
}

// SumMarks totals the per-question marks; the quiz's total_marks is fixed to
// this value at publish time.
func SumMarks(questions []models.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Marks
	}
	return total
}

// Publish validates and stores a quiz with its question set in one
// transaction, computing total_marks and questions_count from the set.
func (s *QuizService) Publish(ctx context.Context, quiz *models.Quiz, questions []models.Question) error {
	if quiz.Title == "" {
		return models.NewValidationError("title", "required")
	}
	if quiz.CreatedBy == "" {
		return models.NewValidationError("created_by", "required")
	}
	if quiz.TimeLimitSeconds <= 0 {
		return models.NewValidationError("time_limit_seconds", "must be positive")
	}
	if err := ValidateQuestions(questions); err != nil {
		return err
	}

	now := s.now().UTC()
	quiz.TotalMarks = SumMarks(questions)
	quiz.QuestionsCount = len(questions)
	quiz.IsPublished = true
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	err := s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.quizzes.Create(ctx, quiz); err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		return s.questions.InsertMany(ctx, questions)
	})
	if err != nil {
		return err
	}

	s.publish("quiz.published", map[string]any{
		"quiz_id":    quiz.ID,
		"created_by": quiz.CreatedBy,
	})
	return nil
}

// ReplaceQuestions swaps a quiz's whole question set atomically and refreshes
// the quiz totals. Owner-only, and rejected while any attempt on the quiz is
// still in progress; existing attempt snapshots are never touched.
func (s *QuizService) ReplaceQuestions(ctx context.Context, quizID, requesterID string, questions []models.Question) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.CreatedBy != requesterID {
		return nil, models.ErrForbidden
	}
	inProgress, err := s.attempts.CountInProgress(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if inProgress > 0 {
		return nil, models.ErrQuizLocked
	}
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].QuizID = quizID
		questions[i].ID = ""
	}
	totalMarks := SumMarks(questions)

	err = s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.questions.DeleteByQuiz(ctx, quizID); err != nil {
			return err
		}
		if err := s.questions.InsertMany(ctx, questions); err != nil {
			return err
		}
		return s.quizzes.UpdateTotals(ctx, quizID, totalMarks, len(questions))
	})
	if err != nil {
		return nil, err
	}

	quiz.TotalMarks = totalMarks
	quiz.QuestionsCount = len(questions)
	return quiz, nil
}

// Get returns a quiz and its questions. The answer key is stripped unless
// the requester owns the quiz.
func (s *QuizService) Get(ctx context.Context, id, requesterID string) (*models.Quiz, []models.Question, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questions.FindByQuiz(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if quiz.CreatedBy != requesterID {
		for i := range questions {
			questions[i] = questions[i].Sanitize()
		}
	}
	return quiz, questions, nil
}

// List returns published quizzes, optionally filtered by class and subject.
func (s *QuizService) List(ctx context.Context, classID, subjectID string) ([]models.Quiz, error) {
	return s.quizzes.FindPublished(ctx, classID, subjectID)
}

func (s *QuizService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(eventType, payload)
}
