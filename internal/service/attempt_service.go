package service

import (
	"context"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

const DefaultLeaderboardSize = 5

// AttemptService owns the attempt lifecycle: starting a timed attempt,
// grading it at submission, and ranking it against the quiz cohort.
type AttemptService struct {
	quizzes         QuizStore
	questions       QuestionStore
	attempts        AttemptStore
	events          EventSink
	leaderboardSize int
	now             func() time.Time
}

func NewAttemptService(quizzes QuizStore, questions QuestionStore, attempts AttemptStore, events EventSink) *AttemptService {
	return &AttemptService{
		quizzes:         quizzes,
		questions:       questions,
		attempts:        attempts,
		events:          events,
		leaderboardSize: DefaultLeaderboardSize,
		now:             time.Now,
	}
}

// WithLeaderboardSize overrides the top-N leaderboard bound.
func (s *AttemptService) WithLeaderboardSize(n int) *AttemptService {
	if n > 0 {
		s.leaderboardSize = n
	}
	return s
}

// WithClock is test-only for deterministic timestamps.
func (s *AttemptService) WithClock(now func() time.Time) *AttemptService {
	s.now = now
	return s
}

// Start opens a new in-progress attempt for the student. The attempt number
// comes from a store-assigned counter, so sequential starts number 1..N with
// no gaps even under concurrent calls. TotalMarks is snapshotted from the
// quiz; later quiz edits never touch it.
func (s *AttemptService) Start(ctx context.Context, quizID, studentID, studentName string) (*models.Attempt, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsPublished {
		return nil, models.ErrQuizNotPublished
	}
	if !quiz.AllowRetake {
		// Best-effort check: two concurrent starts can both pass it. The
		// counter below still numbers them distinctly.
		done, err := s.attempts.HasCompleted(ctx, quizID, studentID)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, models.ErrRetakeNotAllowed
		}
	}

	number, err := s.attempts.NextAttemptNumber(ctx, quizID, studentID)
	if err != nil {
		return nil, err
	}

	attempt := &models.Attempt{
		QuizID:          quizID,
		StudentID:       studentID,
		StudentName:     studentName,
		AttemptNumber:   number,
		Answers:         map[string]string{},
		TotalMarks:      quiz.TotalMarks,
		UnansweredCount: quiz.QuestionsCount,
		Status:          models.AttemptInProgress,
		StartedAt:       s.now().UTC(),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	s.publish("attempt.started", map[string]any{
		"attempt_id":     attempt.ID,
		"quiz_id":        quizID,
		"student_id":     studentID,
		"attempt_number": number,
	})
	return attempt, nil
}

// SubmitRequest carries everything a client sends when closing an attempt.
// Answers maps question id to the selected option; questions left blank are
// absent. When Answers is present the server re-grades from its own answer
// key and the tally fields are ignored. Older clients grade locally and send
// only the tallies (Answers nil); those are validated before being recorded.
type SubmitRequest struct {
	AttemptID string
	QuizID    string
	StudentID string
	Answers   map[string]string
	TimeSpent int

	// Client-side tallies. Only consulted on the legacy answer-less shape;
	// when answers are present the server's own grading wins.
	Score           int
	CorrectCount    int
	WrongCount      int
	UnansweredCount int
	TotalMarks      int
}

// Submit closes an in-progress attempt: grades the collected answers (or
// validates and accepts a legacy client's tallies), writes the final tallies
// behind a status-conditional update, then ranks the attempt against all
// completed attempts on the quiz. A second submit on the same attempt fails
// with ErrAttemptCompleted instead of re-scoring.
func (s *AttemptService) Submit(ctx context.Context, req SubmitRequest) (*models.SubmitResult, error) {
	if req.AttemptID == "" {
		return nil, models.NewValidationError("attempt_id", "required")
	}
	if req.QuizID == "" {
		return nil, models.NewValidationError("quiz_id", "required")
	}
	if req.TimeSpent < 0 {
		return nil, models.NewValidationError("time_spent", "must not be negative")
	}

	attempt, err := s.attempts.FindByID(ctx, req.AttemptID)
	if err != nil {
		return nil, err
	}
	if attempt.StudentID != req.StudentID {
		return nil, models.ErrForbidden
	}
	if attempt.QuizID != req.QuizID {
		return nil, models.NewValidationError("quiz_id", "does not match the attempt")
	}
	if attempt.Status == models.AttemptCompleted {
		return nil, models.ErrAttemptCompleted
	}

	questions, err := s.questions.FindByQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}
	var tally Tally
	if req.Answers == nil {
		tally, err = clientTally(req, len(questions), attempt.TotalMarks)
		if err != nil {
			return nil, err
		}
	} else {
		tally = ScoreAnswers(questions, req.Answers)
	}

	completed, err := s.attempts.Complete(ctx, attempt.ID, models.AttemptCompletion{
		Answers:         req.Answers,
		Score:           tally.Score,
		CorrectCount:    tally.CorrectCount,
		WrongCount:      tally.WrongCount,
		UnansweredCount: tally.UnansweredCount,
		TimeSpent:       req.TimeSpent,
	})
	if err != nil {
		return nil, err
	}
	if !completed {
		// Lost the race against another submit on the same attempt.
		return nil, models.ErrAttemptCompleted
	}

	cohort, err := s.attempts.FindCompletedByQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}
	rank, leaderboard := RankAttempts(cohort, attempt.ID, req.StudentID, s.leaderboardSize)

	s.publish("attempt.completed", map[string]any{
		"attempt_id": attempt.ID,
		"quiz_id":    attempt.QuizID,
		"student_id": req.StudentID,
		"score":      tally.Score,
		"rank":       rank,
	})

	return &models.SubmitResult{
		AttemptID:       attempt.ID,
		Score:           tally.Score,
		TotalMarks:      attempt.TotalMarks,
		CorrectCount:    tally.CorrectCount,
		WrongCount:      tally.WrongCount,
		UnansweredCount: tally.UnansweredCount,
		TimeSpent:       req.TimeSpent,
		Rank:            rank,
		Leaderboard:     leaderboard,
	}, nil
}

// clientTally accepts the tallies from a legacy answer-less submit, after
// checking them against what the quiz allows: counts non-negative and summing
// to the question count, score within the attempt's total marks.
func clientTally(req SubmitRequest, questionsCount, totalMarks int) (Tally, error) {
	if req.CorrectCount < 0 || req.WrongCount < 0 || req.UnansweredCount < 0 {
		return Tally{}, models.NewValidationError("tallies", "counts must not be negative")
	}
	if req.CorrectCount+req.WrongCount+req.UnansweredCount != questionsCount {
		return Tally{}, models.NewValidationError("tallies", "counts must sum to the question count")
	}
	if req.Score < 0 || req.Score > totalMarks {
		return Tally{}, models.NewValidationError("score", "outside the quiz's total marks")
	}
	return Tally{
		Score:           req.Score,
		CorrectCount:    req.CorrectCount,
		WrongCount:      req.WrongCount,
		UnansweredCount: req.UnansweredCount,
	}, nil
}

func (s *AttemptService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	// Fire and forget; a broker outage must not fail the student's call.
	_ = s.events.Publish(eventType, payload)
}
