package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

type fakeQuizStore struct {
	quizzes map[string]*models.Quiz
	nextID  int
}

func newFakeQuizStore(quizzes ...*models.Quiz) *fakeQuizStore {
	s := &fakeQuizStore{quizzes: map[string]*models.Quiz{}}
	for _, q := range quizzes {
		s.quizzes[q.ID] = q
	}
	return s
}

func (s *fakeQuizStore) Create(_ context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		s.nextID++
		quiz.ID = fmt.Sprintf("quiz-%03d", s.nextID)
	}
	cp := *quiz
	s.quizzes[quiz.ID] = &cp
	return nil
}

func (s *fakeQuizStore) UpdateTotals(_ context.Context, id string, totalMarks, questionsCount int) error {
	q, ok := s.quizzes[id]
	if !ok {
		return models.ErrQuizNotFound
	}
	q.TotalMarks = totalMarks
	q.QuestionsCount = questionsCount
	return nil
}

func (s *fakeQuizStore) FindPublished(_ context.Context, classID, subjectID string) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, q := range s.quizzes {
		if !q.IsPublished {
			continue
		}
		if classID != "" && q.ClassID != classID {
			continue
		}
		if subjectID != "" && q.SubjectID != subjectID {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQuizStore) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	q, ok := s.quizzes[id]
	if !ok {
		return nil, models.ErrQuizNotFound
	}
	cp := *q
	return &cp, nil
}

func (s *fakeQuizStore) FindByIDs(_ context.Context, ids []string) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, id := range ids {
		if q, ok := s.quizzes[id]; ok {
			out = append(out, *q)
		}
	}
	return out, nil
}

type fakeQuestionStore struct {
	byQuiz map[string][]models.Question
	nextID int
}

func (s *fakeQuestionStore) FindByQuiz(_ context.Context, quizID string) ([]models.Question, error) {
	return s.byQuiz[quizID], nil
}

func (s *fakeQuestionStore) InsertMany(_ context.Context, questions []models.Question) error {
	for i := range questions {
		if questions[i].ID == "" {
			s.nextID++
			questions[i].ID = fmt.Sprintf("question-%03d", s.nextID)
		}
		s.byQuiz[questions[i].QuizID] = append(s.byQuiz[questions[i].QuizID], questions[i])
	}
	return nil
}

func (s *fakeQuestionStore) DeleteByQuiz(_ context.Context, quizID string) error {
	delete(s.byQuiz, quizID)
	return nil
}

// fakeTxn just runs the callback; the in-memory stores have no transactions.
type fakeTxn struct{}

func (fakeTxn) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttemptStore struct {
	attempts map[string]*models.Attempt
	seq      map[string]int
	nextID   int
	now      func() time.Time
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{
		attempts: map[string]*models.Attempt{},
		seq:      map[string]int{},
		now:      time.Now,
	}
}

func (s *fakeAttemptStore) FindByID(_ context.Context, id string) (*models.Attempt, error) {
	a, ok := s.attempts[id]
	if !ok {
		return nil, models.ErrAttemptNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *fakeAttemptStore) Create(_ context.Context, attempt *models.Attempt) error {
	s.nextID++
	attempt.ID = fmt.Sprintf("attempt-%03d", s.nextID)
	cp := *attempt
	s.attempts[attempt.ID] = &cp
	return nil
}

func (s *fakeAttemptStore) NextAttemptNumber(_ context.Context, quizID, studentID string) (int, error) {
	key := quizID + "/" + studentID
	s.seq[key]++
	return s.seq[key], nil
}

func (s *fakeAttemptStore) Complete(_ context.Context, id string, c models.AttemptCompletion) (bool, error) {
	a, ok := s.attempts[id]
	if !ok {
		return false, models.ErrAttemptNotFound
	}
	if a.Status != models.AttemptInProgress {
		return false, nil
	}
	a.Answers = c.Answers
	a.Score = c.Score
	a.CorrectCount = c.CorrectCount
	a.WrongCount = c.WrongCount
	a.UnansweredCount = c.UnansweredCount
	a.TimeSpent = c.TimeSpent
	a.Status = models.AttemptCompleted
	a.CompletedAt = s.now().UTC()
	return true, nil
}

func (s *fakeAttemptStore) FindCompletedByQuiz(_ context.Context, quizID string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range s.attempts {
		if a.QuizID == quizID && a.Status == models.AttemptCompleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAttemptStore) FindCompletedByStudent(_ context.Context, studentID string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range s.attempts {
		if a.StudentID == studentID && a.Status == models.AttemptCompleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAttemptStore) HasCompleted(_ context.Context, quizID, studentID string) (bool, error) {
	for _, a := range s.attempts {
		if a.QuizID == quizID && a.StudentID == studentID && a.Status == models.AttemptCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAttemptStore) CountInProgress(_ context.Context, quizID string) (int64, error) {
	var n int64
	for _, a := range s.attempts {
		if a.QuizID == quizID && a.Status == models.AttemptInProgress {
			n++
		}
	}
	return n, nil
}

// seed inserts a completed attempt directly, bypassing the lifecycle.
func (s *fakeAttemptStore) seed(a models.Attempt) {
	if a.ID == "" {
		s.nextID++
		a.ID = fmt.Sprintf("attempt-%03d", s.nextID)
	}
	s.attempts[a.ID] = &a
}
