package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

func resultFixture() (*ResultService, *fakeQuizStore, *fakeAttemptStore) {
	quizzes := newFakeQuizStore(
		&models.Quiz{ID: "quiz1", Title: "Fractions", SubjectID: "maths", ClassID: "class7", CreatedBy: "teacherA"},
		&models.Quiz{ID: "quiz2", Title: "Photosynthesis", SubjectID: "science", ClassID: "class7", CreatedBy: "teacherA"},
	)
	attempts := newFakeAttemptStore()
	return NewResultService(quizzes, attempts), quizzes, attempts
}

func completedAt(h int) time.Time {
	return time.Date(2026, 3, 1, h, 0, 0, 0, time.UTC)
}

func TestStudentResultsRetakeDedup(t *testing.T) {
	svc, _, attempts := resultFixture()
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", AttemptNumber: 1,
		Score: 40, TotalMarks: 100, TimeSpent: 300,
		Status: models.AttemptCompleted, CompletedAt: completedAt(9),
	})
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", AttemptNumber: 2,
		Score: 90, TotalMarks: 100, TimeSpent: 200,
		Status: models.AttemptCompleted, CompletedAt: completedAt(10),
	})

	view, err := svc.StudentResults(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Results) != 1 {
		t.Fatalf("rows = %d, want 1 after dedup", len(view.Results))
	}
	if view.Results[0].AttemptNumber != 2 || view.Results[0].Score != 90 {
		t.Errorf("row = %+v, want the latest attempt (number 2, score 90)", view.Results[0])
	}
}

func TestStudentResultsIgnoresInProgress(t *testing.T) {
	svc, _, attempts := resultFixture()
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", AttemptNumber: 1,
		Status: models.AttemptInProgress,
	})

	view, err := svc.StudentResults(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Results) != 0 {
		t.Errorf("rows = %d, want 0: an attempt never submitted stays invisible", len(view.Results))
	}
}

func TestStudentResultsStats(t *testing.T) {
	svc, _, attempts := resultFixture()
	// 35/50 = 70% and 30/50 = 60%; combined 65/100 = 65%.
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", AttemptNumber: 1,
		Score: 35, TotalMarks: 50, TimeSpent: 120,
		Status: models.AttemptCompleted, CompletedAt: completedAt(9),
	})
	attempts.seed(models.Attempt{
		QuizID: "quiz2", StudentID: "s1", AttemptNumber: 1,
		Score: 30, TotalMarks: 50, TimeSpent: 125,
		Status: models.AttemptCompleted, CompletedAt: completedAt(10),
	})

	view, err := svc.StudentResults(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	stats := view.Stats
	if stats.TotalQuizzes != 2 {
		t.Errorf("total quizzes = %d, want 2", stats.TotalQuizzes)
	}
	if stats.AverageScore != 65.0 {
		t.Errorf("average score = %v, want 65.0", stats.AverageScore)
	}
	if stats.BestScore != 70.0 {
		t.Errorf("best score = %v, want 70.0", stats.BestScore)
	}
	if stats.AverageTime != 122 { // floor((120+125)/2)
		t.Errorf("average time = %d, want 122", stats.AverageTime)
	}
	// Newest completion first.
	if view.Results[0].QuizID != "quiz2" {
		t.Errorf("first row = %s, want quiz2 (newest)", view.Results[0].QuizID)
	}
}

func TestStudentResultsEmpty(t *testing.T) {
	svc, _, _ := resultFixture()
	view, err := svc.StudentResults(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if view.Stats != (models.StudentStats{}) {
		t.Errorf("stats = %+v, want all zeros", view.Stats)
	}
}

func TestQuizSubmissionsAuthorization(t *testing.T) {
	svc, _, _ := resultFixture()
	_, err := svc.QuizSubmissions(context.Background(), "quiz1", "teacherB")
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden for a non-owner", err)
	}
}

func TestQuizSubmissionsUnknownQuiz(t *testing.T) {
	svc, _, _ := resultFixture()
	_, err := svc.QuizSubmissions(context.Background(), "ghost", "teacherA")
	if !errors.Is(err, models.ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestQuizSubmissionsDedupAndOrder(t *testing.T) {
	svc, _, attempts := resultFixture()
	// s1 retook and improved; s2 has one fast low score.
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", StudentName: "Asha", AttemptNumber: 1,
		Score: 40, TotalMarks: 100, TimeSpent: 100,
		Status: models.AttemptCompleted, CompletedAt: completedAt(9),
	})
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s1", StudentName: "Asha", AttemptNumber: 2,
		Score: 90, TotalMarks: 100, TimeSpent: 180,
		Status: models.AttemptCompleted, CompletedAt: completedAt(10),
	})
	attempts.seed(models.Attempt{
		QuizID: "quiz1", StudentID: "s2", StudentName: "Ben", AttemptNumber: 1,
		Score: 30, TotalMarks: 100, TimeSpent: 60,
		Status: models.AttemptCompleted, CompletedAt: completedAt(11),
	})

	view, err := svc.QuizSubmissions(context.Background(), "quiz1", "teacherA")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Submissions) != 2 {
		t.Fatalf("rows = %d, want 2 (one per student)", len(view.Submissions))
	}
	if view.Submissions[0].StudentID != "s1" || view.Submissions[0].Score != 90 {
		t.Errorf("top row = %+v, want s1's latest attempt at 90", view.Submissions[0])
	}
	if view.Submissions[1].StudentID != "s2" {
		t.Errorf("second row = %+v, want s2", view.Submissions[1])
	}
}

func TestQuizSubmissionsStats(t *testing.T) {
	svc, _, attempts := resultFixture()
	// Percentages: 90, 50, 20 → average 53.3, pass rate 2/3 = 66.7.
	rows := []struct {
		student string
		score   int
		seconds int
	}{
		{"s1", 90, 100},
		{"s2", 50, 110},
		{"s3", 20, 130},
	}
	for i, r := range rows {
		attempts.seed(models.Attempt{
			QuizID: "quiz1", StudentID: r.student, AttemptNumber: 1,
			Score: r.score, TotalMarks: 100, TimeSpent: r.seconds,
			Status: models.AttemptCompleted, CompletedAt: completedAt(9 + i),
		})
	}

	view, err := svc.QuizSubmissions(context.Background(), "quiz1", "teacherA")
	if err != nil {
		t.Fatal(err)
	}
	stats := view.Stats
	if stats.TotalSubmissions != 3 {
		t.Errorf("total = %d, want 3", stats.TotalSubmissions)
	}
	if stats.AverageScore != 53.3 {
		t.Errorf("average = %v, want 53.3", stats.AverageScore)
	}
	if stats.HighestScore != 90.0 || stats.LowestScore != 20.0 {
		t.Errorf("extrema = %v/%v, want 90.0/20.0", stats.HighestScore, stats.LowestScore)
	}
	if stats.AverageTime != 113 { // floor(340/3)
		t.Errorf("average time = %d, want 113", stats.AverageTime)
	}
	if stats.PassRate != 66.7 {
		t.Errorf("pass rate = %v, want 66.7 (50%% counts as passing)", stats.PassRate)
	}
}

func TestQuizSubmissionsEmpty(t *testing.T) {
	svc, _, _ := resultFixture()
	view, err := svc.QuizSubmissions(context.Background(), "quiz1", "teacherA")
	if err != nil {
		t.Fatal(err)
	}
	if view.Stats != (models.QuizSubmissionStats{}) {
		t.Errorf("stats = %+v, want all zeros", view.Stats)
	}
	if len(view.Submissions) != 0 {
		t.Errorf("rows = %d, want 0", len(view.Submissions))
	}
}
