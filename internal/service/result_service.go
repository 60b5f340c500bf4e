package service

import (
	"context"
	"sort"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

const DefaultPassMarkPercent = 50.0

// ResultService derives read-only statistics from completed attempts. Both
// views apply "latest attempt counts" retake semantics: among a student's
// completed attempts on one quiz, only the highest attempt number survives.
type ResultService struct {
	quizzes         QuizStore
	attempts        AttemptStore
	passMarkPercent float64
}

func NewResultService(quizzes QuizStore, attempts AttemptStore) *ResultService {
	return &ResultService{
		quizzes:         quizzes,
		attempts:        attempts,
		passMarkPercent: DefaultPassMarkPercent,
	}
}

// WithPassMark overrides the pass threshold used for the pass rate.
func (s *ResultService) WithPassMark(percent float64) *ResultService {
	if percent > 0 {
		s.passMarkPercent = percent
	}
	return s
}

// latestAttempts keeps, per (quiz, student), the completed attempt with the
// largest attempt number. Attempts still in progress never reach here.
func latestAttempts(attempts []models.Attempt) []models.Attempt {
	type key struct{ quizID, studentID string }
	latest := make(map[key]models.Attempt)
	for _, a := range attempts {
		k := key{a.QuizID, a.StudentID}
		if prev, ok := latest[k]; !ok || a.AttemptNumber > prev.AttemptNumber {
			latest[k] = a
		}
	}
	out := make([]models.Attempt, 0, len(latest))
	for _, a := range latest {
		out = append(out, a)
	}
	return out
}

// StudentResults returns one row per distinct quiz the student has completed,
// newest first, with aggregate stats across those rows.
func (s *ResultService) StudentResults(ctx context.Context, studentID string) (*models.StudentResultsView, error) {
	completed, err := s.attempts.FindCompletedByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	latest := latestAttempts(completed)

	quizIDs := make([]string, 0, len(latest))
	for _, a := range latest {
		quizIDs = append(quizIDs, a.QuizID)
	}
	quizzes, err := s.quizzes.FindByIDs(ctx, quizIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Quiz, len(quizzes))
	for _, q := range quizzes {
		byID[q.ID] = q
	}

	results := make([]models.StudentResult, 0, len(latest))
	for _, a := range latest {
		quiz := byID[a.QuizID]
		results = append(results, models.StudentResult{
			QuizID:        a.QuizID,
			QuizTitle:     quiz.Title,
			SubjectID:     quiz.SubjectID,
			ClassID:       quiz.ClassID,
			AttemptID:     a.ID,
			AttemptNumber: a.AttemptNumber,
			Score:         a.Score,
			TotalMarks:    a.TotalMarks,
			Percentage:    a.Percentage(),
			TimeSpent:     a.TimeSpent,
			CompletedAt:   a.CompletedAt,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})

	return &models.StudentResultsView{
		Results: results,
		Stats:   studentStats(results),
	}, nil
}

func studentStats(results []models.StudentResult) models.StudentStats {
	stats := models.StudentStats{TotalQuizzes: len(results)}
	if len(results) == 0 {
		return stats
	}
	var scoreSum, marksSum, timeSum int
	for _, r := range results {
		scoreSum += r.Score
		marksSum += r.TotalMarks
		timeSum += r.TimeSpent
		if r.Percentage > stats.BestScore {
			stats.BestScore = r.Percentage
		}
	}
	if marksSum > 0 {
		stats.AverageScore = models.Round1(float64(scoreSum) / float64(marksSum) * 100)
	}
	stats.AverageTime = timeSum / len(results)
	return stats
}

// QuizSubmissions returns the teacher's review view for one quiz: each
// student's latest completed attempt, ranked the same way the live
// leaderboard is. Only the quiz owner may call it.
func (s *ResultService) QuizSubmissions(ctx context.Context, quizID, requesterID string) (*models.QuizSubmissionsView, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.CreatedBy != requesterID {
		return nil, models.ErrForbidden
	}

	completed, err := s.attempts.FindCompletedByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	latest := latestAttempts(completed)
	sortRanked(latest)

	submissions := make([]models.QuizSubmission, 0, len(latest))
	for _, a := range latest {
		submissions = append(submissions, models.QuizSubmission{
			AttemptID:     a.ID,
			StudentID:     a.StudentID,
			StudentName:   a.StudentName,
			AttemptNumber: a.AttemptNumber,
			Score:         a.Score,
			TotalMarks:    a.TotalMarks,
			Percentage:    a.Percentage(),
			TimeSpent:     a.TimeSpent,
			CompletedAt:   a.CompletedAt,
		})
	}

	return &models.QuizSubmissionsView{
		Submissions: submissions,
		Stats:       s.submissionStats(submissions),
	}, nil
}

func (s *ResultService) submissionStats(submissions []models.QuizSubmission) models.QuizSubmissionStats {
	stats := models.QuizSubmissionStats{TotalSubmissions: len(submissions)}
	if len(submissions) == 0 {
		return stats
	}
	var pctSum float64
	var timeSum, passed int
	stats.LowestScore = submissions[0].Percentage
	for _, sub := range submissions {
		pctSum += sub.Percentage
		timeSum += sub.TimeSpent
		if sub.Percentage >= s.passMarkPercent {
			passed++
		}
		if sub.Percentage > stats.HighestScore {
			stats.HighestScore = sub.Percentage
		}
		if sub.Percentage < stats.LowestScore {
			stats.LowestScore = sub.Percentage
		}
	}
	stats.AverageScore = models.Round1(pctSum / float64(len(submissions)))
	stats.AverageTime = timeSum / len(submissions)
	stats.PassRate = models.Round1(float64(passed) / float64(len(submissions)) * 100)
	return stats
}
