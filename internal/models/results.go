package models

import "time"

// StudentResult is one row of a student's results view: their latest completed
// attempt on a quiz, joined with quiz metadata.
type StudentResult struct {
	QuizID        string    `json:"quiz_id"`
	QuizTitle     string    `json:"quiz_title"`
	SubjectID     string    `json:"subject_id"`
	ClassID       string    `json:"class_id"`
	AttemptID     string    `json:"attempt_id"`
	AttemptNumber int       `json:"attempt_number"`
	Score         int       `json:"score"`
	TotalMarks    int       `json:"total_marks"`
	Percentage    float64   `json:"percentage"`
	TimeSpent     int       `json:"time_spent"`
	CompletedAt   time.Time `json:"completed_at"`
}

// StudentStats aggregates a student's latest completed attempts across quizzes.
type StudentStats struct {
	TotalQuizzes int     `json:"total_quizzes"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
	AverageTime  int     `json:"average_time"`
}

type StudentResultsView struct {
	Results []StudentResult `json:"results"`
	Stats   StudentStats    `json:"stats"`
}

// QuizSubmission is one row of the teacher's review view: a student's latest
// completed attempt on the quiz.
type QuizSubmission struct {
	AttemptID     string    `json:"attempt_id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	AttemptNumber int       `json:"attempt_number"`
	Score         int       `json:"score"`
	TotalMarks    int       `json:"total_marks"`
	Percentage    float64   `json:"percentage"`
	TimeSpent     int       `json:"time_spent"`
	CompletedAt   time.Time `json:"completed_at"`
}

type QuizSubmissionStats struct {
	TotalSubmissions int     `json:"total_submissions"`
	AverageScore     float64 `json:"average_score"`
	HighestScore     float64 `json:"highest_score"`
	LowestScore      float64 `json:"lowest_score"`
	AverageTime      int     `json:"average_time"`
	PassRate         float64 `json:"pass_rate"`
}

type QuizSubmissionsView struct {
	Submissions []QuizSubmission    `json:"submissions"`
	Stats       QuizSubmissionStats `json:"stats"`
}
