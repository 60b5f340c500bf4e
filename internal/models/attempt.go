package models

import (
	"math"
	"time"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// Attempt is one student's timed run through a quiz. Answers is sparse:
// unanswered questions are simply absent. TotalMarks is snapshotted from the
// quiz at start time and stays authoritative for percentage math even if the
// quiz is edited later.
type Attempt struct {
	ID              string            `bson:"_id,omitempty" json:"id"`
	QuizID          string            `bson:"quiz_id" json:"quiz_id"`
	StudentID       string            `bson:"student_id" json:"student_id"`
	StudentName     string            `bson:"student_name" json:"student_name"`
	AttemptNumber   int               `bson:"attempt_number" json:"attempt_number"`
	Answers         map[string]string `bson:"answers" json:"answers"`
	Score           int               `bson:"score" json:"score"`
	CorrectCount    int               `bson:"correct_count" json:"correct_count"`
	WrongCount      int               `bson:"wrong_count" json:"wrong_count"`
	UnansweredCount int               `bson:"unanswered_count" json:"unanswered_count"`
	TotalMarks      int               `bson:"total_marks" json:"total_marks"`
	TimeSpent       int               `bson:"time_spent" json:"time_spent"`
	Status          AttemptStatus     `bson:"status" json:"status"`
	StartedAt       time.Time         `bson:"started_at" json:"started_at"`
	CompletedAt     time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// Percentage returns the attempt score as a percentage of its snapshotted
// total marks, rounded to one decimal place.
func (a *Attempt) Percentage() float64 {
	if a.TotalMarks == 0 {
		return 0
	}
	return Round1(float64(a.Score) / float64(a.TotalMarks) * 100)
}

// Round1 rounds to one decimal place. All reported percentages use it.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AttemptCompletion carries the final tallies written when an attempt closes.
type AttemptCompletion struct {
	Answers         map[string]string
	Score           int
	CorrectCount    int
	WrongCount      int
	UnansweredCount int
	TimeSpent       int
}
