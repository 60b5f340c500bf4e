package models

import "time"

// Quiz is the published, attemptable unit. TotalMarks and QuestionsCount are
// fixed when the quiz is published and only change when the owning teacher
// replaces the question set.
type Quiz struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title"`
	ClassID          string    `bson:"class_id" json:"class_id"`
	SubjectID        string    `bson:"subject_id" json:"subject_id"`
	CreatedBy        string    `bson:"created_by" json:"created_by"`
	TotalMarks       int       `bson:"total_marks" json:"total_marks"`
	QuestionsCount   int       `bson:"questions_count" json:"questions_count"`
	TimeLimitSeconds int       `bson:"time_limit_seconds" json:"time_limit_seconds"`
	AllowRetake      bool      `bson:"allow_retake" json:"allow_retake"`
	IsPublished      bool      `bson:"is_published" json:"is_published"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// Question belongs to exactly one quiz. QuestionNumber is 1-based and defines
// both display and scoring order.
type Question struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	QuizID         string   `bson:"quiz_id" json:"quiz_id"`
	QuestionNumber int      `bson:"question_number" json:"question_number"`
	Text           string   `bson:"text" json:"text"`
	Options        []string `bson:"options" json:"options"`
	CorrectAnswer  string   `bson:"correct_answer" json:"correct_answer,omitempty"`
	Marks          int      `bson:"marks" json:"marks"`
	Explanation    string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Sanitize strips the answer key so the question can be shown to a student
// who has not submitted yet.
func (q Question) Sanitize() Question {
	q.CorrectAnswer = ""
	q.Explanation = ""
	return q
}
