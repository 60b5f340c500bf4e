package models

// LeaderboardEntry is one row of the bounded top-N leaderboard for a quiz.
type LeaderboardEntry struct {
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	Score         int    `json:"score"`
	TimeSpent     int    `json:"time_spent"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// SubmitResult is returned to the student right after a submission: the raw
// score breakdown plus their rank among all completed attempts on the quiz.
type SubmitResult struct {
	AttemptID       string             `json:"attempt_id"`
	Score           int                `json:"score"`
	TotalMarks      int                `json:"total_marks"`
	CorrectCount    int                `json:"correct_count"`
	WrongCount      int                `json:"wrong_count"`
	UnansweredCount int                `json:"unanswered_count"`
	TimeSpent       int                `json:"time_spent"`
	Rank            int                `json:"rank"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
}
