package service

import (
	"testing"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

func completedAttempt(id, studentID string, score, timeSpent int) models.Attempt {
	return models.Attempt{
		ID:          id,
		QuizID:      "quiz1",
		StudentID:   studentID,
		StudentName: "Student " + studentID,
		Score:       score,
		TimeSpent:   timeSpent,
		Status:      models.AttemptCompleted,
		CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRankAttemptsScoreThenTime(t *testing.T) {
	// Equal scores break on time spent: faster wins.
	attempts := []models.Attempt{
		completedAttempt("a1", "s1", 80, 120),
		completedAttempt("a2", "s2", 80, 100),
		completedAttempt("a3", "s3", 60, 50),
	}

	rank, leaderboard := RankAttempts(attempts, "a1", "s1", 5)
	if rank != 2 {
		t.Errorf("rank of (80,120) = %d, want 2", rank)
	}

	wantOrder := []string{"s2", "s1", "s3"}
	for i, want := range wantOrder {
		if leaderboard[i].StudentID != want {
			t.Errorf("leaderboard[%d] = %s, want %s", i, leaderboard[i].StudentID, want)
		}
	}
}

func TestRankAttemptsFullTieIsDeterministic(t *testing.T) {
	// Same score, same time: completion timestamp then id decide.
	early := completedAttempt("a1", "s1", 70, 90)
	late := completedAttempt("a2", "s2", 70, 90)
	late.CompletedAt = early.CompletedAt.Add(5 * time.Second)

	for _, attempts := range [][]models.Attempt{{early, late}, {late, early}} {
		rank, leaderboard := RankAttempts(attempts, "a1", "s1", 5)
		if rank != 1 {
			t.Errorf("rank of earlier submission = %d, want 1", rank)
		}
		if leaderboard[0].StudentID != "s1" || leaderboard[1].StudentID != "s2" {
			t.Errorf("order = %s,%s, want s1,s2 regardless of input order",
				leaderboard[0].StudentID, leaderboard[1].StudentID)
		}
	}
}

func TestRankAttemptsIdenticalTimestampsFallBackToID(t *testing.T) {
	a := completedAttempt("a1", "s1", 70, 90)
	b := completedAttempt("a2", "s2", 70, 90)

	_, first := RankAttempts([]models.Attempt{b, a}, "a1", "s1", 5)
	_, second := RankAttempts([]models.Attempt{a, b}, "a1", "s1", 5)
	if first[0].StudentID != second[0].StudentID {
		t.Errorf("order depends on input order: %s vs %s", first[0].StudentID, second[0].StudentID)
	}
	if first[0].StudentID != "s1" {
		t.Errorf("leaderboard[0] = %s, want s1 (lower attempt id)", first[0].StudentID)
	}
}

func TestRankAttemptsLeaderboardBounded(t *testing.T) {
	var attempts []models.Attempt
	for i := 0; i < 8; i++ {
		attempts = append(attempts, completedAttempt(
			string(rune('a'+i))+"1", string(rune('a'+i)), 10*i, 60))
	}

	rank, leaderboard := RankAttempts(attempts, "a1", "a", 5)
	if len(leaderboard) != 5 {
		t.Errorf("leaderboard size = %d, want 5", len(leaderboard))
	}
	// Lowest score of the eight, so ranked last and absent from the top 5.
	if rank != 8 {
		t.Errorf("rank = %d, want 8", rank)
	}
	for _, entry := range leaderboard {
		if entry.IsCurrentUser {
			t.Errorf("entry %s flagged as current user", entry.StudentID)
		}
	}
}

func TestRankAttemptsFlagsCurrentUser(t *testing.T) {
	attempts := []models.Attempt{
		completedAttempt("a1", "s1", 90, 60),
		completedAttempt("a2", "s2", 50, 60),
	}
	_, leaderboard := RankAttempts(attempts, "a2", "s2", 5)
	if leaderboard[0].IsCurrentUser {
		t.Error("s1's entry flagged as current user")
	}
	if !leaderboard[1].IsCurrentUser {
		t.Error("s2's own entry not flagged")
	}
}

func TestRankAttemptsMissingAttempt(t *testing.T) {
	attempts := []models.Attempt{completedAttempt("a1", "s1", 90, 60)}
	rank, _ := RankAttempts(attempts, "ghost", "s9", 5)
	if rank != 0 {
		t.Errorf("rank = %d, want 0 for an attempt outside the cohort", rank)
	}
}
