package service

import (
	"sort"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

// rankedBefore is the total order used for every ranked view: score
// descending, then timeSpent ascending (faster wins ties), then completion
// time, then attempt id. The last two keys keep the order deterministic when
// score and time are both equal.
func rankedBefore(a, b models.Attempt) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.TimeSpent != b.TimeSpent {
		return a.TimeSpent < b.TimeSpent
	}
	if !a.CompletedAt.Equal(b.CompletedAt) {
		return a.CompletedAt.Before(b.CompletedAt)
	}
	return a.ID < b.ID
}

// sortRanked orders completed attempts in place by rankedBefore.
func sortRanked(attempts []models.Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		return rankedBefore(attempts[i], attempts[j])
	})
}

// RankAttempts computes the 1-based rank of attemptID among the given
// completed attempts and the top-N leaderboard. viewerID marks the entries
// belonging to the querying student. Rank is 0 when attemptID is not present
// (a concurrent reader racing the submit write).
//
// The ranking is recomputed from scratch each call; cohorts are per-class,
// so O(n log n) over completed attempts is fine.
func RankAttempts(attempts []models.Attempt, attemptID, viewerID string, topN int) (int, []models.LeaderboardEntry) {
	ordered := make([]models.Attempt, len(attempts))
	copy(ordered, attempts)
	sortRanked(ordered)

	rank := 0
	for i, a := range ordered {
		if a.ID == attemptID {
			rank = i + 1
			break
		}
	}

	if topN > len(ordered) {
		topN = len(ordered)
	}
	leaderboard := make([]models.LeaderboardEntry, 0, topN)
	for _, a := range ordered[:topN] {
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			StudentID:     a.StudentID,
			StudentName:   a.StudentName,
			Score:         a.Score,
			TimeSpent:     a.TimeSpent,
			IsCurrentUser: a.StudentID == viewerID,
		})
	}
	return rank, leaderboard
}
