package services

import (
	"student-platform/models"
	"student-platform/store"
)

// LeaderboardService derives point totals and rankings from the result
// history. Everything here is recomputed per call — O(results) reads, which
// is fine at this scale and documented as the tradeoff.
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(s store.Store) *LeaderboardService {
	return &LeaderboardService{store: s}
}

// TotalPoints sums earned points over all of the user's results; 0 if none.
func (s *LeaderboardService) TotalPoints(userID string) (int64, error) {
	return s.store.TotalPoints(userID)
}

// GamesPlayed counts the user's recorded results.
func (s *LeaderboardService) GamesPlayed(userID string) (int64, error) {
	return s.store.GamesPlayed(userID)
}

// Leaderboard ranks every user (zero-result users included) descending by
// total points and returns the first limit entries. Rank is the plain 1-based
// position in the full ordering — ties get distinct consecutive ranks, broken
// by user creation order — and is assigned before truncation so the surviving
// entries keep their true rank numbers.
func (s *LeaderboardService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.store.LeaderboardRows()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

// FindUserRank scans the full ranking for the user. The second return is
// false when the user does not appear. O(users) by design.
func (s *LeaderboardService) FindUserRank(userID string) (int, bool, error) {
	rows, err := s.store.LeaderboardRows()
	if err != nil {
		return 0, false, err
	}
	for i, row := range rows {
		if row.UserID == userID {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}
