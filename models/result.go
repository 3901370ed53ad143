package models

import (
	"time"
)

// QuizResult is one user's single graded attempt at a quiz.
// At most one row per (user, quiz) — the first completion is authoritative.
type QuizResult struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"index;not null;uniqueIndex:idx_user_quiz" json:"user_id"`
	QuizID string `gorm:"index;not null;uniqueIndex:idx_user_quiz" json:"quiz_id"`

	// Score is the percentage of correct answers, 0..100.
	Score int `gorm:"not null" json:"score"`
	// TotalPoints is what the attempt earned toward the user's balance.
	TotalPoints int64 `gorm:"not null" json:"total_points"`

	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}

// LeaderboardEntry is one row of the ranked points table. Rank is the 1-based
// position in the full ordered user set, assigned before any truncation.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	TotalPoints int64  `json:"total_points"`
	GamesPlayed int64  `json:"games_played"`
}
