package store

import (
	"errors"

	"student-platform/models"
)

// ErrNotFound is returned by lookup methods when no row matches.
var ErrNotFound = errors.New("record not found")

// Store is the single handle to the ledger. It is constructed once in main
// and injected into every service — no package-level connection state.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	UserByID(id string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UserByPhone(phone string) (*models.User, error)
	UserByTelegramID(telegramID string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(u *models.User) error

	// Quizzes (questions are owned by their quiz and travel with it)
	CreateQuiz(q *models.Quiz) error
	QuizByID(id string) (*models.Quiz, error)
	ListQuizzes(activeOnly bool) ([]models.Quiz, error)

	// Quiz results
	CreateResult(r *models.QuizResult) error
	ResultByUserAndQuiz(userID, quizID string) (*models.QuizResult, error)
	ResultsByUser(userID string) ([]models.QuizResult, error)
	TotalPoints(userID string) (int64, error)
	GamesPlayed(userID string) (int64, error)

	// LeaderboardRows returns one row per user (zero-result users included)
	// ordered by total points descending. Ties keep the store's natural
	// enumeration order: user creation order, oldest first. Ranks are not
	// assigned here.
	LeaderboardRows() ([]models.LeaderboardEntry, error)

	// Rewards and claims
	CreateReward(r *models.Reward) error
	RewardByID(id string) (*models.Reward, error)
	UpdateReward(r *models.Reward) error
	ListRewards(availableOnly bool) ([]models.Reward, error)
	// DecrementRewardStock performs a guarded decrement-if-positive. It
	// reports false when the reward is missing or already out of stock, and
	// flips is_available off when the decrement reaches zero.
	DecrementRewardStock(id string) (bool, error)
	CreateClaim(c *models.RewardClaim) error
	ClaimByID(id string) (*models.RewardClaim, error)
	UpdateClaim(c *models.RewardClaim) error
	ClaimsByUser(userID string) ([]models.RewardClaim, error)
	ClaimsByStatus(status models.ClaimStatus) ([]models.RewardClaim, error)

	// Internships
	CreateInternship(i *models.Internship) error
	ListInternships(activeOnly bool) ([]models.Internship, error)

	// Transact runs fn against a store view whose writes commit atomically.
	// fn returning an error aborts the whole unit.
	Transact(fn func(Store) error) error
}
