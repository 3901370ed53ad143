package store

import (
	"errors"

	"student-platform/models"

	"gorm.io/gorm"
)

// gormStore is the Postgres-backed Store.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an opened gorm handle.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// --- Users ---

func (g *gormStore) CreateUser(u *models.User) error {
	return g.db.Create(u).Error
}

func (g *gormStore) UserByID(id string) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (g *gormStore) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (g *gormStore) UserByPhone(phone string) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, "phone = ?", phone).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (g *gormStore) UserByTelegramID(telegramID string) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, "telegram_id = ?", telegramID).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (g *gormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	err := g.db.Order("created_at ASC, id ASC").Find(&users).Error
	return users, err
}

func (g *gormStore) UpdateUser(u *models.User) error {
	return g.db.Save(u).Error
}

// --- Quizzes ---

func (g *gormStore) CreateQuiz(q *models.Quiz) error {
	// Questions ride along via the association; one insert unit.
	return g.db.Create(q).Error
}

func (g *gormStore) QuizByID(id string) (*models.Quiz, error) {
	var q models.Quiz
	err := g.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&q, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (g *gormStore) ListQuizzes(activeOnly bool) ([]models.Quiz, error) {
	db := g.db.Order("created_at DESC")
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	var quizzes []models.Quiz
	err := db.Find(&quizzes).Error
	return quizzes, err
}

// --- Quiz results ---

func (g *gormStore) CreateResult(r *models.QuizResult) error {
	return g.db.Create(r).Error
}

func (g *gormStore) ResultByUserAndQuiz(userID, quizID string) (*models.QuizResult, error) {
	var r models.QuizResult
	if err := g.db.First(&r, "user_id = ? AND quiz_id = ?", userID, quizID).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (g *gormStore) ResultsByUser(userID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := g.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (g *gormStore) TotalPoints(userID string) (int64, error) {
	var total int64
	err := g.db.Model(&models.QuizResult{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&total).Error
	return total, err
}

func (g *gormStore) GamesPlayed(userID string) (int64, error) {
	var count int64
	err := g.db.Model(&models.QuizResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (g *gormStore) LeaderboardRows() ([]models.LeaderboardEntry, error) {
	var rows []models.LeaderboardEntry
	err := g.db.Model(&models.User{}).
		Select(`users.id AS user_id,
			users.full_name,
			COALESCE(SUM(quiz_results.total_points), 0) AS total_points,
			COUNT(quiz_results.id) AS games_played`).
		Joins("LEFT JOIN quiz_results ON quiz_results.user_id = users.id").
		Group("users.id, users.full_name, users.created_at").
		Order("total_points DESC, users.created_at ASC, users.id ASC").
		Scan(&rows).Error
	return rows, err
}

// --- Rewards and claims ---

func (g *gormStore) CreateReward(r *models.Reward) error {
	return g.db.Create(r).Error
}

func (g *gormStore) RewardByID(id string) (*models.Reward, error) {
	var r models.Reward
	if err := g.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (g *gormStore) UpdateReward(r *models.Reward) error {
	return g.db.Save(r).Error
}

func (g *gormStore) ListRewards(availableOnly bool) ([]models.Reward, error) {
	db := g.db.Order("created_at DESC")
	if availableOnly {
		db = db.Where("is_available = ? AND stock_quantity > 0", true)
	}
	var rewards []models.Reward
	err := db.Find(&rewards).Error
	return rewards, err
}

func (g *gormStore) DecrementRewardStock(id string) (bool, error) {
	// Guarded decrement: two concurrent claims at stock=1 race on the same
	// row and only one UPDATE matches. is_available flips off when the
	// decrement exhausts the stock (RHS reads pre-update values).
	res := g.db.Model(&models.Reward{}).
		Where("id = ? AND stock_quantity > 0", id).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - 1"),
			"is_available":   gorm.Expr("stock_quantity - 1 > 0 AND is_available"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (g *gormStore) CreateClaim(c *models.RewardClaim) error {
	return g.db.Create(c).Error
}

func (g *gormStore) ClaimByID(id string) (*models.RewardClaim, error) {
	var c models.RewardClaim
	if err := g.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (g *gormStore) UpdateClaim(c *models.RewardClaim) error {
	return g.db.Save(c).Error
}

func (g *gormStore) ClaimsByUser(userID string) ([]models.RewardClaim, error) {
	var claims []models.RewardClaim
	err := g.db.Where("user_id = ?", userID).
		Order("claimed_at DESC").
		Find(&claims).Error
	return claims, err
}

func (g *gormStore) ClaimsByStatus(status models.ClaimStatus) ([]models.RewardClaim, error) {
	var claims []models.RewardClaim
	err := g.db.Where("status = ?", status).
		Order("claimed_at ASC").
		Find(&claims).Error
	return claims, err
}

// --- Internships ---

func (g *gormStore) CreateInternship(i *models.Internship) error {
	return g.db.Create(i).Error
}

func (g *gormStore) ListInternships(activeOnly bool) ([]models.Internship, error) {
	db := g.db.Order("created_at DESC")
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	var internships []models.Internship
	err := db.Find(&internships).Error
	return internships, err
}

// --- Transactions ---

func (g *gormStore) Transact(fn func(Store) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
