package store

import (
	"sort"
	"sync"
	"time"

	"student-platform/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and local runs without
// Postgres. A single mutex serializes every operation, so Transact gives the
// same one-writer-at-a-time guarantee the SQL transaction does. It does not
// roll back: callers mutate only after their checks pass, which is how every
// service here is written.
type MemoryStore struct {
	mu   sync.Mutex
	data memData
}

type memData struct {
	users       []*models.User
	quizzes     []*models.Quiz
	results     []*models.QuizResult
	rewards     []*models.Reward
	claims      []*models.RewardClaim
	internships []*models.Internship
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// memTx exposes the shared data without locking; only Transact hands it out,
// while holding the store mutex.
type memTx struct {
	data *memData
}

func (m *MemoryStore) Transact(fn func(Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(&memTx{data: &m.data})
}

func (m *MemoryStore) locked(fn func(*memTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(&memTx{data: &m.data})
}

// The exported methods below take the store mutex and delegate to memTx.

func (m *MemoryStore) CreateUser(u *models.User) error {
	return m.locked(func(d *memTx) error { return d.CreateUser(u) })
}

func (m *MemoryStore) UserByID(id string) (u *models.User, err error) {
	m.locked(func(d *memTx) error { u, err = d.UserByID(id); return nil })
	return
}

func (m *MemoryStore) UserByEmail(email string) (u *models.User, err error) {
	m.locked(func(d *memTx) error { u, err = d.UserByEmail(email); return nil })
	return
}

func (m *MemoryStore) UserByPhone(phone string) (u *models.User, err error) {
	m.locked(func(d *memTx) error { u, err = d.UserByPhone(phone); return nil })
	return
}

func (m *MemoryStore) UserByTelegramID(telegramID string) (u *models.User, err error) {
	m.locked(func(d *memTx) error { u, err = d.UserByTelegramID(telegramID); return nil })
	return
}

func (m *MemoryStore) ListUsers() (users []models.User, err error) {
	m.locked(func(d *memTx) error { users, err = d.ListUsers(); return nil })
	return
}

func (m *MemoryStore) UpdateUser(u *models.User) error {
	return m.locked(func(d *memTx) error { return d.UpdateUser(u) })
}

func (m *MemoryStore) CreateQuiz(q *models.Quiz) error {
	return m.locked(func(d *memTx) error { return d.CreateQuiz(q) })
}

func (m *MemoryStore) QuizByID(id string) (q *models.Quiz, err error) {
	m.locked(func(d *memTx) error { q, err = d.QuizByID(id); return nil })
	return
}

func (m *MemoryStore) ListQuizzes(activeOnly bool) (quizzes []models.Quiz, err error) {
	m.locked(func(d *memTx) error { quizzes, err = d.ListQuizzes(activeOnly); return nil })
	return
}

func (m *MemoryStore) CreateResult(r *models.QuizResult) error {
	return m.locked(func(d *memTx) error { return d.CreateResult(r) })
}

func (m *MemoryStore) ResultByUserAndQuiz(userID, quizID string) (r *models.QuizResult, err error) {
	m.locked(func(d *memTx) error { r, err = d.ResultByUserAndQuiz(userID, quizID); return nil })
	return
}

func (m *MemoryStore) ResultsByUser(userID string) (results []models.QuizResult, err error) {
	m.locked(func(d *memTx) error { results, err = d.ResultsByUser(userID); return nil })
	return
}

func (m *MemoryStore) TotalPoints(userID string) (total int64, err error) {
	m.locked(func(d *memTx) error { total, err = d.TotalPoints(userID); return nil })
	return
}

func (m *MemoryStore) GamesPlayed(userID string) (count int64, err error) {
	m.locked(func(d *memTx) error { count, err = d.GamesPlayed(userID); return nil })
	return
}

func (m *MemoryStore) LeaderboardRows() (rows []models.LeaderboardEntry, err error) {
	m.locked(func(d *memTx) error { rows, err = d.LeaderboardRows(); return nil })
	return
}

func (m *MemoryStore) CreateReward(r *models.Reward) error {
	return m.locked(func(d *memTx) error { return d.CreateReward(r) })
}

func (m *MemoryStore) RewardByID(id string) (r *models.Reward, err error) {
	m.locked(func(d *memTx) error { r, err = d.RewardByID(id); return nil })
	return
}

func (m *MemoryStore) UpdateReward(r *models.Reward) error {
	return m.locked(func(d *memTx) error { return d.UpdateReward(r) })
}

func (m *MemoryStore) ListRewards(availableOnly bool) (rewards []models.Reward, err error) {
	m.locked(func(d *memTx) error { rewards, err = d.ListRewards(availableOnly); return nil })
	return
}

func (m *MemoryStore) DecrementRewardStock(id string) (ok bool, err error) {
	m.locked(func(d *memTx) error { ok, err = d.DecrementRewardStock(id); return nil })
	return
}

func (m *MemoryStore) CreateClaim(c *models.RewardClaim) error {
	return m.locked(func(d *memTx) error { return d.CreateClaim(c) })
}

func (m *MemoryStore) ClaimByID(id string) (c *models.RewardClaim, err error) {
	m.locked(func(d *memTx) error { c, err = d.ClaimByID(id); return nil })
	return
}

func (m *MemoryStore) UpdateClaim(c *models.RewardClaim) error {
	return m.locked(func(d *memTx) error { return d.UpdateClaim(c) })
}

func (m *MemoryStore) ClaimsByUser(userID string) (claims []models.RewardClaim, err error) {
	m.locked(func(d *memTx) error { claims, err = d.ClaimsByUser(userID); return nil })
	return
}

func (m *MemoryStore) ClaimsByStatus(status models.ClaimStatus) (claims []models.RewardClaim, err error) {
	m.locked(func(d *memTx) error { claims, err = d.ClaimsByStatus(status); return nil })
	return
}

func (m *MemoryStore) CreateInternship(i *models.Internship) error {
	return m.locked(func(d *memTx) error { return d.CreateInternship(i) })
}

func (m *MemoryStore) ListInternships(activeOnly bool) (internships []models.Internship, err error) {
	m.locked(func(d *memTx) error { internships, err = d.ListInternships(activeOnly); return nil })
	return
}

// --- Users ---

func (d *memTx) CreateUser(u *models.User) error {
	stampID(&u.ID)
	stampTime(&u.CreatedAt)
	cp := *u
	d.data.users = append(d.data.users, &cp)
	return nil
}

func (d *memTx) UserByID(id string) (*models.User, error) {
	for _, u := range d.data.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) UserByEmail(email string) (*models.User, error) {
	for _, u := range d.data.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) UserByPhone(phone string) (*models.User, error) {
	for _, u := range d.data.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) UserByTelegramID(telegramID string) (*models.User, error) {
	for _, u := range d.data.users {
		if u.TelegramID == telegramID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) ListUsers() ([]models.User, error) {
	out := make([]models.User, 0, len(d.data.users))
	for _, u := range d.data.users {
		out = append(out, *u)
	}
	return out, nil
}

func (d *memTx) UpdateUser(u *models.User) error {
	for i, existing := range d.data.users {
		if existing.ID == u.ID {
			cp := *u
			d.data.users[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

// --- Quizzes ---

func (d *memTx) CreateQuiz(q *models.Quiz) error {
	stampID(&q.ID)
	stampTime(&q.CreatedAt)
	for i := range q.Questions {
		stampID(&q.Questions[i].ID)
		q.Questions[i].QuizID = q.ID
	}
	cp := *q
	cp.Questions = append([]models.QuizQuestion(nil), q.Questions...)
	d.data.quizzes = append(d.data.quizzes, &cp)
	return nil
}

func (d *memTx) QuizByID(id string) (*models.Quiz, error) {
	for _, q := range d.data.quizzes {
		if q.ID == id {
			cp := *q
			cp.Questions = append([]models.QuizQuestion(nil), q.Questions...)
			sort.SliceStable(cp.Questions, func(i, j int) bool {
				return cp.Questions[i].OrderIndex < cp.Questions[j].OrderIndex
			})
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) ListQuizzes(activeOnly bool) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, q := range d.data.quizzes {
		if activeOnly && !q.IsActive {
			continue
		}
		cp := *q
		cp.Questions = nil
		out = append(out, cp)
	}
	return out, nil
}

// --- Quiz results ---

func (d *memTx) CreateResult(r *models.QuizResult) error {
	stampID(&r.ID)
	stampTime(&r.CompletedAt)
	cp := *r
	d.data.results = append(d.data.results, &cp)
	return nil
}

func (d *memTx) ResultByUserAndQuiz(userID, quizID string) (*models.QuizResult, error) {
	for _, r := range d.data.results {
		if r.UserID == userID && r.QuizID == quizID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) ResultsByUser(userID string) ([]models.QuizResult, error) {
	var out []models.QuizResult
	for _, r := range d.data.results {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (d *memTx) TotalPoints(userID string) (int64, error) {
	var total int64
	for _, r := range d.data.results {
		if r.UserID == userID {
			total += r.TotalPoints
		}
	}
	return total, nil
}

func (d *memTx) GamesPlayed(userID string) (int64, error) {
	var count int64
	for _, r := range d.data.results {
		if r.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (d *memTx) LeaderboardRows() ([]models.LeaderboardEntry, error) {
	rows := make([]models.LeaderboardEntry, 0, len(d.data.users))
	for _, u := range d.data.users {
		total, _ := d.TotalPoints(u.ID)
		played, _ := d.GamesPlayed(u.ID)
		rows = append(rows, models.LeaderboardEntry{
			UserID:      u.ID,
			FullName:    u.FullName,
			TotalPoints: total,
			GamesPlayed: played,
		})
	}
	// Stable sort keeps user creation order as the tie break.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	return rows, nil
}

// --- Rewards and claims ---

func (d *memTx) CreateReward(r *models.Reward) error {
	stampID(&r.ID)
	stampTime(&r.CreatedAt)
	cp := *r
	d.data.rewards = append(d.data.rewards, &cp)
	return nil
}

func (d *memTx) RewardByID(id string) (*models.Reward, error) {
	for _, r := range d.data.rewards {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) UpdateReward(r *models.Reward) error {
	for i, existing := range d.data.rewards {
		if existing.ID == r.ID {
			cp := *r
			d.data.rewards[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (d *memTx) ListRewards(availableOnly bool) ([]models.Reward, error) {
	var out []models.Reward
	for _, r := range d.data.rewards {
		if availableOnly && !r.Claimable() {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (d *memTx) DecrementRewardStock(id string) (bool, error) {
	for _, r := range d.data.rewards {
		if r.ID == id {
			if r.StockQuantity <= 0 {
				return false, nil
			}
			r.StockQuantity--
			if r.StockQuantity == 0 {
				r.IsAvailable = false
			}
			return true, nil
		}
	}
	return false, nil
}

func (d *memTx) CreateClaim(c *models.RewardClaim) error {
	stampID(&c.ID)
	stampTime(&c.ClaimedAt)
	if c.Status == "" {
		c.Status = models.ClaimStatusPending
	}
	cp := *c
	d.data.claims = append(d.data.claims, &cp)
	return nil
}

func (d *memTx) ClaimByID(id string) (*models.RewardClaim, error) {
	for _, c := range d.data.claims {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memTx) UpdateClaim(c *models.RewardClaim) error {
	for i, existing := range d.data.claims {
		if existing.ID == c.ID {
			cp := *c
			d.data.claims[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (d *memTx) ClaimsByUser(userID string) ([]models.RewardClaim, error) {
	var out []models.RewardClaim
	for _, c := range d.data.claims {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (d *memTx) ClaimsByStatus(status models.ClaimStatus) ([]models.RewardClaim, error) {
	var out []models.RewardClaim
	for _, c := range d.data.claims {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

// --- Internships ---

func (d *memTx) CreateInternship(i *models.Internship) error {
	stampID(&i.ID)
	stampTime(&i.CreatedAt)
	cp := *i
	d.data.internships = append(d.data.internships, &cp)
	return nil
}

func (d *memTx) ListInternships(activeOnly bool) ([]models.Internship, error) {
	var out []models.Internship
	for _, i := range d.data.internships {
		if activeOnly && !i.IsActive {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

// Transact on an already-open view just runs fn; the outer lock is held.
func (d *memTx) Transact(fn func(Store) error) error {
	return fn(d)
}

func stampID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func stampTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}
