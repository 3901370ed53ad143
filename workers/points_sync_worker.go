package workers

import (
	"log"
	"time"

	"student-platform/store"

	"github.com/go-co-op/gocron/v2"
)

// PointsSyncWorker reconciles the cached users.points_count column with the
// quiz result ledger. The cache is display-only — domain reads always derive
// totals from results — so drift between runs is harmless.
type PointsSyncWorker struct {
	Store    store.Store
	Interval time.Duration
}

func NewPointsSyncWorker(s store.Store, interval time.Duration) *PointsSyncWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &PointsSyncWorker{Store: s, Interval: interval}
}

// Start schedules the reconciliation job and returns the scheduler so the
// caller can shut it down.
func (w *PointsSyncWorker) Start() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.Interval),
		gocron.NewTask(w.SyncOnce),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	log.Printf("[PointsSync] reconciling points cache every %s", w.Interval)
	return sched, nil
}

// SyncOnce walks all users and rewrites stale cached counters.
func (w *PointsSyncWorker) SyncOnce() {
	users, err := w.Store.ListUsers()
	if err != nil {
		log.Printf("[PointsSync] failed to list users: %v", err)
		return
	}

	updated := 0
	for i := range users {
		u := &users[i]
		total, err := w.Store.TotalPoints(u.ID)
		if err != nil {
			log.Printf("[PointsSync] failed to total points for %s: %v", u.ID, err)
			continue
		}
		if total == u.PointsCount {
			continue
		}
		u.PointsCount = total
		if err := w.Store.UpdateUser(u); err != nil {
			log.Printf("[PointsSync] failed to update %s: %v", u.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("[PointsSync] refreshed %d stale counter(s)", updated)
	}
}
