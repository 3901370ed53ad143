package models

import (
	"time"
)

// User is a registered student (or staff member) of the platform.
// Never hard-deleted; deactivation flips IsActive instead.
type User struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string `gorm:"uniqueIndex;not null" json:"phone"`
	TelegramID     string `gorm:"uniqueIndex;not null" json:"telegram_id"`
	FullName       string `gorm:"not null" json:"full_name"`
	Interests      string `gorm:"type:text" json:"interests"`
	StudyDirection string `json:"study_direction"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsManager      bool   `gorm:"default:false" json:"is_manager"`
	IsAdmin        bool   `gorm:"default:false" json:"is_admin"`

	// PointsCount is a display cache reconciled by the points sync worker.
	// Domain reads always derive totals from quiz_results instead.
	PointsCount int64 `gorm:"default:0" json:"points_count"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// IsStaff reports whether the user may access admin surfaces.
func (u *User) IsStaff() bool {
	return u.IsAdmin || u.IsManager
}
