package models

import (
	"time"
)

// Internship is a posting on the internship board.
type Internship struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title        string `gorm:"index;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Requirements string `gorm:"type:text" json:"requirements"`
	Duration     string `json:"duration"`
	Location     string `json:"location"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
