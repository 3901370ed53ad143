package models

import (
	"time"
)

// QuizType tags the play style of a quiz so the frontend can pick a layout.
type QuizType string

const (
	QuizTypeTruthOrLie     QuizType = "truth_or_lie"
	QuizTypeMemVsSituation QuizType = "mem_vs_situation"
	QuizTypeMultipleChoice QuizType = "multiple_choice"
)

// Quiz is a scorable set of ordered questions with a point reward.
// Immutable once results exist — there is no update path.
type Quiz struct {
	ID          string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string   `gorm:"index;not null" json:"title"`
	Slug        string   `gorm:"index" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	QuizType    QuizType `gorm:"not null" json:"quiz_type"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`

	// PointsReward is the final award for a perfect score. Any configured
	// multiplier is already baked into the stored value.
	PointsReward int64 `gorm:"default:0" json:"points_reward"`

	CreatedBy string    `gorm:"index" json:"created_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// QuizQuestion belongs to exactly one quiz. OrderIndex fixes display order;
// scoring itself is order-independent.
type QuizQuestion struct {
	ID            string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	QuizID        string `gorm:"index;not null" json:"quiz_id"`
	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	QuestionType  string `json:"question_type"`
	Options       string `gorm:"type:text" json:"options"` // JSON-encoded choice set, empty for free-form
	CorrectAnswer string `gorm:"not null" json:"-"`
	Explanation   string `gorm:"type:text" json:"explanation"`
	OrderIndex    int    `gorm:"default:0" json:"order_index"`
}
