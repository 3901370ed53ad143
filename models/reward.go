package models

import (
	"time"
)

// ClaimStatus tracks the approval workflow of a reward claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Reward is a catalog item redeemable for accumulated points, with finite stock.
type Reward struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string `gorm:"index;not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	PointsRequired int64  `gorm:"not null" json:"points_required"`
	ImageURL       string `gorm:"type:text" json:"image_url"`
	IsAvailable    bool   `gorm:"default:true" json:"is_available"`
	StockQuantity  int    `gorm:"not null" json:"stock_quantity"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Claimable reports whether the reward can currently be redeemed.
func (r *Reward) Claimable() bool {
	return r.IsAvailable && r.StockQuantity > 0
}

// RewardClaim is a user's request to redeem a reward. Stock is decremented
// when the claim is created; approval/rejection only changes Status.
type RewardClaim struct {
	ID       string      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID   string      `gorm:"index;not null" json:"user_id"`
	RewardID string      `gorm:"index;not null" json:"reward_id"`
	Status   ClaimStatus `gorm:"not null;default:'pending'" json:"status"`

	ClaimedAt time.Time `json:"claimed_at" gorm:"autoCreateTime"`
}
