package services

import (
	"errors"

	"student-platform/models"
	"student-platform/store"
)

// RewardService owns the reward catalog and the redemption workflow.
type RewardService struct {
	store store.Store
}

func NewRewardService(s store.Store) *RewardService {
	return &RewardService{store: s}
}

// RewardInput is the admin payload for a new catalog item.
type RewardInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"points_required"`
	ImageURL       string `json:"image_url"`
	StockQuantity  int    `json:"stock_quantity"`
}

// CreateReward adds a catalog item. Stock must be non-negative; a zero-stock
// reward starts unavailable.
func (s *RewardService) CreateReward(in RewardInput) (*models.Reward, error) {
	switch {
	case in.Name == "":
		return nil, validationErr("name", "must not be empty")
	case in.PointsRequired < 0:
		return nil, validationErr("points_required", "must not be negative")
	case in.StockQuantity < 0:
		return nil, validationErr("stock_quantity", "must not be negative")
	}

	reward := &models.Reward{
		Name:           in.Name,
		Description:    in.Description,
		PointsRequired: in.PointsRequired,
		ImageURL:       in.ImageURL,
		IsAvailable:    in.StockQuantity > 0,
		StockQuantity:  in.StockQuantity,
	}
	if err := s.store.CreateReward(reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// SetRewardImage attaches an uploaded image URL to a catalog item.
func (s *RewardService) SetRewardImage(rewardID, imageURL string) (*models.Reward, error) {
	reward, err := s.store.RewardByID(rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	reward.ImageURL = imageURL
	if err := s.store.UpdateReward(reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// ListRewards returns the catalog, optionally only claimable items.
func (s *RewardService) ListRewards(availableOnly bool) ([]models.Reward, error) {
	return s.store.ListRewards(availableOnly)
}

// CanClaim is the side-effect-free version of the Claim checks, for UI gating.
func (s *RewardService) CanClaim(userID, rewardID string) (bool, error) {
	reward, err := s.store.RewardByID(rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !reward.Claimable() {
		return false, nil
	}
	points, err := s.store.TotalPoints(userID)
	if err != nil {
		return false, err
	}
	return points >= reward.PointsRequired, nil
}

// Claim redeems a reward for a user: one transaction that checks
// availability and balance, decrements stock via a guarded update and inserts
// the pending claim. All of it commits or none of it does; the guarded
// decrement means two claims racing on the last unit cannot both win.
func (s *RewardService) Claim(userID, rewardID string) (*models.RewardClaim, error) {
	var claim *models.RewardClaim
	err := s.store.Transact(func(tx store.Store) error {
		reward, err := tx.RewardByID(rewardID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRewardNotFound
			}
			return err
		}
		if !reward.Claimable() {
			return ErrRewardUnavailable
		}

		points, err := tx.TotalPoints(userID)
		if err != nil {
			return err
		}
		if points < reward.PointsRequired {
			return ErrInsufficientPoints
		}

		ok, err := tx.DecrementRewardStock(rewardID)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the race on the last unit.
			return ErrRewardUnavailable
		}

		claim = &models.RewardClaim{
			UserID:   userID,
			RewardID: rewardID,
			Status:   models.ClaimStatusPending,
		}
		return tx.CreateClaim(claim)
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// SetClaimStatus settles a pending claim. The only legal transitions are
// pending -> approved and pending -> rejected; settled claims are frozen.
func (s *RewardService) SetClaimStatus(claimID string, status models.ClaimStatus) (*models.RewardClaim, error) {
	if status != models.ClaimStatusApproved && status != models.ClaimStatusRejected {
		return nil, validationErr("status", "must be approved or rejected")
	}

	var claim *models.RewardClaim
	err := s.store.Transact(func(tx store.Store) error {
		c, err := tx.ClaimByID(claimID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClaimNotFound
			}
			return err
		}
		if c.Status != models.ClaimStatusPending {
			return ErrClaimNotPending
		}
		c.Status = status
		if err := tx.UpdateClaim(c); err != nil {
			return err
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// ListClaims returns a user's claim history, newest first.
func (s *RewardService) ListClaims(userID string) ([]models.RewardClaim, error) {
	return s.store.ClaimsByUser(userID)
}

// ListPendingClaims returns the admin review queue, oldest first.
func (s *RewardService) ListPendingClaims() ([]models.RewardClaim, error) {
	return s.store.ClaimsByStatus(models.ClaimStatusPending)
}
