package services

import (
	"errors"
	"fmt"
)

// Typed failures returned by the domain services. Handlers map these to HTTP
// statuses; domain code never logs or prints.
var (
	// ErrDuplicateEmail is returned when registering with an email already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicatePhone is returned when registering with a phone already taken.
	ErrDuplicatePhone = errors.New("phone already registered")
	// ErrDuplicateTelegramID is returned when the telegram handle is already linked.
	ErrDuplicateTelegramID = errors.New("telegram id already registered")
	// ErrAuthFailed covers both unknown email and wrong password.
	ErrAuthFailed = errors.New("invalid email or password")
	// ErrInvalidToken covers malformed, forged and expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired session token")
	// ErrUserInactive is returned for deactivated accounts.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrQuizNotFound indicates an unknown or inactive quiz id.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizHasNoQuestions guards scoring against empty quizzes.
	ErrQuizHasNoQuestions = errors.New("quiz has no questions")

	// ErrRewardNotFound indicates an unknown reward id.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrRewardUnavailable means the reward is disabled or out of stock.
	ErrRewardUnavailable = errors.New("reward is not available")
	// ErrInsufficientPoints means the user's balance does not cover the reward.
	ErrInsufficientPoints = errors.New("not enough points for this reward")
	// ErrClaimNotFound indicates an unknown claim id.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrClaimNotPending is returned when changing the status of a settled claim.
	ErrClaimNotPending = errors.New("claim is not pending")
)

// ValidationError carries a human-readable reason for rejecting input
// before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
