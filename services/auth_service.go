package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"student-platform/models"
	"student-platform/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

const (
	minPasswordLen = 6
	// bcrypt ignores input beyond 72 bytes, so longer passwords are rejected
	// instead of silently truncated.
	maxPasswordLen = 72
)

// AuthService handles registration, login and session tokens.
type AuthService struct {
	store     store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(s store.Store, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{store: s, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// RegisterInput is the profile payload for a new account.
type RegisterInput struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TelegramID     string `json:"telegram_id"`
	FullName       string `json:"full_name"`
	Interests      string `json:"interests"`
	StudyDirection string `json:"study_direction"`
}

// Register validates the input, rejects duplicates and creates the user with
// a bcrypt-hashed password. Nothing is persisted on any failure path.
func (s *AuthService) Register(in RegisterInput, rawPassword string) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.TelegramID = strings.TrimSpace(in.TelegramID)
	in.FullName = norm.NFC.String(strings.TrimSpace(in.FullName))
	in.Interests = norm.NFC.String(in.Interests)
	in.StudyDirection = norm.NFC.String(in.StudyDirection)

	switch {
	case in.Email == "" || !strings.Contains(in.Email, "@"):
		return nil, validationErr("email", "must be a valid email address")
	case in.Phone == "":
		return nil, validationErr("phone", "must not be empty")
	case in.TelegramID == "":
		return nil, validationErr("telegram_id", "must not be empty")
	case in.FullName == "":
		return nil, validationErr("full_name", "must not be empty")
	// The minimum counts characters, the maximum counts bytes: bcrypt's
	// limit is a byte limit regardless of encoding.
	case utf8.RuneCountInString(rawPassword) < minPasswordLen:
		return nil, validationErr("password", "must be at least 6 characters")
	case len(rawPassword) > maxPasswordLen:
		return nil, validationErr("password", "must be at most 72 characters")
	}

	if _, err := s.store.UserByEmail(in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.UserByPhone(in.Phone); err == nil {
		return nil, ErrDuplicatePhone
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.UserByTelegramID(in.TelegramID); err == nil {
		return nil, ErrDuplicateTelegramID
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          in.Email,
		Phone:          in.Phone,
		TelegramID:     in.TelegramID,
		FullName:       in.FullName,
		Interests:      in.Interests,
		StudyDirection: in.StudyDirection,
		HashedPassword: string(hash),
		IsActive:       true,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(email, rawPassword string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.store.UserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(rawPassword)) != nil {
		return nil, ErrAuthFailed
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// IssueSessionToken signs a token with the user id as subject.
func (s *AuthService) IssueSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ValidateSessionToken resolves a token back to its user. Anything off — bad
// signature, wrong algorithm, expiry, unknown or deactivated user — fails
// closed with ErrInvalidToken.
func (s *AuthService) ValidateSessionToken(token string) (*models.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.store.UserByID(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	return user, nil
}
