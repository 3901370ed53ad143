package services

import (
	"testing"
	"time"

	"student-platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func registerInput(name string) RegisterInput {
	return RegisterInput{
		Email:          name + "@example.com",
		Phone:          "+7900" + name,
		TelegramID:     "@" + name,
		FullName:       name,
		StudyDirection: "backend",
	}
}

func TestAuthService_Register(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewAuthService(mem, testSecret, time.Hour)

	user, err := svc.Register(registerInput("alice"), "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.HashedPassword, "password must never be stored raw")

	t.Run("DuplicateEmail", func(t *testing.T) {
		in := registerInput("alice2")
		in.Email = "alice@example.com"
		_, err := svc.Register(in, "secret123")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("DuplicatePhone", func(t *testing.T) {
		in := registerInput("alice3")
		in.Phone = "+7900alice"
		_, err := svc.Register(in, "secret123")
		assert.ErrorIs(t, err, ErrDuplicatePhone)
	})

	t.Run("DuplicateTelegram", func(t *testing.T) {
		in := registerInput("alice4")
		in.TelegramID = "@alice"
		_, err := svc.Register(in, "secret123")
		assert.ErrorIs(t, err, ErrDuplicateTelegramID)
	})

	t.Run("PasswordTooShort", func(t *testing.T) {
		_, err := svc.Register(registerInput("bob"), "short")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "password", ve.Field)
	})

	t.Run("PasswordLengthCountsCharactersNotBytes", func(t *testing.T) {
		// Three Cyrillic letters are six bytes but still only three characters.
		_, err := svc.Register(registerInput("bob"), "абв")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "password", ve.Field)

		// Six characters pass, whatever their byte length.
		_, err = svc.Register(registerInput("boris"), "абвгде")
		assert.NoError(t, err)
	})

	t.Run("PasswordTooLong", func(t *testing.T) {
		long := make([]byte, 73)
		for i := range long {
			long[i] = 'x'
		}
		_, err := svc.Register(registerInput("bob"), string(long))
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("EmailLowercased", func(t *testing.T) {
		in := registerInput("carol")
		in.Email = "Carol@Example.COM"
		u, err := svc.Register(in, "secret123")
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", u.Email)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewAuthService(mem, testSecret, time.Hour)

	registered, err := svc.Register(registerInput("alice"), "secret123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Authenticate("alice@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Authenticate("alice@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		registered.IsActive = false
		require.NoError(t, mem.UpdateUser(registered))
		defer func() {
			registered.IsActive = true
			require.NoError(t, mem.UpdateUser(registered))
		}()

		_, err := svc.Authenticate("alice@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestAuthService_SessionTokens(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewAuthService(mem, testSecret, time.Hour)

	user, err := svc.Register(registerInput("alice"), "secret123")
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := svc.IssueSessionToken(user)
		require.NoError(t, err)

		resolved, err := svc.ValidateSessionToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expired := NewAuthService(mem, testSecret, -time.Minute)
		token, err := expired.IssueSessionToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ForgedToken", func(t *testing.T) {
		other := NewAuthService(mem, "other-secret", time.Hour)
		token, err := other.IssueSessionToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateSessionToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("DeactivatedUserFailsClosed", func(t *testing.T) {
		token, err := svc.IssueSessionToken(user)
		require.NoError(t, err)

		user.IsActive = false
		require.NoError(t, mem.UpdateUser(user))

		_, err = svc.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
