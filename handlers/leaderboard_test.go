package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"student-platform/models"
	"student-platform/services"
	"student-platform/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardApp(t *testing.T, userCount int) *fiber.App {
	t.Helper()
	mem := store.NewMemoryStore()
	for i := 0; i < userCount; i++ {
		user := &models.User{
			Email:      fmt.Sprintf("user%d@example.com", i),
			Phone:      fmt.Sprintf("+7900%04d", i),
			TelegramID: fmt.Sprintf("@user%d", i),
			FullName:   fmt.Sprintf("User %d", i),
			IsActive:   true,
		}
		require.NoError(t, mem.CreateUser(user))
	}

	app := fiber.New()
	auth := services.NewAuthService(mem, "test-secret", time.Hour)
	board := services.NewLeaderboardService(mem)
	SetupLeaderboardRoutes(app, auth, board)
	return app
}

func getLeaderboard(t *testing.T, app *fiber.App, query string) []models.LeaderboardEntry {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/leaderboard"+query, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.LeaderboardEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	return entries
}

func TestLeaderboardHandler_Limit(t *testing.T) {
	app := newLeaderboardApp(t, 60)

	t.Run("DefaultLimit", func(t *testing.T) {
		entries := getLeaderboard(t, app, "")
		assert.Len(t, entries, 50)
		assert.Equal(t, 1, entries[0].Rank)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		entries := getLeaderboard(t, app, "?limit=10")
		assert.Len(t, entries, 10)
	})

	t.Run("OversizedLimitClampsToMaxNotDefault", func(t *testing.T) {
		// Asking for more than the cap returns up to the cap, not the
		// 50-entry default.
		entries := getLeaderboard(t, app, "?limit=9999")
		assert.Len(t, entries, 60)
	})

	t.Run("NonPositiveLimitFallsBackToDefault", func(t *testing.T) {
		entries := getLeaderboard(t, app, "?limit=-1")
		assert.Len(t, entries, 50)
	})
}
