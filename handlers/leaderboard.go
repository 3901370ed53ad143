package handlers

import (
	"student-platform/middleware"
	"student-platform/services"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 500
)

// SetupLeaderboardRoutes wires the ranked points table.
func SetupLeaderboardRoutes(app *fiber.App, auth *services.AuthService, board *services.LeaderboardService) {
	// Public, like the original leaderboard page.
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", defaultLeaderboardLimit)
		if limit <= 0 {
			limit = defaultLeaderboardLimit
		}
		if limit > maxLeaderboardLimit {
			limit = maxLeaderboardLimit
		}
		entries, err := board.Leaderboard(limit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(entries)
	})

	secured := app.Group("/", middleware.UserContextMiddleware(auth))

	secured.Get("/leaderboard/me", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		rank, found, err := board.FindUserRank(user.ID)
		if err != nil {
			return writeError(c, err)
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not ranked"})
		}
		return c.JSON(fiber.Map{"user_id": user.ID, "rank": rank})
	})
}
