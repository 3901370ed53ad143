package handlers

import (
	"student-platform/middleware"
	"student-platform/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires registration, login and the profile endpoint.
func SetupAuthRoutes(app *fiber.App, auth *services.AuthService, board *services.LeaderboardService) {
	app.Post("/register", func(c *fiber.Ctx) error {
		var req struct {
			services.RegisterInput
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, err := auth.Register(req.RegisterInput, req.Password)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	app.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, err := auth.Authenticate(req.Email, req.Password)
		if err != nil {
			return writeError(c, err)
		}
		token, err := auth.IssueSessionToken(user)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"access_token": token, "user": user})
	})

	secured := app.Group("/", middleware.UserContextMiddleware(auth))

	// Profile with derived stats, matching what the profile page renders.
	secured.Get("/me", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		totalPoints, err := board.TotalPoints(user.ID)
		if err != nil {
			return writeError(c, err)
		}
		gamesPlayed, err := board.GamesPlayed(user.ID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{
			"user":         user,
			"total_points": totalPoints,
			"games_played": gamesPlayed,
		})
	})
}
