package handlers

import (
	"student-platform/middleware"
	"student-platform/services"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes wires quiz browsing, attempt submission and admin creation.
func SetupQuizRoutes(app *fiber.App, auth *services.AuthService, quizzes *services.QuizService) {
	secured := app.Group("/", middleware.UserContextMiddleware(auth))

	secured.Get("/quizzes", func(c *fiber.Ctx) error {
		list, err := quizzes.ListQuizzes(c.QueryBool("active_only", true))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	})

	secured.Get("/quizzes/:id", func(c *fiber.Ctx) error {
		quiz, err := quizzes.GetQuiz(c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(quiz)
	})

	secured.Post("/quizzes/:id/submit", func(c *fiber.Ctx) error {
		var req struct {
			Answers map[string]string `json:"answers"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user := middleware.CurrentUser(c)
		result, err := quizzes.SubmitAttempt(user.ID, c.Params("id"), req.Answers)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(result)
	})

	admin := secured.Group("/admin", middleware.RequireStaff())

	admin.Post("/quizzes", func(c *fiber.Ctx) error {
		var req services.QuizInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user := middleware.CurrentUser(c)
		quiz, err := quizzes.CreateQuiz(req, user.ID)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(quiz)
	})
}
