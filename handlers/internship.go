package handlers

import (
	"student-platform/middleware"
	"student-platform/services"

	"github.com/gofiber/fiber/v2"
)

// SetupInternshipRoutes wires the internship board.
func SetupInternshipRoutes(app *fiber.App, auth *services.AuthService, internships *services.InternshipService) {
	// Public listing, like the original internships page.
	app.Get("/internships", func(c *fiber.Ctx) error {
		list, err := internships.ListInternships(c.QueryBool("active_only", true))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	})

	admin := app.Group("/admin",
		middleware.UserContextMiddleware(auth),
		middleware.RequireStaff(),
	)

	admin.Post("/internships", func(c *fiber.Ctx) error {
		var req services.InternshipInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		internship, err := internships.CreateInternship(req)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(internship)
	})
}
