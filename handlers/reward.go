package handlers

import (
	"fmt"
	"path/filepath"

	"student-platform/middleware"
	"student-platform/models"
	"student-platform/services"
	"student-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SetupRewardRoutes wires the catalog, redemption and the admin claim queue.
func SetupRewardRoutes(app *fiber.App, auth *services.AuthService, rewards *services.RewardService) {
	secured := app.Group("/", middleware.UserContextMiddleware(auth))

	secured.Get("/rewards", func(c *fiber.Ctx) error {
		list, err := rewards.ListRewards(c.QueryBool("available_only", true))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	})

	secured.Get("/rewards/:id/can-claim", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		ok, err := rewards.CanClaim(user.ID, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"can_claim": ok})
	})

	secured.Post("/rewards/:id/claim", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		claim, err := rewards.Claim(user.ID, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(claim)
	})

	secured.Get("/claims", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		claims, err := rewards.ListClaims(user.ID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(claims)
	})

	admin := secured.Group("/admin", middleware.RequireStaff())

	admin.Post("/rewards", func(c *fiber.Ctx) error {
		var req services.RewardInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		reward, err := rewards.CreateReward(req)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reward)
	})

	// Catalog imagery goes to R2; the reward keeps only the public URL.
	admin.Post("/rewards/:id/image", func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}

		key := fmt.Sprintf("rewards/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
		url, err := utils.UploadFileToR2(fileHeader, key)
		if err != nil {
			return writeError(c, err)
		}

		reward, err := rewards.SetRewardImage(c.Params("id"), url)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(reward)
	})

	admin.Get("/claims", func(c *fiber.Ctx) error {
		claims, err := rewards.ListPendingClaims()
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(claims)
	})

	admin.Patch("/claims/:id/status", func(c *fiber.Ctx) error {
		var req struct {
			Status models.ClaimStatus `json:"status"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		claim, err := rewards.SetClaimStatus(c.Params("id"), req.Status)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(claim)
	})
}
