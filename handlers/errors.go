package handlers

import (
	"errors"
	"log"

	"student-platform/services"

	"github.com/gofiber/fiber/v2"
)

// writeError maps typed service failures to HTTP statuses. Unrecognized
// errors are logged here — the only place they are — and hidden behind a
// generic 500.
func writeError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}

	switch {
	case errors.Is(err, services.ErrAuthFailed),
		errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrUserInactive):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrRewardNotFound),
		errors.Is(err, services.ErrClaimNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicatePhone),
		errors.Is(err, services.ErrDuplicateTelegramID),
		errors.Is(err, services.ErrRewardUnavailable),
		errors.Is(err, services.ErrClaimNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrInsufficientPoints),
		errors.Is(err, services.ErrQuizHasNoQuestions):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[HTTP] unhandled error on %s: %v", c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
