package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/apperr"
	"github.com/carepoint/clinic-backend/utils"
)

// statusForError maps service-layer error kinds to HTTP status codes.
// Anything untagged is treated as a server fault.
func statusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return fiber.StatusNotFound
	case apperr.DuplicateEmail:
		return fiber.StatusConflict
	case apperr.ForbiddenRole:
		return fiber.StatusForbidden
	case apperr.InvalidCredential:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(utils.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
