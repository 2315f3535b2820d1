package definition

import (
	"errors"

	"asset-editor/core/fieldpath"
	"asset-editor/core/registry"
	"asset-editor/core/session"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an editing error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnknownID),
		errors.Is(err, registry.ErrUnknownName),
		errors.Is(err, fieldpath.ErrPathNotFound):
		return fiber.StatusNotFound
	case fieldpath.IsDecodeFailure(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, registry.ErrDuplicateName),
		errors.Is(err, session.ErrIDImmutable):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
