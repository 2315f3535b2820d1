package definition

import (
	"fmt"
	"strconv"

	"asset-editor/core/logger"
	"asset-editor/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetRequest is the body of a field update.
type SetRequest struct {
	Value string `json:"value"`
}

// Handler handles HTTP requests for one definition kind.
type Handler[T registry.Definition] struct {
	service *Service[T]
}

// NewHandler creates a new HTTP handler.
func NewHandler[T registry.Definition](service *Service[T]) *Handler[T] {
	return &Handler[T]{service: service}
}

// RegisterRoutes registers the routes under /<kind>s.
func (h *Handler[T]) RegisterRoutes(app fiber.Router) {
	group := app.Group("/" + h.service.Kind() + "s")
	group.Get("/", h.HandleList)
	group.Get("/fields", h.HandleFields)
	group.Post("/reload", h.HandleReload)
	group.Post("/save", h.HandleSave)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/fields/:path", h.HandleSet)
}

// HandleList lists definitions.
// @Summary List Definitions
// @Description List the definitions of one kind in file order, optionally filtered by a case-insensitive name prefix.
// @Tags definitions
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Param q query string false "Name prefix"
// @Success 200 {array} definition.Summary "Definitions"
// @Router /{kind} [get]
func (h *Handler[T]) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Query("q")))
}

// HandleFields describes the editable field paths.
// @Summary List Field Paths
// @Description Returns every leaf field path with its kind and, for enumerations, its variants.
// @Tags definitions
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Success 200 {array} definition.FieldInfo "Field paths"
// @Router /{kind}/fields [get]
func (h *Handler[T]) HandleFields(c *fiber.Ctx) error {
	return c.JSON(h.service.Fields())
}

// HandleGet returns one definition.
// @Summary Get Definition
// @Description Returns every field path of a definition with its text value.
// @Tags definitions
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Param id path int true "Definition id"
// @Success 200 {object} definition.Record "Definition"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /{kind}/{id} [get]
func (h *Handler[T]) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rec, err := h.service.Get(id)
	if err != nil {
		return c.Status(StatusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rec)
}

// HandleSet updates one field of a definition.
// @Summary Set Field
// @Description Decodes the value as the field's declared kind and commits it to the registry.
// @Tags definitions
// @Accept json
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Param id path int true "Definition id"
// @Param path path string true "Dotted field path (e.g. 'equipment_def.armor')"
// @Param body body definition.SetRequest true "New value"
// @Success 200 {object} definition.Record "Updated definition"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 422 {object} map[string]string "Unprocessable Entity"
// @Router /{kind}/{id}/fields/{path} [put]
func (h *Handler[T]) HandleSet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req SetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	path := c.Params("path")
	rec, err := h.service.Set(id, path, req.Value)
	if err != nil {
		status := StatusFor(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Definition update failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Definition updated",
		zap.String("kind", h.service.Kind()),
		zap.Uint32("id", id),
		zap.String("path", path),
	)
	return c.JSON(rec)
}

// HandleReload reloads the definitions from their source.
// @Summary Reload Definitions
// @Description Discards in-memory edits and reloads the definition file.
// @Tags definitions
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Success 200 {object} map[string]interface{} "Reloaded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /{kind}/reload [post]
func (h *Handler[T]) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Reload(c.Context()); err != nil {
		l.Error("Definition reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "reloaded", "count": h.service.reg.Len()})
}

// HandleSave writes the definitions to their source.
// @Summary Save Definitions
// @Description Persists every definition of the kind.
// @Tags definitions
// @Produce json
// @Param kind path string true "Definition kind (items, auras)"
// @Success 200 {object} map[string]string "Saved"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /{kind}/save [post]
func (h *Handler[T]) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Save(c.Context()); err != nil {
		l.Error("Definition save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func parseID(c *fiber.Ctx) (uint32, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an unsigned 32-bit integer", c.Params("id"))
	}
	return uint32(id), nil
}
