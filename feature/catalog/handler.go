package catalog

import (
	"strconv"

	"asset-editor/core/definition"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleSearch)
	group.Get("/:type/:id", h.HandleLookup)
}

// HandleSearch lists every definition.
// @Summary Search Catalog
// @Description Lists auras then items, optionally restricted to one asset type and filtered by a case-insensitive name prefix.
// @Tags catalog
// @Produce json
// @Param q query string false "Name prefix"
// @Param type query string false "Asset type (Aura, Item)"
// @Success 200 {array} catalog.Entry "Entries"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /catalog [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	prefix := c.Query("q")
	if raw := c.Query("type"); raw != "" {
		var t AssetType
		if err := t.UnmarshalText([]byte(raw)); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(h.service.Filter(t, prefix))
	}
	return c.JSON(h.service.Entries(prefix))
}

// HandleLookup returns one catalog entry.
// @Summary Lookup Catalog Entry
// @Description Returns the catalog entry of one definition.
// @Tags catalog
// @Produce json
// @Param type path string true "Asset type (Aura, Item)"
// @Param id path int true "Definition id"
// @Success 200 {object} catalog.Entry "Entry"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/{type}/{id} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	var t AssetType
	if err := t.UnmarshalText([]byte(c.Params("type"))); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be an unsigned 32-bit integer",
		})
	}

	entry, err := h.service.Lookup(t, uint32(id))
	if err != nil {
		return c.Status(definition.StatusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entry)
}
