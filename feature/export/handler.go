package export

import (
	"asset-editor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/export")
	group.Post("/", h.HandleExport)
	group.Get("/verify", h.HandleVerify)
}

// HandleExport mirrors the definitions into the database.
// @Summary Export Definitions
// @Description Upserts every item and aura definition into the item_defs and aura_defs tables and removes rows for ids that no longer exist.
// @Tags export
// @Produce json
// @Success 200 {object} export.Result "Rows written"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}

// HandleVerify checks the export tables.
// @Summary Verify Export Tables
// @Description Lists the columns each export table is missing.
// @Tags export
// @Produce json
// @Success 200 {object} map[string]interface{} "Missing columns per table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/verify [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Verify(c.Context())
	if err != nil {
		l.Error("Export verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"matched": len(report) == 0,
		"missing": report,
	})
}
