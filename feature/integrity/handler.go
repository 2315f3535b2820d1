package integrity

import (
	"asset-editor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/documents", h.HandleDocumentsCheck)
	group.Get("/icons", h.HandleIconsCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Structure, Documents, Icons, Schema). A failing check is reported in place without aborting the others.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if missing, err := h.service.CheckDocuments(ctx); err != nil {
		report["documents"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["documents"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if icons, err := h.service.CheckIcons(ctx); err != nil {
		report["icons"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["icons"] = icons
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the bucket exists and holds the definition and icon folders. Optionally creates missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDocumentsCheck checks the definition documents in storage.
// @Summary Check Definition Documents
// @Description Verifies that the item and aura definition documents exist in the bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Documents Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/documents [get]
func (h *Handler) HandleDocumentsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckDocuments(c.Context())
	if err != nil {
		l.Error("Documents check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleIconsCheck checks every definition's icon.
// @Summary Check Icons
// @Description Verifies that the icon of every aura and item exists in the bucket. Definitions with an empty icon path are listed as blank.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.IconReport "Icon Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/icons [get]
func (h *Handler) HandleIconsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting icon check")

	report, err := h.service.CheckIcons(c.Context())
	if err != nil {
		l.Error("Icon check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Icon check completed",
		zap.Int("checked", report.Checked),
		zap.Int("missing", len(report.Missing)),
		zap.Int("blank", len(report.Blank)))

	return c.JSON(report)
}

// HandleSchemaCheck checks the export table schema.
// @Summary Check Export Schema
// @Description Checks that the export tables match the row models (columns, types).
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting export schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Export schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
