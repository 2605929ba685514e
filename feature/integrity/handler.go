package integrity

import (
	"eox-sync/core/logger"
	"eox-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/api", h.HandleAPICheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Database, Storage, API).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckDatabase(); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = schema
	}

	if st, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = st
	}

	report["api"] = h.service.CheckAPI(ctx)

	return c.JSON(report)
}

// HandleDatabaseCheck checks the database schema.
// @Summary Check Database Schema
// @Description Checks that the products, migration option and notification tables hold every column the synchronization writes.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting database schema check")

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !report.Matched {
		l.Warn("Database schema mismatch", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the archive bucket.
// @Summary Check Archive Storage
// @Description Checks that the payload archive bucket exists. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the missing bucket"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists {
		l.Warn("Archive bucket missing", zap.String("bucket", report.Bucket))

		if fix {
			l.Info("Attempting to create archive bucket")
			if err := h.service.FixStorage(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to create bucket",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"bucket": report.Bucket,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

// HandleAPICheck checks connectivity to the Cisco EoX API.
// @Summary Check Cisco EoX API
// @Description Requests a token and pings the EoX API with a known product id.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.APIReport "API Report"
// @Failure 503 {object} checks.APIReport "API unreachable"
// @Router /integrity/api [get]
func (h *Handler) HandleAPICheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckAPI(c.Context())
	if report.Status == "error" {
		l.Warn("Cisco EoX API check failed", zap.String("error", report.Error))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
