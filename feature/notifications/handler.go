package notifications

import (
	"eox-sync/core/logger"
	"eox-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for notifications.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the notification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/notifications", h.HandleListNotifications)
}

// HandleListNotifications returns recent notifications.
// @Summary List Notifications
// @Description List notifications of background runs, newest first.
// @Tags notifications
// @Produce json
// @Param type query string false "Filter by type (info, error)"
// @Param limit query int false "Maximum number of messages (default 50)"
// @Success 200 {array} notifications.Message "Notifications"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notifications [get]
func (h *Handler) HandleListNotifications(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	typ := Type(c.Query("type"))
	if typ != "" && typ != TypeInfo && typ != TypeError {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be info or error",
		})
	}

	limit := utils.ToInt(c.Query("limit"))
	if limit <= 0 {
		limit = 50
	}

	msgs, err := h.repo.List(c.Context(), typ, limit)
	if err != nil {
		l.Error("Notification listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(msgs)
}
