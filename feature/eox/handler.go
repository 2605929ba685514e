package eox

import (
	"errors"

	"eox-sync/core/logger"
	"eox-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the EoX synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the EoX routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/eox")
	group.Post("/sync", h.HandleTriggerSync)
	group.Get("/jobs", h.HandleListJobs)
	group.Get("/jobs/:id", h.HandleGetJob)
	group.Get("/archive", h.HandleListArchive)
	group.Get("/archive/object", h.HandleGetArchivedPage)
}

// HandleTriggerSync submits a synchronization run.
// @Summary Trigger EoX Synchronization
// @Description Submit a synchronization with the Cisco EoX API as a background job. Without force the run is subject to the periodic-sync flag.
// @Tags eox
// @Produce json
// @Param force query bool false "Ignore the periodic-sync flag"
// @Param dry_run query bool false "Decide actions without writing products or notifications"
// @Param query query []string false "Override the configured query patterns" collectionFormat(multi)
// @Success 202 {object} jobs.View "Submitted job"
// @Success 200 {object} jobs.View "Identical run already in progress"
// @Router /eox/sync [post]
func (h *Handler) HandleTriggerSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	trigger := Trigger{
		Manual: utils.ToBool(c.Query("force")),
		Source: TriggerPeriodic,
		DryRun: utils.ToBool(c.Query("dry_run")),
	}
	if trigger.Manual {
		trigger.Source = TriggerManual
	}
	for _, q := range c.Context().QueryArgs().PeekMulti("query") {
		trigger.Queries = append(trigger.Queries, ParseQueries(string(q))...)
	}

	job, started := h.service.Trigger(trigger)
	l.Info("Synchronization requested", zap.String("job_id", job.ID), zap.Bool("started", started))

	status := fiber.StatusAccepted
	if !started {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(job.View())
}

// HandleListJobs returns the known synchronization jobs.
// @Summary List EoX Jobs
// @Description List synchronization jobs, most recent first.
// @Tags eox
// @Produce json
// @Success 200 {array} jobs.View "Jobs"
// @Router /eox/jobs [get]
func (h *Handler) HandleListJobs(c *fiber.Ctx) error {
	list := h.service.Jobs()
	views := make([]any, 0, len(list))
	for _, j := range list {
		views = append(views, j.View())
	}
	return c.JSON(views)
}

// HandleGetJob returns one job with its outcome.
// @Summary Get EoX Job
// @Description Get a synchronization job and, once finished, its outcome.
// @Tags eox
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} jobs.View "Job"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /eox/jobs/{id} [get]
func (h *Handler) HandleGetJob(c *fiber.Ctx) error {
	job, ok := h.service.Job(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}
	return c.JSON(job.View())
}

// HandleListArchive lists archived response pages.
// @Summary List Archived Pages
// @Description List raw Cisco EoX response pages stored during synchronization runs.
// @Tags eox
// @Produce json
// @Param query query string false "Query pattern"
// @Success 200 {array} eox.ArchivedPage "Archived pages"
// @Failure 503 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /eox/archive [get]
func (h *Handler) HandleListArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	pages, err := h.service.Archived(c.Context(), c.Query("query"))
	if err != nil {
		return h.archiveError(c, l, err)
	}
	return c.JSON(pages)
}

// HandleGetArchivedPage returns the raw body of one archived page.
// @Summary Get Archived Page
// @Description Return the raw JSON of one archived response page.
// @Tags eox
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {string} string "Raw page"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /eox/archive/object [get]
func (h *Handler) HandleGetArchivedPage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key is required",
		})
	}

	body, err := h.service.ArchivedPage(c.Context(), key)
	if err != nil {
		return h.archiveError(c, l, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) archiveError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrArchiveDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	l.Error("Archive access failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
