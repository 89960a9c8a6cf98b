package files

import (
	"errors"

	"school-admin/core/logger"
	"school-admin/core/reconcile"
	"school-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the file registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the files routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Get("/reconcile", h.HandlePreview)
	group.Post("/reconcile", h.HandleReconcile)
}

// HandlePreview reports what reconciliation would change without changing anything.
// @Summary Preview File Reconciliation
// @Description Lists records whose file is missing and files without a record, without deleting anything.
// @Tags files
// @Produce json
// @Success 200 {object} map[string]interface{} "Reconcile Report"
// @Failure 409 {object} map[string]string "Reconciliation already running"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/reconcile [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	return h.run(c, true)
}

// HandleReconcile reconciles the registry against the disks.
// @Summary Reconcile Files
// @Description Soft-deletes records whose file is missing and deletes files without a record. Set dry_run=true to preview.
// @Tags files
// @Produce json
// @Param dry_run query boolean false "Report only"
// @Success 200 {object} map[string]interface{} "Reconcile Report"
// @Failure 409 {object} map[string]string "Reconciliation already running"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	return h.run(c, utils.ToBool(c.Query("dry_run")))
}

func (h *Handler) run(c *fiber.Ctx, dryRun bool) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting file reconciliation", zap.Bool("dry_run", dryRun))

	report, err := h.service.Reconcile(c.UserContext(), dryRun)
	if err != nil {
		if errors.Is(err, reconcile.ErrInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("File reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := "ok"
	if report.Failed() {
		status = "partial"
		l.Warn("File reconciliation finished with failed disks")
	}

	return c.JSON(fiber.Map{
		"status": status,
		"report": report,
		"lines":  report.Lines(),
	})
}
