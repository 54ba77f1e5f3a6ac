package recon

import (
	"errors"
	"fmt"

	"mini-reconcile/core/logger"
	"mini-reconcile/core/reconcile"
	"mini-reconcile/core/table"
	"mini-reconcile/feature/statements"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recon")
	group.Get("/rules", h.HandleGetRules)
	group.Post("/run", h.HandleRun)
	group.Post("/objects", h.HandleRunObjects)
}

// HandleGetRules returns the active reconciliation rules.
// @Summary Get Rules
// @Description Get the rule set driving reconciliation runs.
// @Tags recon
// @Produce json
// @Success 200 {object} reconcile.Rules "Active rules"
// @Router /recon/rules [get]
func (h *Handler) HandleGetRules(c *fiber.Ctx) error {
	return c.JSON(h.service.Rules())
}

// HandleRun reconciles two uploaded statement CSV files.
// @Summary Run Reconciliation
// @Description Upload the internal export and the provider statement as multipart files and get the categorized report.
// @Tags recon
// @Accept multipart/form-data
// @Produce json
// @Param internal formData file true "Internal System Export (CSV)"
// @Param provider formData file true "Provider Statement (CSV)"
// @Success 200 {object} reconcile.Report "Categorized report"
// @Failure 400 {object} map[string]string "Invalid upload or CSV"
// @Failure 422 {object} map[string]string "Configuration or schema error"
// @Router /recon/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	internal, err := h.formDataset(c, "internal", statements.LabelInternal)
	if err != nil {
		return badRequest(c, l, err)
	}
	provider, err := h.formDataset(c, "provider", statements.LabelProvider)
	if err != nil {
		return badRequest(c, l, err)
	}

	report, err := h.service.Run(internal, provider)
	if err != nil {
		return reconcileError(c, l, err)
	}
	return c.JSON(report)
}

// runObjectsRequest names the two statement objects to reconcile.
type runObjectsRequest struct {
	InternalObject string `json:"internal_object"`
	ProviderObject string `json:"provider_object"`
}

// HandleRunObjects reconciles two statement CSVs stored in the bucket.
// @Summary Run Reconciliation from Storage
// @Description Reconcile two statement objects already present in the configured bucket.
// @Tags recon
// @Accept json
// @Produce json
// @Param request body runObjectsRequest true "Object names"
// @Success 200 {object} reconcile.Report "Categorized report"
// @Failure 400 {object} map[string]string "Invalid request or object"
// @Failure 422 {object} map[string]string "Configuration or schema error"
// @Router /recon/objects [post]
func (h *Handler) HandleRunObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req runObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, l, err)
	}
	if req.InternalObject == "" || req.ProviderObject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "internal_object and provider_object are required",
		})
	}

	report, err := h.service.RunObjects(c.Context(), req.InternalObject, req.ProviderObject)
	if err != nil {
		return reconcileError(c, l, err)
	}
	return c.JSON(report)
}

// formDataset reads one uploaded multipart file into a dataset.
func (h *Handler) formDataset(c *fiber.Ctx, field, label string) (*table.Dataset, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s file upload: %w", field, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return statements.ParseCSV(f, label)
}

// badRequest reports a client-side input problem.
func badRequest(c *fiber.Ctx, l *zap.Logger, err error) error {
	l.Warn("Reconciliation request rejected", zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// reconcileError maps engine failures to HTTP status codes: configuration
// and schema problems are unprocessable input, everything else is a server
// error.
func reconcileError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var cfgErr *reconcile.ConfigError
	var schemaErr *reconcile.SchemaError
	if errors.As(err, &cfgErr) || errors.As(err, &schemaErr) {
		l.Warn("Reconciliation run rejected", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	l.Error("Reconciliation run failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
