package statements

import (
	"mini-reconcile/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for statement object management.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the statement routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/statements")
	group.Get("/", h.HandleList)
	group.Post("/:name", h.HandleUpload)
	group.Delete("/:name", h.HandleRemove)
}

// HandleList lists the statement objects in the bucket.
// @Summary List Statements
// @Description List the statement objects currently stored in the bucket.
// @Tags statements
// @Produce json
// @Success 200 {array} statements.ObjectInfo "Statement objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /statements [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Statement listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(objects)
}

// HandleUpload validates and stores a statement CSV in the bucket.
// @Summary Upload Statement
// @Description Upload a statement CSV. The file is parsed before storing so malformed statements are rejected.
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param name path string true "Object name"
// @Param file formData file true "Statement CSV"
// @Success 201 {object} statements.ObjectInfo "Stored object"
// @Failure 400 {object} map[string]string "Invalid upload or CSV"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /statements/{name} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		l.Warn("Statement upload rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file upload"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		l.Warn("Statement upload rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	info, err := h.service.Put(c.Context(), name, f)
	if err != nil {
		l.Warn("Statement upload failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleRemove deletes a statement object.
// @Summary Remove Statement
// @Description Delete a statement object from the bucket and drop its cached dataset.
// @Tags statements
// @Produce json
// @Param name path string true "Object name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /statements/{name} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	if err := h.service.Remove(c.Context(), name); err != nil {
		l.Error("Statement removal failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "object": name})
}
