package bibs

import (
	"errors"

	"alma-utilities/core/dataset"
	"alma-utilities/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for dataset reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bibs routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bibs")
	group.Get("/datasets", h.HandleListDatasets)
	group.Post("/reconcile", h.HandleReconcile)
}

// reconcileRequest is the body of POST /bibs/reconcile.
type reconcileRequest struct {
	// Object is the key of the dataset object to process.
	Object string `json:"object"`
}

// HandleListDatasets lists the CSV datasets in the imports bucket.
// @Summary List Import Datasets
// @Description Lists the CSV objects available for reconciliation in the imports bucket.
// @Tags bibs
// @Accept json
// @Produce json
// @Success 200 {array} bibs.DatasetInfo "Datasets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /bibs/datasets [get]
func (h *Handler) HandleListDatasets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.ListDatasets(c.Context())
	if err != nil {
		l.Error("Failed to list datasets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(infos)
}

// HandleReconcile reconciles one bucket-hosted dataset in place.
// @Summary Reconcile a Dataset
// @Description Fills empty mms_id values of the named dataset object by looking each originating_system_id up in Alma, then replaces the object. This operation may take a long time for large datasets.
// @Tags bibs
// @Accept json
// @Produce json
// @Param request body bibs.reconcileRequest true "Dataset object key"
// @Success 200 {object} bibs.RunResult "Run Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Invalid Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /bibs/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req reconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object is required"})
	}

	l.Info("Reconciling dataset", zap.String("object", req.Object))

	result, err := h.service.ReconcileObject(c.Context(), req.Object)
	if err != nil {
		var schemaErr *dataset.SchemaError
		var encodingErr *dataset.EncodingError
		if errors.As(err, &schemaErr) || errors.As(err, &encodingErr) {
			l.Warn("Dataset rejected", zap.Error(err))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}
