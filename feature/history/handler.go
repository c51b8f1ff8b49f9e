package history

import (
	"strconv"

	"alma-utilities/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	recorder *Recorder
}

// NewHandler creates a new HTTP handler.
func NewHandler(recorder *Recorder) *Handler {
	return &Handler{recorder: recorder}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/runs", h.HandleListRuns)
}

// HandleListRuns lists recent reconciliation runs.
// @Summary List Recent Runs
// @Description Returns the most recent reconciliation runs, newest first.
// @Tags history
// @Accept json
// @Produce json
// @Param limit query integer false "Maximum number of runs (default 20)"
// @Success 200 {array} history.Run "Recent Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.recorder.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit"))

	runs, err := h.recorder.Recent(c.Context(), limit)
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}
