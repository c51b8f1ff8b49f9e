package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	recorder *Recorder
	handler  *Handler
}

// NewFeature creates the history feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	rec := NewRecorder(db, logger)
	return &Feature{recorder: rec, handler: NewHandler(rec)}
}

// Recorder exposes the underlying recorder for other features.
func (f *Feature) Recorder() *Recorder {
	return f.recorder
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled. History routes only make
// sense when a database is configured.
func (f *Feature) IsEnabled() bool {
	return f.recorder.Enabled()
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
