package bibs

import (
	"alma-utilities/core/reconcile"
	"alma-utilities/core/storage"
	"alma-utilities/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the bibs feature.
func NewFeature(client storage.Client, bucket string, resolver reconcile.Resolver, recorder *history.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, resolver, recorder, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bibs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
