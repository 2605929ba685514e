package integrity

import (
	"eox-sync/core/storage"
	"eox-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new integrity feature.
func NewFeature(db *gorm.DB, client storage.Client, bucket, region string, pinger checks.Pinger, logger *zap.Logger) *Feature {
	svc := NewService(db, client, bucket, region, pinger, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
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

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
