package statements

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Feature wires statement object management into the HTTP application.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the statements feature.
func NewFeature(service *Service) *Feature {
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "statements"
}

// IsEnabled reports whether the feature is active. Object management needs
// a storage client; without one only file and ledger sources work.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load ensures the statement bucket exists and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.EnsureBucket(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
