package definition

import (
	"asset-editor/core/registry"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface for one definition kind.
type Feature[T registry.Definition] struct {
	service *Service[T]
	handler *Handler[T]
}

// NewFeature creates a definition feature around an existing service.
func NewFeature[T registry.Definition](svc *Service[T]) *Feature[T] {
	return &Feature[T]{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature[T]) Name() string {
	return f.service.Kind()
}

// IsEnabled checks if the feature is enabled.
func (f *Feature[T]) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature[T]) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature[T]) Service() *Service[T] {
	return f.service
}
