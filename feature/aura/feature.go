package aura

import (
	"context"

	"asset-editor/core/definition"
	"asset-editor/core/registry"
	"asset-editor/feature/aura/models"

	"go.uber.org/zap"
)

// Kind names the aura registry and its routes.
const Kind = "aura"

// Service is the aura definition service.
type Service = definition.Service[models.AuraDef]

// Load reads the aura document from store and wraps it in a Service.
func Load(ctx context.Context, store definition.Store, logger *zap.Logger) (*Service, error) {
	reg, err := registry.Load[models.AuraDef](ctx, Kind, store)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded aura definitions", zap.Int("count", reg.Len()), zap.Stringer("source", store))
	return definition.NewService(reg, models.Schema, store, logger), nil
}

// NewFeature registers the aura routes with the loader.
func NewFeature(svc *Service) *definition.Feature[models.AuraDef] {
	return definition.NewFeature(svc)
}
