package item

import (
	"context"

	"asset-editor/core/definition"
	"asset-editor/core/registry"
	"asset-editor/feature/item/models"

	"go.uber.org/zap"
)

// Kind names the item registry and its routes.
const Kind = "item"

// Service is the item definition service.
type Service = definition.Service[models.ItemDef]

// Load reads the item document from store and wraps it in a Service.
func Load(ctx context.Context, store definition.Store, logger *zap.Logger) (*Service, error) {
	reg, err := registry.Load[models.ItemDef](ctx, Kind, store)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded item definitions", zap.Int("count", reg.Len()), zap.Stringer("source", store))
	return definition.NewService(reg, models.Schema, store, logger), nil
}

// NewFeature registers the item routes with the loader.
func NewFeature(svc *Service) *definition.Feature[models.ItemDef] {
	return definition.NewFeature(svc)
}
