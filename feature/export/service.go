package export

import (
	"context"
	"fmt"

	"asset-editor/core/database"
	"asset-editor/core/registry"
	auramodels "asset-editor/feature/aura/models"
	"asset-editor/feature/export/models"
	itemmodels "asset-editor/feature/item/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result counts the rows written per table.
type Result struct {
	Items int `json:"items"`
	Auras int `json:"auras"`
}

// Service mirrors the definition registries into SQL tables.
type Service struct {
	db     *gorm.DB
	items  *registry.Registry[itemmodels.ItemDef]
	auras  *registry.Registry[auramodels.AuraDef]
	logger *zap.Logger
}

// NewService creates an export service. db may be nil, in which case every
// operation fails.
func NewService(db *gorm.DB, items *registry.Registry[itemmodels.ItemDef], auras *registry.Registry[auramodels.AuraDef], logger *zap.Logger) *Service {
	return &Service{db: db, items: items, auras: auras, logger: logger}
}

// Migrate creates or updates the export tables.
func (s *Service) Migrate(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&models.ItemRow{}, &models.AuraRow{}); err != nil {
		return fmt.Errorf("failed to migrate export tables: %w", err)
	}
	return nil
}

// Export writes every definition to its table. Rows are upserted by id and
// rows whose id no longer exists are removed, each table in one transaction.
func (s *Service) Export(ctx context.Context) (*Result, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var itemRows []models.ItemRow
	for _, h := range s.items.Defs() {
		itemRows = append(itemRows, models.NewItemRow(h.Def()))
	}
	var auraRows []models.AuraRow
	for _, h := range s.auras.Defs() {
		auraRows = append(auraRows, models.NewAuraRow(h.Def()))
	}

	if err := mirror(ctx, s.db, itemRows, func(r models.ItemRow) uint32 { return r.ID }); err != nil {
		return nil, fmt.Errorf("failed to export items: %w", err)
	}
	if err := mirror(ctx, s.db, auraRows, func(r models.AuraRow) uint32 { return r.ID }); err != nil {
		return nil, fmt.Errorf("failed to export auras: %w", err)
	}

	res := &Result{Items: len(itemRows), Auras: len(auraRows)}
	s.logger.Info("Definitions exported", zap.Int("items", res.Items), zap.Int("auras", res.Auras))
	return res, nil
}

func mirror[R any](ctx context.Context, db *gorm.DB, rows []R, id func(R) uint32) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model R
		if len(rows) == 0 {
			return tx.Where("1 = 1").Delete(&model).Error
		}

		ids := make([]uint32, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, id(r))
		}

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&rows, 100).Error; err != nil {
			return err
		}
		return tx.Where("id NOT IN ?", ids).Delete(&model).Error
	})
}

// Verify reports, per table, the export columns the database lacks.
// Tables with every column are omitted.
func (s *Service) Verify(ctx context.Context) (map[string][]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db := s.db.WithContext(ctx)
	report := make(map[string][]string)

	tables := []struct {
		name    string
		columns []string
	}{
		{models.ItemRow{}.TableName(), models.ItemColumns},
		{models.AuraRow{}.TableName(), models.AuraColumns},
	}
	for _, t := range tables {
		missing, err := database.MissingColumns(db, t.name, t.columns)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report[t.name] = missing
		}
	}
	return report, nil
}
