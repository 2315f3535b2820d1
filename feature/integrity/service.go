package integrity

import (
	"context"

	"asset-editor/core/storage"
	"asset-editor/feature/catalog"
	"asset-editor/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client    storage.Client
	cfg       storage.Config
	documents []string
	db        *gorm.DB
	catalog   *catalog.Service
	logger    *zap.Logger
}

// NewService creates a new integrity service. documents are the object keys
// of the definition documents; db may be nil when no export database is
// configured.
func NewService(client storage.Client, cfg storage.Config, documents []string, db *gorm.DB, cat *catalog.Service, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		cfg:       cfg,
		documents: documents,
		db:        db,
		catalog:   cat,
		logger:    logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket, checks.RequiredFolders(s.cfg))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.logger, missing)
}

// CheckDocuments returns the definition documents missing from storage.
func (s *Service) CheckDocuments(ctx context.Context) ([]string, error) {
	return checks.CheckDocuments(ctx, s.client, s.cfg.Bucket, s.documents)
}

// CheckIcons verifies that every definition's icon exists in storage.
func (s *Service) CheckIcons(ctx context.Context) (*checks.IconReport, error) {
	return checks.CheckIcons(ctx, s.client, s.cfg.Bucket, s.cfg.IconKey, s.catalog.Entries(""))
}

// CheckSchema compares the export tables to their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
