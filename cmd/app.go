package cmd

import (
	"context"
	"fmt"
	"strconv"

	"asset-editor/core/config"
	"asset-editor/core/database"
	"asset-editor/core/definition"
	"asset-editor/core/logger"
	"asset-editor/core/storage"
	"asset-editor/feature/aura"
	"asset-editor/feature/catalog"
	"asset-editor/feature/item"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app is the state every command starts from.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	items  *item.Service
	auras  *aura.Service
}

// setup loads configuration, creates the logger and storage client, but
// leaves the definition documents alone.
func setup() (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Defs.IsValidSource() {
		return nil, fmt.Errorf("unsupported definition source %q (use %q or %q)", cfg.Defs.Source, definition.SourceFile, definition.SourceStorage)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &app{cfg: cfg, logger: logg, client: client}, nil
}

// bootstrap is setup followed by loading both registries from the
// configured source.
func bootstrap(ctx context.Context) (*app, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}

	itemStore, err := a.store(a.cfg.Defs.ItemPath)
	if err != nil {
		return nil, err
	}
	auraStore, err := a.store(a.cfg.Defs.AuraPath)
	if err != nil {
		return nil, err
	}

	if a.items, err = item.Load(ctx, itemStore, a.logger); err != nil {
		return nil, err
	}
	if a.auras, err = aura.Load(ctx, auraStore, a.logger); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) store(path string) (definition.Store, error) {
	return a.cfg.Defs.Store(path, a.client, a.cfg.Storage)
}

func (a *app) catalog() *catalog.Service {
	return catalog.NewService(a.items.Registry(), a.auras.Registry())
}

// database connects to the export database. A failure is logged and yields
// nil, since only export and the schema check need it.
func (a *app) database() *gorm.DB {
	db, err := database.Connect(a.cfg.Database)
	if err != nil {
		a.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	a.logger.Info("Connected to export database", zap.String("driver", a.cfg.Database.Driver))
	return db
}

// editor is the kind-independent surface of a definition service.
type editor interface {
	Kind() string
	Fields() []definition.FieldInfo
	Get(id uint32) (*definition.Record, error)
	GetByName(name string) (*definition.Record, error)
	Set(id uint32, path, text string) (*definition.Record, error)
	Save(ctx context.Context) error
}

// editor returns the service of an item or aura kind, accepting the plural.
func (a *app) editor(kind string) (editor, error) {
	switch kind {
	case item.Kind, item.Kind + "s":
		return a.items, nil
	case aura.Kind, aura.Kind + "s":
		return a.auras, nil
	default:
		return nil, fmt.Errorf("unknown definition kind %q (use %q or %q)", kind, item.Kind, aura.Kind)
	}
}

// resolve finds a definition by id when ref is numeric, by name otherwise.
func resolve(e editor, ref string) (*definition.Record, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return e.Get(uint32(id))
	}
	return e.GetByName(ref)
}
