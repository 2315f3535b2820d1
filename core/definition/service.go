package definition

import (
	"context"
	"fmt"
	"strings"

	"asset-editor/core/fieldpath"
	"asset-editor/core/registry"
	"asset-editor/core/session"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is a definition document that can be both read and written.
type Store interface {
	registry.Source
	registry.Sink
}

// Summary is the list view of one definition.
type Summary struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Record is the detail view of one definition: every field path with its text.
type Record struct {
	ID     uint32            `json:"id"`
	Name   string            `json:"name"`
	Fields []fieldpath.Entry `json:"fields"`
}

// FieldInfo describes one editable field path.
type FieldInfo struct {
	Path     string   `json:"path"`
	Kind     string   `json:"kind"`
	Variants []string `json:"variants,omitempty"`
}

// Service exposes one registry through its record Schema.
type Service[T registry.Definition] struct {
	reg    *registry.Registry[T]
	schema *fieldpath.Schema[T]
	store  Store
	logger *zap.Logger
	sf     singleflight.Group
}

// NewService creates a definition service. store is where Reload and Save go.
func NewService[T registry.Definition](reg *registry.Registry[T], schema *fieldpath.Schema[T], store Store, logger *zap.Logger) *Service[T] {
	return &Service[T]{
		reg:    reg,
		schema: schema,
		store:  store,
		logger: logger,
	}
}

// Kind returns the record kind served.
func (s *Service[T]) Kind() string {
	return s.reg.Kind()
}

// Registry returns the underlying registry.
func (s *Service[T]) Registry() *registry.Registry[T] {
	return s.reg
}

// List returns the definitions in collection order. A non-empty prefix keeps
// only names starting with it, compared case-insensitively.
func (s *Service[T]) List(prefix string) []Summary {
	prefix = strings.ToLower(prefix)
	out := make([]Summary, 0, s.reg.Len())
	for _, h := range s.reg.Defs() {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(h.Name()), prefix) {
			continue
		}
		out = append(out, Summary{ID: h.ID(), Name: h.Name()})
	}
	return out
}

// Get returns the detail view of the definition with the given id.
func (s *Service[T]) Get(id uint32) (*Record, error) {
	h, err := s.reg.ByID(id)
	if err != nil {
		return nil, err
	}
	return s.record(h), nil
}

// GetByName returns the detail view of the definition with the given name.
func (s *Service[T]) GetByName(name string) (*Record, error) {
	h, err := s.reg.ByName(name)
	if err != nil {
		return nil, err
	}
	return s.record(h), nil
}

func (s *Service[T]) record(h *registry.Handle[T]) *Record {
	def := h.Def()
	return &Record{ID: h.ID(), Name: h.Name(), Fields: s.schema.Snapshot(&def)}
}

// Fields describes every field path of the record kind.
func (s *Service[T]) Fields() []FieldInfo {
	paths := s.schema.Paths()
	out := make([]FieldInfo, 0, len(paths))
	for _, p := range paths {
		leaf, err := s.schema.Field(p)
		if err != nil {
			continue
		}
		info := FieldInfo{Path: p, Kind: leaf.Kind.String()}
		if leaf.Enum != nil {
			info.Variants = leaf.Enum.Variants()
		}
		out = append(out, info)
	}
	return out
}

// Set decodes text into the field at path of definition id and commits it.
func (s *Service[T]) Set(id uint32, path, text string) (*Record, error) {
	sess := session.New(s.reg, s.schema)
	if err := sess.Select(id); err != nil {
		return nil, err
	}
	if err := sess.Begin(path); err != nil {
		return nil, err
	}
	sess.SetBuffer(text)
	if err := sess.Commit(); err != nil {
		return nil, err
	}

	s.logger.Debug("Definition field updated",
		zap.String("kind", s.Kind()),
		zap.Uint32("id", id),
		zap.String("path", path),
	)
	return s.Get(id)
}

// Reload replaces the registry contents from the store. Concurrent calls
// share one read.
func (s *Service[T]) Reload(ctx context.Context) error {
	_, err, _ := s.sf.Do("reload", func() (any, error) {
		if err := s.reg.Reload(ctx, s.store); err != nil {
			return nil, err
		}
		s.logger.Info("Definitions reloaded",
			zap.String("kind", s.Kind()),
			zap.String("source", s.store.String()),
			zap.Int("count", s.reg.Len()),
		)
		return nil, nil
	})
	return err
}

// Save writes the registry to the store.
func (s *Service[T]) Save(ctx context.Context) error {
	if err := s.reg.Save(ctx, s.store); err != nil {
		return fmt.Errorf("failed to save %s definitions: %w", s.Kind(), err)
	}
	s.logger.Info("Definitions saved",
		zap.String("kind", s.Kind()),
		zap.String("destination", s.store.String()),
	)
	return nil
}

// SaveIfDirty saves only when the registry has uncommitted updates.
func (s *Service[T]) SaveIfDirty(ctx context.Context) error {
	if !s.reg.Dirty() {
		return nil
	}
	return s.Save(ctx)
}
