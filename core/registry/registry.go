package registry

import (
	"context"
	"fmt"
	"sync"
)

// Definition is a record with a stable numeric id and a unique display name.
// Records must be plain values: a copy shares no mutable state with the original.
type Definition interface {
	DefID() uint32
	DefName() string
}

// defaulter is implemented by records whose absent fields default to non-zero values.
type defaulter[T any] interface {
	Defaults() T
}

// Handle is a shared, read-only reference to one loaded definition.
// A handle never changes after creation; updates publish a new handle.
type Handle[T Definition] struct {
	def T
}

func newHandle[T Definition](def T) *Handle[T] {
	return &Handle[T]{def: def}
}

// Def returns a copy of the wrapped definition, safe to mutate and commit.
func (h *Handle[T]) Def() T {
	return h.def
}

// ID returns the definition id.
func (h *Handle[T]) ID() uint32 {
	return h.def.DefID()
}

// Name returns the definition name.
func (h *Handle[T]) Name() string {
	return h.def.DefName()
}

// Registry is the loaded, dual-indexed collection of definitions of one kind.
// Reads may run concurrently; writes replace whole slots.
type Registry[T Definition] struct {
	kind string

	mu     sync.RWMutex
	nextID uint32
	defs   []*Handle[T]
	byName map[string]int
	byID   map[uint32]int
	dirty  bool
	// version counts updates so Save only clears dirty for what it wrote.
	version uint64
}

// New builds a registry from defs in order. Ids and names must be unique.
func New[T Definition](kind string, nextID uint32, defs []T) (*Registry[T], error) {
	r := &Registry[T]{kind: kind}
	if err := r.reset(nextID, defs); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry[T]) reset(nextID uint32, defs []T) error {
	handles := make([]*Handle[T], 0, len(defs))
	byName := make(map[string]int, len(defs))
	byID := make(map[uint32]int, len(defs))
	for i, def := range defs {
		if prev, dup := byID[def.DefID()]; dup {
			return fmt.Errorf("%w: %s id %d used by entries %d and %d", ErrSourceMalformed, r.kind, def.DefID(), prev, i)
		}
		if prev, dup := byName[def.DefName()]; dup {
			return fmt.Errorf("%w: %s name %q used by entries %d and %d", ErrSourceMalformed, r.kind, def.DefName(), prev, i)
		}
		byID[def.DefID()] = i
		byName[def.DefName()] = i
		handles = append(handles, newHandle(def))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID = nextID
	r.defs = handles
	r.byName = byName
	r.byID = byID
	r.version++
	r.dirty = false
	return nil
}

// Load reads and indexes every definition in src. It returns either a complete
// registry or an error wrapping ErrSourceUnreadable or ErrSourceMalformed.
func Load[T Definition](ctx context.Context, kind string, src Source) (*Registry[T], error) {
	r := &Registry[T]{kind: kind}
	if err := r.Reload(ctx, src); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the registry contents with src. On error the current
// contents are kept.
func (r *Registry[T]) Reload(ctx context.Context, src Source) error {
	data, err := src.Read(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, src, err)
	}

	doc, err := decodeDocument(src.Format(), data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceMalformed, src, err)
	}

	defs := make([]T, 0, len(doc.defs))
	for i, decode := range doc.defs {
		var def T
		if d, ok := any(def).(defaulter[T]); ok {
			def = d.Defaults()
		}
		if err := decode(&def); err != nil {
			return fmt.Errorf("%w: %s: entry %d: %v", ErrSourceMalformed, src, i, err)
		}
		defs = append(defs, def)
	}

	return r.reset(doc.nextID, defs)
}

// Kind returns the record kind this registry holds (e.g. "item").
func (r *Registry[T]) Kind() string {
	return r.kind
}

// ByID returns the handle of the definition with the given id.
func (r *Registry[T]) ByID(id uint32) (*Handle[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownID, r.kind, id)
	}
	return r.defs[i], nil
}

// ByName returns the handle of the definition with the given name.
func (r *Registry[T]) ByName(name string) (*Handle[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownName, r.kind, name)
	}
	return r.defs[i], nil
}

// Update publishes def in the slot of the definition with the same id.
// It never inserts; holders of the previous handle keep the old value.
func (r *Registry[T]) Update(def T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[def.DefID()]
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrUnknownID, r.kind, def.DefID())
	}

	oldName := r.defs[i].Name()
	if newName := def.DefName(); newName != oldName {
		if j, taken := r.byName[newName]; taken && j != i {
			return fmt.Errorf("%w: %s %q", ErrDuplicateName, r.kind, newName)
		}
		delete(r.byName, oldName)
		r.byName[newName] = i
	}

	r.defs[i] = newHandle(def)
	r.dirty = true
	r.version++
	return nil
}

// Defs returns the handles in collection order.
func (r *Registry[T]) Defs() []*Handle[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Handle[T], len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of definitions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// NextID returns the id counter persisted with the definitions.
func (r *Registry[T]) NextID() uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

// Dirty reports whether updates happened since the last load or save.
func (r *Registry[T]) Dirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}

// Save writes every definition to dst in collection order.
func (r *Registry[T]) Save(ctx context.Context, dst Sink) error {
	r.mu.RLock()
	defs := make([]T, len(r.defs))
	for i, h := range r.defs {
		defs[i] = h.def
	}
	nextID := r.nextID
	version := r.version
	r.mu.RUnlock()

	data, err := encodeDocument(dst.Format(), document[T]{NextID: nextID, Defs: defs})
	if err != nil {
		return fmt.Errorf("failed to encode %s definitions: %w", r.kind, err)
	}
	if err := dst.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write %s definitions to %s: %w", r.kind, dst, err)
	}

	r.mu.Lock()
	if r.version == version {
		r.dirty = false
	}
	r.mu.Unlock()
	return nil
}
