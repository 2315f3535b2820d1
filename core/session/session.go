package session

import (
	"errors"
	"fmt"

	"asset-editor/core/fieldpath"
	"asset-editor/core/registry"
)

var (
	// ErrNoSelection is returned when an operation needs a selected definition.
	ErrNoSelection = errors.New("no definition selected")
	// ErrNotEditing is returned by Commit when no edit is in progress.
	ErrNotEditing = errors.New("no edit in progress")
	// ErrIDImmutable is returned when an edit would change the definition id.
	ErrIDImmutable = errors.New("definition id cannot be edited")
)

// Session drives field edits of one record kind: select a definition, move
// a cursor over its field paths, edit a text buffer and commit it to the
// registry. A Session is not safe for concurrent use.
type Session[T registry.Definition] struct {
	reg    *registry.Registry[T]
	schema *fieldpath.Schema[T]
	paths  []string

	selected *registry.Handle[T]
	cursor   int

	editing  bool
	editPath string
	buffer   string
}

// New creates a session over reg. Paths are derived once from schema.
func New[T registry.Definition](reg *registry.Registry[T], schema *fieldpath.Schema[T]) *Session[T] {
	return &Session[T]{
		reg:    reg,
		schema: schema,
		paths:  schema.Paths(),
	}
}

// Select makes the definition with the given id current and resets the cursor.
// Any uncommitted edit is discarded.
func (s *Session[T]) Select(id uint32) error {
	h, err := s.reg.ByID(id)
	if err != nil {
		return err
	}
	s.choose(h)
	return nil
}

// SelectName is Select by definition name.
func (s *Session[T]) SelectName(name string) error {
	h, err := s.reg.ByName(name)
	if err != nil {
		return err
	}
	s.choose(h)
	return nil
}

func (s *Session[T]) choose(h *registry.Handle[T]) {
	s.selected = h
	s.cursor = 0
	s.Cancel()
}

// Selected returns the handle currently shown, which may be older than the
// registry's slot if another writer updated it since.
func (s *Session[T]) Selected() (*registry.Handle[T], bool) {
	return s.selected, s.selected != nil
}

// Refresh re-fetches the selected definition from the registry.
func (s *Session[T]) Refresh() error {
	if s.selected == nil {
		return ErrNoSelection
	}
	h, err := s.reg.ByID(s.selected.ID())
	if err != nil {
		return err
	}
	s.selected = h
	return nil
}

// Paths returns the field paths of the record kind.
func (s *Session[T]) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Cursor returns the index and path under the cursor.
func (s *Session[T]) Cursor() (int, string) {
	if len(s.paths) == 0 {
		return 0, ""
	}
	return s.cursor, s.paths[s.cursor]
}

// Next moves the cursor down one path, stopping at the last. The cursor
// stays put while an edit is open.
func (s *Session[T]) Next() {
	if s.editing {
		return
	}
	if s.cursor < len(s.paths)-1 {
		s.cursor++
	}
}

// Prev moves the cursor up one path, stopping at the first. The cursor
// stays put while an edit is open.
func (s *Session[T]) Prev() {
	if s.editing {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
}

// Value returns the text of path in the selected definition.
func (s *Session[T]) Value(path string) (string, error) {
	if s.selected == nil {
		return "", ErrNoSelection
	}
	def := s.selected.Def()
	return s.schema.Get(&def, path)
}

// Rows returns every path of the selected definition with its text.
func (s *Session[T]) Rows() ([]fieldpath.Entry, error) {
	if s.selected == nil {
		return nil, ErrNoSelection
	}
	def := s.selected.Def()
	return s.schema.Snapshot(&def), nil
}

// Begin starts editing path: the cursor moves there and the buffer is
// filled with the field's current text.
func (s *Session[T]) Begin(path string) error {
	text, err := s.Value(path)
	if err != nil {
		return err
	}
	for i, p := range s.paths {
		if p == path {
			s.cursor = i
			break
		}
	}
	s.editing = true
	s.editPath = path
	s.buffer = text
	return nil
}

// Editing reports whether an edit is in progress.
func (s *Session[T]) Editing() bool {
	return s.editing
}

// Buffer returns the uncommitted edit text.
func (s *Session[T]) Buffer() string {
	return s.buffer
}

// SetBuffer replaces the uncommitted edit text.
func (s *Session[T]) SetBuffer(text string) {
	s.buffer = text
}

// Commit decodes the buffer into the field Begin opened and publishes the
// edited copy to the registry. The copy is taken from the registry's current
// slot, so commits made by other writers since Select are kept. On a decode
// failure the buffer and the edit stay open so the caller can re-prompt.
func (s *Session[T]) Commit() error {
	if !s.editing {
		return ErrNotEditing
	}
	if s.selected == nil {
		return ErrNoSelection
	}
	path := s.editPath

	cur, err := s.reg.ByID(s.selected.ID())
	if err != nil {
		return err
	}
	def := cur.Def()
	if err := s.schema.Set(&def, path, s.buffer); err != nil {
		return err
	}
	if def.DefID() != cur.ID() {
		return fmt.Errorf("%w: %d -> %d", ErrIDImmutable, cur.ID(), def.DefID())
	}
	if err := s.reg.Update(def); err != nil {
		return fmt.Errorf("failed to commit %s: %w", path, err)
	}

	s.Cancel()
	return s.Refresh()
}

// Cancel discards the uncommitted edit. The registry is untouched.
func (s *Session[T]) Cancel() {
	s.editing = false
	s.editPath = ""
	s.buffer = ""
}
