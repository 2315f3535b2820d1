package fieldpath

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a field path.
const Separator = "."

// Field declares one field of a record type T: either a leaf of a fixed kind
// with typed accessors, or a nested record holding further fields.
type Field[T any] struct {
	name     string
	kind     Kind
	enum     *Enumeration
	get      func(*T) Value
	set      func(*T, Value)
	children []Field[T]
}

// Name returns the field's declared name.
func (f Field[T]) Name() string { return f.name }

// IsLeaf reports whether the field holds a value rather than nested fields.
func (f Field[T]) IsLeaf() bool { return f.kind != 0 }

func leaf[T, V any](name string, kind Kind, at func(*T) *V) Field[T] {
	return Field[T]{
		name: name,
		kind: kind,
		get:  func(t *T) Value { return *at(t) },
		set:  func(t *T, v Value) { *at(t) = v.(V) },
	}
}

// Uint32 declares an unsigned 32-bit leaf.
func Uint32[T any](name string, at func(*T) *uint32) Field[T] {
	return leaf(name, KindUint32, at)
}

// Uint64 declares an unsigned 64-bit leaf.
func Uint64[T any](name string, at func(*T) *uint64) Field[T] {
	return leaf(name, KindUint64, at)
}

// Int32 declares a signed 32-bit leaf.
func Int32[T any](name string, at func(*T) *int32) Field[T] {
	return leaf(name, KindInt32, at)
}

// Int64 declares a signed 64-bit leaf.
func Int64[T any](name string, at func(*T) *int64) Field[T] {
	return leaf(name, KindInt64, at)
}

// Float32 declares a 32-bit floating point leaf.
func Float32[T any](name string, at func(*T) *float32) Field[T] {
	return leaf(name, KindFloat32, at)
}

// Float64 declares a 64-bit floating point leaf.
func Float64[T any](name string, at func(*T) *float64) Field[T] {
	return leaf(name, KindFloat64, at)
}

// Text declares a string leaf.
func Text[T any](name string, at func(*T) *string) Field[T] {
	return leaf(name, KindText, at)
}

// Enum declares a leaf whose values are ordinals of enum.
func Enum[T any, E ~int](name string, enum *Enumeration, at func(*T) *E) Field[T] {
	return Field[T]{
		name: name,
		kind: KindEnum,
		enum: enum,
		get:  func(t *T) Value { return EnumValue{Enum: enum, Index: int(*at(t))} },
		set:  func(t *T, v Value) { *at(t) = E(v.(EnumValue).Index) },
	}
}

// Nest declares a nested record field. The child fields are declared against
// the nested type U and reached through at.
func Nest[T, U any](name string, at func(*T) *U, fields ...Field[U]) Field[T] {
	f := Field[T]{name: name}
	for _, c := range fields {
		f.children = append(f.children, rebase(c, at))
	}
	return f
}

func rebase[T, U any](f Field[U], at func(*T) *U) Field[T] {
	out := Field[T]{name: f.name, kind: f.kind, enum: f.enum}
	if f.IsLeaf() {
		get, set := f.get, f.set
		out.get = func(t *T) Value { return get(at(t)) }
		out.set = func(t *T, v Value) { set(at(t), v) }
	}
	for _, c := range f.children {
		out.children = append(out.children, rebase(c, at))
	}
	return out
}

// Leaf describes a resolved leaf field.
type Leaf struct {
	// Path is the dotted address of the leaf.
	Path string
	// Kind is the leaf's declared kind.
	Kind Kind
	// Enum is set for KindEnum leaves.
	Enum *Enumeration
}

// Schema is the compile-time field structure of one record kind.
type Schema[T any] struct {
	fields []Field[T]
	paths  []string
}

// NewSchema builds a schema from its top-level fields in declaration order.
// It panics on duplicate sibling names, since schemas are static.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	checkSiblings(fields, "")
	s := &Schema[T]{fields: fields}
	s.paths = DerivePaths(fields)
	return s
}

func checkSiblings[T any](fields []Field[T], prefix string) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.name == "" || strings.Contains(f.name, Separator) {
			panic(fmt.Sprintf("fieldpath: invalid field name %q under %q", f.name, prefix))
		}
		if _, dup := seen[f.name]; dup {
			panic(fmt.Sprintf("fieldpath: duplicate field %q under %q", f.name, prefix))
		}
		seen[f.name] = struct{}{}
		checkSiblings(f.children, join(prefix, f.name))
	}
}

// DerivePaths walks fields depth-first in declaration order and returns the
// dotted path of every leaf.
func DerivePaths[T any](fields []Field[T]) []string {
	var paths []string
	derive(fields, "", &paths)
	return paths
}

func derive[T any](fields []Field[T], prefix string, paths *[]string) {
	for _, f := range fields {
		if f.IsLeaf() {
			*paths = append(*paths, join(prefix, f.name))
			continue
		}
		derive(f.children, join(prefix, f.name), paths)
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + Separator + name
}

// Paths returns the schema's leaf paths. The order is stable across calls.
func (s *Schema[T]) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

func (s *Schema[T]) resolve(path string) (Field[T], error) {
	fields := s.fields
	segments := strings.Split(path, Separator)
	for i, seg := range segments {
		var found *Field[T]
		for j := range fields {
			if fields[j].name == seg {
				found = &fields[j]
				break
			}
		}
		if found == nil {
			break
		}
		if i == len(segments)-1 {
			if !found.IsLeaf() {
				break
			}
			return *found, nil
		}
		fields = found.children
	}
	return Field[T]{}, fmt.Errorf("%w: %q", ErrPathNotFound, path)
}

// Field describes the leaf at path.
func (s *Schema[T]) Field(path string) (Leaf, error) {
	f, err := s.resolve(path)
	if err != nil {
		return Leaf{}, err
	}
	return Leaf{Path: path, Kind: f.kind, Enum: f.enum}, nil
}

// Value returns the native value of the leaf at path.
func (s *Schema[T]) Value(rec *T, path string) (Value, error) {
	f, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return f.get(rec), nil
}

// Get returns the text form of the leaf at path, encoded by its declared kind.
func (s *Schema[T]) Get(rec *T, path string) (string, error) {
	v, err := s.Value(rec, path)
	if err != nil {
		return "", err
	}
	return Encode(v), nil
}

// Set decodes text as the declared kind of the leaf at path and assigns it.
// On failure rec is left untouched and the error is a *DecodeError.
func (s *Schema[T]) Set(rec *T, path, text string) error {
	f, err := s.resolve(path)
	if err != nil {
		return err
	}
	v, err := Decode(text, f.kind, f.enum)
	if err != nil {
		return &DecodeError{Path: path, Kind: f.kind, Text: text, Err: err}
	}
	f.set(rec, v)
	return nil
}

// Snapshot returns every leaf path of rec with its encoded value, in path order.
func (s *Schema[T]) Snapshot(rec *T) []Entry {
	out := make([]Entry, 0, len(s.paths))
	for _, p := range s.paths {
		text, _ := s.Get(rec, p)
		out = append(out, Entry{Path: p, Value: text})
	}
	return out
}

// Entry is one leaf path with its encoded value.
type Entry struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}
