package fieldpath

import "fmt"

// Enumeration describes a closed, named set of variants.
// Variant indices are the ordinal values stored in records.
type Enumeration struct {
	name     string
	variants []string
	index    map[string]int
}

// NewEnumeration declares an enumeration. Variant names must be unique.
func NewEnumeration(name string, variants ...string) *Enumeration {
	e := &Enumeration{
		name:     name,
		variants: variants,
		index:    make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if _, dup := e.index[v]; dup {
			panic(fmt.Sprintf("fieldpath: duplicate variant %q in enumeration %s", v, name))
		}
		e.index[v] = i
	}
	return e
}

// Name returns the enumeration's declared name (e.g. "ItemRarity").
func (e *Enumeration) Name() string {
	return e.name
}

// Variants returns a copy of the variant names in declaration order.
func (e *Enumeration) Variants() []string {
	out := make([]string, len(e.variants))
	copy(out, e.variants)
	return out
}

// Variant returns the name of the variant at ordinal i.
func (e *Enumeration) Variant(i int) (string, bool) {
	if i < 0 || i >= len(e.variants) {
		return "", false
	}
	return e.variants[i], true
}

// Lookup returns the ordinal of the variant with exactly this name.
func (e *Enumeration) Lookup(name string) (int, bool) {
	i, ok := e.index[name]
	return i, ok
}

// Parse is Lookup with a typed error.
func (e *Enumeration) Parse(name string) (int, error) {
	i, ok := e.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s", ErrUnrecognizedVariant, name, e.name)
	}
	return i, nil
}

// MustVariant returns the variant name at i, or "" when i is out of range.
func (e *Enumeration) MustVariant(i int) string {
	v, _ := e.Variant(i)
	return v
}

// MarshalVariant encodes ordinal i as its variant name. It backs the
// MarshalText methods of record enum types.
func (e *Enumeration) MarshalVariant(i int) ([]byte, error) {
	v, ok := e.Variant(i)
	if !ok {
		return nil, fmt.Errorf("%w: ordinal %d out of range for %s", ErrUnrecognizedVariant, i, e.name)
	}
	return []byte(v), nil
}
