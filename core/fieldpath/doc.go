// Package fieldpath addresses and edits the leaf fields of definition records.
//
// A record kind declares its structure once, at compile time, as a Schema built
// from typed field descriptors. The package then provides three services on top
// of that description without any runtime reflection.
//
// # Value Codec
//
// Leaves have one of a closed set of kinds (u32, u64, i32, i64, f32, f64, text
// and named enumerations). Encode renders a value as text; Decode parses text as
// a specific kind and fails with ErrMalformedNumber or ErrUnrecognizedVariant.
// Guess exists only for callers that do not know the kind.
//
// # Path Deriver
//
// Schema.Paths lists every leaf as a dotted path ("equipment_def.armor"),
// depth-first in declaration order. The order is stable and is what editors
// rely on for navigation.
//
// # Path Accessor
//
// Schema.Get and Schema.Set read and write one leaf through its path using the
// leaf's declared kind. Set touches nothing but the targeted leaf and leaves the
// record unchanged when decoding fails.
//
// # Usage
//
//	schema := fieldpath.NewSchema(
//	    fieldpath.Uint32("id", func(d *Def) *uint32 { return &d.ID }),
//	    fieldpath.Nest("stats", func(d *Def) *Stats { return &d.Stats },
//	        fieldpath.Float32("speed", func(s *Stats) *float32 { return &s.Speed }),
//	    ),
//	)
//	text, err := schema.Get(&def, "stats.speed")
//	err = schema.Set(&def, "stats.speed", "1.5")
package fieldpath
