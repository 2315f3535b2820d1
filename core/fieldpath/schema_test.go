package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTier int

var testTiers = NewEnumeration("Tier", "Low", "Mid", "High")

type testInner struct {
	Tier  testTier
	Armor uint32
	Deep  testDeep
}

type testDeep struct {
	Offset int64
}

type testRecord struct {
	ID     uint32
	Name   string
	Big    uint64
	Delta  int32
	Weight float32
	Ratio  float64
	Inner  testInner
}

func testSchema() *Schema[testRecord] {
	return NewSchema(
		Uint32("id", func(r *testRecord) *uint32 { return &r.ID }),
		Text("name", func(r *testRecord) *string { return &r.Name }),
		Uint64("big", func(r *testRecord) *uint64 { return &r.Big }),
		Int32("delta", func(r *testRecord) *int32 { return &r.Delta }),
		Float32("weight", func(r *testRecord) *float32 { return &r.Weight }),
		Float64("ratio", func(r *testRecord) *float64 { return &r.Ratio }),
		Nest("inner", func(r *testRecord) *testInner { return &r.Inner },
			Enum("tier", testTiers, func(i *testInner) *testTier { return &i.Tier }),
			Uint32("armor", func(i *testInner) *uint32 { return &i.Armor }),
			Nest("deep", func(i *testInner) *testDeep { return &i.Deep },
				Int64("offset", func(d *testDeep) *int64 { return &d.Offset }),
			),
		),
	)
}

func testValue() testRecord {
	return testRecord{
		ID:     7,
		Name:   "Sword 42",
		Big:    1 << 40,
		Delta:  -3,
		Weight: 2.5,
		Ratio:  0.125,
		Inner:  testInner{Tier: 2, Armor: 11, Deep: testDeep{Offset: -99}},
	}
}

func TestSchema_Paths(t *testing.T) {
	s := testSchema()
	want := []string{"id", "name", "big", "delta", "weight", "ratio", "inner.tier", "inner.armor", "inner.deep.offset"}

	assert.Equal(t, want, s.Paths())
	assert.Equal(t, s.Paths(), s.Paths(), "derivation must be stable")

	paths := s.Paths()
	paths[0] = "mutated"
	assert.Equal(t, "id", s.Paths()[0], "Paths returns a copy")
}

func TestSchema_Get(t *testing.T) {
	s := testSchema()
	rec := testValue()

	tests := []struct {
		path string
		want string
	}{
		{"id", "7"},
		{"name", "Sword 42"},
		{"big", "1099511627776"},
		{"delta", "-3"},
		{"weight", "2.5"},
		{"ratio", "0.125"},
		{"inner.tier", "High"},
		{"inner.armor", "11"},
		{"inner.deep.offset", "-99"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := s.Get(&rec, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchema_PathNotFound(t *testing.T) {
	s := testSchema()
	rec := testValue()

	for _, path := range []string{"", "missing", "inner", "inner.deep", "inner.armor.x", "id.x", "inner..armor"} {
		t.Run(path, func(t *testing.T) {
			_, err := s.Get(&rec, path)
			assert.ErrorIs(t, err, ErrPathNotFound)

			err = s.Set(&rec, path, "1")
			assert.ErrorIs(t, err, ErrPathNotFound)
		})
	}
	assert.Equal(t, testValue(), rec)
}

func TestSchema_SetRoundTrip(t *testing.T) {
	s := testSchema()
	for _, path := range s.Paths() {
		t.Run(path, func(t *testing.T) {
			rec := testValue()
			text, err := s.Get(&rec, path)
			require.NoError(t, err)

			require.NoError(t, s.Set(&rec, path, text))
			assert.Equal(t, testValue(), rec)
		})
	}
}

func TestSchema_SetIsolation(t *testing.T) {
	s := testSchema()
	updates := map[string]string{
		"id":                "8",
		"name":              "Axe",
		"big":               "5",
		"delta":             "4",
		"weight":            "9.75",
		"ratio":             "3",
		"inner.tier":        "Low",
		"inner.armor":       "0",
		"inner.deep.offset": "12",
	}

	for target, text := range updates {
		t.Run(target, func(t *testing.T) {
			rec := testValue()
			before := testValue()
			require.NoError(t, s.Set(&rec, target, text))

			got, err := s.Get(&rec, target)
			require.NoError(t, err)
			assert.Equal(t, text, got)

			for _, other := range s.Paths() {
				if other == target {
					continue
				}
				want, _ := s.Get(&before, other)
				have, _ := s.Get(&rec, other)
				assert.Equal(t, want, have, "writing %s changed %s", target, other)
			}
		})
	}
}

func TestSchema_SetDecodeFailure(t *testing.T) {
	s := testSchema()

	t.Run("MalformedNumber", func(t *testing.T) {
		rec := testValue()
		err := s.Set(&rec, "inner.armor", "abc")

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "inner.armor", de.Path)
		assert.Equal(t, KindUint32, de.Kind)
		assert.Equal(t, "abc", de.Text)
		assert.ErrorIs(t, err, ErrMalformedNumber)
		assert.True(t, IsDecodeFailure(err))
		assert.Equal(t, testValue(), rec)
	})

	t.Run("UnrecognizedVariant", func(t *testing.T) {
		rec := testValue()
		err := s.Set(&rec, "inner.tier", "high")
		assert.ErrorIs(t, err, ErrUnrecognizedVariant)
		assert.Equal(t, testValue(), rec)
	})

	t.Run("PathNotFoundIsNotDecodeFailure", func(t *testing.T) {
		rec := testValue()
		err := s.Set(&rec, "nope", "1")
		assert.False(t, IsDecodeFailure(err))
	})
}

func TestSchema_Field(t *testing.T) {
	s := testSchema()

	leaf, err := s.Field("inner.tier")
	require.NoError(t, err)
	assert.Equal(t, KindEnum, leaf.Kind)
	assert.Equal(t, []string{"Low", "Mid", "High"}, leaf.Enum.Variants())

	leaf, err = s.Field("weight")
	require.NoError(t, err)
	assert.Equal(t, KindFloat32, leaf.Kind)
	assert.Nil(t, leaf.Enum)
}

func TestSchema_Snapshot(t *testing.T) {
	s := testSchema()
	rec := testValue()

	entries := s.Snapshot(&rec)
	require.Len(t, entries, len(s.Paths()))
	assert.Equal(t, Entry{Path: "inner.tier", Value: "High"}, entries[6])
}

func TestNewSchema_Panics(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema(
			Uint32("id", func(r *testRecord) *uint32 { return &r.ID }),
			Uint32("id", func(r *testRecord) *uint32 { return &r.ID }),
		)
	})
	assert.Panics(t, func() {
		NewSchema(Text("a.b", func(r *testRecord) *string { return &r.Name }))
	})
}
