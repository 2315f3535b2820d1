package fieldpath

import (
	"fmt"
	"strconv"
)

// Value holds one leaf value. Its dynamic type is one of uint32, uint64,
// int32, int64, float32, float64, string or EnumValue.
type Value = any

// EnumValue is an enumeration ordinal paired with its enumeration.
type EnumValue struct {
	Enum  *Enumeration
	Index int
}

func (v EnumValue) String() string {
	if name, ok := v.Enum.Variant(v.Index); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", v.Enum.Name(), v.Index)
}

// KindOf returns the kind of a value, or 0 if the value is outside the kind set.
func KindOf(v Value) Kind {
	switch v.(type) {
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindText
	case EnumValue:
		return KindEnum
	default:
		return 0
	}
}

// Encode renders a value as text.
func Encode(v Value) string {
	switch v := v.(type) {
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case EnumValue:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Decode parses text as the given kind. enum is required for KindEnum and
// ignored otherwise. Numbers must match the kind's literal grammar exactly:
// no trimming, truncation, or coercion between kinds.
func Decode(text string, kind Kind, enum *Enumeration) (Value, error) {
	switch kind {
	case KindUint32:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return uint32(n), nil
	case KindUint64:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return n, nil
	case KindInt32:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return int32(n), nil
	case KindInt64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return n, nil
	case KindFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return float32(f), nil
	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, malformed(text, kind)
		}
		return f, nil
	case KindText:
		return text, nil
	case KindEnum:
		if enum == nil {
			return nil, fmt.Errorf("%w: enum kind without enumeration", ErrUnsupportedKind)
		}
		i, err := enum.Parse(text)
		if err != nil {
			return nil, err
		}
		return EnumValue{Enum: enum, Index: i}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// Guess decodes text whose kind is unknown to the caller. Numeric kinds are
// tried in order u32, u64, i32, i64, f32, f64, then each enumeration by exact
// variant name; anything else is text. Enumerations come before text because
// text accepts every input. Prefer Decode whenever the kind is known.
func Guess(text string, enums ...*Enumeration) Value {
	for _, kind := range guessOrder {
		if v, err := Decode(text, kind, nil); err == nil {
			return v
		}
	}
	for _, e := range enums {
		if i, ok := e.Lookup(text); ok {
			return EnumValue{Enum: e, Index: i}
		}
	}
	return text
}

func malformed(text string, kind Kind) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrMalformedNumber, text, kind)
}
