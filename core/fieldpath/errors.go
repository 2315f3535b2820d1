package fieldpath

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound means no leaf field matches the path for this schema.
	ErrPathNotFound = errors.New("path not found")
	// ErrMalformedNumber means the text is not a literal of the numeric kind.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrUnrecognizedVariant means the text names no variant of the enumeration.
	ErrUnrecognizedVariant = errors.New("unrecognized variant")
	// ErrUnsupportedKind means a value or kind falls outside the closed kind set.
	ErrUnsupportedKind = errors.New("unsupported kind")
)

// DecodeError reports text that failed to decode as a field's declared kind.
// It unwraps to ErrMalformedNumber or ErrUnrecognizedVariant.
type DecodeError struct {
	Path string
	Kind Kind
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s field %q: %v", e.Kind, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeFailure reports whether err is a user-input decode failure that the
// editor should re-prompt for.
func IsDecodeFailure(err error) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return true
	}
	return errors.Is(err, ErrMalformedNumber) || errors.Is(err, ErrUnrecognizedVariant)
}
