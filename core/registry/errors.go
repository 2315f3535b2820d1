package registry

import "errors"

var (
	// ErrSourceUnreadable means the definition source could not be read.
	ErrSourceUnreadable = errors.New("definition source unreadable")
	// ErrSourceMalformed means the source is not a valid definition document.
	ErrSourceMalformed = errors.New("definition source malformed")
	// ErrUnknownID means no definition has the requested id.
	ErrUnknownID = errors.New("unknown definition id")
	// ErrUnknownName means no definition has the requested name.
	ErrUnknownName = errors.New("unknown definition name")
	// ErrDuplicateName means an update would give two definitions the same name.
	ErrDuplicateName = errors.New("duplicate definition name")
)
