package signature

import "errors"

var (
	// ErrEmptyRegistry is returned when a registry is built with no signatures.
	ErrEmptyRegistry = errors.New("signature: registry has no signatures")

	// ErrDuplicateName is returned when two signatures share a name.
	ErrDuplicateName = errors.New("signature: duplicate signature name")
)
