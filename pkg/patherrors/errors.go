package patherrors

import (
	"errors"
)

var (
	// ErrReservedCharacter indicates a component contains a character the
	// dialect reserves for other purposes.
	ErrReservedCharacter = errors.New("reserved character")

	// ErrRelativeComponent indicates a component is "." or "..", which are
	// directory references rather than real names.
	ErrRelativeComponent = errors.New("relative component")

	// ErrEmptyComponent indicates a component is the empty string.
	ErrEmptyComponent = errors.New("empty component")

	// ErrNonTextComponent indicates a component carries escaped raw bytes
	// that have no textual representation.
	ErrNonTextComponent = errors.New("non-text component")
)
