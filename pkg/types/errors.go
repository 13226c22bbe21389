package types

import (
	"errors"
	"fmt"
)

// Repository invariant errors. Callers branch on these with errors.Is.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("entity not found")
	ErrInvalidValue = errors.New("invalid value")
)

// Persistence errors. These never wrap an invariant kind directly so that
// callers can tell storage failures apart from rejected mutations.
var (
	ErrIO              = errors.New("snapshot i/o failure")
	ErrDeserialization = errors.New("snapshot content is invalid")
)

// Error is a failure of a specific kind with the message shown to users.
// Kind is one of the sentinel errors above; errors.Is matches against it.
type Error struct {
	Kind error
	ID   int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// DuplicateKey reports an insertion whose key is already present.
func DuplicateKey(id int) error {
	return &Error{
		Kind: ErrDuplicateKey,
		ID:   id,
		Msg:  fmt.Sprintf("Error: Item with ID %d already exists.", id),
	}
}

// NotFound reports a lookup or update of an absent key.
func NotFound(id int) error {
	return &Error{
		Kind: ErrNotFound,
		ID:   id,
		Msg:  fmt.Sprintf("Error: Item with ID %d not found.", id),
	}
}

// NotFoundOnRemove reports a removal of an absent key.
func NotFoundOnRemove(id int) error {
	return &Error{
		Kind: ErrNotFound,
		ID:   id,
		Msg:  fmt.Sprintf("Error: Could not remove. Item with ID %d not found.", id),
	}
}

// InvalidValue reports a proposed value that violates a field invariant.
func InvalidValue(reason string) error {
	return &Error{
		Kind: ErrInvalidValue,
		Msg:  "Error: " + reason,
	}
}

// Kind names used by KindOf.
const (
	KindDuplicateKey    = "duplicate_key"
	KindNotFound        = "not_found"
	KindInvalidValue    = "invalid_value"
	KindIO              = "io"
	KindDeserialization = "deserialization"
	KindUnknown         = "unknown"
)

// KindOf returns the short name of the error kind carried by err.
// Persistence kinds take precedence: a deserialization failure caused by a
// duplicate key in a snapshot reports "deserialization".
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDeserialization):
		return KindDeserialization
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrDuplicateKey):
		return KindDuplicateKey
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidValue):
		return KindInvalidValue
	default:
		return KindUnknown
	}
}
