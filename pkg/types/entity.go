package types

import (
	"strconv"
	"strings"
)

// Identifiable is implemented by every entity a Repository can hold.
// GetID returns the entity's key, which must never change.
type Identifiable interface {
	GetID() int
}

// Stockable is an Identifiable entity with a non-negative quantity.
// WithQuantity returns a copy of the entity with the quantity replaced; it
// never mutates the receiver. Entities are stored by value, so the
// repository is the only place a stored quantity can change.
type Stockable[T any] interface {
	Identifiable
	GetQuantity() int
	WithQuantity(quantity int) T
}

// ParseID converts a textual key into an entity ID.
// Returns an InvalidValue error when s is not a base-10 integer.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, InvalidValue("ID " + strconv.Quote(s) + " is not a valid integer.")
	}
	return id, nil
}

// ParseQuantity converts a textual quantity. Negative values parse
// successfully; rejecting them is the repository's job.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, InvalidValue("Quantity " + strconv.Quote(s) + " is not a valid integer.")
	}
	return n, nil
}
