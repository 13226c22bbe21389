// Package snapshot persists the full membership of a repository and
// restores it. A snapshot is always written and read as a whole: Save
// replaces the previous snapshot, and LoadInto swaps the repository's
// membership in one step or not at all.
package snapshot

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Store saves and loads complete snapshots of entities of type T.
type Store[T any] interface {
	// Save replaces the stored snapshot with items, in order.
	// Storage failures wrap types.ErrIO.
	Save(items []T) error

	// Load returns the stored snapshot. A snapshot that was never saved
	// loads as an empty slice with a nil error. Content that cannot be
	// decoded wraps types.ErrDeserialization.
	Load() ([]T, error)
}

// Lister is the read side of a repository.
type Lister[T any] interface {
	All() []T
}

// Replacer is the write side of a repository used to rehydrate it.
type Replacer[T any] interface {
	Replace(items []T) error
}

// SaveRepository writes every member of src to store.
func SaveRepository[T any](store Store[T], src Lister[T]) error {
	return store.Save(src.All())
}

// LoadInto loads the snapshot from store and replaces dst's membership with
// it. If the snapshot violates a repository invariant (a repeated ID or a
// negative quantity) the error wraps both types.ErrDeserialization and the
// invariant kind, and dst is left unchanged. Returns the number of entities
// loaded.
func LoadInto[T any](store Store[T], dst Replacer[T]) (int, error) {
	items, err := store.Load()
	if err != nil {
		return 0, err
	}
	if err := dst.Replace(items); err != nil {
		return 0, fmt.Errorf("%w: %w", types.ErrDeserialization, err)
	}
	return len(items), nil
}
