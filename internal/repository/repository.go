// Package repository implements the in-memory keyed entity collections.
// Repository enforces key uniqueness; Inventory adds the non-negative
// quantity invariant for stock-carrying entities.
package repository

import (
	"sync"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Repository holds entities keyed by ID in insertion order.
// All methods are safe for concurrent use.
type Repository[T types.Identifiable] struct {
	mu sync.RWMutex

	// items holds members in insertion order; index maps ID to position.
	items []T
	index map[int]int
}

// New creates an empty Repository.
func New[T types.Identifiable]() *Repository[T] {
	return &Repository[T]{index: make(map[int]int)}
}

// Add inserts e. Returns a DuplicateKey error if e's ID is already present,
// in which case the repository is unchanged.
func (r *Repository[T]) Add(e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(e)
}

func (r *Repository[T]) addLocked(e T) error {
	id := e.GetID()
	if _, ok := r.index[id]; ok {
		return types.DuplicateKey(id)
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, e)
	return nil
}

// Get returns the entity with the given ID.
// Returns a NotFound error if no entity has that ID.
func (r *Repository[T]) Get(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		var zero T
		return zero, types.NotFound(id)
	}
	return r.items[pos], nil
}

// Contains reports whether an entity with the given ID is present.
func (r *Repository[T]) Contains(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok
}

// Remove deletes the entity with the given ID.
// Returns a NotFound error if no entity has that ID.
func (r *Repository[T]) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return types.NotFoundOnRemove(id)
	}
	r.removeAtLocked(pos)
	return nil
}

// removeAtLocked deletes the member at pos and reindexes the tail.
// The caller must hold r.mu for writing.
func (r *Repository[T]) removeAtLocked(pos int) {
	delete(r.index, r.items[pos].GetID())
	r.items = append(r.items[:pos], r.items[pos+1:]...)
	for i := pos; i < len(r.items); i++ {
		r.index[r.items[i].GetID()] = i
	}
}

// All returns a copy of every member in insertion order. The slice does not
// reflect later mutations of the repository.
func (r *Repository[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of members.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Find returns the first member, in All order, for which match returns true.
// The boolean is false when nothing matches.
func (r *Repository[T]) Find(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if match(e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// RemoveWhere deletes the first member, in All order, for which match
// returns true. Reports whether a member was removed.
func (r *Repository[T]) RemoveWhere(match func(T) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for pos, e := range r.items {
		if match(e) {
			r.removeAtLocked(pos)
			return true
		}
	}
	return false
}

// Replace swaps the entire membership for items, preserving their order.
// If items repeats an ID, Replace returns a DuplicateKey error and the
// repository keeps its previous membership.
func (r *Repository[T]) Replace(items []T) error {
	members, index, err := buildIndex(items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = members
	r.index = index
	return nil
}

// Clear removes every member.
func (r *Repository[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.index = make(map[int]int)
}

// buildIndex copies items and indexes them by ID, rejecting repeated keys.
func buildIndex[T types.Identifiable](items []T) ([]T, map[int]int, error) {
	out := make([]T, 0, len(items))
	index := make(map[int]int, len(items))
	for _, e := range items {
		id := e.GetID()
		if _, ok := index[id]; ok {
			return nil, nil, types.DuplicateKey(id)
		}
		index[id] = len(out)
		out = append(out, e)
	}
	return out, index, nil
}
