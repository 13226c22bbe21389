package repository

import (
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// errNegativeQuantity is the message for every rejected negative quantity.
const errNegativeQuantity = "Quantity cannot be negative."

// Inventory is a Repository of stock-carrying entities. It is the only
// writer of a stored entity's quantity.
type Inventory[T types.Stockable[T]] struct {
	*Repository[T]
}

// NewInventory creates an empty Inventory.
func NewInventory[T types.Stockable[T]]() *Inventory[T] {
	return &Inventory[T]{Repository: New[T]()}
}

// Add inserts e. Returns an InvalidValue error if e's quantity is negative
// and a DuplicateKey error if its ID is already present.
func (inv *Inventory[T]) Add(e T) error {
	if e.GetQuantity() < 0 {
		return types.InvalidValue(errNegativeQuantity)
	}
	return inv.Repository.Add(e)
}

// UpdateQuantity sets the quantity of the entity with the given ID.
// A negative quantity is rejected with InvalidValue before the ID is looked
// up; an absent ID yields NotFound. The entity keeps its position.
func (inv *Inventory[T]) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return types.InvalidValue(errNegativeQuantity)
	}

	r := inv.Repository
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return types.NotFound(id)
	}
	r.items[pos] = r.items[pos].WithQuantity(quantity)
	return nil
}

// Replace swaps the entire membership for items. Any negative quantity or
// repeated ID rejects the whole batch and leaves the inventory unchanged.
func (inv *Inventory[T]) Replace(items []T) error {
	for _, e := range items {
		if e.GetQuantity() < 0 {
			return types.InvalidValue(errNegativeQuantity)
		}
	}
	return inv.Repository.Replace(items)
}
