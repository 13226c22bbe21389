package types

import (
	"fmt"
	"time"
)

// InventoryItem is a logged inventory record stamped with the time it was
// added.
type InventoryItem struct {
	ID        int       `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Quantity  int       `json:"quantity" yaml:"quantity"`
	DateAdded time.Time `json:"date_added" yaml:"date_added"`
}

func (i InventoryItem) GetID() int { return i.ID }

func (i InventoryItem) GetQuantity() int { return i.Quantity }

// WithQuantity returns a copy of i holding quantity.
func (i InventoryItem) WithQuantity(quantity int) InventoryItem {
	i.Quantity = quantity
	return i
}

func (i InventoryItem) String() string {
	return fmt.Sprintf("InventoryItem { Id = %d, Name = %s, Quantity = %d, DateAdded = %s }",
		i.ID, i.Name, i.Quantity, i.DateAdded.Format(time.DateTime))
}
