package types

import (
	"fmt"
	"time"
)

// GroceryItem is a perishable warehouse item.
type GroceryItem struct {
	ID         int       `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Quantity   int       `json:"quantity" yaml:"quantity"`
	ExpiryDate time.Time `json:"expiry_date" yaml:"expiry_date"`
}

func (g GroceryItem) GetID() int { return g.ID }

func (g GroceryItem) GetQuantity() int { return g.Quantity }

// WithQuantity returns a copy of g holding quantity.
func (g GroceryItem) WithQuantity(quantity int) GroceryItem {
	g.Quantity = quantity
	return g
}

// Expired reports whether the item is past its expiry date at now.
func (g GroceryItem) Expired(now time.Time) bool {
	return now.After(g.ExpiryDate)
}

func (g GroceryItem) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Quantity: %d, Expires: %s",
		g.ID, g.Name, g.Quantity, g.ExpiryDate.Format(time.DateOnly))
}
