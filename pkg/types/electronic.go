package types

import "fmt"

// ElectronicItem is a warehouse item with a brand and a warranty period.
type ElectronicItem struct {
	ID             int    `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Quantity       int    `json:"quantity" yaml:"quantity"`
	Brand          string `json:"brand" yaml:"brand"`
	WarrantyMonths int    `json:"warranty_months" yaml:"warranty_months"`
}

func (e ElectronicItem) GetID() int { return e.ID }

func (e ElectronicItem) GetQuantity() int { return e.Quantity }

// WithQuantity returns a copy of e holding quantity.
func (e ElectronicItem) WithQuantity(quantity int) ElectronicItem {
	e.Quantity = quantity
	return e
}

func (e ElectronicItem) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Brand: %s, Quantity: %d, Warranty: %d months",
		e.ID, e.Name, e.Brand, e.Quantity, e.WarrantyMonths)
}
