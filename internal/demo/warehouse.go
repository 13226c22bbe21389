package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/repository"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Warehouse manages one inventory per warehouse category.
type Warehouse struct {
	Electronics *repository.Inventory[types.ElectronicItem]
	Groceries   *repository.Inventory[types.GroceryItem]

	out io.Writer
	now func() time.Time
}

// NewWarehouse creates a Warehouse with empty inventories. now stamps
// grocery expiry dates; nil uses time.Now.
func NewWarehouse(out io.Writer, now func() time.Time) *Warehouse {
	if now == nil {
		now = time.Now
	}
	return &Warehouse{
		Electronics: repository.NewInventory[types.ElectronicItem](),
		Groceries:   repository.NewInventory[types.GroceryItem](),
		out:         out,
		now:         now,
	}
}

// Seed adds the sample electronics and groceries.
func (w *Warehouse) Seed() error {
	today := w.now().UTC().Truncate(24 * time.Hour)
	electronics := []types.ElectronicItem{
		{ID: 101, Name: "Laptop", Quantity: 15, Brand: "TechBrand", WarrantyMonths: 24},
		{ID: 102, Name: "Smartphone", Quantity: 50, Brand: "MobileCorp", WarrantyMonths: 12},
	}
	groceries := []types.GroceryItem{
		{ID: 201, Name: "Milk", Quantity: 100, ExpiryDate: today.AddDate(0, 0, 7)},
		{ID: 202, Name: "Bread", Quantity: 150, ExpiryDate: today.AddDate(0, 0, 3)},
	}
	for _, e := range electronics {
		if err := w.Electronics.Add(e); err != nil {
			return fmt.Errorf("seeding electronics: %w", err)
		}
	}
	for _, g := range groceries {
		if err := w.Groceries.Add(g); err != nil {
			return fmt.Errorf("seeding groceries: %w", err)
		}
	}
	return nil
}

// PrintAll lists both inventories.
func (w *Warehouse) PrintAll() {
	PrintAll(w.out, "Listing All GroceryItems", "No items in this category.", w.Groceries.All())
	PrintAll(w.out, "Listing All ElectronicItems", "No items in this category.", w.Electronics.All())
}

// Run seeds the warehouse, lists it, then attempts the three rejected
// operations (duplicate insert, removal of an absent item, negative
// quantity) and reports each failure. The returned slice holds those
// failures in order.
func (w *Warehouse) Run() ([]error, error) {
	if err := w.Seed(); err != nil {
		return nil, err
	}
	w.PrintAll()

	fmt.Fprintln(w.out, "--- Testing Error Handling ---")

	var failures []error
	attempt := func(title string, op func() error) {
		fmt.Fprintf(w.out, "\n%s\n", title)
		err := op()
		Report(w.out, err)
		if err != nil {
			failures = append(failures, err)
		}
	}

	attempt("Attempting to add a duplicate item (ID 101)...", func() error {
		return w.Electronics.Add(types.ElectronicItem{
			ID: 101, Name: "Duplicate Laptop", Quantity: 5, Brand: "AnotherBrand", WarrantyMonths: 12,
		})
	})
	attempt("Attempting to remove a non-existent item (ID 999)...", func() error {
		return w.Electronics.Remove(999)
	})
	attempt("Attempting to update an item with a negative quantity...", func() error {
		return w.Groceries.UpdateQuantity(201, -10)
	})

	return failures, nil
}
