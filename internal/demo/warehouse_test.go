package demo

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
}

func TestWarehouseRunReportsEachFailureAndContinues(t *testing.T) {
	var out bytes.Buffer
	w := NewWarehouse(&out, fixedClock)

	failures, err := w.Run()
	require.NoError(t, err)
	require.Len(t, failures, 3)

	assert.ErrorIs(t, failures[0], types.ErrDuplicateKey)
	assert.ErrorIs(t, failures[1], types.ErrNotFound)
	assert.ErrorIs(t, failures[2], types.ErrInvalidValue)

	text := out.String()
	assert.Contains(t, text, "duplicate_key: Error: Item with ID 101 already exists.")
	assert.Contains(t, text, "not_found: Error: Could not remove. Item with ID 999 not found.")
	assert.Contains(t, text, "invalid_value: Error: Quantity cannot be negative.")
	assert.Contains(t, text, "--- Listing All ElectronicItems ---")
	assert.Contains(t, text, "--- Listing All GroceryItems ---")
}

func TestWarehouseRunLeavesStateUntouchedByFailures(t *testing.T) {
	w := NewWarehouse(&bytes.Buffer{}, fixedClock)
	_, err := w.Run()
	require.NoError(t, err)

	laptop, err := w.Electronics.Get(101)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", laptop.Name)
	assert.Equal(t, 15, laptop.Quantity)
	assert.Equal(t, 2, w.Electronics.Len())

	milk, err := w.Groceries.Get(201)
	require.NoError(t, err)
	assert.Equal(t, 100, milk.Quantity)
}

func TestWarehouseSeedStampsExpiryFromClock(t *testing.T) {
	w := NewWarehouse(&bytes.Buffer{}, fixedClock)
	require.NoError(t, w.Seed())

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	milk, err := w.Groceries.Get(201)
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 7), milk.ExpiryDate)

	bread, err := w.Groceries.Get(202)
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 3), bread.ExpiryDate)
}

func TestWarehouseSeedTwiceFailsOnDuplicate(t *testing.T) {
	w := NewWarehouse(&bytes.Buffer{}, fixedClock)
	require.NoError(t, w.Seed())
	assert.ErrorIs(t, w.Seed(), types.ErrDuplicateKey)
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	Report(&out, nil)
	Report(&out, types.NotFound(7))
	assert.Equal(t, "OK\nnot_found: Error: Item with ID 7 not found.\n", out.String())
}

func TestPrintAllEmpty(t *testing.T) {
	var out bytes.Buffer
	PrintAll[types.ElectronicItem](&out, "Listing All ElectronicItems", "No items in this category.", nil)
	assert.Equal(t, "--- Listing All ElectronicItems ---\nNo items in this category.\n\n", out.String())
}
