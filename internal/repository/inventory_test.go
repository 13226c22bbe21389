package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func groceries(t *testing.T) *Inventory[types.GroceryItem] {
	t.Helper()
	inv := NewInventory[types.GroceryItem]()
	expiry := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, inv.Add(types.GroceryItem{ID: 201, Name: "Milk", Quantity: 100, ExpiryDate: expiry}))
	require.NoError(t, inv.Add(types.GroceryItem{ID: 202, Name: "Bread", Quantity: 150, ExpiryDate: expiry}))
	return inv
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		quantity int
		wantErr  error
		wantQty  int
	}{
		{name: "negative rejected", id: 201, quantity: -10, wantErr: types.ErrInvalidValue, wantQty: 100},
		{name: "negative checked before existence", id: 999, quantity: -1, wantErr: types.ErrInvalidValue},
		{name: "absent id", id: 999, quantity: 5, wantErr: types.ErrNotFound},
		{name: "zero allowed", id: 201, quantity: 0, wantQty: 0},
		{name: "positive stored", id: 201, quantity: 42, wantQty: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := groceries(t)

			err := inv.UpdateQuantity(tt.id, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if got, getErr := inv.Get(tt.id); getErr == nil {
				assert.Equal(t, tt.wantQty, got.Quantity)
			}
		})
	}
}

func TestUpdateQuantityNegativeMessage(t *testing.T) {
	inv := groceries(t)
	err := inv.UpdateQuantity(201, -10)
	require.Error(t, err)
	assert.Equal(t, "Error: Quantity cannot be negative.", err.Error())
}

func TestUpdateQuantityKeepsPositionAndFields(t *testing.T) {
	inv := groceries(t)
	before, err := inv.Get(202)
	require.NoError(t, err)

	require.NoError(t, inv.UpdateQuantity(202, 7))

	all := inv.All()
	require.Len(t, all, 2)
	assert.Equal(t, 202, all[1].ID)
	assert.Equal(t, before.WithQuantity(7), all[1])
}

func TestReturnedEntityIsACopy(t *testing.T) {
	inv := groceries(t)
	got, err := inv.Get(201)
	require.NoError(t, err)

	got.Quantity = -5

	again, err := inv.Get(201)
	require.NoError(t, err)
	assert.Equal(t, 100, again.Quantity, "only UpdateQuantity changes stored quantity")
}

func TestInventoryAddRejectsNegativeQuantity(t *testing.T) {
	inv := NewInventory[types.InventoryItem]()
	err := inv.Add(types.InventoryItem{ID: 1, Name: "Broken", Quantity: -1})
	assert.ErrorIs(t, err, types.ErrInvalidValue)
	assert.Equal(t, 0, inv.Len())
}

func TestInventoryReplaceRejectsNegativeQuantity(t *testing.T) {
	inv := groceries(t)
	before := inv.All()

	err := inv.Replace([]types.GroceryItem{{ID: 1, Quantity: 3}, {ID: 2, Quantity: -3}})

	assert.ErrorIs(t, err, types.ErrInvalidValue)
	assert.Equal(t, before, inv.All())
}

func TestInventoryPredicateAccess(t *testing.T) {
	inv := groceries(t)
	got, ok := inv.Find(func(g types.GroceryItem) bool { return g.Name == "Bread" })
	require.True(t, ok)
	assert.Equal(t, 202, got.ID)

	assert.True(t, inv.RemoveWhere(func(g types.GroceryItem) bool { return g.Quantity > 120 }))
	assert.False(t, inv.Contains(202))
}
