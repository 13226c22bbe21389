package demo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/internal/snapshot"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func jsonStore(t *testing.T) *snapshot.FileStore[types.InventoryItem] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	return snapshot.NewFileStore[types.InventoryItem](path, snapshot.JSONCodec[types.InventoryItem]{}, nil)
}

func TestRunSessionsRestoresSeededItems(t *testing.T) {
	var out bytes.Buffer
	got, err := RunSessions(jsonStore(t), &out, fixedClock, nil)
	require.NoError(t, err)

	require.Len(t, got, 4)
	names := make([]string, len(got))
	for i, item := range got {
		names[i] = item.Name
		assert.Equal(t, fixedClock(), item.DateAdded)
	}
	assert.Equal(t, []string{"Laptop", "Mouse", "Keyboard", "Monitor"}, names)

	text := out.String()
	assert.Contains(t, text, "No items in inventory.")
	assert.Contains(t, text, "Data successfully saved.")
	assert.Contains(t, text, "Data successfully loaded (4 items).")
}

func TestInventoryLogClearMemoryKeepsSnapshot(t *testing.T) {
	store := jsonStore(t)
	l := NewInventoryLog(store, &bytes.Buffer{}, fixedClock, nil)
	require.NoError(t, l.Seed())
	require.NoError(t, l.Save())

	l.ClearMemory()
	assert.Empty(t, l.Items())

	require.NoError(t, l.Load())
	assert.Len(t, l.Items(), 4)
}

func TestInventoryLogLoadFailureKeepsMemory(t *testing.T) {
	store := jsonStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	var out bytes.Buffer
	l := NewInventoryLog(store, &out, fixedClock, nil)
	require.NoError(t, l.Seed())

	err := l.Load()
	assert.ErrorIs(t, err, types.ErrDeserialization)
	assert.Len(t, l.Items(), 4)
	assert.Contains(t, out.String(), "Error loading data: deserialization:")
}

func TestInventoryLogSaveFailureIsIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "items.json")
	store := snapshot.NewFileStore[types.InventoryItem](path, snapshot.JSONCodec[types.InventoryItem]{}, nil)

	var out bytes.Buffer
	l := NewInventoryLog(store, &out, fixedClock, nil)
	require.NoError(t, l.Seed())

	assert.ErrorIs(t, l.Save(), types.ErrIO)
	assert.Contains(t, out.String(), "Error saving data:")
}
