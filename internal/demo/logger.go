package demo

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/repository"
	"github.com/mesh-intelligence/stockroom/internal/snapshot"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// InventoryLog keeps logged inventory records in memory and persists them
// through a snapshot store.
type InventoryLog struct {
	items  *repository.Inventory[types.InventoryItem]
	store  snapshot.Store[types.InventoryItem]
	out    io.Writer
	now    func() time.Time
	logger *slog.Logger
}

// NewInventoryLog creates an empty log backed by store. A nil now uses
// time.Now; a nil logger uses slog.Default.
func NewInventoryLog(store snapshot.Store[types.InventoryItem], out io.Writer, now func() time.Time, logger *slog.Logger) *InventoryLog {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryLog{
		items:  repository.NewInventory[types.InventoryItem](),
		store:  store,
		out:    out,
		now:    now,
		logger: logger,
	}
}

// Items returns the records currently in memory.
func (l *InventoryLog) Items() []types.InventoryItem {
	return l.items.All()
}

// Seed adds the sample records, stamped with the current time.
func (l *InventoryLog) Seed() error {
	fmt.Fprintln(l.out, "Seeding sample data...")
	added := l.now().UTC().Truncate(time.Second)
	samples := []types.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 10, DateAdded: added},
		{ID: 2, Name: "Mouse", Quantity: 50, DateAdded: added},
		{ID: 3, Name: "Keyboard", Quantity: 30, DateAdded: added},
		{ID: 4, Name: "Monitor", Quantity: 25, DateAdded: added},
	}
	for _, item := range samples {
		if err := l.items.Add(item); err != nil {
			return fmt.Errorf("seeding inventory log: %w", err)
		}
	}
	return nil
}

// Save writes the in-memory records to the store and reports the outcome.
func (l *InventoryLog) Save() error {
	fmt.Fprintln(l.out, "Saving data to disk...")
	if err := snapshot.SaveRepository[types.InventoryItem](l.store, l.items); err != nil {
		fmt.Fprintf(l.out, "Error saving data: %s\n", err)
		l.logger.Error("save inventory log", "error", err)
		return err
	}
	fmt.Fprintln(l.out, "Data successfully saved.")
	return nil
}

// Load replaces the in-memory records with the stored snapshot and reports
// the outcome. On failure the in-memory records are unchanged.
func (l *InventoryLog) Load() error {
	fmt.Fprintln(l.out, "Loading data from disk...")
	n, err := snapshot.LoadInto[types.InventoryItem](l.store, l.items)
	if err != nil {
		fmt.Fprintf(l.out, "Error loading data: %s: %s\n", types.KindOf(err), err)
		l.logger.Error("load inventory log", "error", err)
		return err
	}
	fmt.Fprintf(l.out, "Data successfully loaded (%d items).\n", n)
	return nil
}

// ClearMemory drops every in-memory record. The stored snapshot is kept.
func (l *InventoryLog) ClearMemory() {
	fmt.Fprintln(l.out, "Clearing data from application memory...")
	l.items.Clear()
}

// PrintAll lists the in-memory records.
func (l *InventoryLog) PrintAll() {
	PrintAll(l.out, "Current Inventory Items", "No items in inventory.", l.items.All())
}

// RunSessions simulates two program runs sharing one store: the first
// seeds and saves, the second starts empty and reloads. Returns the records
// the second session ended up with.
func RunSessions(store snapshot.Store[types.InventoryItem], out io.Writer, now func() time.Time, logger *slog.Logger) ([]types.InventoryItem, error) {
	fmt.Fprintln(out, "--- Session 1: Seeding and Saving ---")
	first := NewInventoryLog(store, out, now, logger)
	if err := first.Seed(); err != nil {
		return nil, err
	}
	first.PrintAll()
	if err := first.Save(); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "\n--- Session 2: Simulating App Restart and Loading ---")
	second := NewInventoryLog(store, out, now, logger)
	fmt.Fprintln(out, "New app instance created. Current state:")
	second.PrintAll()
	if err := second.Load(); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Data reloaded. Current state:")
	second.PrintAll()
	return second.Items(), nil
}
