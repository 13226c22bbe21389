package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/stockroom/internal/repository"
	"github.com/mesh-intelligence/stockroom/internal/snapshot"
	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// shelf is one category's inventory bound to its snapshot store. The
// commands work through this interface so they need not know the entity
// type of the category they were given.
type shelf interface {
	load() error
	save() error
	add(payload []byte) (any, error)
	get(id int) (any, error)
	list() []any
	remove(id int) error
	setQuantity(id, quantity int) (any, error)
	findByName(name string) (any, bool)
	generations() ([]sqlite.Generation, error)
}

type categoryShelf[T types.Stockable[T]] struct {
	category types.Category
	inv      *repository.Inventory[T]
	store    snapshot.Store[T]
	nameOf   func(T) string
	logger   *slog.Logger
}

// openShelf builds the shelf for the named category and loads its snapshot.
func openShelf(s *session, name string) (shelf, error) {
	category, err := types.ParseCategory(name)
	if err != nil {
		return nil, types.InvalidValue(fmt.Sprintf("Unknown category %q (valid: %s).", name, types.CategoryNames()))
	}

	var sh shelf
	switch category {
	case types.CategoryElectronics:
		sh, err = newShelf(s, category, func(e types.ElectronicItem) string { return e.Name })
	case types.CategoryGroceries:
		sh, err = newShelf(s, category, func(g types.GroceryItem) string { return g.Name })
	default:
		sh, err = newShelf(s, category, func(i types.InventoryItem) string { return i.Name })
	}
	if err != nil {
		return nil, err
	}
	if err := sh.load(); err != nil {
		return nil, err
	}
	return sh, nil
}

func newShelf[T types.Stockable[T]](s *session, category types.Category, nameOf func(T) string) (*categoryShelf[T], error) {
	store, err := openStore[T](s.cfg, category, s.logger)
	if err != nil {
		return nil, err
	}
	return &categoryShelf[T]{
		category: category,
		inv:      repository.NewInventory[T](),
		store:    store,
		nameOf:   nameOf,
		logger:   s.logger.With("category", string(category)),
	}, nil
}

func (c *categoryShelf[T]) load() error {
	n, err := snapshot.LoadInto[T](c.store, c.inv)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.category, err)
	}
	c.logger.Debug("snapshot loaded", "count", n)
	return nil
}

func (c *categoryShelf[T]) save() error {
	if err := snapshot.SaveRepository[T](c.store, c.inv); err != nil {
		return fmt.Errorf("save %s: %w", c.category, err)
	}
	return nil
}

func (c *categoryShelf[T]) add(payload []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	var e *T
	if err := dec.Decode(&e); err != nil {
		return nil, types.InvalidValue(fmt.Sprintf("Cannot parse %s entity: %s.", c.category, err))
	}
	if e == nil {
		return nil, types.InvalidValue(fmt.Sprintf("Cannot parse %s entity: payload is null.", c.category))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, types.InvalidValue(fmt.Sprintf("Cannot parse %s entity: unexpected content after the object.", c.category))
	}
	if err := c.inv.Add(*e); err != nil {
		return nil, err
	}
	return *e, c.save()
}

func (c *categoryShelf[T]) get(id int) (any, error) {
	return c.inv.Get(id)
}

func (c *categoryShelf[T]) list() []any {
	all := c.inv.All()
	out := make([]any, len(all))
	for i, e := range all {
		out[i] = e
	}
	return out
}

func (c *categoryShelf[T]) remove(id int) error {
	if err := c.inv.Remove(id); err != nil {
		return err
	}
	return c.save()
}

func (c *categoryShelf[T]) setQuantity(id, quantity int) (any, error) {
	if err := c.inv.UpdateQuantity(id, quantity); err != nil {
		return nil, err
	}
	if err := c.save(); err != nil {
		return nil, err
	}
	return c.inv.Get(id)
}

func (c *categoryShelf[T]) findByName(name string) (any, bool) {
	return c.inv.Find(func(e T) bool {
		return strings.EqualFold(c.nameOf(e), name)
	})
}

func (c *categoryShelf[T]) generations() ([]sqlite.Generation, error) {
	store, ok := c.store.(*sqlite.Store[T])
	if !ok {
		return nil, types.InvalidValue("History requires the sqlite format.")
	}
	return store.Generations()
}
