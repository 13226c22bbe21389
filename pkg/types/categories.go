package types

import (
	"errors"
	"strings"
)

// Category names one repository of entities. Each category has its own
// snapshot and its own entity type.
type Category string

// Standard categories.
const (
	CategoryElectronics Category = "electronics"
	CategoryGroceries   Category = "groceries"
	CategoryItems       Category = "items"
)

// StandardCategories lists all categories for enumeration.
var StandardCategories = []Category{
	CategoryElectronics,
	CategoryGroceries,
	CategoryItems,
}

// ErrCategoryUnknown is returned by ParseCategory for unrecognized names.
var ErrCategoryUnknown = errors.New("unknown category")

// ParseCategory returns the category named s (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StandardCategories {
		if c == known {
			return c, nil
		}
	}
	return "", ErrCategoryUnknown
}

// CategoryNames returns the standard category names joined for messages.
func CategoryNames() string {
	names := make([]string, len(StandardCategories))
	for i, c := range StandardCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
