// Package catalog provides the read-only category to word-list table
// supplied to the game engine at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog maps a category name to its accepted words.
type Catalog map[string][]string

// Names returns the category names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Words returns the word list for a category, nil if unknown.
func (c Catalog) Words(category string) []string {
	return c[category]
}

// Validate rejects empty catalogs and categories without words.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	for name, words := range c {
		if len(words) == 0 {
			return fmt.Errorf("category %q has no words", name)
		}
	}
	return nil
}

// LoadFile reads a catalog from a JSON file shaped as
// {"category": ["word", ...], ...}.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
