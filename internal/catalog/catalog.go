package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySymbol is returned when an entry has no symbol
	ErrEmptySymbol = errors.New("empty symbol")
	// ErrDuplicateSymbol is returned when two entries share a symbol
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)

// Entry represents display metadata of a supported cryptocurrency
type Entry struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Icon      string `json:"icon"`
	IconColor string `json:"iconColor"`
	LogoURL   string `json:"logoUrl"`
}

// Catalog is an immutable, ordered set of entries keyed by symbol
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New creates a catalog from entries, preserving their order
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if e.Symbol == "" {
			return nil, fmt.Errorf("entry %q: %w", e.Name, ErrEmptySymbol)
		}
		if _, ok := c.index[e.Symbol]; ok {
			return nil, fmt.Errorf("%s: %w", e.Symbol, ErrDuplicateSymbol)
		}
		c.index[e.Symbol] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// All returns a copy of all entries in definition order
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for symbol
func (c *Catalog) Lookup(symbol string) (Entry, bool) {
	i, ok := c.index[symbol]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether symbol is in the catalog
func (c *Catalog) Contains(symbol string) bool {
	_, ok := c.index[symbol]
	return ok
}

// Symbols returns all symbols in definition order
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Symbol
	}
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
