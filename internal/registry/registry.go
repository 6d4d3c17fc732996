// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI to
// discover them without hardcoded lists. A variant is a named rule set
// applied on top of the loaded configuration; its ID also keys the score log.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Variant describes one registered rule set.
type Variant struct {
	ID          string // unique identifier, e.g. "snake"
	Title       string // display name
	Description string
	// Configure adjusts the loaded configuration. May be nil.
	Configure func(cfg *config.SnakeConfig)
}

// Apply returns a copy of cfg with the variant rules applied.
func (v Variant) Apply(cfg config.SnakeConfig) config.SnakeConfig {
	if v.Configure != nil {
		v.Configure(&cfg)
	}
	return cfg
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
