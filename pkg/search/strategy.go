package search

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

// Strategy is one way of spending an attempt budget looking for a
// solution. Both strategies share the generator's acceptance test,
// tried-string set and operator weights.
type Strategy interface {
	Name() string
	Search(g *Generator, maxAttempts int) *puzzle.Solution
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("search: unknown strategy %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
