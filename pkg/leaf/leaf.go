// Package leaf enumerates the digit-literal multisets available to the
// search engine: every combination spends the seed digit exactly four
// times across plain, concatenated and decimal-point literal forms.
package leaf

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DigitBudget is the number of seed-digit instances every combination
// must use. The puzzle fixes it at four.
const DigitBudget = 4

// Combination is an ordered sequence of decimal literals whose combined
// seed-digit count is exactly DigitBudget. Immutable once generated.
type Combination []decimal.Decimal

// Strings returns the canonical literal forms of the combination.
func (c Combination) Strings() []string {
	out := make([]string, len(c))
	for i, d := range c {
		out[i] = d.String()
	}
	return out
}

func (c Combination) key() string {
	return strings.Join(c.Strings(), ",")
}

// Generator holds the deduplicated combination set for one seed digit.
type Generator struct {
	seed   int
	combos []Combination
}

// NewGenerator enumerates all combinations for the seed digit.
// Seeds outside 1-9 are a configuration error.
func NewGenerator(seed int) (*Generator, error) {
	if seed < 1 || seed > 9 {
		return nil, errors.Errorf("leaf: seed must be 1-9, got %d", seed)
	}
	g := &Generator{seed: seed}
	g.generate()
	return g, nil
}

// Seed returns the generator's seed digit.
func (g *Generator) Seed() int { return g.seed }

// Count returns the number of distinct combinations.
func (g *Generator) Count() int { return len(g.combos) }

// All returns every combination, ordered by length then lexically.
func (g *Generator) All() []Combination {
	out := make([]Combination, len(g.combos))
	copy(out, g.combos)
	return out
}

// Random returns a uniformly chosen combination.
func (g *Generator) Random(rng *rand.Rand) Combination {
	return g.combos[rng.Intn(len(g.combos))]
}

func (g *Generator) generate() {
	seen := map[string]Combination{}
	add := func(c Combination) {
		seen[c.key()] = c
	}

	s := strconv.Itoa(g.seed)
	single := decimal.RequireFromString(s)

	// Four plain digits.
	add(Combination{single, single, single, single})

	// Concatenated repdigits: [11,1,1] and [111,1].
	two := decimal.RequireFromString(strings.Repeat(s, 2))
	three := decimal.RequireFromString(strings.Repeat(s, 3))
	add(Combination{two, single, single})
	add(Combination{three, single})

	// Decimal-point forms, each spending 1-4 digits of the budget.
	var forms []decimal.Decimal
	for i := 1; i <= 3; i++ {
		forms = append(forms, decimal.RequireFromString("."+strings.Repeat(s, i)))
	}
	forms = append(forms,
		decimal.RequireFromString(s+"."+s),
		decimal.RequireFromString(strings.Repeat(s, 2)+"."+s),
		decimal.RequireFromString(s+"."+strings.Repeat(s, 2)),
		decimal.RequireFromString(strings.Repeat(s, 3)+"."+s),
		decimal.RequireFromString(strings.Repeat(s, 2)+"."+strings.Repeat(s, 2)),
		decimal.RequireFromString(s+"."+strings.Repeat(s, 3)),
	)

	dotSingle := decimal.RequireFromString("." + s)
	for _, form := range forms {
		used := strings.Count(form.String(), s)
		remaining := DigitBudget - used
		switch {
		case remaining > 0:
			c := Combination{form}
			for i := 0; i < remaining; i++ {
				c = append(c, single)
			}
			add(c)
			if remaining == 1 {
				add(Combination{form, dotSingle})
			}
		case remaining == 0:
			add(Combination{form})
		}
	}

	g.combos = make([]Combination, 0, len(seen))
	for _, c := range seen {
		g.combos = append(g.combos, c)
	}
	sort.Slice(g.combos, func(i, j int) bool {
		if len(g.combos[i]) != len(g.combos[j]) {
			return len(g.combos[i]) < len(g.combos[j])
		}
		return g.combos[i].key() < g.combos[j].key()
	})
}
