// Package starmap generates the planet connectivity graph, unique planet
// names, and the ASCII rendering of the galaxy.
package starmap

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Cemonix/ColonyProtocol/internal/config"
)

// ErrNamesExhausted is returned when every numeral variant of a base name is taken
var ErrNamesExhausted = errors.New("all name variants exhausted")

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// NameGenerator produces unique planet names from prefix/suffix fragments,
// resolving collisions with Roman numeral suffixes I through X.
type NameGenerator struct {
	parts config.NameParts
	used  map[string]bool
	rng   *rand.Rand
}

// NewNameGenerator creates a generator over the given fragments
func NewNameGenerator(parts config.NameParts, rng *rand.Rand) *NameGenerator {
	return &NameGenerator{parts: parts, used: make(map[string]bool), rng: rng}
}

// Generate returns a fresh name like "Crimson Theta" or "Void Kepler II"
func (g *NameGenerator) Generate() (string, error) {
	prefix := g.parts.Prefixes[g.rng.Intn(len(g.parts.Prefixes))]
	suffix := g.parts.Suffixes[g.rng.Intn(len(g.parts.Suffixes))]
	base := prefix + " " + suffix

	if !g.used[base] {
		g.used[base] = true
		return base, nil
	}
	for _, numeral := range romanNumerals {
		candidate := fmt.Sprintf("%s %s", base, numeral)
		if !g.used[candidate] {
			g.used[candidate] = true
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for base name %q", ErrNamesExhausted, base)
}
