package config

import (
	"fmt"
	"math/rand"
)

// NameParts holds the fragments planet names are assembled from
type NameParts struct {
	Prefixes []string
	Suffixes []string
}

// NotEnoughNamesError reports a commander pool too small for the player count
type NotEnoughNamesError struct {
	Needed    int
	Available int
}

func (e *NotEnoughNamesError) Error() string {
	return fmt.Sprintf("not enough commander names: need %d, have %d", e.Needed, e.Available)
}

// RandomCommanderNames picks n distinct names from the pool
func RandomCommanderNames(pool []string, n int, rng *rand.Rand) ([]string, error) {
	if n > len(pool) {
		return nil, &NotEnoughNamesError{Needed: n, Available: len(pool)}
	}
	perm := rng.Perm(len(pool))
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = pool[perm[i]]
	}
	return names, nil
}
