package starmap

import (
	"fmt"
	"math/rand"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

const (
	gridWidth   = 120
	gridHeight  = 40
	maxDistance = 5
)

// MapSize names the supported galaxy sizes
type MapSize string

const (
	SizeSmall  MapSize = "small"
	SizeMedium MapSize = "medium"
	SizeLarge  MapSize = "large"
)

// PlanetCount returns the number of planets for a map size
func (s MapSize) PlanetCount() (int, error) {
	switch s {
	case SizeSmall:
		return 10, nil
	case SizeMedium:
		return 20, nil
	case SizeLarge:
		return 30, nil
	}
	return 0, fmt.Errorf("unknown map size %q (want small, medium or large)", string(s))
}

// Position is a planet's cell on the render grid
type Position struct {
	X, Y int
}

// Map is the generated galaxy: the planet graph plus grid positions for rendering
type Map struct {
	Planets   map[models.PlanetID]*models.Planet
	Positions map[models.PlanetID]Position
}

// Generate builds a connected galaxy of numPlanets as a random tree: each new
// planet attaches to a random existing one with a bidirectional edge whose
// distance in turns is the grid distance scaled into 1..maxDistance.
func Generate(numPlanets int, names *NameGenerator, rng *rand.Rand) (*Map, error) {
	if numPlanets < 1 {
		return nil, fmt.Errorf("number of planets must be at least 1, got %d", numPlanets)
	}

	m := &Map{
		Planets:   make(map[models.PlanetID]*models.Planet, numPlanets),
		Positions: make(map[models.PlanetID]Position, numPlanets),
	}
	var order []models.PlanetID // insertion order, for deterministic parent picks
	taken := make(map[Position]bool)

	place := func() Position {
		for {
			pos := Position{X: 1 + rng.Intn(gridWidth-2), Y: 1 + rng.Intn(gridHeight-2)}
			if !taken[pos] {
				taken[pos] = true
				return pos
			}
		}
	}

	for i := 0; i < numPlanets; i++ {
		name, err := names.Generate()
		if err != nil {
			return nil, err
		}
		id := models.PlanetIDForName(name)
		planet := models.NewPlanet(id, name)
		pos := place()
		m.Planets[id] = planet
		m.Positions[id] = pos

		if i > 0 {
			parentID := order[rng.Intn(len(order))]
			parent := m.Planets[parentID]
			distance := scaleDistance(m.Positions[parentID], pos)
			planet.AddConnection(parentID, distance)
			parent.AddConnection(id, distance)
		}
		order = append(order, id)
	}
	return m, nil
}

// scaleDistance maps the Manhattan grid distance into 1..maxDistance turns
func scaleDistance(a, b Position) int {
	d := abs(a.X-b.X) + abs(a.Y-b.Y)
	norm := (gridWidth + gridHeight) / maxDistance
	scaled := (d + norm - 1) / norm
	if scaled < 1 {
		return 1
	}
	if scaled > maxDistance {
		return maxDistance
	}
	return scaled
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
