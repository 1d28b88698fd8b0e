package models

import (
	"fmt"
	"math"
)

// ResourceType represents the different resource types in the game
type ResourceType string

const (
	Minerals ResourceType = "minerals"
	Gas      ResourceType = "gas"
	Energy   ResourceType = "energy"
)

// AllResourceTypes returns all resource types in deterministic order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Minerals, Gas, Energy}
}

// Resources is a three-axis quantity of minerals, gas and energy.
// All arithmetic saturates: values never go below zero and never overflow.
type Resources struct {
	Minerals int `yaml:"minerals"`
	Gas      int `yaml:"gas"`
	Energy   int `yaml:"energy"`
}

// NewResources creates a Resources value
func NewResources(minerals, gas, energy int) Resources {
	return Resources{Minerals: minerals, Gas: gas, Energy: energy}
}

// Get returns the amount for a specific resource type
func (r Resources) Get(rt ResourceType) int {
	switch rt {
	case Minerals:
		return r.Minerals
	case Gas:
		return r.Gas
	case Energy:
		return r.Energy
	}
	return 0
}

// HasEnough reports whether every axis covers the given cost
func (r Resources) HasEnough(cost Resources) bool {
	return r.Minerals >= cost.Minerals && r.Gas >= cost.Gas && r.Energy >= cost.Energy
}

// Add returns r plus other, saturating at the integer maximum
func (r Resources) Add(other Resources) Resources {
	return Resources{
		Minerals: satAdd(r.Minerals, other.Minerals),
		Gas:      satAdd(r.Gas, other.Gas),
		Energy:   satAdd(r.Energy, other.Energy),
	}
}

// Subtract returns r minus other, clamping each axis at zero
func (r Resources) Subtract(other Resources) Resources {
	return Resources{
		Minerals: satSub(r.Minerals, other.Minerals),
		Gas:      satSub(r.Gas, other.Gas),
		Energy:   satSub(r.Energy, other.Energy),
	}
}

// CappedAt returns r with each axis clamped to the given capacity
func (r Resources) CappedAt(capacity Resources) Resources {
	return Resources{
		Minerals: min(r.Minerals, capacity.Minerals),
		Gas:      min(r.Gas, capacity.Gas),
		Energy:   min(r.Energy, capacity.Energy),
	}
}

// Missing returns the per-axis shortfall of r against the given cost
func (r Resources) Missing(cost Resources) Resources {
	return cost.Subtract(r)
}

// IsZero reports whether every axis is zero
func (r Resources) IsZero() bool {
	return r.Minerals == 0 && r.Gas == 0 && r.Energy == 0
}

// String renders the quantity for status lines and error messages
func (r Resources) String() string {
	return fmt.Sprintf("minerals: %d, gas: %d, energy: %d", r.Minerals, r.Gas, r.Energy)
}

func satAdd(a, b int) int {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt
	}
	return s
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
