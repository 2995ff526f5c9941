package evo

import (
	"math/rand"

	"gaci/internal/model"
)

// Mutator produces a new individual from one parent. The parent is never
// modified.
type Mutator interface {
	Name() string
	Mutate(rng *rand.Rand, ind model.Individual, seed int32) (model.Individual, error)
}

// Crossover combines two parents into one child. Parents are never modified.
type Crossover interface {
	Name() string
	Cross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error)
}
