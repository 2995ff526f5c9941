package evo

import (
	"fmt"
	"math/rand"

	"gaci/internal/model"
	"gaci/internal/scramble"
)

// MassSwap exchanges up to len(ind)-1 random pairs of positions in a copy of
// ind. The swap count is Scramble(seed) mod len(ind).
func MassSwap(rng *rand.Rand, ind model.Individual, seed int32) (model.Individual, error) {
	return swapMutate(rng, ind, seed, len(ind))
}

// SmartSwap is MassSwap with the swap count capped below maxSwap. maxSwap
// larger than the individual is clamped to its size.
func SmartSwap(rng *rand.Rand, ind model.Individual, seed int32, maxSwap int) (model.Individual, error) {
	if len(ind) == 0 {
		return nil, ErrEmptyCollection
	}
	if maxSwap <= 0 {
		return nil, fmt.Errorf("%w: max swap must be > 0 (got %d)", ErrUnsatisfiableBound, maxSwap)
	}
	return swapMutate(rng, ind, seed, min(maxSwap, len(ind)))
}

func swapMutate(rng *rand.Rand, ind model.Individual, seed int32, maxSwap int) (model.Individual, error) {
	if rng == nil {
		return nil, errNoRandom
	}
	size := len(ind)
	if size == 0 {
		return nil, ErrEmptyCollection
	}

	mutated := ind.Clone()
	swaps := scramble.Index(scramble.Scramble(seed), maxSwap)
	stream := scramble.NewStream(int32(swaps), size, rng)
	for i := 0; i < swaps; i++ {
		pos1 := stream.Next(size)
		pos2 := stream.Next(size)
		mutated[pos1], mutated[pos2] = mutated[pos2], mutated[pos1]
	}
	return mutated, nil
}

type MassSwapMutator struct{}

func (MassSwapMutator) Name() string {
	return "mass_swap"
}

func (MassSwapMutator) Mutate(rng *rand.Rand, ind model.Individual, seed int32) (model.Individual, error) {
	return MassSwap(rng, ind, seed)
}

// SmartSwapMutator caps the swap count at MaxSwap. A zero MaxSwap falls back
// to SmartSwapBound for a perfect individual.
type SmartSwapMutator struct {
	MaxSwap int
}

func (SmartSwapMutator) Name() string {
	return "smart_swap"
}

func (m SmartSwapMutator) Mutate(rng *rand.Rand, ind model.Individual, seed int32) (model.Individual, error) {
	maxSwap := m.MaxSwap
	if maxSwap == 0 {
		maxSwap = SmartSwapBound(len(ind), 0)
	}
	return SmartSwap(rng, ind, seed, maxSwap)
}
