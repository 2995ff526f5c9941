package evo

import (
	"fmt"
	"math/rand"

	"gaci/internal/model"
	"gaci/internal/scramble"
)

// GreedyGenerate builds an individual whose share of pixels left in their
// original position approximates goal percent, without any search.
//
// Each position first draws a keep decision from 0-100 in position order
// (kept when the draw is <= goal). Kept indices leave the pool of unused
// pixels; every other position then takes a pixel drawn from that pool with
// scrambler-mixed randomness. Each pool entry is consumed exactly once, so
// the result is a permutation of original.
func GreedyGenerate(rng *rand.Rand, original model.Individual, goal float64, seed int32) (model.Individual, error) {
	if rng == nil {
		return nil, errNoRandom
	}
	size := len(original)
	if size == 0 {
		return nil, ErrEmptyCollection
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	pool := newIndexPool(size)
	keep := make([]bool, size)
	for i := range keep {
		if float64(rng.Intn(101)) <= goal {
			keep[i] = true
			pool.remove(i)
		}
	}

	out := original.Clone()
	stream := scramble.NewStream(seed, size, rng)
	for i := range out {
		if keep[i] {
			continue
		}
		if pool.len() == 0 {
			return nil, fmt.Errorf("%w at position %d", ErrPoolExhausted, i)
		}
		out[i] = original[pool.take(stream.Next(pool.len()))]
	}
	return out, nil
}

// indexPool is a set of indices with O(1) removal by value or by slot,
// implemented by swapping the removed entry to the end.
type indexPool struct {
	items []int
	slot  []int
}

func newIndexPool(n int) *indexPool {
	p := &indexPool{items: make([]int, n), slot: make([]int, n)}
	for i := 0; i < n; i++ {
		p.items[i] = i
		p.slot[i] = i
	}
	return p
}

func (p *indexPool) len() int {
	return len(p.items)
}

// take removes and returns the entry stored at slot k.
func (p *indexPool) take(k int) int {
	v := p.items[k]
	last := len(p.items) - 1
	moved := p.items[last]
	p.items[k] = moved
	p.slot[moved] = k
	p.items = p.items[:last]
	p.slot[v] = -1
	return v
}

func (p *indexPool) remove(v int) {
	if k := p.slot[v]; k >= 0 {
		p.take(k)
	}
}
