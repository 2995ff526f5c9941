package evo

import (
	"fmt"
	"math/rand"

	"gaci/internal/model"
	"gaci/internal/scramble"
)

// PMXCross is partially-mapped crossover: parent1's segment between two cut
// points is copied into the child, parent2's displaced pixels are relocated
// by chasing the segment mapping, and the rest comes from parent2.
func PMXCross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error) {
	return crossWith(rng, parent1, parent2, 0, pmxTokens)
}

// SmartPMXCross is PMXCross with the segment shorter than maxCross pixels.
func SmartPMXCross(rng *rand.Rand, parent1, parent2 model.Individual, maxCross int) (model.Individual, error) {
	if maxCross <= 1 {
		return nil, fmt.Errorf("%w: max cross must be > 1 (got %d)", ErrUnsatisfiableBound, maxCross)
	}
	return crossWith(rng, parent1, parent2, maxCross, pmxTokens)
}

// OrderCross is order crossover (OX1): parent1's segment is kept in place and
// the remaining slots are filled with parent2's pixels in their relative
// order, starting after the segment and wrapping around.
func OrderCross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error) {
	return crossWith(rng, parent1, parent2, 0, orderTokens)
}

// SmartCross runs bounded PMX with a segment limit derived from the parents'
// fitness, or order crossover when both parents already sit on the goal.
func SmartCross(rng *rand.Rand, parent1, parent2 model.Individual, fitness1, fitness2 float64) (model.Individual, error) {
	maxCross, ok := SmartCrossBound(len(parent1), fitness1, fitness2)
	if !ok {
		return OrderCross(rng, parent1, parent2)
	}
	return SmartPMXCross(rng, parent1, parent2, max(maxCross, 2))
}

type tokenCross func(tokens2 []int, pos1, pos2 int) []int

func crossWith(rng *rand.Rand, parent1, parent2 model.Individual, maxCross int, cross tokenCross) (model.Individual, error) {
	if rng == nil {
		return nil, errNoRandom
	}
	if err := checkParents(parent1, parent2); err != nil {
		return nil, err
	}
	pos1, pos2, err := cutPoints(rng, len(parent1), maxCross)
	if err != nil {
		return nil, err
	}
	return crossAt(parent1, parent2, pos1, pos2, cross)
}

func crossAt(parent1, parent2 model.Individual, pos1, pos2 int, cross tokenCross) (model.Individual, error) {
	tokens2, err := tokenize(parent1, parent2)
	if err != nil {
		return nil, err
	}
	childTokens := cross(tokens2, pos1, pos2)
	child := make(model.Individual, len(parent1))
	for i, token := range childTokens {
		child[i] = parent1[token]
	}
	return child, nil
}

func checkParents(parent1, parent2 model.Individual) error {
	if len(parent1) == 0 || len(parent2) == 0 {
		return ErrEmptyCollection
	}
	if len(parent1) != len(parent2) {
		return fmt.Errorf("%w: parents have %d and %d pixels", ErrSizeMismatch, len(parent1), len(parent2))
	}
	if len(parent1) < 2 {
		return fmt.Errorf("%w: two distinct cut points need at least 2 pixels", ErrUnsatisfiableBound)
	}
	return nil
}

func redrawLimit(size int) int {
	return 32 * size
}

// cutPoints draws two distinct cut points with pos1 < pos2. A positive
// maxCross additionally requires pos2-pos1 < maxCross.
func cutPoints(rng *rand.Rand, size, maxCross int) (int, int, error) {
	pos1 := scramble.Draw(rng, size)
	pos2 := scramble.Draw(rng, size)
	limit := redrawLimit(size)
	for tries := 0; pos1 == pos2 || (maxCross > 0 && absInt(pos1-pos2) >= maxCross); tries++ {
		if tries >= limit {
			return 0, 0, fmt.Errorf("%w: no cut points within %d after %d draws", ErrUnsatisfiableBound, maxCross, limit)
		}
		pos2 = scramble.Draw(rng, size)
	}
	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}
	return pos1, pos2, nil
}

// tokenize gives every pixel occurrence an identity so repeated colours
// behave like distinct genes. Parent1's token at position i is i; the k-th
// occurrence of a value in parent2 takes the token of the k-th occurrence of
// that value in parent1.
func tokenize(parent1, parent2 model.Individual) ([]int, error) {
	slots := make(map[model.Pixel][]int, len(parent1))
	for i, px := range parent1 {
		slots[px] = append(slots[px], i)
	}
	tokens := make([]int, len(parent2))
	for j, px := range parent2 {
		queue := slots[px]
		if len(queue) == 0 {
			return nil, fmt.Errorf("%w: parent2 pixel %v at %d has no counterpart in parent1", ErrNotPermutation, px, j)
		}
		tokens[j] = queue[0]
		slots[px] = queue[1:]
	}
	return tokens, nil
}

// pmxTokens works on parent2's tokens; parent1 is the identity so a token t
// lies in parent1's segment exactly when pos1 <= t <= pos2.
func pmxTokens(tokens2 []int, pos1, pos2 int) []int {
	n := len(tokens2)
	inSegment := func(v int) bool { return pos1 <= v && v <= pos2 }

	where2 := make([]int, n)
	for j, t := range tokens2 {
		where2[t] = j
	}

	child := make([]int, n)
	copied := make([]bool, n)
	for i := pos1; i <= pos2; i++ {
		child[i] = i
		copied[i] = true
	}
	for i := pos1; i <= pos2; i++ {
		displaced := tokens2[i]
		if inSegment(displaced) {
			continue
		}
		// Follow parent1[i] through parent2 until the chain leaves the segment.
		j := where2[i]
		for inSegment(j) {
			j = where2[j]
		}
		child[j] = displaced
		copied[j] = true
	}
	for i := range child {
		if !copied[i] {
			child[i] = tokens2[i]
		}
	}
	return child
}

// orderTokens fills the slots after the segment, then from index 0 up to
// pos1, scanning parent2 from pos2+1 with wrap-around. The number of tokens
// outside the segment equals the number of free slots, so the write cursor
// stops exactly at pos1.
func orderTokens(tokens2 []int, pos1, pos2 int) []int {
	n := len(tokens2)
	child := make([]int, n)
	for i := pos1; i <= pos2; i++ {
		child[i] = i
	}
	write := (pos2 + 1) % n
	for k := 0; k < n; k++ {
		t := tokens2[(pos2+1+k)%n]
		if pos1 <= t && t <= pos2 {
			continue
		}
		child[write] = t
		write = (write + 1) % n
	}
	return child
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type PMX struct{}

func (PMX) Name() string {
	return "pmx"
}

func (PMX) Cross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error) {
	return PMXCross(rng, parent1, parent2)
}

// SmartPMX bounds the PMX segment by MaxCross. Zero leaves the segment
// bounded only by the individual size.
type SmartPMX struct {
	MaxCross int
}

func (SmartPMX) Name() string {
	return "smart_pmx"
}

func (c SmartPMX) Cross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error) {
	maxCross := c.MaxCross
	if maxCross == 0 {
		maxCross = max(len(parent1), 2)
	}
	return SmartPMXCross(rng, parent1, parent2, maxCross)
}

type Order struct{}

func (Order) Name() string {
	return "order"
}

func (Order) Cross(rng *rand.Rand, parent1, parent2 model.Individual) (model.Individual, error) {
	return OrderCross(rng, parent1, parent2)
}
