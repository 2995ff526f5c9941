package evo

import (
	"fmt"
	"math/rand"
	"sort"
)

// Selector picks the index of one parent from a fitness array where lower
// is better.
type Selector interface {
	Name() string
	Select(rng *rand.Rand, fitness []float64) (int, error)
}

// TournamentSelector runs a soft tournament against Opponents-1 challengers.
type TournamentSelector struct {
	Opponents int
}

func (TournamentSelector) Name() string {
	return "tournament"
}

func (s TournamentSelector) Select(rng *rand.Rand, fitness []float64) (int, error) {
	return TournamentSelect(rng, fitness, s.Opponents)
}

// TournamentSelect starts from a random winner and lets opponents-1 random
// challengers contest it. The outcome of every bout is noisy on purpose:
// a better winner stays with probability 9/11, a tie is a coin flip, and a
// worse winner still stays with probability 3/11.
func TournamentSelect(rng *rand.Rand, fitness []float64, opponents int) (int, error) {
	if rng == nil {
		return 0, errNoRandom
	}
	size := len(fitness)
	if size == 0 {
		return 0, ErrEmptyCollection
	}
	if opponents <= 0 {
		return 0, fmt.Errorf("opponents must be > 0 (got %d)", opponents)
	}

	winner := rng.Intn(size)
	for k := 0; k < opponents-1; k++ {
		challenger := rng.Intn(size)
		switch {
		case fitness[winner] < fitness[challenger]:
			if rng.Intn(11) > 8 {
				winner = challenger
			}
		case fitness[winner] == fitness[challenger]:
			if rng.Intn(2) != 0 {
				winner = challenger
			}
		default:
			if rng.Intn(11) > 2 {
				winner = challenger
			}
		}
	}
	return winner, nil
}

// RoundRobin scores every individual against q distinct random opponents.
// The fitter side of a bout wins it; a tie is won with probability 1/2.
func RoundRobin(rng *rand.Rand, fitness []float64, q int) ([]int, error) {
	if rng == nil {
		return nil, errNoRandom
	}
	size := len(fitness)
	if size == 0 {
		return nil, ErrEmptyCollection
	}
	if q < 0 || q > size-1 {
		return nil, fmt.Errorf("%w: %d distinct opponents among %d individuals", ErrUnsatisfiableBound, q, size)
	}

	wins := make([]int, size)
	for i := range fitness {
		faced := make(map[int]struct{}, q)
		for len(faced) < q {
			opp := rng.Intn(size)
			if opp == i {
				continue
			}
			if _, ok := faced[opp]; ok {
				continue
			}
			faced[opp] = struct{}{}
			switch {
			case fitness[i] < fitness[opp]:
				wins[i]++
			case fitness[i] == fitness[opp]:
				if rng.Intn(2) == 0 {
					wins[i]++
				}
			}
		}
	}
	return wins, nil
}

// SortByWins orders indices by descending wins, keeping index order among
// equal win counts. Entries above q are treated as q.
func SortByWins(wins []int, q int) []int {
	order := make([]int, len(wins))
	for i := range order {
		order[i] = i
	}
	capped := func(i int) int {
		return min(wins[i], q)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return capped(order[a]) > capped(order[b])
	})
	return order
}

// SurvivorSelect keeps the first n indices of a ranked order.
func SurvivorSelect(order []int, n int) ([]int, error) {
	if n < 0 || n > len(order) {
		return nil, fmt.Errorf("survivor count must be in [0, %d] (got %d)", len(order), n)
	}
	return append([]int(nil), order[:n]...), nil
}

// TournamentSurvive runs tournaments until n distinct winners are found.
func TournamentSurvive(rng *rand.Rand, fitness []float64, opponents, n int) ([]int, error) {
	if n < 0 || n > len(fitness) {
		return nil, fmt.Errorf("%w: %d distinct survivors among %d individuals", ErrUnsatisfiableBound, n, len(fitness))
	}
	survivors := make([]int, 0, n)
	taken := make(map[int]struct{}, n)
	limit := redrawLimit(len(fitness)) * max(n, 1)
	for tries := 0; len(survivors) < n; tries++ {
		if tries >= limit {
			return nil, fmt.Errorf("%w: only %d of %d survivors after %d tournaments", ErrUnsatisfiableBound, len(survivors), n, limit)
		}
		winner, err := TournamentSelect(rng, fitness, opponents)
		if err != nil {
			return nil, err
		}
		if _, ok := taken[winner]; ok {
			continue
		}
		taken[winner] = struct{}{}
		survivors = append(survivors, winner)
	}
	return survivors, nil
}
