package evo

import (
	"fmt"
	"math"
)

// Params holds the tunables of the operator set. A zero MaxSwap or MaxCross
// means "derive from the individual size".
type Params struct {
	Goal                float64 `json:"goal"`
	Opponents           int     `json:"opponents"`
	RoundRobinOpponents int     `json:"round_robin_opponents"`
	MaxSwap             int     `json:"max_swap,omitempty"`
	MaxCross            int     `json:"max_cross,omitempty"`
}

func DefaultParams() Params {
	return Params{
		Goal:                75,
		Opponents:           3,
		RoundRobinOpponents: 7,
	}
}

func (p Params) Validate() error {
	if err := validateGoal(p.Goal); err != nil {
		return err
	}
	if p.Opponents <= 0 {
		return fmt.Errorf("opponents must be > 0 (got %d)", p.Opponents)
	}
	if p.RoundRobinOpponents <= 0 {
		return fmt.Errorf("round robin opponents must be > 0 (got %d)", p.RoundRobinOpponents)
	}
	if p.MaxSwap < 0 {
		return fmt.Errorf("max swap must be >= 0 (got %d)", p.MaxSwap)
	}
	if p.MaxCross < 0 {
		return fmt.Errorf("max cross must be >= 0 (got %d)", p.MaxCross)
	}
	return nil
}

func validateGoal(goal float64) error {
	if goal < 0 || goal > 100 || math.IsNaN(goal) {
		return fmt.Errorf("%w (got %v)", ErrInvalidGoal, goal)
	}
	return nil
}

// SmartSwapBound caps the swap count at twice the number of pixels that have
// to move to close the fitness gap. A perfect individual gets a third of its
// size.
func SmartSwapBound(size int, fitness float64) int {
	var bound float64
	if fitness == 0 {
		bound = float64(size) / 3
	} else {
		bound = float64(size) / fitness * 2
	}
	return clampBound(bound, size)
}

// SmartCrossBound derives the bounded PMX segment limit from the mean fitness
// of both parents. ok is false when the mean is zero; callers fall back to
// order crossover then.
func SmartCrossBound(size int, fitness1, fitness2 float64) (int, bool) {
	avg := (fitness1 + fitness2) / 2
	if avg == 0 {
		return 0, false
	}
	return clampBound(float64(size)/avg*2, size), true
}

func clampBound(bound float64, size int) int {
	if bound >= float64(size) {
		return size
	}
	if bound < 1 {
		return 1
	}
	return int(bound)
}
