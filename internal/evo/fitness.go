package evo

import (
	"fmt"
	"math"

	"gaci/internal/model"
)

// EvaluateFitness returns the distance between the percentage of positions
// where ind matches original and the goal percentage. Zero is optimal.
func EvaluateFitness(ind, original model.Individual, goal float64) (float64, error) {
	if len(original) == 0 {
		return 0, ErrEmptyCollection
	}
	if len(ind) != len(original) {
		return 0, fmt.Errorf("%w: individual has %d pixels, original has %d", ErrSizeMismatch, len(ind), len(original))
	}
	if err := validateGoal(goal); err != nil {
		return 0, err
	}
	percent := 100 * float64(ind.Matches(original)) / float64(len(original))
	return math.Abs(percent - goal), nil
}

// Evaluator binds the original image and goal so a driver can score many
// individuals against the same reference.
type Evaluator struct {
	original model.Individual
	goal     float64
}

func NewEvaluator(original model.Individual, goal float64) (*Evaluator, error) {
	if len(original) == 0 {
		return nil, ErrEmptyCollection
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}
	return &Evaluator{original: original, goal: goal}, nil
}

func (e *Evaluator) Evaluate(ind model.Individual) (float64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	return EvaluateFitness(ind, e.original, e.goal)
}

func (e *Evaluator) MustEvaluate(ind model.Individual) float64 {
	fitness, err := e.Evaluate(ind)
	if err != nil {
		panic(err)
	}
	return fitness
}
