package evo

import (
	"errors"
	"math/rand"
	"testing"

	"gaci/internal/model"
)

func TestEvaluateFitnessScenarios(t *testing.T) {
	original := model.Individual{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}}

	fit, err := EvaluateFitness(original, original, 100)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if fit != 0 {
		t.Fatalf("expected original vs itself at goal 100 to score 0, got %f", fit)
	}

	swapped := model.Individual{{2, 2, 2}, {1, 1, 1}, {3, 3, 3}, {4, 4, 4}}
	fit, err = EvaluateFitness(swapped, original, 50)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if fit != 0 {
		t.Fatalf("expected 2/4 matches at goal 50 to score 0, got %f", fit)
	}

	fit, err = EvaluateFitness(swapped, original, 0)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if fit != 50 {
		t.Fatalf("expected fitness 50, got %f", fit)
	}
}

func TestEvaluateFitnessStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	original := repeatingImage(64, 5)
	for i := 0; i < 200; i++ {
		ind := shuffled(rng, original)
		goal := rng.Float64() * 100
		fit, err := EvaluateFitness(ind, original, goal)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if fit < 0 || fit > 100 {
			t.Fatalf("fitness %f out of [0,100] for goal %f", fit, goal)
		}
	}
}

func TestEvaluateFitnessErrors(t *testing.T) {
	original := distinctImage(3)
	if _, err := EvaluateFitness(nil, nil, 50); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := EvaluateFitness(original[:2], original, 50); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if _, err := EvaluateFitness(original, original, 101); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
}

func TestEvaluatorBindsOriginalAndGoal(t *testing.T) {
	original := distinctImage(10)
	evaluator, err := NewEvaluator(original, 100)
	if err != nil {
		t.Fatalf("new evaluator: %v", err)
	}
	if got := evaluator.MustEvaluate(original); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
	if _, err := NewEvaluator(nil, 50); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := NewEvaluator(original, -1); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
}
