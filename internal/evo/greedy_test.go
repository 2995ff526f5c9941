package evo

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGreedyGenerateFullGoalKeepsOriginal(t *testing.T) {
	original := repeatingImage(120, 7)
	got, err := GreedyGenerate(rand.New(rand.NewSource(1)), original, 100, 42)
	if err != nil {
		t.Fatalf("greedy: %v", err)
	}
	assertEqualIndividuals(t, got, original)
}

func TestGreedyGeneratePreservesPermutation(t *testing.T) {
	original := repeatingImage(200, 9)
	rng := rand.New(rand.NewSource(2))
	for _, goal := range []float64{0, 10, 33.3, 50, 75, 99.5} {
		for seed := int32(0); seed < 20; seed++ {
			got, err := GreedyGenerate(rng, original, goal, seed)
			if err != nil {
				t.Fatalf("greedy goal=%v seed=%d: %v", goal, seed, err)
			}
			assertPermutation(t, got, original)
		}
	}
}

func TestGreedyGenerateApproximatesGoal(t *testing.T) {
	original := distinctImage(2000)
	rng := rand.New(rand.NewSource(3))
	const trials = 10
	for _, goal := range []float64{25, 50, 75} {
		total := 0.0
		for i := 0; i < trials; i++ {
			got, err := GreedyGenerate(rng, original, goal, int32(i+1))
			if err != nil {
				t.Fatalf("greedy: %v", err)
			}
			total += 100 * float64(got.Matches(original)) / float64(len(original))
		}
		if avg := total / trials; math.Abs(avg-goal) > 3 {
			t.Fatalf("goal %.0f: average match percentage %.2f too far from goal", goal, avg)
		}
	}
}

func TestGreedyGenerateErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := GreedyGenerate(rng, nil, 50, 1); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := GreedyGenerate(rng, distinctImage(3), 150, 1); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
	if _, err := GreedyGenerate(nil, distinctImage(3), 50, 1); err == nil {
		t.Fatal("expected nil random source to be rejected")
	}
}

func TestIndexPoolSwapRemoval(t *testing.T) {
	pool := newIndexPool(5)
	pool.remove(2)
	pool.remove(2)
	if pool.len() != 4 {
		t.Fatalf("expected 4 entries, got %d", pool.len())
	}
	seen := map[int]bool{}
	for pool.len() > 0 {
		v := pool.take(pool.len() - 1)
		if v == 2 || seen[v] {
			t.Fatalf("unexpected entry %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct entries, got %v", seen)
	}
}
