package evo

import (
	"math/rand"
	"testing"

	"gaci/internal/model"
)

func distinctImage(n int) model.Individual {
	out := make(model.Individual, n)
	for i := range out {
		out[i] = model.Pixel{uint32(i), uint32(i * 2), uint32(i * 3)}
	}
	return out
}

// repeatingImage cycles through a small palette so many pixels share a value.
func repeatingImage(n, colours int) model.Individual {
	out := make(model.Individual, n)
	for i := range out {
		c := uint32(i % colours)
		out[i] = model.Pixel{c, 255 - c, c}
	}
	return out
}

func shuffled(rng *rand.Rand, ind model.Individual) model.Individual {
	out := ind.Clone()
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func valuesImage(values ...uint32) model.Individual {
	out := make(model.Individual, len(values))
	for i, v := range values {
		out[i] = model.Pixel{v, v, v}
	}
	return out
}

func assertPermutation(t *testing.T, got, original model.Individual) {
	t.Helper()
	if err := model.ValidatePermutation(got, original); err != nil {
		t.Fatalf("permutation broken: %v", err)
	}
}

func assertEqualIndividuals(t *testing.T, got, want model.Individual) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}
