package model

import (
	"errors"
	"fmt"
)

var ErrNotPermutation = errors.New("individual is not a permutation of the original pixels")

func errFlatLength(n int) error {
	return fmt.Errorf("flat pixel sequence length must be a multiple of 3 (got %d)", n)
}

// ValidatePermutation reports whether ind holds exactly the same pixel values
// with the same multiplicities as original.
func ValidatePermutation(ind, original Individual) error {
	if len(ind) != len(original) {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(ind), len(original))
	}
	counts := make(map[Pixel]int, len(original))
	for _, p := range original {
		counts[p]++
	}
	for i, p := range ind {
		if counts[p] == 0 {
			return fmt.Errorf("%w: surplus pixel %v at %d", ErrNotPermutation, p, i)
		}
		counts[p]--
	}
	return nil
}
