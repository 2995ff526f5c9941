package evo

import (
	"errors"

	"gaci/internal/model"
)

var (
	ErrEmptyCollection    = errors.New("empty pixel collection")
	ErrUnsatisfiableBound = errors.New("unsatisfiable bound")
	ErrSizeMismatch       = errors.New("size mismatch")
	ErrInvalidGoal        = errors.New("goal percentage must be in [0, 100]")
	ErrPoolExhausted      = errors.New("unused pixel pool exhausted")
	ErrNotPermutation     = model.ErrNotPermutation
)

var errNoRandom = errors.New("random source is required")
