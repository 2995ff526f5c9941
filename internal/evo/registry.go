package evo

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrOperatorExists   = errors.New("operator already registered")
	ErrOperatorNotFound = errors.New("operator not found")
)

type MutatorFactory func(params Params) Mutator

type CrossoverFactory func(params Params) Crossover

var operatorRegistry = struct {
	mu         sync.RWMutex
	mutators   map[string]MutatorFactory
	crossovers map[string]CrossoverFactory
}{}

func init() {
	resetOperatorRegistry()
}

func resetOperatorRegistry() {
	operatorRegistry.mu.Lock()
	defer operatorRegistry.mu.Unlock()

	operatorRegistry.mutators = map[string]MutatorFactory{
		"mass_swap": func(Params) Mutator { return MassSwapMutator{} },
		"smart_swap": func(p Params) Mutator {
			return SmartSwapMutator{MaxSwap: p.MaxSwap}
		},
	}
	operatorRegistry.crossovers = map[string]CrossoverFactory{
		"pmx": func(Params) Crossover { return PMX{} },
		"smart_pmx": func(p Params) Crossover {
			return SmartPMX{MaxCross: p.MaxCross}
		},
		"order": func(Params) Crossover { return Order{} },
	}
}

// RegisterMutator adds a named mutator factory.
func RegisterMutator(name string, factory MutatorFactory) error {
	if name == "" {
		return errors.New("operator name is required")
	}
	if factory == nil {
		return errors.New("operator factory is required")
	}

	operatorRegistry.mu.Lock()
	defer operatorRegistry.mu.Unlock()

	if _, exists := operatorRegistry.mutators[name]; exists {
		return fmt.Errorf("%w: %s", ErrOperatorExists, name)
	}
	operatorRegistry.mutators[name] = factory
	return nil
}

// RegisterCrossover adds a named crossover factory.
func RegisterCrossover(name string, factory CrossoverFactory) error {
	if name == "" {
		return errors.New("operator name is required")
	}
	if factory == nil {
		return errors.New("operator factory is required")
	}

	operatorRegistry.mu.Lock()
	defer operatorRegistry.mu.Unlock()

	if _, exists := operatorRegistry.crossovers[name]; exists {
		return fmt.Errorf("%w: %s", ErrOperatorExists, name)
	}
	operatorRegistry.crossovers[name] = factory
	return nil
}

// ResolveMutator builds the named mutator after validating params.
func ResolveMutator(name string, params Params) (Mutator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	operatorRegistry.mu.RLock()
	factory, ok := operatorRegistry.mutators[name]
	operatorRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: mutator %s", ErrOperatorNotFound, name)
	}
	return factory(params), nil
}

// ResolveCrossover builds the named crossover after validating params.
func ResolveCrossover(name string, params Params) (Crossover, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	operatorRegistry.mu.RLock()
	factory, ok := operatorRegistry.crossovers[name]
	operatorRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: crossover %s", ErrOperatorNotFound, name)
	}
	return factory(params), nil
}

func ListMutators() []string {
	operatorRegistry.mu.RLock()
	defer operatorRegistry.mu.RUnlock()

	names := make([]string, 0, len(operatorRegistry.mutators))
	for name := range operatorRegistry.mutators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListCrossovers() []string {
	operatorRegistry.mu.RLock()
	defer operatorRegistry.mu.RUnlock()

	names := make([]string, 0, len(operatorRegistry.crossovers))
	for name := range operatorRegistry.crossovers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
