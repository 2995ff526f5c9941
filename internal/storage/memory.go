package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gaci/internal/model"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	snapshots   map[string]model.PopulationSnapshot
	history     map[string][]float64
	summaries   map[string]model.RunSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.snapshots = make(map[string]model.PopulationSnapshot)
	s.history = make(map[string][]float64)
	s.summaries = make(map[string]model.RunSummary)
	return nil
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, snapshot model.PopulationSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.snapshots[snapshot.ID] = cloneSnapshot(snapshot)
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, id string) (model.PopulationSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[id]
	if !ok {
		return model.PopulationSnapshot{}, false, nil
	}
	return cloneSnapshot(snapshot), true, nil
}

func (s *MemoryStore) DeleteSnapshot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, id)
	return nil
}

// ListSnapshots returns the ids of a run's snapshots ordered by generation.
func (s *MemoryStore) ListSnapshots(_ context.Context, runID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.PopulationSnapshot, 0)
	for _, snapshot := range s.snapshots {
		if snapshot.RunID == runID {
			matched = append(matched, snapshot)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Generation != matched[j].Generation {
			return matched[i].Generation < matched[j].Generation
		}
		return matched[i].ID < matched[j].ID
	})
	ids := make([]string, len(matched))
	for i, snapshot := range matched {
		ids[i] = snapshot.ID
	}
	return ids, nil
}

func (s *MemoryStore) SaveFitnessHistory(_ context.Context, runID string, history []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.history[runID] = append([]float64(nil), history...)
	return nil
}

func (s *MemoryStore) GetFitnessHistory(_ context.Context, runID string) ([]float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]float64(nil), history...), true, nil
}

func (s *MemoryStore) SaveRunSummary(_ context.Context, summary model.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	summary.Best = summary.Best.Clone()
	s.summaries[summary.RunID] = summary
	return nil
}

func (s *MemoryStore) GetRunSummary(_ context.Context, runID string) (model.RunSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[runID]
	if !ok {
		return model.RunSummary{}, false, nil
	}
	summary.Best = summary.Best.Clone()
	return summary, true, nil
}

func cloneSnapshot(s model.PopulationSnapshot) model.PopulationSnapshot {
	out := s
	out.Individuals = make([]model.Individual, len(s.Individuals))
	for i, ind := range s.Individuals {
		out.Individuals[i] = ind.Clone()
	}
	out.Fitness = append([]float64(nil), s.Fitness...)
	return out
}
