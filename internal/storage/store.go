package storage

import (
	"context"

	"gaci/internal/model"
)

// Store persists population checkpoints and run results for a driver. The
// operators never touch it.
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, snapshot model.PopulationSnapshot) error
	GetSnapshot(ctx context.Context, id string) (model.PopulationSnapshot, bool, error)
	DeleteSnapshot(ctx context.Context, id string) error
	ListSnapshots(ctx context.Context, runID string) ([]string, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SaveRunSummary(ctx context.Context, summary model.RunSummary) error
	GetRunSummary(ctx context.Context, runID string) (model.RunSummary, bool, error)
}
