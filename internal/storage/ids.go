package storage

import (
	"github.com/google/uuid"

	"gaci/internal/model"
)

func NewRunID() string {
	return uuid.NewString()
}

// NewSnapshot stamps a generation with a fresh id and the current record
// versions. The slices are copied so later driver updates do not leak in.
func NewSnapshot(runID string, generation int, goal float64, population []model.Individual, fitness []float64) model.PopulationSnapshot {
	individuals := make([]model.Individual, len(population))
	for i, ind := range population {
		individuals[i] = ind.Clone()
	}
	return model.PopulationSnapshot{
		VersionedRecord: currentVersion(),
		ID:              uuid.NewString(),
		RunID:           runID,
		Generation:      generation,
		Goal:            goal,
		Individuals:     individuals,
		Fitness:         append([]float64(nil), fitness...),
	}
}

func currentVersion() model.VersionedRecord {
	return model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}
