package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"gaci/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

// Snapshots hold whole populations of image-sized individuals, so the JSON
// payload is zstd-compressed.
func EncodeSnapshot(s model.PopulationSnapshot) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(raw, nil), nil
}

func DecodeSnapshot(data []byte) (model.PopulationSnapshot, error) {
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return model.PopulationSnapshot{}, fmt.Errorf("decompress snapshot: %w", err)
	}
	var snapshot model.PopulationSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return model.PopulationSnapshot{}, err
	}
	if err := checkVersion(snapshot.VersionedRecord); err != nil {
		return model.PopulationSnapshot{}, err
	}
	if len(snapshot.Fitness) != 0 && len(snapshot.Fitness) != len(snapshot.Individuals) {
		return model.PopulationSnapshot{}, fmt.Errorf("snapshot %s: %d fitness values for %d individuals", snapshot.ID, len(snapshot.Fitness), len(snapshot.Individuals))
	}
	return snapshot, nil
}

func EncodeRunSummary(s model.RunSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeRunSummary(data []byte) (model.RunSummary, error) {
	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.RunSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.RunSummary{}, err
	}
	return summary, nil
}

func EncodeFitnessHistory(history []float64) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeFitnessHistory(data []byte) ([]float64, error) {
	var history []float64
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
