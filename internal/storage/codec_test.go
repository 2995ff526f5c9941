package storage

import (
	"bytes"
	"errors"
	"testing"

	"gaci/internal/model"
)

func sampleSnapshot() model.PopulationSnapshot {
	population := []model.Individual{
		{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}},
		{{3, 3, 3}, {1, 1, 1}, {2, 2, 2}},
	}
	return NewSnapshot("run-1", 4, 66.6, population, []float64{33.4, 66.6})
}

func TestSnapshotCodecRoundTrip(t *testing.T) {
	snapshot := sampleSnapshot()
	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if bytes.HasPrefix(data, []byte("{")) {
		t.Fatal("expected compressed payload, got raw json")
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != snapshot.ID || decoded.RunID != "run-1" || decoded.Generation != 4 || decoded.Goal != 66.6 {
		t.Fatalf("unexpected snapshot header: %+v", decoded)
	}
	if len(decoded.Individuals) != 2 || decoded.Individuals[1][0] != (model.Pixel{3, 3, 3}) {
		t.Fatalf("unexpected individuals: %+v", decoded.Individuals)
	}
	if decoded.Fitness[1] != 66.6 {
		t.Fatalf("unexpected fitness: %+v", decoded.Fitness)
	}
}

func TestSnapshotCodecRejectsVersionMismatch(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.SchemaVersion = CurrentSchemaVersion + 1
	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSnapshot(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestSnapshotCodecRejectsMisalignedFitness(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Fitness = snapshot.Fitness[:1]
	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSnapshot(data); err == nil {
		t.Fatal("expected misaligned fitness to be rejected")
	}
}

func TestSnapshotCodecRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("not zstd")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRunSummaryCodecRoundTrip(t *testing.T) {
	summary := model.RunSummary{
		VersionedRecord: currentVersion(),
		RunID:           "run-2",
		Algorithm:       "steady_state",
		Goal:            50,
		Generations:     10,
		BestFitness:     0.25,
		Best:            model.Individual{{9, 9, 9}},
	}
	data, err := EncodeRunSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeRunSummary(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.RunID != "run-2" || decoded.BestFitness != 0.25 || decoded.Best[0] != (model.Pixel{9, 9, 9}) {
		t.Fatalf("unexpected summary: %+v", decoded)
	}

	summary.CodecVersion = 0
	data, err = EncodeRunSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRunSummary(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestNewSnapshotCopiesInputs(t *testing.T) {
	population := []model.Individual{{{1, 2, 3}}}
	fitness := []float64{1}
	snapshot := NewSnapshot(NewRunID(), 0, 10, population, fitness)
	population[0][0] = model.Pixel{0, 0, 0}
	fitness[0] = 99

	if snapshot.Individuals[0][0] != (model.Pixel{1, 2, 3}) || snapshot.Fitness[0] != 1 {
		t.Fatalf("snapshot aliases driver state: %+v", snapshot)
	}
	if snapshot.ID == "" || snapshot.RunID == "" || snapshot.ID == snapshot.RunID {
		t.Fatalf("expected distinct generated ids: %q %q", snapshot.ID, snapshot.RunID)
	}
}
