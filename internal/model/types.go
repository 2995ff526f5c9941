package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// PopulationSnapshot is one generation of a run as handed over by the driver.
// Fitness is index-aligned with Individuals and may be empty when the
// generation has not been scored yet.
type PopulationSnapshot struct {
	VersionedRecord
	ID          string       `json:"id"`
	RunID       string       `json:"run_id"`
	Generation  int          `json:"generation"`
	Goal        float64      `json:"goal"`
	Individuals []Individual `json:"individuals"`
	Fitness     []float64    `json:"fitness,omitempty"`
}

type RunSummary struct {
	VersionedRecord
	RunID       string     `json:"run_id"`
	Algorithm   string     `json:"algorithm"`
	Goal        float64    `json:"goal"`
	Generations int        `json:"generations"`
	BestFitness float64    `json:"best_fitness"`
	Best        Individual `json:"best,omitempty"`
}
