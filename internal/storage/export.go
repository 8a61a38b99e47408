package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/lander/internal/sim"
)

// ExportData is the flat JSON shape of one run for external tooling.
type ExportData struct {
	ID          string             `json:"id"`
	Scenario    int                `json:"scenario"`
	Description string             `json:"description"`
	Dt          float64            `json:"dt"`
	Outcome     string             `json:"outcome"`
	Steps       int                `json:"steps"`
	Samples     []sim.Sample       `json:"samples"`
	Metrics     map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, samples []sim.Sample) error {
	data := ExportData{
		ID:          meta.ID,
		Scenario:    meta.Scenario,
		Description: meta.Description,
		Dt:          meta.Dt,
		Outcome:     meta.Outcome,
		Steps:       meta.Steps,
		Samples:     samples,
		Metrics:     meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
