// Package storage persists simulation runs under a data directory, one
// subdirectory per run holding metadata JSON and the trajectory CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lander/internal/lander"
	"github.com/san-kum/lander/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    int                `json:"scenario"`
	Description string             `json:"description"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Autopilot   bool               `json:"autopilot"`
	Outcome     string             `json:"outcome"`
	Steps       int                `json:"steps"`
	Metrics     map[string]float64 `json:"metrics"`
}

var csvHeader = []string{"time", "altitude", "descent_rate", "speed", "throttle", "fuel", "parachute"}

func (s *Store) Save(scenarioID int, description string, dt, duration float64, autopilot bool, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("scenario%d_%d", scenarioID, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenarioID,
		Description: description,
		Timestamp:   time.Now(),
		Dt:          dt,
		Duration:    duration,
		Autopilot:   autopilot,
		Outcome:     result.Outcome.String(),
		Steps:       result.StepsTaken,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, sample := range result.Samples {
		row := []string{
			strconv.FormatFloat(sample.Time, 'f', 6, 64),
			strconv.FormatFloat(sample.Altitude, 'f', 6, 64),
			strconv.FormatFloat(sample.DescentRate, 'f', 6, 64),
			strconv.FormatFloat(sample.Speed, 'f', 6, 64),
			strconv.FormatFloat(sample.Throttle, 'f', 6, 64),
			strconv.FormatFloat(sample.Fuel, 'f', 6, 64),
			strconv.Itoa(int(sample.Parachute)),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	samples := make([]sim.Sample, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed trajectory row with %d fields", len(row))
		}
		vals := make([]float64, 6)
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		chute, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, err
		}
		samples = append(samples, sim.Sample{
			Time:        vals[0],
			Altitude:    vals[1],
			DescentRate: vals[2],
			Speed:       vals[3],
			Throttle:    vals[4],
			Fuel:        vals[5],
			Parachute:   lander.ParachuteStatus(chute),
		})
	}
	return samples, nil
}
