package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lander/internal/scenario"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != 0 {
		t.Errorf("expected scenario 0, got %d", cfg.Scenario)
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should have a default")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `scenario: 1
duration: 120
overrides:
  autopilot: true
  fuel: 0.5
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenario != 1 || cfg.Duration != 120 {
		t.Errorf("config mismatch: %+v", cfg)
	}
	if cfg.Overrides.Autopilot == nil || !*cfg.Overrides.Autopilot {
		t.Error("autopilot override not parsed")
	}
	if cfg.Overrides.StabilizedAttitude != nil {
		t.Error("absent override should stay nil")
	}
}

func TestLoadRejectsBadFuel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("duration: 10\noverrides:\n  fuel: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for fuel > 1")
	}
}

func TestApplyOverrides(t *testing.T) {
	sc, err := scenario.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	s := sc.InitState()

	enabled := true
	fuel := 0.25
	cfg := DefaultConfig()
	cfg.Overrides.Autopilot = &enabled
	cfg.Overrides.Fuel = &fuel
	cfg.Apply(s)

	if !s.AutopilotEnabled {
		t.Error("autopilot override not applied")
	}
	if s.Fuel != 0.25 {
		t.Errorf("fuel = %f, want 0.25", s.Fuel)
	}
	// Untouched override keeps the scenario default.
	if !s.StabilizedAttitude {
		t.Error("scenario attitude hold should survive when not overridden")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = 5
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Scenario != 5 {
		t.Errorf("scenario = %d, want 5", loaded.Scenario)
	}
}
