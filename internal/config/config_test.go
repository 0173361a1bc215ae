package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GM != FourPiSquared {
		t.Errorf("expected GM=4*pi^2, got %v", cfg.GM)
	}
	if cfg.Dt != DefaultDt || cfg.Tmax != DefaultTmax {
		t.Errorf("unexpected defaults: dt=%v tmax=%v", cfg.Dt, cfg.Tmax)
	}
	if len(cfg.Bodies) != 1 || !cfg.Bodies[0].Circular {
		t.Errorf("expected one circular body, got %+v", cfg.Bodies)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		GM: 1.5, Dt: 0.01, Tmax: 3.0, Workers: 2,
		Bodies: []BodyConfig{
			{Mass: 0.2, Circular: true, Radius: 0.8, Phase: 1.0},
			{Mass: 0.3, Pos: [2]float64{1, 2}, Vel: [2]float64{-0.5, 0}},
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.GM != cfg.GM || loaded.Dt != cfg.Dt || loaded.Tmax != cfg.Tmax || loaded.Workers != cfg.Workers {
		t.Errorf("scalars did not round-trip: %+v", loaded)
	}
	if len(loaded.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(loaded.Bodies))
	}
	if loaded.Bodies[1].Pos != cfg.Bodies[1].Pos {
		t.Errorf("body position did not round-trip: %+v", loaded.Bodies[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetBodiesCircular(t *testing.T) {
	cfg := &Config{
		GM: FourPiSquared, Dt: 0.001, Tmax: 1.0,
		Bodies: []BodyConfig{{Mass: 0.1, Circular: true, Radius: 1.0}},
	}

	bodies, err := cfg.GetBodies()
	if err != nil {
		t.Fatalf("GetBodies failed: %v", err)
	}
	if len(bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(bodies))
	}

	if v := bodies[0].Vel.Norm(); math.Abs(v-2*math.Pi) > 1e-12 {
		t.Errorf("expected circular speed 2*pi, got %v", v)
	}
}

func TestGetBodiesRejectsDegenerate(t *testing.T) {
	cfg := &Config{
		GM: FourPiSquared,
		Bodies: []BodyConfig{
			{Mass: 0.1, Pos: [2]float64{0, 0}, Vel: [2]float64{0, 0}},
		},
	}

	if _, err := cfg.GetBodies(); err == nil {
		t.Error("expected error for body at force center")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			p := GetPreset(name)
			if p == nil {
				t.Fatal("listed preset not found")
			}
			if p.Dt <= 0 || p.Tmax <= 0 {
				t.Errorf("preset has invalid timing: dt=%v tmax=%v", p.Dt, p.Tmax)
			}
			if _, err := p.GetBodies(); err != nil {
				t.Errorf("preset bodies invalid: %v", err)
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}
}
