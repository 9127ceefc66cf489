package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SealConfig
	if err := yaml.Unmarshal(defaultSealYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultSealConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSealConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultSealConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadSealCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seal.yaml")
	doc := "physics:\n  gravity: -0.5\nfish:\n  points: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSeal(path)
	if err != nil {
		t.Fatalf("LoadSeal() error: %v", err)
	}
	if cfg.Physics.Gravity != -0.5 {
		t.Errorf("Gravity = %v, expected -0.5", cfg.Physics.Gravity)
	}
	if cfg.Fish.Points != 3 {
		t.Errorf("Fish.Points = %d, expected 3", cfg.Fish.Points)
	}
	if cfg.World != DefaultSealConfig().World {
		t.Errorf("World = %+v, expected defaults to be kept", cfg.World)
	}
}

func TestLoadSealMissingCustomPath(t *testing.T) {
	_, err := LoadSeal(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSeal() error = %v, expected not-exist", err)
	}
}

func TestLoadSealInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seal.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeal(path); err == nil {
		t.Error("LoadSeal() with zero-width world should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SealConfig)
		ok     bool
	}{
		{"defaults", func(*SealConfig) {}, true},
		{"zero height", func(c *SealConfig) { c.World.Height = 0 }, false},
		{"player too big", func(c *SealConfig) { c.Player.Width = 5000 }, false},
		{"fish bounciness", func(c *SealConfig) { c.Fish.Bounciness = 1.5 }, false},
		{"shark size", func(c *SealConfig) { c.Shark.Height = -1 }, false},
		{"spawn interval", func(c *SealConfig) { c.Spawn.SharkEvery = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSealConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v, expected nil", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplySealPreset(t *testing.T) {
	cfg := DefaultSealConfig()
	ApplySealPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSealConfig()
	ApplySealPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Shark.Speed <= DefaultSealConfig().Shark.Speed {
		t.Errorf("hard shark speed = %v, expected faster than default", cfg.Shark.Speed)
	}

	cfg = DefaultSealConfig()
	ApplySealPreset(&cfg, "")
	if cfg != DefaultSealConfig() {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultSealConfig()
	cfg.Spawn.FishEvery = 1.25
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "seal.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSeal(path)
	if err != nil {
		t.Fatalf("LoadSeal() error: %v", err)
	}
	if got != cfg {
		t.Errorf("LoadSeal() = %+v, expected %+v", got, cfg)
	}
}
