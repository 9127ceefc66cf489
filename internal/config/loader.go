package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "seal.yaml"

// LoadSeal loads the seal game configuration.
// Search order: customPath -> ~/.seal/configs/seal.yaml -> ./configs/seal.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSeal(customPath string) (SealConfig, error) {
	cfg := DefaultSealConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultSealConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultSealConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSealYAML, &cfg); err != nil {
		return DefaultSealConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg SealConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seal", "configs", filename)
}

// ApplySealPreset modifies the config based on a difficulty preset.
func ApplySealPreset(cfg *SealConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.75
		cfg.Shark.Speed *= 0.8
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.25
		cfg.Shark.Speed *= 1.3
	}
}
