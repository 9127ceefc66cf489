// Package config provides YAML-based game configuration loading and
// difficulty management for the seal game.
package config

import (
	"errors"
	"fmt"
)

// SealConfig contains all configuration for the seal game.
type SealConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Fish       NPCConfig        `yaml:"fish"`
	Shark      NPCConfig        `yaml:"shark"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Vec2 is a YAML-friendly 2D value.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldConfig defines the arena in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	MaxVelocity Vec2    `yaml:"max_velocity"` // cap on impulse-driven speed
	Gravity     float64 `yaml:"gravity"`      // vertical acceleration of the seal per tick (negative = down)
	Boost       float64 `yaml:"boost"`        // upward impulse per boost press
}

// PlayerConfig defines the seal.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Bounciness float64 `yaml:"bounciness"`
}

// NPCConfig defines a fish or shark.
type NPCConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"` // leftward drift per tick
	Bounciness float64 `yaml:"bounciness"`
	Points     int     `yaml:"points"`
}

// SpawnConfig defines the spawn timers.
type SpawnConfig struct {
	FishEvery  float64 `yaml:"fish_every"`  // seconds between fish
	SharkEvery float64 `yaml:"shark_every"` // seconds between sharks
	Margin     float64 `yaml:"margin"`      // keep spawns this far from top and bottom
	ExitMargin float64 `yaml:"exit_margin"` // how far past the left edge NPCs may swim
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to NPC speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a flag value into a preset. An empty string is
// accepted and means "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the config describes a playable arena.
func (c SealConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, errors.New("player does not fit in the world"))
	}
	for name, npc := range map[string]NPCConfig{"fish": c.Fish, "shark": c.Shark} {
		if npc.Width <= 0 || npc.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive, got %vx%v", name, npc.Width, npc.Height))
		}
		if npc.Bounciness < 0 || npc.Bounciness > 1 {
			errs = append(errs, fmt.Errorf("%s bounciness must be in [0,1], got %v", name, npc.Bounciness))
		}
	}
	if c.Player.Bounciness < 0 || c.Player.Bounciness > 1 {
		errs = append(errs, fmt.Errorf("player bounciness must be in [0,1], got %v", c.Player.Bounciness))
	}
	if c.Spawn.FishEvery <= 0 || c.Spawn.SharkEvery <= 0 {
		errs = append(errs, fmt.Errorf("spawn intervals must be positive, got fish=%v shark=%v", c.Spawn.FishEvery, c.Spawn.SharkEvery))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid seal config: %w", errors.Join(errs...))
	}
	return nil
}
