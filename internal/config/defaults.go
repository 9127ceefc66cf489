package config

import (
	_ "embed"
)

//go:embed defaults/seal.yaml
var defaultSealYAML []byte

// DefaultSealYAML returns the embedded default configuration document.
func DefaultSealYAML() []byte {
	return append([]byte(nil), defaultSealYAML...)
}

// DefaultSealConfig returns the default seal game configuration.
func DefaultSealConfig() SealConfig {
	return SealConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 840,
		},
		Physics: PhysicsConfig{
			MaxVelocity: Vec2{X: 640, Y: 360},
			Gravity:     -0.15,
			Boost:       3.0,
		},
		Player: PlayerConfig{
			X:          100,
			Y:          100,
			Width:      50,
			Height:     50,
			Bounciness: 0.2,
		},
		Fish: NPCConfig{
			Width:      24,
			Height:     24,
			Speed:      4,
			Bounciness: 0.2,
			Points:     1,
		},
		Shark: NPCConfig{
			Width:      80,
			Height:     40,
			Speed:      6,
			Bounciness: 0.2,
		},
		Spawn: SpawnConfig{
			FishEvery:  2.0,
			SharkEvery: 5.1,
			Margin:     20,
			ExitMargin: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}
