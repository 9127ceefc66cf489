package seal

import (
	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/geom"
	"github.com/vovakirdan/seal-arcade/internal/sim"
)

// SimConfig converts the YAML configuration into the controller's arena.
// The seal is kept inside the world; NPCs may swim ExitMargin units past
// the left edge before they remove themselves.
func SimConfig(cfg config.SealConfig) sim.Config {
	w, h := cfg.World.Width, cfg.World.Height
	return sim.Config{
		WorldMin:    geom.V(0, 0),
		WorldMax:    geom.V(w, h),
		SpawnMin:    geom.V(-cfg.Spawn.ExitMargin, 0),
		SpawnMax:    geom.V(w, h),
		PlayerStart: geom.V(cfg.Player.X, cfg.Player.Y),
		Player: actor.Spec{
			Size:         geom.V(cfg.Player.Width, cfg.Player.Height),
			Bounciness:   cfg.Player.Bounciness,
			Acceleration: geom.V(0, cfg.Physics.Gravity),
		},
		Fish:        npcSpec(cfg.Fish),
		Shark:       npcSpec(cfg.Shark),
		FishPoints:  cfg.Fish.Points,
		MaxVelocity: geom.V(cfg.Physics.MaxVelocity.X, cfg.Physics.MaxVelocity.Y),
	}
}

func npcSpec(n config.NPCConfig) actor.Spec {
	return actor.Spec{
		Size:       geom.V(n.Width, n.Height),
		Bounciness: n.Bounciness,
	}
}
