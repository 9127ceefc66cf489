package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultSealConfig().Difficulty // score progression, max at 40
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{10, 0.25},
		{40, 1.0},
		{400, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got != tt.expected {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	cfg := DefaultSealConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.3)

	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected 0.3", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)
	if got := d.Level(999, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultSealConfig().Difficulty)
	if got := d.Speed(4, 0, 0); got != 4 {
		t.Errorf("Speed() at level 0 = %v, expected 4", got)
	}
	if got := d.Speed(4, 40, 0); got != 8 {
		t.Errorf("Speed() at level 1 = %v, expected 8", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultSealConfig().Difficulty) // spawn_reduction 0.5
	if got := d.Interval(120, 0, 0); got != 120 {
		t.Errorf("Interval() at level 0 = %d, expected 120", got)
	}
	if got := d.Interval(120, 40, 0); got != 60 {
		t.Errorf("Interval() at level 1 = %d, expected 60", got)
	}
	if got := d.Interval(12, 40, 0); got != minSpawnInterval {
		t.Errorf("Interval() floor = %d, expected %d", got, minSpawnInterval)
	}
}
