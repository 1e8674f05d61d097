package config

import (
	_ "embed"

	"github.com/vovakirdan/circle-shooter/internal/core"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius: 20,
			Speed:  5,
			SpawnX: 250, // Centre of the field
			SpawnY: 600, // Bottom edge; the first clamp pulls it inside
			Color:  core.ColorPlayer,
		},
		Bullet: BulletConfig{
			Radius: 5,
			Speed:  2,
			Color:  core.ColorBullet,
		},
		Enemies: EnemyConfig{
			Count:    7,
			Radius:   20,
			SpacingX: 24,
			TopY:     20,
			Palette: []core.Color{
				core.ColorIndigo,
				core.ColorRose,
				core.ColorTeal,
				core.ColorViolet,
				core.ColorPurple,
			},
		},
		Collision: CollisionConfig{
			Epsilon:          1,
			LossMarginFactor: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
