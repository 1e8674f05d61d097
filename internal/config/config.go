// Package config provides YAML-based game configuration loading and
// validation for the shooter.
package config

import (
	"fmt"

	"github.com/vovakirdan/circle-shooter/internal/core"
)

// ShooterConfig contains all configuration for the shooter game.
type ShooterConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Collision CollisionConfig `yaml:"collision"`
}

// FieldConfig defines the playing field size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player circle.
type PlayerConfig struct {
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"` // Units per frame while a direction is held
	SpawnX float64    `yaml:"spawn_x"`
	SpawnY float64    `yaml:"spawn_y"`
	Color  core.Color `yaml:"color"`
}

// BulletConfig defines projectiles fired by the player.
type BulletConfig struct {
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"` // Upward units per frame
	Color  core.Color `yaml:"color"`
}

// EnemyConfig defines the enemy row spawned at session start.
type EnemyConfig struct {
	Count     int          `yaml:"count"`
	Radius    float64      `yaml:"radius"`
	SpacingX  float64      `yaml:"spacing_x"` // Gap between neighbouring enemies
	TopY      float64      `yaml:"top_y"`     // Distance of the row's top edge from the field top
	VelocityX float64      `yaml:"velocity_x"`
	VelocityY float64      `yaml:"velocity_y"`
	Palette   []core.Color `yaml:"palette"`
}

// CollisionConfig defines collision tolerances.
type CollisionConfig struct {
	Epsilon          float64 `yaml:"epsilon"`            // Circles closer than this are touching
	LossMarginFactor float64 `yaml:"loss_margin_factor"` // Player hit margin in multiples of player speed
}

// LossMargin returns the extra distance added to player-enemy checks.
func (c ShooterConfig) LossMargin() float64 {
	return c.Collision.LossMarginFactor * c.Player.Speed
}

// EnemyPosition returns the spawn position of the i-th enemy (0-based).
// Enemies sit in a single row, each one diameter plus SpacingX apart.
func (c ShooterConfig) EnemyPosition(i int) core.Vec2 {
	step := c.Enemies.SpacingX + 2*c.Enemies.Radius
	return core.Vec2{
		X: step * float64(i+1),
		Y: c.Enemies.TopY + c.Enemies.Radius,
	}
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"bullet.radius", c.Bullet.Radius},
		{"bullet.speed", c.Bullet.Speed},
		{"enemies.radius", c.Enemies.Radius},
		{"collision.epsilon", c.Collision.Epsilon},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be positive, got %g", p.name, p.value),
			}
		}
	}

	if c.Collision.LossMarginFactor < 0 {
		return ValidationError{
			Code:    "NEGATIVE_MARGIN",
			Message: fmt.Sprintf("collision.loss_margin_factor must not be negative, got %g", c.Collision.LossMarginFactor),
		}
	}

	if c.Enemies.Count < 1 {
		return ValidationError{
			Code:    "NO_ENEMIES",
			Message: fmt.Sprintf("enemies.count must be at least 1, got %d", c.Enemies.Count),
		}
	}

	if len(c.Enemies.Palette) == 0 {
		return ValidationError{
			Code:    "EMPTY_PALETTE",
			Message: "enemies.palette must list at least one color",
		}
	}

	return nil
}
