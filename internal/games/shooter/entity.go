// Package shooter implements a circle shooter: the player dodges a row of
// enemy circles and shoots them down with bullets fired straight up.
//
// All game logic is a deterministic per-frame transform over in-memory state.
// Rendering and input are supplied by the platform through Surface and the
// Session input methods.
package shooter

import "github.com/vovakirdan/circle-shooter/internal/core"

// EntityID identifies an entity within a session. IDs are never reused
// while the session runs, so a removed entity cannot be confused with a
// later one.
type EntityID uint32

// Kind discriminates the three entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a moving, drawable circle. Player, bullets and enemies share
// this representation; kind-specific policy lives in Session.Step.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Pos    core.Vec2 // Center
	Vel    core.Vec2 // Units per frame
	Radius float64
	Color  core.Color
}

// Advance moves the entity by its velocity.
func (e *Entity) Advance() {
	e.Pos = e.Pos.Add(e.Vel)
}

// DrawToken is everything a renderer needs to draw an entity.
type DrawToken struct {
	X, Y   float64
	Radius float64
	Color  core.Color
}

// DrawToken returns the render data for the entity without drawing it.
func (e Entity) DrawToken() DrawToken {
	return DrawToken{
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		Radius: e.Radius,
		Color:  e.Color,
	}
}

// Direction is a steering direction from the input source.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
