package shooter

import "github.com/vovakirdan/circle-shooter/internal/core"

// ClampToField confines an entity's center to [0, w-radius] x [0, h-radius].
// The low edges stop at the center rather than the rim, so a circle may sit
// half outside the top or left edge. Applying it twice changes nothing.
func ClampToField(e *Entity, w, h float64) {
	e.Pos.X = core.ClampF(e.Pos.X, 0, w-e.Radius)
	e.Pos.Y = core.ClampF(e.Pos.Y, 0, h-e.Radius)
}

// InField reports whether a position satisfies the player clamp bounds.
func InField(e Entity, w, h float64) bool {
	return e.Pos.X >= 0 && e.Pos.X <= w-e.Radius &&
		e.Pos.Y >= 0 && e.Pos.Y <= h-e.Radius
}
