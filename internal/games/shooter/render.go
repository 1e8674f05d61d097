package shooter

import "github.com/vovakirdan/circle-shooter/internal/core"

// Surface is the drawing capability a renderer provides. Coordinates and
// radii are in field units.
type Surface interface {
	ClearFrame(width, height float64)
	DrawCircle(x, y, radius float64, c core.Color)
}

// Render clears the surface and draws the player, then bullets, then
// enemies. It only reads session state and is meant to run after Step.
func (s *Session) Render(dst Surface) {
	w, h := s.Field()
	dst.ClearFrame(w, h)

	draw := func(e Entity) {
		t := e.DrawToken()
		dst.DrawCircle(t.X, t.Y, t.Radius, t.Color)
	}

	draw(s.player)
	s.bullets.Each(func(b *Entity) { draw(*b) })
	s.enemies.Each(func(e *Entity) { draw(*e) })
}
