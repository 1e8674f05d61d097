package core

import "testing"

func countCircleCells(s *Screen, c Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == CircleRune && cell.Color == c {
				n++
			}
		}
	}
	return n
}

func TestCanvasScalesFieldToArea(t *testing.T) {
	s := NewScreen(50, 61)
	c := NewCanvas(s, NewRect(0, 1, 50, 60), 500, 600)

	col, row := c.CellAt(250, 300)
	if col != 25 || row != 31 {
		t.Errorf("CellAt(250, 300) = (%d, %d), expected (25, 31)", col, row)
	}

	col, row = c.CellAt(0, 0)
	if col != 0 || row != 1 {
		t.Errorf("CellAt(0, 0) = (%d, %d), expected (0, 1)", col, row)
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	s := NewScreen(50, 60)
	c := NewCanvas(s, NewRect(0, 0, 50, 60), 500, 600)

	// Radius 20 field units = 2 cells on both axes
	c.DrawCircle(250, 300, 20, ColorPlayer)

	if got := s.GetCell(25, 30); got.Rune != CircleRune || got.Color != ColorPlayer {
		t.Errorf("center cell = %+v, expected player circle", got)
	}
	n := countCircleCells(s, ColorPlayer)
	if n < 9 || n > 16 {
		t.Errorf("circle covers %d cells, expected roughly pi*r^2 = 12", n)
	}
	if s.GetCell(20, 30).Rune != ' ' {
		t.Error("cells far from the circle must stay blank")
	}
}

func TestCanvasDrawTinyCircle(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, NewRect(0, 0, 20, 10), 500, 600)

	// A bullet is far smaller than a cell but must still be visible
	c.DrawCircle(250, 300, 5, ColorBullet)
	if n := countCircleCells(s, ColorBullet); n != 1 {
		t.Errorf("tiny circle covers %d cells, expected 1", n)
	}
}

func TestCanvasClipsToArea(t *testing.T) {
	s := NewScreen(20, 12)
	area := NewRect(0, 2, 20, 10)
	c := NewCanvas(s, area, 500, 600)
	s.DrawText(0, 0, "HUD")

	c.DrawCircle(250, -40, 60, ColorRose)
	c.DrawCircle(600, 300, 40, ColorRose)

	if s.Row(0)[:3] != "HUD" {
		t.Error("drawing above the canvas must not overwrite the HUD row")
	}
	for y := 0; y < area.Y; y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == ColorRose {
				t.Fatalf("circle leaked outside canvas at (%d, %d)", x, y)
			}
		}
	}

	c.ClearFrame(500, 600)
	if n := countCircleCells(s, ColorRose); n != 0 {
		t.Errorf("ClearFrame left %d circle cells", n)
	}
	if s.Row(0)[:3] != "HUD" {
		t.Error("ClearFrame must only blank the canvas area")
	}
}
