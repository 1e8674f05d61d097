package core

import "math"

// CircleRune is drawn for every cell covered by a circle.
const CircleRune = '●'

// Canvas maps a field measured in world units onto a rectangular area of a
// Screen. Games draw circles in field coordinates and the canvas scales
// them to cells independently on each axis.
type Canvas struct {
	screen *Screen
	area   Rect
	sx, sy float64 // cells per field unit
}

// NewCanvas creates a canvas that projects a fieldW x fieldH field onto area.
func NewCanvas(screen *Screen, area Rect, fieldW, fieldH float64) *Canvas {
	c := &Canvas{screen: screen, area: area}
	if fieldW > 0 {
		c.sx = float64(area.W) / fieldW
	}
	if fieldH > 0 {
		c.sy = float64(area.H) / fieldH
	}
	return c
}

// ClearFrame blanks the canvas area. The field size is fixed at construction,
// so width and height only have to match it.
func (c *Canvas) ClearFrame(_, _ float64) {
	c.screen.DrawRect(c.area, ' ')
}

// CellAt converts a field position to the cell that contains it.
func (c *Canvas) CellAt(x, y float64) (int, int) {
	col := c.area.X + int(math.Floor(x*c.sx))
	row := c.area.Y + int(math.Floor(y*c.sy))
	return col, row
}

// DrawCircle fills every cell whose center lies inside the projected circle.
// Circles smaller than a cell still mark the cell under their center so that
// bullets stay visible. Cells outside the canvas area are clipped.
func (c *Canvas) DrawCircle(x, y, r float64, color Color) {
	cx := float64(c.area.X) + x*c.sx
	cy := float64(c.area.Y) + y*c.sy
	rx := r * c.sx
	ry := r * c.sy

	drawn := false
	if rx > 0 && ry > 0 {
		minCol := int(math.Floor(cx - rx))
		maxCol := int(math.Ceil(cx + rx))
		minRow := int(math.Floor(cy - ry))
		maxRow := int(math.Ceil(cy + ry))

		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				dx := (float64(col) + 0.5 - cx) / rx
				dy := (float64(row) + 0.5 - cy) / ry
				if dx*dx+dy*dy > 1 {
					continue
				}
				if c.plot(col, row, color) {
					drawn = true
				}
			}
		}
	}

	if !drawn {
		col, row := c.CellAt(x, y)
		c.plot(col, row, color)
	}
}

// plot sets a cell if it lies inside the canvas area.
func (c *Canvas) plot(col, row int, color Color) bool {
	if !c.area.Contains(col, row) {
		return false
	}
	c.screen.SetCell(col, row, CircleRune, color)
	return true
}
