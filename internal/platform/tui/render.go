package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/circle-shooter/internal/core"
	"github.com/vovakirdan/circle-shooter/internal/platform/palette"
)

// Painter converts Screen buffers to styled strings. Styles are cached per
// color token; a Painter belongs to one program and is not safe for
// concurrent use.
type Painter struct {
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter with an empty style cache.
func NewPainter() *Painter {
	return &Painter{styles: make(map[core.Color]lipgloss.Style)}
}

// style returns the lipgloss style for a color token.
func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	if hex := palette.Hex(c); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	p.styles[c] = st
	return st
}

// Paint renders a Screen buffer to a string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
