package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/circle-shooter/internal/core"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestPainterKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawText(0, 0, "plain")
	scr.DrawColoredText(2, 1, "green", core.ColorPlayer)
	scr.SetCell(5, 2, core.CircleRune, core.ColorBullet)

	p := NewPainter()
	got := ansiEscape.ReplaceAllString(p.Paint(scr), "")

	if got != scr.String() {
		t.Errorf("Paint() text = %q, expected %q", got, scr.String())
	}
}

func TestPainterCachesStyles(t *testing.T) {
	scr := core.NewScreen(4, 1)
	scr.SetCell(0, 0, core.CircleRune, core.ColorTeal)
	scr.SetCell(2, 0, core.CircleRune, core.ColorTeal)

	p := NewPainter()
	p.Paint(scr)

	if len(p.styles) != 1 {
		t.Errorf("cached %d styles, expected 1", len(p.styles))
	}
	if _, ok := p.styles[core.ColorTeal]; !ok {
		t.Error("style for the used color was not cached")
	}
}
