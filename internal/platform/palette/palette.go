// Package palette turns core color tokens into concrete colors for the
// front ends. Tokens are either #rrggbb hex strings or CSS color names.
package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/circle-shooter/internal/core"
)

// Fallback is used for the default token and anything that fails to parse.
var Fallback = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Resolve converts a token to an opaque color.
func Resolve(token core.Color) color.Color {
	c, ok := lookup(token)
	if !ok {
		return Fallback
	}
	return c
}

// Hex converts a token to a lowercase #rrggbb string, or "" for the default
// token and unknown names so callers can keep the terminal's own color.
func Hex(token core.Color) string {
	c, ok := lookup(token)
	if !ok {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Valid reports whether a token names a color this package can resolve.
func Valid(token core.Color) bool {
	_, ok := lookup(token)
	return ok
}

func lookup(token core.Color) (color.RGBA, bool) {
	s := strings.TrimSpace(string(token))
	if s == "" {
		return color.RGBA{}, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	return c, ok
}
