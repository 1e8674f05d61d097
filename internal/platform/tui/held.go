package tui

import "github.com/vovakirdan/circle-shooter/internal/core"

// DefaultReleaseAfter is how many ticks a direction stays held without a
// repeated key press.
const DefaultReleaseAfter = 30

// heldKeys emulates key release for terminals, which only report presses.
// A direction counts as held until no repeat arrives for releaseAfter ticks.
type heldKeys struct {
	releaseAfter int
	held         bool
	idle         int // Ticks since the last direction press
}

func newHeldKeys(releaseAfter int) heldKeys {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return heldKeys{releaseAfter: releaseAfter}
}

// observe updates the tracker with the frame collected since the last tick
// and adds ActionRelease once a held direction has gone quiet.
func (h *heldKeys) observe(frame *core.InputFrame) {
	pressed := false
	for a, on := range frame.Actions {
		if on && a.IsDirection() {
			pressed = true
			break
		}
	}

	switch {
	case pressed:
		h.held = true
		h.idle = 0
	case frame.Has(core.ActionRelease):
		h.held = false
		h.idle = 0
	case h.held:
		h.idle++
		if h.idle >= h.releaseAfter {
			frame.Set(core.ActionRelease)
			h.held = false
			h.idle = 0
		}
	}
}

func (h *heldKeys) reset() {
	h.held = false
	h.idle = 0
}
