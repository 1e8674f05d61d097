package shooter

import (
	"fmt"

	"github.com/vovakirdan/circle-shooter/internal/config"
	"github.com/vovakirdan/circle-shooter/internal/core"
)

// HUD layout
const (
	hudRows = 1 // Rows reserved above the field
)

// directionActions maps steering actions to directions, in application order.
var directionActions = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
}

// Game adapts a Session to the platform's tick/render loop. It turns
// semantic input frames into session calls and renders into a Screen.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	session *Session
	paused  bool
}

// New creates a new shooter game instance for the given configuration.
func New(cfg config.ShooterConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circle Shooter"
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg, runtime.Seed)
	g.paused = false
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Release first so a press in the same frame wins. Releases land even
	// while paused so a key let go during the pause stops the player.
	if in.Has(core.ActionRelease) {
		g.session.Release()
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, da := range directionActions {
		if in.Has(da.action) {
			g.session.Move(da.dir)
		}
	}
	if in.Has(core.ActionFire) {
		g.session.Fire()
	}

	g.session.Step()

	return core.StepResult{State: g.State()}
}

// Render draws the HUD, the field and any overlay message to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	area := core.NewRect(0, hudRows, dst.Width(), max(dst.Height()-hudRows, 0))
	w, h := g.session.Field()
	g.session.Render(core.NewCanvas(dst, area, w, h))

	st := g.State()
	hud := fmt.Sprintf(" Enemies: %d  Shots: %d  Frame: %d ", st.EnemiesLeft, st.ShotsFired, st.Ticks)
	dst.DrawColoredText(1, 0, hud, core.ColorHUD)

	switch {
	case st.Status == core.StatusLost:
		g.drawCenteredMessage(dst, "GAME OVER", "Press R to restart  |  Q to quit")
	case st.Status == core.StatusWon:
		g.drawCenteredMessage(dst, "YOU WON", "Press R to play again  |  Q to quit")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawColoredText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorOutcome)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.session.Stats()
	return core.GameState{
		Status:           g.session.Status(),
		Paused:           g.paused,
		Ticks:            stats.Ticks,
		ShotsFired:       stats.ShotsFired,
		EnemiesDestroyed: stats.EnemiesDestroyed,
		EnemiesLeft:      g.session.enemies.Len(),
	}
}
