// Package window runs the shooter in a desktop window using Ebitengine.
// Unlike terminals, Ebitengine reports real key releases, so steering
// follows the keys exactly.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/circle-shooter/internal/config"
	"github.com/vovakirdan/circle-shooter/internal/core"
	"github.com/vovakirdan/circle-shooter/internal/games/shooter"
	"github.com/vovakirdan/circle-shooter/internal/platform/palette"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

// background fills the field before each frame.
var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// Options configures the window front end.
type Options struct {
	Config   config.ShooterConfig
	Seed     int64   // 0 picks a time-based seed per session
	Scale    float64 // Window size relative to the field
	TickRate int
	Store    *storage.Store // nil disables history
	Logger   *log.Logger    // nil discards log output
}

// KeyState reports edge-triggered key events for the current tick.
type KeyState interface {
	IsKeyJustPressed(k ebiten.Key) bool
	IsKeyJustReleased(k ebiten.Key) bool
}

// ebitenKeys reads key events from Ebitengine.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) IsKeyJustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// keyActions maps window keys to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyP, core.ActionPause},
}

// steering maps direction actions to session directions.
var steering = []struct {
	action core.Action
	dir    shooter.Direction
}{
	{core.ActionLeft, shooter.DirLeft},
	{core.ActionRight, shooter.DirRight},
	{core.ActionUp, shooter.DirUp},
	{core.ActionDown, shooter.DirDown},
}

// Game implements ebiten.Game on top of the shooter game adapter.
type Game struct {
	game         *shooter.Game
	keys         KeyState
	store        *storage.Store
	logger       *log.Logger
	runtime      core.RuntimeConfig
	baseSeed     int64
	sessionID    string
	state        core.GameState
	outcomeSaved bool
}

// NewGame creates a window game and starts the first session.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rc := core.DefaultConfig()
	if opts.TickRate > 0 {
		rc.TickRate = opts.TickRate
	}

	g := &Game{
		game:     shooter.New(opts.Config),
		keys:     ebitenKeys{},
		store:    opts.Store,
		logger:   logger,
		runtime:  rc,
		baseSeed: opts.Seed,
	}
	g.start()
	return g
}

// start resets the game with a fresh seed and session ID.
func (g *Game) start() {
	g.runtime.Seed = g.baseSeed
	if g.runtime.Seed == 0 {
		g.runtime.Seed = time.Now().UnixNano()
	}

	g.game.Reset(g.runtime)
	g.state = g.game.State()
	g.sessionID = storage.NewSessionID()
	g.outcomeSaved = false

	g.logger.Info("session started", "session", g.sessionID, "seed", g.runtime.Seed)
}

// frame collects this tick's key events into an input frame. Presses are
// applied before releases, so any release stops the player on both axes.
func (g *Game) frame() core.InputFrame {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		if g.keys.IsKeyJustPressed(ka.key) {
			in.Set(ka.action)
		}
	}
	return in
}

// released reports whether any steering key went up this tick.
func (g *Game) released() bool {
	for _, ka := range keyActions {
		if ka.action.IsDirection() && g.keys.IsKeyJustReleased(ka.key) {
			return true
		}
	}
	return false
}

// Update advances one frame. Stepping halts once the game is over.
func (g *Game) Update() error {
	if g.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.state.GameOver() {
		if g.keys.IsKeyJustPressed(ebiten.KeyR) {
			g.start()
		}
		return nil
	}

	in := g.frame()
	// Steer the session directly so releases land after presses. A release
	// during the pause still stops the player.
	s := g.game.Session()
	if !g.state.Paused {
		for _, da := range steering {
			if in.Has(da.action) {
				s.Move(da.dir)
			}
		}
	}
	if g.released() {
		s.Release()
	}

	// Steering is already applied; the adapter handles fire and pause
	step := core.NewInputFrame()
	if in.Has(core.ActionFire) {
		step.Set(core.ActionFire)
	}
	if in.Has(core.ActionPause) {
		step.Set(core.ActionPause)
	}
	g.state = g.game.Step(step).State

	if g.state.GameOver() {
		g.recordOutcome()
	}
	return nil
}

// recordOutcome logs the finished session and saves it to history once.
func (g *Game) recordOutcome() {
	if g.outcomeSaved {
		return
	}
	g.outcomeSaved = true

	st := g.state
	g.logger.Info("session ended",
		"session", g.sessionID,
		"status", st.Status,
		"ticks", st.Ticks,
		"shots", st.ShotsFired,
		"enemies_destroyed", st.EnemiesDestroyed,
	)

	if g.store == nil {
		return
	}
	_, err := g.store.SaveOutcome(storage.OutcomeEntry{
		SessionID:        g.sessionID,
		Outcome:          st.Status.String(),
		Ticks:            st.Ticks,
		Shots:            st.ShotsFired,
		EnemiesDestroyed: st.EnemiesDestroyed,
	})
	if err != nil {
		g.logger.Warn("could not save outcome", "session", g.sessionID, "error", err)
	}
}

// Draw renders the field, the HUD and the outcome line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Session().Render(surface{dst: screen})

	st := g.state
	ebitenutil.DebugPrintAt(screen, HUDLine(st), 8, 8)

	if msg := OutcomeLine(st); msg != "" {
		w, h := g.game.Session().Field()
		// DebugPrint glyphs are 6x16
		x := int(w)/2 - len(msg)*3
		ebitenutil.DebugPrintAt(screen, msg, max(x, 0), int(h)/2-8)
	}
}

// Layout keeps the logical screen at the field size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.Session().Field()
	return int(w), int(h)
}

// State returns the last observed game state.
func (g *Game) State() core.GameState {
	return g.state
}

// HUDLine formats the counters shown at the top of the window.
func HUDLine(st core.GameState) string {
	return fmt.Sprintf("Enemies: %d  Shots: %d  Frame: %d", st.EnemiesLeft, st.ShotsFired, st.Ticks)
}

// OutcomeLine returns the centered message for the current state, or "".
func OutcomeLine(st core.GameState) string {
	switch {
	case st.Status == core.StatusLost:
		return "GAME OVER - R to restart, Esc to quit"
	case st.Status == core.StatusWon:
		return "YOU WON - R to play again, Esc to quit"
	case st.Paused:
		return "PAUSED - P to resume"
	}
	return ""
}

// surface draws session circles onto an Ebitengine image.
type surface struct {
	dst *ebiten.Image
}

func (s surface) ClearFrame(_, _ float64) {
	s.dst.Fill(background)
}

func (s surface) DrawCircle(x, y, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), palette.Resolve(c), true)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("window: invalid game config: %w", err)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := NewGame(opts)
	w, h := g.game.Session().Field()

	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetTPS(g.runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
