package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circle-shooter/internal/core"
	"github.com/vovakirdan/circle-shooter/internal/games/shooter"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

// footerRows is the space kept below the game screen for the help line.
const footerRows = 1

// Options configures a game model.
type Options struct {
	Runtime      core.RuntimeConfig
	Store        *storage.Store // nil disables history
	Logger       *log.Logger    // nil discards log output
	ReleaseAfter int            // Ticks before a held direction is let go
	Player       string         // Shown in logs, e.g. the SSH user
}

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	game         *shooter.Game
	screen       *core.Screen
	painter      *Painter
	store        *storage.Store
	logger       *log.Logger
	config       core.RuntimeConfig
	baseSeed     int64
	player       string
	keys         *KeyMapper
	help         help.Model
	inputFrame   core.InputFrame
	held         heldKeys
	gameState    core.GameState
	sessionID    string
	ticking      bool
	outcomeSaved bool // Whether the outcome has been recorded for the current session
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *shooter.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		painter:    NewPainter(),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		baseSeed:   cfg.Seed,
		player:     opts.Player,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(opts.ReleaseAfter),
	}
	m.startSession()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// startSession resets the game with a fresh seed and session ID.
func (m *Model) startSession() {
	m.config.Seed = m.baseSeed
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.sessionID = storage.NewSessionID()
	m.outcomeSaved = false
	m.ticking = true
	m.inputFrame.Clear()
	m.held.reset()

	m.logger.Info("session started", "session", m.sessionID, "player", m.player, "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionRestart {
		// Ticks are halted once the game ends, so restart resumes them here
		if m.gameState.GameOver() && !m.ticking {
			m.startSession()
			return m, tickCmd(m.config.TickRate)
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The field keeps its size in
// world units; only the cell grid it is projected onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	m.held.observe(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver() {
		m.ticking = false
		m.recordOutcome()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// recordOutcome logs the finished session and saves it to history once.
func (m *Model) recordOutcome() {
	if m.outcomeSaved {
		return
	}
	m.outcomeSaved = true

	st := m.gameState
	m.logger.Info("session ended",
		"session", m.sessionID,
		"player", m.player,
		"status", st.Status,
		"ticks", st.Ticks,
		"shots", st.ShotsFired,
		"enemies_destroyed", st.EnemiesDestroyed,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveOutcome(storage.OutcomeEntry{
		SessionID:        m.sessionID,
		Outcome:          st.Status.String(),
		Ticks:            st.Ticks,
		Shots:            st.ShotsFired,
		EnemiesDestroyed: st.EnemiesDestroyed,
	})
	if err != nil {
		m.logger.Warn("could not save outcome", "session", m.sessionID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticking reports whether the frame scheduler is running.
func (m Model) Ticking() bool {
	return m.ticking
}

// SessionID returns the identifier of the current session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program with the given game.
func Run(game *shooter.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
