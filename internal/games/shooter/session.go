package shooter

import (
	"math/rand"

	"github.com/vovakirdan/circle-shooter/internal/config"
	"github.com/vovakirdan/circle-shooter/internal/core"
)

// Stats counts what happened in the current session.
type Stats struct {
	Ticks            int // Frames simulated while running
	ShotsFired       int
	EnemiesDestroyed int
}

// Session owns all mutable state of one game: the player, the bullet and
// enemy pools, and the status. It is driven by an external frame scheduler
// calling Step once per frame and must not be shared between goroutines.
type Session struct {
	cfg     config.ShooterConfig
	rng     *rand.Rand
	player  Entity
	bullets *Pool
	enemies *Pool
	status  core.Status
	stats   Stats
	nextID  EntityID
}

// NewSession creates a running session for the given configuration. The
// seed drives enemy color selection only.
func NewSession(cfg config.ShooterConfig, seed int64) *Session {
	s := &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // game RNG, not security
		bullets: NewPool(),
		enemies: NewPool(),
	}
	s.Start()
	return s
}

// Start resets the session: player back at spawn with zero velocity, the
// enemy row repopulated, bullets cleared, counters zeroed, status Running.
func (s *Session) Start() {
	s.nextID = 0
	s.stats = Stats{}
	s.status = core.StatusRunning

	s.player = Entity{
		ID:     s.newID(),
		Kind:   KindPlayer,
		Pos:    core.Vec2{X: s.cfg.Player.SpawnX, Y: s.cfg.Player.SpawnY},
		Radius: s.cfg.Player.Radius,
		Color:  s.cfg.Player.Color,
	}

	s.bullets.Clear()
	s.enemies.Clear()
	s.spawnEnemies()
}

// spawnEnemies fills the enemy pool with the configured row.
func (s *Session) spawnEnemies() {
	vel := core.Vec2{X: s.cfg.Enemies.VelocityX, Y: s.cfg.Enemies.VelocityY}
	for i := 0; i < s.cfg.Enemies.Count; i++ {
		s.enemies.Add(Entity{
			ID:     s.newID(),
			Kind:   KindEnemy,
			Pos:    s.cfg.EnemyPosition(i),
			Vel:    vel,
			Radius: s.cfg.Enemies.Radius,
			Color:  s.pickEnemyColor(),
		})
	}
}

// pickEnemyColor draws a palette entry uniformly at random.
func (s *Session) pickEnemyColor() core.Color {
	palette := s.cfg.Enemies.Palette
	if len(palette) == 0 {
		return core.ColorDefault
	}
	return palette[s.rng.Intn(len(palette))]
}

func (s *Session) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Fire spawns a bullet just above the player's center moving straight up.
// Returns false and does nothing unless the session is running.
func (s *Session) Fire() bool {
	if s.status.Terminal() {
		return false
	}

	s.bullets.Add(Entity{
		ID:     s.newID(),
		Kind:   KindBullet,
		Pos:    core.Vec2{X: s.player.Pos.X, Y: s.player.Pos.Y - s.player.Radius},
		Vel:    core.Vec2{X: 0, Y: -s.cfg.Bullet.Speed},
		Radius: s.cfg.Bullet.Radius,
		Color:  s.cfg.Bullet.Color,
	})
	s.stats.ShotsFired++
	return true
}

// SetPlayerVelocity sets the player's per-frame velocity.
// Ignored once the session has ended.
func (s *Session) SetPlayerVelocity(vx, vy float64) {
	if s.status.Terminal() {
		return
	}
	s.player.Vel = core.Vec2{X: vx, Y: vy}
}

// Move steers the player at full speed along the pressed direction's axis.
// The other axis keeps its current velocity.
func (s *Session) Move(dir Direction) {
	vel := s.player.Vel
	speed := s.cfg.Player.Speed

	switch dir {
	case DirLeft:
		vel.X = -speed
	case DirRight:
		vel.X = speed
	case DirUp:
		vel.Y = -speed
	case DirDown:
		vel.Y = speed
	default:
		return
	}
	s.SetPlayerVelocity(vel.X, vel.Y)
}

// Release stops the player on both axes, as when any direction key is let go.
func (s *Session) Release() {
	s.SetPlayerVelocity(0, 0)
}

// Step advances the session by one frame and returns the resulting status.
// It is a no-op once the session has been lost or won.
//
// Frame order:
//  1. advance the player and clamp it to the field
//  2. advance bullets, marking those past the top edge
//  3. advance enemies
//  4. player vs enemies: any touch loses the game and ends the frame
//  5. bullets vs enemies: mark every touching pair
//  6. sweep marked bullets and enemies
//  7. no enemies left wins the game
func (s *Session) Step() core.Status {
	if s.status.Terminal() {
		return s.status
	}
	s.stats.Ticks++

	w, h := s.Field()
	eps := s.cfg.Collision.Epsilon

	s.player.Advance()
	ClampToField(&s.player, w, h)

	s.bullets.Each(func(b *Entity) {
		b.Advance()
		if b.Pos.Y < 0 {
			s.bullets.MarkRemoved(b.ID)
		}
	})

	s.enemies.Each(func(e *Entity) {
		e.Advance()
	})

	enemies := s.enemies.Items()
	if _, hit := PlayerHit(s.player, enemies, s.cfg.LossMargin(), eps); hit {
		s.status = core.StatusLost
		return s.status
	}

	for _, hit := range BulletHits(s.bullets.Items(), enemies, eps) {
		s.bullets.MarkRemoved(hit.Bullet)
		s.enemies.MarkRemoved(hit.Enemy)
	}

	s.bullets.Sweep()
	s.stats.EnemiesDestroyed += s.enemies.Sweep()

	if s.enemies.Len() == 0 {
		s.status = core.StatusWon
	}
	return s.status
}

// Status returns the current session status.
func (s *Session) Status() core.Status {
	return s.status
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Field returns the playing field dimensions.
func (s *Session) Field() (w, h float64) {
	return s.cfg.Field.Width, s.cfg.Field.Height
}

// Player returns a copy of the player entity.
func (s *Session) Player() Entity {
	return s.player
}

// Bullets returns a copy of the live bullets in firing order.
func (s *Session) Bullets() []Entity {
	return s.bullets.Items()
}

// Enemies returns a copy of the live enemies in spawn order.
func (s *Session) Enemies() []Entity {
	return s.enemies.Items()
}
