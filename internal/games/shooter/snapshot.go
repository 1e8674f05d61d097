package shooter

import "math"

// Snapshot contains the complete session state for replay and determinism checks.
// Uses primitive types only for stable serialization; positions are stored
// in thousandths of a field unit.
type Snapshot struct {
	Tick   uint64
	Status int
	Paused bool

	PlayerX, PlayerY   int
	PlayerVX, PlayerVY int

	ShotsFired       int
	EnemiesDestroyed int

	// Each bullet is 3 ints: ID, X, Y
	BulletCount int
	BulletData  []int

	// Each enemy is 4 ints: ID, X, Y, palette index (-1 if not in palette)
	EnemyCount int
	EnemyData  []int
}

// milli converts a field coordinate to fixed thousandths.
func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	stats := s.Stats()

	bullets := s.Bullets()
	bulletData := make([]int, 0, len(bullets)*3)
	for _, b := range bullets {
		bulletData = append(bulletData, int(b.ID), milli(b.Pos.X), milli(b.Pos.Y))
	}

	enemies := s.Enemies()
	enemyData := make([]int, 0, len(enemies)*4)
	for _, e := range enemies {
		colorIdx := -1
		for i, c := range s.cfg.Enemies.Palette {
			if c == e.Color {
				colorIdx = i
				break
			}
		}
		enemyData = append(enemyData, int(e.ID), milli(e.Pos.X), milli(e.Pos.Y), colorIdx)
	}

	return Snapshot{
		Tick:             uint64(max(0, stats.Ticks)), //nolint:gosec // ticks are never negative
		Status:           int(s.Status()),
		Paused:           g.paused,
		PlayerX:          milli(s.player.Pos.X),
		PlayerY:          milli(s.player.Pos.Y),
		PlayerVX:         milli(s.player.Vel.X),
		PlayerVY:         milli(s.player.Vel.Y),
		ShotsFired:       stats.ShotsFired,
		EnemiesDestroyed: stats.EnemiesDestroyed,
		BulletCount:      len(bullets),
		BulletData:       bulletData,
		EnemyCount:       len(enemies),
		EnemyData:        enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotsFired)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesDestroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
