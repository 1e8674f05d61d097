package shooter

import "github.com/vovakirdan/circle-shooter/internal/core"

// Colliding reports whether two circles touch: the gap between their rims,
// grown by margin, is below epsilon.
func Colliding(a, b Entity, margin, epsilon float64) bool {
	gap := core.Distance(a.Pos, b.Pos) - a.Radius - b.Radius
	return gap+margin < epsilon
}

// PlayerHit checks the player against every enemy in order and returns the
// first enemy it touches. The margin makes the check fire before the
// circles visibly overlap.
func PlayerHit(player Entity, enemies []Entity, margin, epsilon float64) (EntityID, bool) {
	for _, enemy := range enemies {
		if Colliding(player, enemy, margin, epsilon) {
			return enemy.ID, true
		}
	}
	return 0, false
}

// Hit is a bullet-enemy pair found touching in a frame.
type Hit struct {
	Bullet EntityID
	Enemy  EntityID
}

// BulletHits returns every touching bullet-enemy pair, enemies in the outer
// loop and bullets in the inner one, both in insertion order. A bullet may
// appear in several pairs.
func BulletHits(bullets, enemies []Entity, epsilon float64) []Hit {
	var hits []Hit
	for _, enemy := range enemies {
		for _, bullet := range bullets {
			if Colliding(bullet, enemy, 0, epsilon) {
				hits = append(hits, Hit{Bullet: bullet.ID, Enemy: enemy.ID})
			}
		}
	}
	return hits
}
