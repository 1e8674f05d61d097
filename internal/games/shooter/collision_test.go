package shooter

import (
	"testing"

	"github.com/vovakirdan/circle-shooter/internal/core"
)

func circle(id EntityID, x, y, r float64) Entity {
	return Entity{ID: id, Pos: core.Vec2{X: x, Y: y}, Radius: r}
}

func TestColliding(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		margin   float64
		expected bool
	}{
		{"overlapping", circle(1, 0, 0, 20), circle(2, 10, 0, 20), 0, true},
		{"touching rims", circle(1, 0, 0, 20), circle(2, 40, 0, 20), 0, true},
		{"gap just under epsilon", circle(1, 0, 0, 20), circle(2, 40.9, 0, 20), 0, true},
		{"gap equal to epsilon", circle(1, 0, 0, 20), circle(2, 41, 0, 20), 0, false},
		{"far apart", circle(1, 0, 0, 20), circle(2, 100, 0, 20), 0, false},
		{"margin pulls in", circle(1, 0, 0, 20), circle(2, 50, 0, 20), 10, true},
		{"margin not enough", circle(1, 0, 0, 20), circle(2, 51, 0, 20), 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Colliding(tc.a, tc.b, tc.margin, 1); got != tc.expected {
				t.Errorf("Colliding() = %v, expected %v", got, tc.expected)
			}
			if got := Colliding(tc.b, tc.a, tc.margin, 1); got != tc.expected {
				t.Errorf("Colliding() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerHit(t *testing.T) {
	player := circle(1, 250, 300, 20)
	enemies := []Entity{
		circle(10, 100, 100, 20),
		circle(11, 250, 250, 20), // 50 away: 50-40+10 = 20, safe
		circle(12, 250, 270, 20), // 30 away: 30-40+10 = 0, hit
		circle(13, 260, 300, 20), // also hit, but later in order
	}

	id, hit := PlayerHit(player, enemies, 10, 1)
	if !hit {
		t.Fatal("PlayerHit() should report a hit")
	}
	if id != 12 {
		t.Errorf("PlayerHit() = %d, expected first touching enemy 12", id)
	}

	if _, hit := PlayerHit(player, enemies[:2], 10, 1); hit {
		t.Error("PlayerHit() reported a hit with no enemy in range")
	}
	if _, hit := PlayerHit(player, nil, 10, 1); hit {
		t.Error("PlayerHit() with no enemies must not hit")
	}
}

func TestBulletHitsOrderAndMultiplicity(t *testing.T) {
	enemies := []Entity{
		circle(10, 100, 100, 20),
		circle(11, 140, 100, 20),
		circle(12, 400, 100, 20),
	}
	bullets := []Entity{
		circle(20, 120, 100, 5), // between enemies 10 and 11, touches both
		circle(21, 100, 120, 5), // touches enemy 10
		circle(22, 250, 500, 5), // touches nothing
	}

	hits := BulletHits(bullets, enemies, 1)
	expected := []Hit{
		{Bullet: 20, Enemy: 10},
		{Bullet: 21, Enemy: 10},
		{Bullet: 20, Enemy: 11},
	}

	if len(hits) != len(expected) {
		t.Fatalf("BulletHits() = %v, expected %v", hits, expected)
	}
	for i := range expected {
		if hits[i] != expected[i] {
			t.Errorf("hit %d = %+v, expected %+v", i, hits[i], expected[i])
		}
	}
}

func TestBulletHitsNoMargin(t *testing.T) {
	// 31 apart: 31-25 = 6, which the player margin would catch but bullets must not
	enemies := []Entity{circle(10, 100, 100, 20)}
	bullets := []Entity{circle(20, 100, 131, 5)}

	if hits := BulletHits(bullets, enemies, 1); len(hits) != 0 {
		t.Errorf("BulletHits() = %v, expected none", hits)
	}
}
