package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemBob(t *testing.T) {
	apple := newAppleItem()
	apple.Pos = V(100, 100)
	apple.Time = math.Pi / 2 / bobFrequency

	hb := apple.Hitbox()
	assert.InDelta(t, 100+bobAmplitude, hb.Center().Y, 1e-9)
	assert.Equal(t, V(100, 100), apple.Pos, "the stored position never moves")
}

func TestPickupCondition(t *testing.T) {
	w, _ := newTestWorld()
	player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
	w.Add(V(1000, 1000), player)

	allowed := false
	collected := 0
	item := NewItem("Thing", itemSprite("thing"),
		func(*Entity, *World) { collected++ },
		func(*Entity) bool { return allowed },
	)
	w.Add(V(1000, 1000), item)
	cs := NewCollisionSystem()

	cs.CheckCollisions(w)
	assert.True(t, item.Alive())
	assert.Equal(t, 0, collected)

	allowed = true
	cs.CheckCollisions(w)
	assert.False(t, item.Alive())
	assert.Equal(t, 1, collected)

	cs.CheckCollisions(w)
	assert.Equal(t, 1, collected)
}

func TestPickupIgnoresOthers(t *testing.T) {
	w, _ := newTestWorld()
	brawler := NewCreature(CreatureBrawler)
	w.Add(V(1000, 1000), brawler)
	item := newShieldItem()
	w.Add(V(1000, 1000), item)

	item.Collide(brawler, w)
	assert.True(t, item.Alive())
}

func TestPlayerItems(t *testing.T) {
	w, _ := newTestWorld()
	player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
	w.Add(V(1000, 1000), player)

	apple := newAppleItem()
	w.Add(V(1000, 1000), apple)
	apple.Collide(player, w)
	assert.True(t, apple.Alive(), "no healing at full health")

	player.Health = 15
	apple.Collide(player, w)
	assert.False(t, apple.Alive())
	assert.Equal(t, 20.0, player.Health, "healing stops at the maximum")

	shield := newShieldItem()
	w.Add(V(1000, 1000), shield)
	shield.Collide(player, w)
	assert.Equal(t, 30.0, player.MaxHealth)
	assert.Equal(t, 20.0, player.Health)

	dmg := newDamageUpItem()
	w.Add(V(1000, 1000), dmg)
	dmg.Collide(player, w)
	assert.Equal(t, 1.5, player.Player.DamageMultiplier)
}
