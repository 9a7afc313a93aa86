package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTarget(t *testing.T) {
	t.Run("first in world order", func(t *testing.T) {
		w, _ := newTestWorld()
		brawler := NewCreature(CreatureBrawler)
		w.Add(V(1000, 1000), brawler)
		far := dummy("Far", TeamAlly, 5)
		near := dummy("Near", TeamAlly, 5)
		w.Add(V(1300, 1000), far)
		w.Add(V(1050, 1000), near)

		assert.Same(t, far, brawler.findTarget(w))
	})

	t.Run("out of sight", func(t *testing.T) {
		w, _ := newTestWorld()
		brawler := NewCreature(CreatureBrawler)
		w.Add(V(100, 100), brawler)
		w.Add(V(1900, 1900), dummy("Ally", TeamAlly, 5))

		assert.Nil(t, brawler.findTarget(w))
	})

	t.Run("invisible player", func(t *testing.T) {
		w, _ := newTestWorld()
		brawler := NewCreature(CreatureBrawler)
		w.Add(V(1000, 1000), brawler)
		player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
		w.Add(V(1100, 1000), player)

		assert.Same(t, player, brawler.findTarget(w))
		player.Player.Appearance = AppearanceInvisible
		assert.Nil(t, brawler.findTarget(w))
	})

	t.Run("allies leave neutrals alone", func(t *testing.T) {
		w, _ := newTestWorld()
		bot := NewCreature(CreatureAllyBot)
		w.Add(V(1000, 1000), bot)
		w.Add(V(1100, 1000), dummy("Tree", TeamNeutral, 25))

		assert.Nil(t, bot.findTarget(w))
	})
}

func TestMeleeAttack(t *testing.T) {
	w, sound := newTestWorld()
	brawler := NewCreature(CreatureBrawler)
	w.Add(V(1000, 1000), brawler)
	target := dummy("Ally", TeamAlly, 5)
	target.TakeKnockback = true
	w.Add(V(1010, 1000), target)

	brawler.AI.AttackTimer = 10000
	brawler.Update(w, 16)

	assert.Equal(t, 4.0, target.Health)
	assert.Equal(t, 0.0, brawler.AI.AttackTimer)
	assert.InDelta(t, 10*meleeKnockback, target.Vel.X, 1e-9)
	assert.Equal(t, 1, sound.played(SoundHit))
}

func TestMeleeMissKeepsCharge(t *testing.T) {
	w, _ := newTestWorld()
	brawler := NewCreature(CreatureBrawler)
	w.Add(V(1000, 1000), brawler)
	target := dummy("Ally", TeamAlly, 5)
	w.Add(V(1400, 1000), target)

	brawler.AI.AttackTimer = 10000
	brawler.Update(w, 16)

	assert.Equal(t, 5.0, target.Health)
	assert.Equal(t, 10000.0, brawler.AI.AttackTimer)
	assert.Greater(t, brawler.Vel.X, 0.0, "charges toward the target")
}

func TestRetreatWhileCharging(t *testing.T) {
	w, _ := newTestWorld()
	brawler := NewCreature(CreatureBrawler)
	w.Add(V(1000, 1000), brawler)
	w.Add(V(1050, 1000), dummy("Ally", TeamAlly, 5))

	brawler.Update(w, 16)
	assert.Equal(t, 16.0, brawler.AI.AttackTimer)
	assert.Less(t, brawler.Vel.X, 0.0, "backs off to the retreat radius")

	brawler.Update(w, 16)
	assert.Equal(t, 32.0, brawler.AI.AttackTimer)
}

func TestNoTargetPinsTimer(t *testing.T) {
	w, _ := newTestWorld()
	brawler := NewCreature(CreatureBrawler)
	w.Add(w.Center(), brawler)

	brawler.Update(w, 16)

	assert.Equal(t, brawler.AI.AttackInterval, brawler.AI.AttackTimer)
	assert.False(t, brawler.AI.Wandering)
}

func TestWanderToggle(t *testing.T) {
	w := NewWorld("Arena", V(2000, 2000), &Env{Rand: fixedRand{f: 0, n: 0}})
	brawler := NewCreature(CreatureBrawler)
	w.Add(w.Center(), brawler)

	brawler.Update(w, 16)

	assert.True(t, brawler.AI.Wandering)
	// heading 0 plus the forward push
	assert.InDelta(t, wanderHeadingSpeed+wanderAccel, brawler.Vel.X, 1e-9)
	assert.InDelta(t, 0, brawler.Vel.Y, 1e-9)
}

func TestRangedAttack(t *testing.T) {
	w, sound := newTestWorld()
	ranger := NewCreature(CreatureRanger)
	w.Add(V(1000, 1000), ranger)
	w.Add(V(1300, 1000), dummy("Ally", TeamAlly, 5))

	ranger.AI.AttackTimer = 5000
	ranger.Update(w, 16)

	require.Equal(t, 1, countNamed(w, "Arrow"))
	assert.Equal(t, 0.0, ranger.AI.AttackTimer)
	assert.Equal(t, 1, sound.played(SoundShootArrow))

	arrow := findNamed(w, "Arrow")
	assert.Greater(t, arrow.Vel.X, 0.0)
	assert.Equal(t, TeamEnemy, arrow.Team)
}

func TestFrozenRangedHoldsFire(t *testing.T) {
	w, _ := newTestWorld()
	ranger := NewCreature(CreatureRanger)
	w.Add(V(1000, 1000), ranger)
	w.Add(V(1300, 1000), dummy("Ally", TeamAlly, 5))

	ranger.AI.AttackTimer = 5000
	ranger.FrozenTimer = 1000
	ranger.Update(w, 16)

	assert.Equal(t, 0, countNamed(w, "Arrow"))
	assert.Equal(t, 5000.0, ranger.AI.AttackTimer)
}

func TestSpread(t *testing.T) {
	w, _ := newTestWorld()
	a := NewCreature(CreatureBrawler)
	b := NewCreature(CreatureBrawler)
	w.Add(w.Center(), a)
	w.Add(w.Center().Add(V(10, 0)), b)

	a.Update(w, 16)

	assert.InDelta(t, -1/(10+spreadDamping), a.Vel.X, 1e-9)
	assert.InDelta(t, 0, a.Vel.Y, 1e-9)
}

func TestDirectionalSprite(t *testing.T) {
	car := NewCreature(CreatureCar)
	r := fixedRand{n: 3}

	car.Vel = V(0.3, 0.1)
	rs := car.RenderState(r)
	assert.Equal(t, "car_side", rs.Sprite.Key)
	assert.False(t, rs.Flip)

	car.Vel = V(-0.3, 0.1)
	rs = car.RenderState(r)
	assert.Equal(t, "car_side", rs.Sprite.Key)
	assert.True(t, rs.Flip)

	car.Vel = V(0.1, 0.3)
	rs = car.RenderState(r)
	assert.Equal(t, "car_front", rs.Sprite.Key)
}
