package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileRange(t *testing.T) {
	w, _ := newTestWorld()
	cfg := GetProjectileConfig(ProjectileBullet)
	require.Equal(t, 450.0, cfg.Range)
	require.Equal(t, 1.25, cfg.Speed)

	bullet := NewProjectile(cfg, TeamAlly, V(1, 0), nil)
	deaths := 0
	bullet.OnDeath = func(*Entity, *World, Team) { deaths++ }
	w.Add(V(100, 1000), bullet)

	// 12.5 units per 10ms step: 36 steps cover exactly 450
	for i := 0; i < 36; i++ {
		bullet.Update(w, 10)
		require.True(t, bullet.Alive(), "step %d", i)
	}
	assert.InDelta(t, 450, bullet.Projectile.Distance, 1e-9)

	bullet.Update(w, 10)
	assert.False(t, bullet.Alive())
	assert.Equal(t, 1, deaths)
}

func TestProjectileRangeIgnoresParentVelocity(t *testing.T) {
	w, _ := newTestWorld()
	parent := dummy("Shooter", TeamAlly, 5)
	parent.Vel = V(0, 0.5)
	w.Add(V(1000, 1000), parent)

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(1, 0), parent)
	w.Add(parent.Pos, bullet)
	assert.Equal(t, V(1.25, 0.5), bullet.Vel)

	bullet.Speed = 10 // let the inherited velocity through the clamp
	bullet.Update(w, 10)
	assert.InDelta(t, 12.5, bullet.Projectile.Distance, 1e-9)
}

func TestProjectileGraceAtBorder(t *testing.T) {
	w, _ := newTestWorld()
	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(-1, 0), nil)
	w.Add(V(5, 1000), bullet)

	bullet.Update(w, 16)
	assert.True(t, bullet.Alive(), "no border death during the grace period")
	assert.Less(t, bullet.Pos.X, 0.0, "projectiles are not clamped")

	for i := 0; i < 3; i++ {
		bullet.Update(w, 16)
	}
	assert.False(t, bullet.Alive())

	t.Run("open border", func(t *testing.T) {
		open, _ := newTestWorld()
		open.SolidBorder = false
		arrow := NewProjectile(GetProjectileConfig(ProjectileArrow), TeamAlly, V(-1, 0), nil)
		open.Add(V(5, 1000), arrow)
		for i := 0; i < 5; i++ {
			arrow.Update(open, 16)
		}
		assert.True(t, arrow.Alive())
	})
}

func TestBlockableProjectileHitsOnce(t *testing.T) {
	w, _ := newTestWorld()
	target := dummy("Brawler", TeamEnemy, 10)
	w.Add(V(1000, 1000), target)

	player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
	player.Player.DamageMultiplier = 1.5
	w.Add(V(500, 500), player)

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(1, 0), player)
	deaths := 0
	bullet.OnDeath = func(*Entity, *World, Team) { deaths++ }
	w.Add(V(1000, 1000), bullet)

	NewCollisionSystem().CheckCollisions(w)

	assert.Equal(t, 10-2*1.5, target.Health)
	assert.Equal(t, shakeDuration, target.ShakeTimer)
	assert.False(t, bullet.Alive())
	assert.Equal(t, 1, deaths)

	NewCollisionSystem().CheckCollisions(w)
	assert.Equal(t, 7.0, target.Health, "a dead projectile stops colliding")
}

func TestNonBlockablePassesThrough(t *testing.T) {
	w, _ := newTestWorld()
	first := dummy("First", TeamEnemy, 10)
	second := dummy("Second", TeamEnemy, 10)
	w.Add(V(1000, 1000), first)
	w.Add(V(1200, 1000), second)

	arrow := NewProjectile(GetProjectileConfig(ProjectileArrow), TeamAlly, V(1, 0), nil)
	w.Add(V(1000, 1000), arrow)
	cs := NewCollisionSystem()

	cs.CheckCollisions(w)
	assert.Equal(t, 8.0, first.Health)
	assert.True(t, arrow.Alive())

	cs.CheckCollisions(w)
	assert.Equal(t, 8.0, first.Health, "one hit per contact run")

	arrow.Pos = V(1200, 1000)
	cs.CheckCollisions(w)
	assert.Equal(t, 8.0, second.Health)
	assert.True(t, arrow.Alive())
	assert.False(t, arrow.Touching(first))
	assert.True(t, arrow.Touching(second))

	arrow.Pos = V(1000, 1000)
	cs.CheckCollisions(w)
	assert.Equal(t, 6.0, first.Health, "a new contact run hits again")
}

func TestProjectileThawsFriends(t *testing.T) {
	w, _ := newTestWorld()
	friend := dummy("Friend", TeamAlly, 5)
	friend.FrozenTimer = 2000
	w.Add(V(1000, 1000), friend)

	shooter := dummy("Shooter", TeamAlly, 5)
	shooter.FrozenTimer = 2000
	w.Add(V(1000, 1000), shooter)

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(1, 0), shooter)
	w.Add(V(1000, 1000), bullet)

	bullet.Collide(friend, w)
	assert.Equal(t, 0.0, friend.FrozenTimer)
	assert.Equal(t, 5.0, friend.Health)
	assert.True(t, bullet.Alive(), "friends don't block")

	bullet.Collide(shooter, w)
	assert.Equal(t, 2000.0, shooter.FrozenTimer, "the shooter stays frozen")
}

func TestProjectileBlockedBySolid(t *testing.T) {
	w, _ := newTestWorld()
	rock := NewEntity("Rock", Sprite{Width: 85, Height: 50}, TeamNeutral)
	rock.Solid = true
	w.Add(V(1000, 1000), rock)

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(1, 0), nil)
	w.Add(V(1000, 1000), bullet)

	bullet.Collide(rock, w)
	assert.False(t, bullet.Alive())
	assert.Equal(t, 100.0, rock.Health)
	assert.Equal(t, shakeDuration, rock.ShakeTimer)
}

func TestProjectileDeflectedByMetalsuit(t *testing.T) {
	w, sound := newTestWorld()
	player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
	player.Invincible = true
	player.TakeKnockback = false
	w.Add(V(1000, 1000), player)

	arrow := NewProjectile(GetProjectileConfig(ProjectileArrow), TeamEnemy, V(1, 0), nil)
	w.Add(V(1000, 1000), arrow)

	arrow.Collide(player, w)

	assert.False(t, arrow.Alive())
	assert.Equal(t, 20.0, player.Health)
	assert.Equal(t, 1, sound.played(SoundOwPlayer))
}

func TestBlockableProjectileDeflectedByMetalsuit(t *testing.T) {
	w, sound := newTestWorld()
	player := NewPlayer("Player", Sprite{Width: 60, Height: 90}, 0.65, 20)
	player.Invincible = true
	player.TakeKnockback = false
	w.Add(V(1000, 1000), player)

	boomer := dummy("Boomer", TeamEnemy, 10)
	w.Add(V(1300, 1000), boomer)
	GrenadeShot(w, boomer, TeamEnemy, V(-1, 0))
	grenade := findNamed(w, "Grenade")
	require.NotNil(t, grenade)
	grenade.Pos = player.Pos

	NewCollisionSystem().CheckCollisions(w)

	assert.False(t, grenade.Alive())
	assert.Equal(t, 20.0, player.Health)
	assert.Zero(t, countNamed(w, "Explosion"), "deflected grenades don't go off")
	assert.Zero(t, sound.played(SoundBoom))

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamEnemy, V(1, 0), nil)
	bullet.OnDeath = SpawnPoof
	w.Add(player.Pos, bullet)
	bullet.Collide(player, w)

	assert.False(t, bullet.Alive())
	assert.Zero(t, countNamed(w, "Poof"))
}

func TestProjectileKnockbackAndImpact(t *testing.T) {
	w, _ := newTestWorld()
	target := dummy("Target", TeamEnemy, 10)
	target.TakeKnockback = true
	w.Add(V(1010, 1000), target)

	bullet := NewProjectile(GetProjectileConfig(ProjectileBullet), TeamAlly, V(1, 0), nil)
	var impacted *Entity
	bullet.Projectile.Impact = func(_, other *Entity) { impacted = other }
	w.Add(V(1000, 1000), bullet)

	bullet.Collide(target, w)

	assert.Same(t, target, impacted)
	assert.InDelta(t, 10*projectileKnockback, target.Vel.X, 1e-9)
}

func TestShotgunSpread(t *testing.T) {
	w, sound := newTestWorld()
	parent := dummy("Shooter", TeamAlly, 5)
	w.Add(V(1000, 1000), parent)

	ShotgunShot(w, parent, TeamAlly, V(0, 1))

	require.Equal(t, 3, countNamed(w, "Bullet"))
	angles := []float64{}
	for _, e := range w.Entities() {
		if e.Name == "Bullet" {
			angles = append(angles, e.Vel.Angle())
			assert.Equal(t, shotgunRange, e.Projectile.Range)
		}
	}
	assert.InDeltaSlice(t, []float64{90 - 17.5, 90, 90 + 17.5}, angles, 1e-9)
	assert.Equal(t, 1, sound.played(SoundShootShotgun))
}

func TestGrenadeExplodes(t *testing.T) {
	w, sound := newTestWorld()
	parent := dummy("Boomer", TeamEnemy, 5)
	w.Add(V(1000, 1000), parent)

	GrenadeShot(w, parent, TeamEnemy, V(1, 0))
	grenade := findNamed(w, "Grenade")
	require.NotNil(t, grenade)

	for i := 0; i < 30 && grenade.Alive(); i++ {
		grenade.Update(w, 16)
	}
	assert.False(t, grenade.Alive())

	explosion := findNamed(w, "Explosion")
	require.NotNil(t, explosion)
	assert.Equal(t, TeamEnemy, explosion.Team)
	assert.False(t, explosion.Projectile.Blockable)
	assert.Equal(t, 1, sound.played(SoundBoom))
}
