package sim

// ProjectileType defines the kinds of projectiles
type ProjectileType int

const (
	ProjectileBullet ProjectileType = iota
	ProjectileArrow
	ProjectileGrenade
	ProjectileExplosion
)

// ProjectileConfig holds the stats of a projectile type
type ProjectileConfig struct {
	Name   string
	Sprite Sprite
	Size   Vec // hitbox, zero means the sprite size

	Speed  float64 // units per ms
	Damage float64
	Range  float64 // distance traveled before it expires

	Blockable bool
	Rotate    bool // face the launch direction
}

// GetProjectileConfig returns configuration for a projectile type
func GetProjectileConfig(t ProjectileType) ProjectileConfig {
	switch t {
	case ProjectileBullet:
		return ProjectileConfig{
			Name:      "Bullet",
			Sprite:    Sprite{Key: "bullet", Width: 24, Height: 12},
			Speed:     1.25,
			Damage:    2,
			Range:     450,
			Blockable: true,
			Rotate:    true,
		}
	case ProjectileArrow:
		return ProjectileConfig{
			Name:      "Arrow",
			Sprite:    Sprite{Key: "arrow", Width: 48, Height: 12},
			Speed:     1.8,
			Damage:    2,
			Range:     650,
			Blockable: false,
			Rotate:    true,
		}
	case ProjectileGrenade:
		return ProjectileConfig{
			Name:      "Grenade",
			Sprite:    Sprite{Key: "grenade", Width: 26, Height: 26},
			Speed:     1,
			Damage:    2,
			Range:     400,
			Blockable: true,
			Rotate:    true,
		}
	case ProjectileExplosion:
		return ProjectileConfig{
			Name:      "Explosion",
			Sprite:    Sprite{Key: "explosion", Width: 120, Height: 120},
			Speed:     0.05,
			Damage:    3,
			Range:     10,
			Blockable: false,
			Rotate:    true,
		}
	default:
		return GetProjectileConfig(ProjectileBullet)
	}
}

// Shotgun pattern
const (
	shotgunPellets = 3
	shotgunSpread  = 35.0 // degrees across all pellets
	shotgunRange   = 250.0
)

// Death effects
const (
	poofLifetime = 100.0
	graveHealth  = 25.0
)

// SingleShot fires one bullet
func SingleShot(w *World, parent *Entity, team Team, dir Vec) {
	w.env.playSound(SoundShoot, parent.Pos)
	fireBullet(w, parent, team, dir, GetProjectileConfig(ProjectileBullet))
}

// ShotgunShot fires a fan of short-range bullets centered on dir
func ShotgunShot(w *World, parent *Entity, team Team, dir Vec) {
	w.env.playSound(SoundShootShotgun, parent.Pos)

	cfg := GetProjectileConfig(ProjectileBullet)
	cfg.Range = shotgunRange

	heading := dir.Angle()
	angle := -shotgunSpread / 2
	for i := 0; i < shotgunPellets; i++ {
		fireBullet(w, parent, team, Polar(1, heading+angle), cfg)
		angle += shotgunSpread / (shotgunPellets - 1)
	}
}

// ArrowShot fires an arrow that passes through what it hits
func ArrowShot(w *World, parent *Entity, team Team, dir Vec) {
	w.env.playSound(SoundShootArrow, parent.Pos)
	arrow := NewProjectile(GetProjectileConfig(ProjectileArrow), team, dir, parent)
	arrow.OnDeath = SpawnPoof
	w.Add(parent.Pos, arrow)
}

// GrenadeShot lobs a grenade that explodes when it lands
func GrenadeShot(w *World, parent *Entity, team Team, dir Vec) {
	w.env.playSound(SoundShootGrenade, parent.Pos)
	grenade := NewProjectile(GetProjectileConfig(ProjectileGrenade), team, dir, parent)
	grenade.OnDeath = SpawnExplosion
	w.Add(parent.Pos, grenade)
}

func fireBullet(w *World, parent *Entity, team Team, dir Vec, cfg ProjectileConfig) {
	bullet := NewProjectile(cfg, team, dir, parent)
	bullet.OnDeath = SpawnPoof
	w.Add(parent.Pos, bullet)
}

// SpawnPoof leaves a short-lived puff where a projectile ended
func SpawnPoof(self *Entity, w *World, team Team) {
	poof := NewEntity("Poof", Sprite{Key: "poof", Width: 40, Height: 40}, TeamNeutral)
	poof.Lifetime = poofLifetime
	poof.Rotation = float64(randInt(w.rand(), 0, 360))
	w.Add(self.Pos, poof)
}

// SpawnExplosion blasts everything opposed to team around self
func SpawnExplosion(self *Entity, w *World, team Team) {
	w.env.playSound(SoundBoom, self.Pos)
	cfg := GetProjectileConfig(ProjectileExplosion)
	explosion := NewProjectile(cfg, team, self.Vel, nil)
	// A still blast never covers its range
	explosion.Lifetime = cfg.Range / cfg.Speed
	w.Add(self.Pos, explosion)
}

// SpawnGrave marks where someone died
func SpawnGrave(self *Entity, w *World, team Team) {
	grave := NewEntity("Grave", Sprite{Key: "grave", Width: 50, Height: 60}, team)
	grave.SetHealth(graveHealth)
	grave.Solid = true
	w.Add(self.Pos, grave)
}
