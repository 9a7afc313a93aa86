package sim

const (
	// projectileGrace is how long a projectile lives before range or border can end it
	projectileGrace = 50.0

	// projectileTopMargin mirrors the depth margin of the entity bounds clamp
	projectileTopMargin = 100.0

	projectileKnockback = 10.0
)

// ImpactFunc runs when a projectile strikes an opposed entity
type ImpactFunc func(projectile, other *Entity)

// ProjectileState holds the travel and damage state of a projectile
type ProjectileState struct {
	Damage   float64
	Range    float64
	Distance float64 // traveled relative to the launch frame

	Parent  *Entity
	InitVel Vec // parent velocity at launch

	// Blockable projectiles die on their first hit. Others pass through.
	Blockable bool

	Impact ImpactFunc
}

// NewProjectile launches a projectile of the given type from parent toward dir.
// parent may be nil for projectiles that aren't fired by anyone.
func NewProjectile(cfg ProjectileConfig, team Team, dir Vec, parent *Entity) *Entity {
	e := NewEntity(cfg.Name, cfg.Sprite, team)
	e.Kind = KindProjectile
	if cfg.Size != (Vec{}) {
		e.Size = cfg.Size
	}
	e.Speed = cfg.Speed
	e.Vel = dir.Norm().Mul(cfg.Speed)
	if cfg.Rotate {
		e.Rotation = e.Vel.Angle()
	}

	p := &ProjectileState{
		Damage:    cfg.Damage,
		Range:     cfg.Range,
		Parent:    parent,
		Blockable: cfg.Blockable,
	}
	if parent != nil {
		if parent.IsPlayer() {
			p.Damage *= parent.Player.DamageMultiplier
		}
		// Inherit the shooter's velocity
		p.InitVel = parent.Vel
	}
	e.Vel = e.Vel.Add(p.InitVel)
	e.Projectile = p
	return e
}

func (e *Entity) updateProjectile(w *World, dt float64) {
	e.updateBase(w, dt)

	p := e.Projectile
	p.Distance += e.Vel.Sub(p.InitVel).Mag() * dt

	// Outer edge of the hitbox crossed the world border
	x, y := e.Pos.X, e.Pos.Y
	hw, hh := e.Size.X/2, e.Size.Y/2
	hitsBorder := w.SolidBorder &&
		(x <= hw || x >= w.Size.X-hw || y <= hh-projectileTopMargin || y >= w.Size.Y-hh)

	if (p.Distance > p.Range || hitsBorder) && e.Time > projectileGrace && e.alive {
		e.die(w)
	}
}

// collideProjectile applies a hit once per contact run
func (e *Entity) collideProjectile(other *Entity, w *World) {
	if e.Touching(other) {
		return
	}

	p := e.Projectile
	opposed := Opposes(e, other)

	// Friendly fire frees allies from ice without hurting them
	if !opposed && other.Frozen() && other != p.Parent {
		other.FrozenTimer = 0
		other.ShakeTimer = shakeDuration
	}

	if !opposed && !other.Solid {
		return
	}

	other.ShakeTimer = shakeDuration
	if opposed {
		if p.Impact != nil {
			p.Impact(e, other)
		}
		if other.IsPlayer() {
			w.env.playSound(SoundOwPlayer, e.Pos)
			if other.Invincible {
				// Deflected by the metalsuit, no effect
				e.alive = false
				return
			}
		}
		other.Hurt(p.Damage, w)
	}

	if other.TakeKnockback {
		other.Accel(other.Pos.Sub(e.Pos).Mul(projectileKnockback))
	}
	if p.Blockable {
		e.die(w)
	}
}
