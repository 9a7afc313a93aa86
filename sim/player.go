package sim

import "math"

// Player movement
const (
	playerAccel = 0.12
	playerDamp  = 0.88
)

// Appearance is the player's current look, which also drives AI visibility
type Appearance int

const (
	AppearanceAlive Appearance = iota
	AppearanceOw
	AppearanceDead
	AppearanceInvisible
	AppearanceMetalsuit
)

func (a Appearance) String() string {
	switch a {
	case AppearanceAlive:
		return "alive"
	case AppearanceOw:
		return "ow"
	case AppearanceDead:
		return "dead"
	case AppearanceInvisible:
		return "invisible"
	case AppearanceMetalsuit:
		return "metalsuit"
	default:
		return "unknown"
	}
}

// powered reports whether a powerup look overrides the hurt and alive looks
func (a Appearance) powered() bool {
	return a == AppearanceInvisible || a == AppearanceMetalsuit
}

// PlayerState holds what only the player has
type PlayerState struct {
	DamageMultiplier float64
	Appearance       Appearance

	// Interact is raised by input for one frame and consumed by the first portal touched
	Interact bool

	// OnHurt runs after every hit, whether or not it did damage
	OnHurt func(amount float64)

	// travel is the portal taken this frame, applied after the collision pass
	travel *Entity
}

// NewPlayer creates the player entity
func NewPlayer(name string, sprite Sprite, speed, health float64) *Entity {
	e := NewEntity(name, sprite, TeamAlly)
	e.Kind = KindPlayer
	e.Speed = speed
	e.SetHealth(health)
	e.TakeKnockback = true
	e.Player = &PlayerState{DamageMultiplier: 1}
	return e
}

// Control accelerates the player along the held direction keys, or slows it when none are held
func (e *Entity) Control(in Input) {
	var dir Vec
	moving := false
	if in.Left {
		dir = dir.Sub(V(1, 0))
		moving = true
	}
	if in.Right {
		dir = dir.Add(V(1, 0))
		moving = true
	}
	if in.Up {
		dir = dir.Sub(V(0, 1))
		moving = true
	}
	if in.Down {
		dir = dir.Add(V(0, 1))
		moving = true
	}

	e.Accel(dir.Norm().Mul(playerAccel))
	if !moving {
		e.Vel = e.Vel.Mul(playerDamp)
	}
}

func (e *Entity) updatePlayer(w *World, dt float64) {
	e.updateBase(w, dt)
	p := e.Player
	if e.ShakeTimer <= 0 && p.Appearance == AppearanceOw {
		p.Appearance = AppearanceAlive
	}
}

func (e *Entity) collidePlayer(other *Entity, w *World) {
	if other.Kind != KindPortal {
		return
	}
	p := e.Player
	if p.Interact {
		p.travel = other
	}
	p.Interact = false
}

func (e *Entity) hurtPlayer(amount float64, w *World) {
	e.hurtBase(amount, w)
	e.ShakeTimer = shakeDuration

	p := e.Player
	if p.OnHurt != nil {
		p.OnHurt(amount)
	}

	switch {
	case !e.alive || e.Health <= 0:
		p.Appearance = AppearanceDead
	case !p.Appearance.powered():
		p.Appearance = AppearanceOw
	}
}

// Heal restores health up to the maximum
func (e *Entity) Heal(amount float64) {
	e.Health = math.Min(e.Health+amount, e.MaxHealth)
}

// CanHeal reports whether the entity is below full health
func (e *Entity) CanHeal() bool {
	return e.Health < e.MaxHealth
}

// RaiseMaxHealth raises the health cap without healing
func (e *Entity) RaiseMaxHealth(amount float64) {
	e.MaxHealth += amount
}

// RaiseDamageMultiplier makes the player's shots hit harder
func (e *Entity) RaiseDamageMultiplier(amount float64) {
	if e.Player != nil {
		e.Player.DamageMultiplier += amount
	}
}
