package sim

import (
	"fmt"
	"math"
	"sync/atomic"
)

// EntityID is a unique identifier for any entity in the simulation.
// Collision bookkeeping keys on it rather than on entity values.
type EntityID uint64

// InvalidEntityID represents an unset entity reference
const InvalidEntityID EntityID = 0

var nextEntityID uint64

// generateEntityID creates a new unique entity ID
func generateEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Kind identifies which behavior variant an entity runs
type Kind int

const (
	KindStatic Kind = iota
	KindPortal
	KindAI
	KindProjectile
	KindItem
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindPortal:
		return "portal"
	case KindAI:
		return "ai"
	case KindProjectile:
		return "projectile"
	case KindItem:
		return "item"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// DeathFunc runs once when an entity dies, before it is culled
type DeathFunc func(self *Entity, w *World, team Team)

// Sprite names the image an entity is drawn with and its drawn size
type Sprite struct {
	Key    string
	Width  float64
	Height float64
}

// Size returns the sprite's drawn size
func (s Sprite) Size() Vec {
	return Vec{s.Width, s.Height}
}

const (
	// shakeDuration is how long the hurt flash lasts
	shakeDuration = 150.0

	// frozenSlow scales velocity while frozen
	frozenSlow = 0.25

	// depthMargin lets sprites poke above the top edge, and is the buffer of the solid push
	depthMargin = 20.0
)

// Entity is any simulated object. Kind selects which of the variant states is set
// and how Update, Collide, Hurt and Hitbox behave.
type Entity struct {
	id   EntityID
	Name string
	Kind Kind

	Sprite   Sprite
	Rotation float64 // degrees, fixed at spawn for rotated sprites
	Animate  bool    // flicker horizontally while rendering

	Pos   Vec
	Vel   Vec
	Speed float64 // cap on velocity magnitude; 0 means stationary

	Team       Team
	Health     float64
	MaxHealth  float64
	Invincible bool

	// Size is the hitbox size, independent of the sprite
	Size Vec

	Solid         bool
	TakeKnockback bool

	FrozenTimer float64
	ShakeTimer  float64

	// Time alive in the world, and how long the entity may live (-1 forever)
	Time     float64
	Lifetime float64

	OnDeath DeathFunc

	alive          bool
	flipped        bool
	world          *World
	lastCollisions map[EntityID]struct{}

	Portal     *PortalState
	AI         *AIState
	Projectile *ProjectileState
	Item       *ItemState
	Player     *PlayerState
}

// NewEntity creates a static entity. Entities start invincible; call SetHealth to make them mortal.
func NewEntity(name string, sprite Sprite, team Team) *Entity {
	return &Entity{
		id:             generateEntityID(),
		Name:           name,
		Kind:           KindStatic,
		Sprite:         sprite,
		Team:           team,
		Health:         100,
		MaxHealth:      100,
		Invincible:     true,
		Size:           sprite.Size(),
		Lifetime:       -1,
		alive:          true,
		lastCollisions: make(map[EntityID]struct{}),
	}
}

// SetHealth makes the entity mortal with the given health
func (e *Entity) SetHealth(health float64) {
	e.Health = health
	e.MaxHealth = health
	e.Invincible = false
}

// ID returns the entity's unique ID
func (e *Entity) ID() EntityID { return e.id }

// Alive reports whether the entity has not died or expired
func (e *Entity) Alive() bool { return e.alive }

// World returns the world the entity was last added to
func (e *Entity) World() *World { return e.world }

// IsPlayer reports whether this is the player entity
func (e *Entity) IsPlayer() bool { return e.Kind == KindPlayer }

// Kill marks the entity dead without running its death callback
func (e *Entity) Kill() { e.alive = false }

// Frozen reports whether the freeze status is active
func (e *Entity) Frozen() bool { return e.FrozenTimer > 0 }

// Accel adds a to the velocity
func (e *Entity) Accel(a Vec) {
	e.Vel = e.Vel.Add(a)
}

// Touching reports whether other overlapped this entity in the last collision pass
func (e *Entity) Touching(other *Entity) bool {
	_, ok := e.lastCollisions[other.id]
	return ok
}

// Update advances the entity by dt milliseconds
func (e *Entity) Update(w *World, dt float64) {
	switch e.Kind {
	case KindAI:
		e.updateAI(w, dt)
	case KindProjectile:
		e.updateProjectile(w, dt)
	case KindPortal:
		e.updateBase(w, dt)
		e.Portal.TouchingPlayer = false
	case KindPlayer:
		e.updatePlayer(w, dt)
	default:
		e.updateBase(w, dt)
	}
}

func (e *Entity) updateBase(w *World, dt float64) {
	e.Time += dt

	if e.FrozenTimer > 0 {
		e.FrozenTimer = math.Max(e.FrozenTimer-dt, 0)
	}
	if e.ShakeTimer > 0 {
		e.ShakeTimer = math.Max(e.ShakeTimer-dt, 0)
	}

	if e.Vel.Mag() > e.Speed {
		e.Vel = e.Vel.Norm().Mul(e.Speed)
	}
	if e.FrozenTimer > 0 {
		e.Vel = e.Vel.Mul(frozenSlow)
	}

	e.Pos = e.Pos.Add(e.Vel.Mul(dt))

	// Stationary entities were placed out of bounds on purpose
	if e.Speed != 0 {
		e.keepInBounds(w)
	}

	if e.Lifetime != -1 && e.Time > e.Lifetime {
		e.alive = false
	}
}

// keepInBounds clamps the entity inside the world. Only the bottom edge is kept
// inside vertically, so sprites can extend above the top border.
func (e *Entity) keepInBounds(w *World) {
	if e.Kind == KindProjectile {
		return
	}
	e.Pos.X = clamp(e.Pos.X, e.Size.X/2, w.Size.X-e.Size.X/2)
	e.Pos.Y = clamp(e.Pos.Y, -e.Size.Y/2+depthMargin, w.Size.Y-e.Size.Y/2)
}

// Hitbox returns the entity's collision rectangle
func (e *Entity) Hitbox() Rect {
	if e.Kind == KindItem {
		return e.itemHitbox()
	}
	return RectCentered(e.Pos, e.Size)
}

// Colliding reports whether the hitboxes overlap
func (e *Entity) Colliding(other *Entity) bool {
	return e.Hitbox().Intersects(other.Hitbox())
}

// Collide resolves this entity's side of an overlap with other
func (e *Entity) Collide(other *Entity, w *World) {
	e.collideBase(other)

	switch e.Kind {
	case KindPortal:
		if other.IsPlayer() {
			e.Portal.TouchingPlayer = true
		}
	case KindProjectile:
		e.collideProjectile(other, w)
	case KindItem:
		e.collideItem(other, w)
	case KindPlayer:
		e.collidePlayer(other, w)
	}
}

// collideBase keeps non-solid entities from overlapping solid ones. The other
// entity's base stays on whichever side of this base it was already on.
func (e *Entity) collideBase(other *Entity) {
	if !e.Solid || other.Solid || other.Kind == KindProjectile {
		return
	}

	bottom := e.Pos.Y + e.Size.Y/2
	otherBottom := other.Pos.Y + other.Size.Y/2
	if otherBottom < bottom {
		other.Pos.Y = math.Min(otherBottom+depthMargin, bottom) - other.Size.Y/2 - depthMargin
	} else {
		other.Pos.Y = math.Max(otherBottom-depthMargin, bottom) - other.Size.Y/2 + depthMargin
	}
}

// Hurt deals damage. Invincible entities keep their health.
func (e *Entity) Hurt(amount float64, w *World) {
	if e.Kind == KindPlayer {
		e.hurtPlayer(amount, w)
		return
	}
	e.hurtBase(amount, w)
}

func (e *Entity) hurtBase(amount float64, w *World) {
	wasAlive := e.alive && e.Health > 0
	if !e.Invincible {
		e.Health = math.Max(0, e.Health-amount)
		e.ShakeTimer = shakeDuration
	}
	if wasAlive && e.Health <= 0 {
		e.die(w)
	}
}

// die runs the death callback and marks the entity dead
func (e *Entity) die(w *World) {
	if e.OnDeath != nil {
		e.OnDeath(e, w, e.Team)
	}
	e.alive = false
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s at %v", e.Name, e.Pos)
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Min, Max Vec
}

// RectCentered returns the rectangle of the given size centered on c
func RectCentered(c, size Vec) Rect {
	half := size.Div(2)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Center returns the rectangle's center
func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Div(2)
}

// Size returns the rectangle's width and height
func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

// Intersects reports whether r and o overlap. Rectangles that only share an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}
