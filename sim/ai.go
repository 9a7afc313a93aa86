package sim

// WeaponFunc fires a weapon from parent toward dir, adding projectiles to w
type WeaponFunc func(w *World, parent *Entity, team Team, dir Vec)

// AI tuning
const (
	attackJitter       = 100     // +/- ms added to the attack interval on every check
	wanderToggleChance = 0.005   // per tick
	wanderHeadingSpeed = 0.01    // velocity of a fresh wander heading
	wanderAccel        = 0.01    // forward push while wandering
	wanderDecay        = 0.95    // velocity decay while idle
	centerPull         = 0.00001 // pull toward the world center per unit of distance
	meleeKnockback     = 0.05
	spreadDamping      = 0.1 // keeps the spread push finite at zero distance
	retreatBias        = 0.5 // keeps retreating even from a standstill
)

// AIState holds the targeting and combat state of a creature
type AIState struct {
	Damage         float64
	SightRange     float64
	FollowWeight   float64 // acceleration toward a target; low values lag behind
	AttackInterval float64 // ms between attacks on a target
	AttackTimer    float64
	RetreatRange   float64 // distance kept from the target while recharging

	Wandering bool

	// Weapon makes the creature ranged. Melee creatures leave it nil.
	Weapon WeaponFunc

	// SideSprite is drawn when moving mostly horizontally, mirrored when moving left
	SideSprite *Sprite
}

// NewAI creates a creature entity
func NewAI(name string, sprite Sprite, speed float64, team Team, health float64, state AIState) *Entity {
	e := NewEntity(name, sprite, team)
	e.Kind = KindAI
	e.Speed = speed
	e.SetHealth(health)
	e.AI = &state
	return e
}

func (e *Entity) inSight(other *Entity) bool {
	return Dist(e.Pos, other.Pos) <= e.AI.SightRange
}

// canFollow reports whether other is a valid target
func (e *Entity) canFollow(other *Entity) bool {
	if other.IsPlayer() && other.Player.Appearance == AppearanceInvisible {
		return false
	}
	return Opposes(e, other) && e.inSight(other) && !(e.Team == TeamAlly && other.Team == TeamNeutral)
}

func (e *Entity) canSpread(other *Entity) bool {
	if other == e {
		return false
	}
	return (other.Team == e.Team && other.Health > 0 && e.inSight(other)) || other.Team == TeamNeutral
}

// findTarget returns the first followable entity in world order, or nil
func (e *Entity) findTarget(w *World) *Entity {
	for _, other := range w.entities {
		if e.canFollow(other) {
			return other
		}
	}
	return nil
}

func (e *Entity) updateAI(w *World, dt float64) {
	ai := e.AI

	if target := e.findTarget(w); target != nil {
		// Approach, but keep at a distance until the attack is charged
		dir := target.Pos.Sub(e.Pos)
		jitter := float64(randInt(w.rand(), -attackJitter, attackJitter))
		if ai.AttackTimer > ai.AttackInterval+jitter {
			e.attack(target, dir, w)
		} else {
			e.retreat(target, dir, dt)
		}
	} else {
		// Attack as soon as a target shows up
		ai.AttackTimer = ai.AttackInterval
		e.wander(w)
	}

	e.spread(w)
	e.updateBase(w, dt)
}

func (e *Entity) attack(target *Entity, dir Vec, w *World) {
	ai := e.AI

	if ai.Weapon != nil {
		if !e.Frozen() {
			ai.Weapon(w, e, e.Team, dir)
			ai.AttackTimer = 0
		}
		return
	}

	e.Accel(dir.Norm().Mul(ai.FollowWeight))
	if e.Colliding(target) {
		target.Hurt(ai.Damage, w)
		if target.TakeKnockback {
			target.Accel(target.Pos.Sub(e.Pos).Mul(meleeKnockback))
		}
		w.env.playSound(SoundHit, e.Pos)
		ai.AttackTimer = 0
	}
}

func (e *Entity) retreat(target *Entity, dir Vec, dt float64) {
	ai := e.AI
	radiusPos := target.Pos.Sub(dir.Norm().Mul(ai.RetreatRange))
	radiusDir := radiusPos.Sub(e.Pos)
	magnitude := e.Vel.Mag()/e.Speed + retreatBias
	e.Accel(radiusDir.Norm().Mul(ai.FollowWeight * magnitude))
	ai.AttackTimer += dt
}

func (e *Entity) wander(w *World) {
	r := w.rand()
	if r.Float64() < wanderToggleChance {
		e.AI.Wandering = !e.AI.Wandering
		e.Vel = Polar(wanderHeadingSpeed, float64(randInt(r, 0, 360)))
	}
	if e.AI.Wandering {
		e.Accel(e.Vel.Norm().Mul(wanderAccel))
	} else {
		e.Vel = e.Vel.Mul(wanderDecay)
	}

	toCenter := w.Center().Sub(e.Pos)
	e.Accel(toCenter.Norm().Mul(toCenter.Mag() * centerPull))
}

// spread pushes away from teammates and neutrals so sprites don't pile up
func (e *Entity) spread(w *World) {
	for _, other := range w.entities {
		if !e.canSpread(other) {
			continue
		}
		away := e.Pos.Sub(other.Pos)
		e.Accel(away.Norm().Mul(1 / (away.Mag() + spreadDamping)))
	}
}
