package sim

import (
	"image/color"
	"math"
)

const (
	shakeJitter    = 3
	flipChance     = 6 // one in flipChance renders flips animated sprites
	healthBarScale = 9.0
)

// Health bar colors
var (
	allyBarColor       = color.RGBA{80, 130, 255, 255}
	enemyBarColor      = color.RGBA{255, 0, 0, 255}
	invincibleBarColor = color.RGBA{119, 143, 155, 255}
)

// HealthBar describes the bar drawn above a hurt entity
type HealthBar struct {
	Show     bool
	Fraction float64
	Width    float64
	Color    color.RGBA
}

// RenderState is everything a renderer needs to draw one entity. Positions are in world space.
type RenderState struct {
	ID     EntityID
	Name   string
	Kind   Kind
	Sprite Sprite

	// Variant selects an alternate look of the sprite, such as the player's appearance
	Variant string

	// Hitbox is drawn in debug mode; the sprite is centered on it
	Hitbox Rect

	// Offset is the shake jitter to add to the sprite position
	Offset Vec

	Rotation float64
	Flip     bool
	Frozen   bool

	HealthBar HealthBar

	// Caption is shown on the overlay while the player stands on a portal
	Caption string
}

// RenderState snapshots the entity for drawing. r drives shake jitter and sprite flicker.
func (e *Entity) RenderState(r Rand) RenderState {
	rs := RenderState{
		ID:       e.id,
		Name:     e.Name,
		Kind:     e.Kind,
		Sprite:   e.Sprite,
		Hitbox:   e.Hitbox(),
		Rotation: e.Rotation,
		Frozen:   e.Frozen(),
	}

	if e.ShakeTimer > 0 && e.Kind != KindProjectile {
		rs.Offset = V(
			float64(randInt(r, -shakeJitter, shakeJitter)),
			float64(randInt(r, -shakeJitter, shakeJitter)),
		)
	}

	if e.Animate && r.Intn(flipChance) == 0 {
		e.flipped = !e.flipped
	}
	rs.Flip = e.flipped

	switch e.Kind {
	case KindAI:
		if side := e.AI.SideSprite; side != nil && math.Abs(e.Vel.X) > math.Abs(e.Vel.Y) {
			rs.Sprite = *side
			rs.Flip = e.Vel.X < 0
		}
	case KindPlayer:
		rs.Variant = e.Player.Appearance.String()
	case KindPortal:
		if e.Portal.TouchingPlayer {
			rs.Caption = e.Portal.HoverMessage
		}
	}

	if (e.IsPlayer() || !e.Invincible) && e.Health < e.MaxHealth {
		bar := HealthBar{
			Show:     true,
			Fraction: e.Health / e.MaxHealth,
			Width:    math.Sqrt(e.MaxHealth) * healthBarScale,
			Color:    enemyBarColor,
		}
		if e.Team == TeamAlly {
			bar.Color = allyBarColor
		}
		if e.IsPlayer() && e.Invincible {
			bar.Color = invincibleBarColor
		}
		rs.HealthBar = bar
	}

	return rs
}
