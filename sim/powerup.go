package sim

import "math"

// PowerupType defines the timed player upgrades
type PowerupType int

const (
	PowerupShotgun PowerupType = iota
	PowerupArrows
	PowerupGrenade
	PowerupSpeed
	PowerupMetalsuit
	PowerupInvis
	powerupCount
)

// PowerupConfig holds configuration for each powerup type
type PowerupConfig struct {
	Name   string
	Sprite string // icon key

	// DefaultAmount is granted per pickup, in ms or ms-equivalent uses
	DefaultAmount float64
}

// GetPowerupConfig returns configuration for a powerup type
func GetPowerupConfig(t PowerupType) PowerupConfig {
	switch t {
	case PowerupShotgun:
		return PowerupConfig{Name: "Shotgun", Sprite: "shotgun", DefaultAmount: 20000}
	case PowerupArrows:
		return PowerupConfig{Name: "Arrows", Sprite: "arrows", DefaultAmount: 20000}
	case PowerupGrenade:
		return PowerupConfig{Name: "Grenade", Sprite: "grenade", DefaultAmount: 15000}
	case PowerupSpeed:
		return PowerupConfig{Name: "Speed", Sprite: "speed_shoes", DefaultAmount: 10000}
	case PowerupMetalsuit:
		return PowerupConfig{Name: "Metalsuit", Sprite: "metalsuit", DefaultAmount: 10000}
	case PowerupInvis:
		return PowerupConfig{Name: "Invis", Sprite: "invis", DefaultAmount: 8000}
	default:
		return GetPowerupConfig(PowerupShotgun)
	}
}

// AllPowerups lists the powerup types in HUD order
func AllPowerups() []PowerupType {
	types := make([]PowerupType, 0, powerupCount)
	for t := PowerupType(0); t < powerupCount; t++ {
		types = append(types, t)
	}
	return types
}

// Powerups tracks the time or uses left on each powerup
type Powerups struct {
	amount     [powerupCount]float64
	currentMax [powerupCount]float64
}

// NewPowerups creates an empty powerup set
func NewPowerups() *Powerups {
	p := &Powerups{}
	for _, t := range AllPowerups() {
		p.currentMax[t] = GetPowerupConfig(t).DefaultAmount
	}
	return p
}

// Gain adds the powerup's default amount. The new total becomes the bar's full mark.
func (p *Powerups) Gain(t PowerupType) {
	p.amount[t] += GetPowerupConfig(t).DefaultAmount
	p.currentMax[t] = p.amount[t]
}

// Deplete removes amount, stopping at zero
func (p *Powerups) Deplete(t PowerupType, amount float64) {
	if p.amount[t] > 0 {
		p.amount[t] = math.Max(p.amount[t]-amount, 0)
	}
}

// Clear drops the powerup entirely
func (p *Powerups) Clear(t PowerupType) {
	p.amount[t] = 0
}

// Amount returns what is left of the powerup
func (p *Powerups) Amount(t PowerupType) float64 {
	return p.amount[t]
}

// Active reports whether any of the powerup is left
func (p *Powerups) Active(t PowerupType) bool {
	return p.amount[t] > 0
}

// Fraction returns how full the powerup's bar is, at most 1
func (p *Powerups) Fraction(t PowerupType) float64 {
	if p.currentMax[t] <= 0 {
		return 0
	}
	return math.Min(p.amount[t]/p.currentMax[t], 1)
}
