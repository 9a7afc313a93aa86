package sim

// CreatureType defines the kinds of AI creatures
type CreatureType int

const (
	CreatureBrawler CreatureType = iota
	CreatureBrawlerBoss
	CreatureRanger
	CreatureRangerBoss
	CreatureBoomer
	CreatureCar
	CreatureAllyBot
)

// CreatureConfig holds the stats of a creature type
type CreatureConfig struct {
	Name       string
	Sprite     Sprite
	SideSprite *Sprite // optional, drawn when moving sideways
	Size       Vec     // hitbox, zero means the sprite size

	Speed  float64
	Team   Team
	Health float64

	Damage         float64
	SightRange     float64
	FollowWeight   float64
	AttackInterval float64
	RetreatRange   float64

	// Weapon makes the creature ranged
	Weapon WeaponFunc
}

// GetCreatureConfig returns configuration for a creature type
func GetCreatureConfig(t CreatureType) CreatureConfig {
	switch t {
	case CreatureBrawler:
		return CreatureConfig{
			Name:           "Brawler",
			Sprite:         Sprite{Key: "brawler", Width: 70, Height: 90},
			Speed:          0.5,
			Team:           TeamEnemy,
			Health:         6,
			Damage:         1,
			SightRange:     600,
			FollowWeight:   0.1,
			AttackInterval: 750,
			RetreatRange:   175,
		}
	case CreatureBrawlerBoss:
		return CreatureConfig{
			Name:           "Brawler Boss",
			Sprite:         Sprite{Key: "brawler_boss", Width: 150, Height: 170},
			Size:           V(128, 128),
			Speed:          0.6,
			Team:           TeamEnemy,
			Health:         50,
			Damage:         3,
			SightRange:     2000,
			FollowWeight:   0.04,
			AttackInterval: 2000,
			RetreatRange:   225,
		}
	case CreatureRanger:
		return CreatureConfig{
			Name:           "Ranger",
			Sprite:         Sprite{Key: "ranger", Width: 64, Height: 80},
			Size:           V(64, 64),
			Speed:          0.35,
			Team:           TeamEnemy,
			Health:         4,
			Damage:         1,
			SightRange:     700,
			FollowWeight:   0.08,
			AttackInterval: 2000,
			RetreatRange:   350,
			Weapon:         ArrowShot,
		}
	case CreatureRangerBoss:
		return CreatureConfig{
			Name:           "Ranger Boss",
			Sprite:         Sprite{Key: "ranger_boss", Width: 110, Height: 130},
			Size:           V(100, 100),
			Speed:          0.3,
			Team:           TeamEnemy,
			Health:         40,
			Damage:         1,
			SightRange:     600,
			FollowWeight:   0.05,
			AttackInterval: 1000,
			RetreatRange:   350,
			Weapon:         ArrowShot,
		}
	case CreatureBoomer:
		return CreatureConfig{
			Name:           "Boomer",
			Sprite:         Sprite{Key: "boomer", Width: 80, Height: 90},
			Size:           V(70, 70),
			Speed:          0.25,
			Team:           TeamEnemy,
			Health:         8,
			Damage:         1,
			SightRange:     400,
			FollowWeight:   0.05,
			AttackInterval: 3000,
			RetreatRange:   250,
			Weapon:         GrenadeShot,
		}
	case CreatureCar:
		return CreatureConfig{
			Name:           "Car",
			Sprite:         Sprite{Key: "car_front", Width: 120, Height: 100},
			SideSprite:     &Sprite{Key: "car_side", Width: 170, Height: 100},
			Speed:          0.5,
			Team:           TeamEnemy,
			Health:         14,
			Damage:         2,
			SightRange:     250,
			FollowWeight:   0.1,
			AttackInterval: 5000,
			RetreatRange:   400,
		}
	case CreatureAllyBot:
		return CreatureConfig{
			Name:           "Ally Bot",
			Sprite:         Sprite{Key: "ally_bot", Width: 70, Height: 80},
			Size:           V(64, 64),
			Speed:          0.4,
			Team:           TeamAlly,
			Health:         8,
			Damage:         1,
			SightRange:     600,
			FollowWeight:   0.05,
			AttackInterval: 1500,
			RetreatRange:   150,
			Weapon:         ShotgunShot,
		}
	default:
		return GetCreatureConfig(CreatureBrawler)
	}
}

// NewCreature creates a creature from its config. Loot is attached by the caller.
func NewCreature(t CreatureType) *Entity {
	cfg := GetCreatureConfig(t)
	e := NewAI(cfg.Name, cfg.Sprite, cfg.Speed, cfg.Team, cfg.Health, AIState{
		Damage:         cfg.Damage,
		SightRange:     cfg.SightRange,
		FollowWeight:   cfg.FollowWeight,
		AttackInterval: cfg.AttackInterval,
		RetreatRange:   cfg.RetreatRange,
		Weapon:         cfg.Weapon,
		SideSprite:     cfg.SideSprite,
	})
	if cfg.Size != (Vec{}) {
		e.Size = cfg.Size
	}
	return e
}
