package sim

import "fmt"

// Content tuning
const (
	treeHealth    = 25.0
	appleHeal     = 10.0
	damageUp      = 0.5
	shieldUp      = 10.0
	lootChance    = 0.25
	wrenchOffset  = 5.0
	officeMinSize = 750
	officeMaxSize = 1250
	doorInset     = -60.0
)

var (
	officeOuterColor = [3]uint8{91, 108, 120}
	officeInnerColor = [3]uint8{191, 180, 147}
)

func itemSprite(key string) Sprite {
	return Sprite{Key: key, Width: 48, Height: 48}
}

// contentFactories maps every spawnable kind to its factory
func (s *Session) contentFactories() map[string]FactoryFunc {
	return map[string]FactoryFunc{
		// Props
		"tree": func() *Entity {
			return s.newTree("Tree", Sprite{Key: "tree", Width: 160, Height: 260}, V(50, 165))
		},
		"city_tree": func() *Entity {
			return s.newTree("City Tree", Sprite{Key: "city_tree", Width: 150, Height: 250}, V(55, 170))
		},
		"winter_tree": func() *Entity {
			return s.newTree("Winter Tree", Sprite{Key: "winter_tree", Width: 120, Height: 360}, V(30, 320))
		},
		"rock":   newRock,
		"house":  newHouse,
		"office": s.newOffice,

		// Creatures
		"brawler":      func() *Entity { return s.newCreature(CreatureBrawler, s.brawlerLoot) },
		"brawler_boss": func() *Entity { return s.newCreature(CreatureBrawlerBoss, s.bossLoot) },
		"ranger":       func() *Entity { return s.newCreature(CreatureRanger, s.rangerLoot) },
		"ranger_boss":  func() *Entity { return s.newCreature(CreatureRangerBoss, s.rangerLoot) },
		"boomer":       func() *Entity { return s.newCreature(CreatureBoomer, s.boomerLoot) },
		"car":          func() *Entity { return s.newCreature(CreatureCar, s.carLoot) },
		"ally_bot":     func() *Entity { return s.newCreature(CreatureAllyBot, nil) },

		// Items
		"apple":       newAppleItem,
		"dmg_up":      newDamageUpItem,
		"shield":      newShieldItem,
		"shotgun":     func() *Entity { return s.newPowerupItem(PowerupShotgun) },
		"arrows":      func() *Entity { return s.newPowerupItem(PowerupArrows) },
		"grenade":     func() *Entity { return s.newPowerupItem(PowerupGrenade) },
		"speed_shoes": func() *Entity { return s.newPowerupItem(PowerupSpeed) },
		"metalsuit":   func() *Entity { return s.newPowerupItem(PowerupMetalsuit) },
		"invis":       func() *Entity { return s.newPowerupItem(PowerupInvis) },
		"wrench":      s.newWrench,
	}
}

func (s *Session) newTree(name string, sprite Sprite, hitbox Vec) *Entity {
	tree := NewEntity(name, sprite, TeamNeutral)
	tree.SetHealth(treeHealth)
	tree.Solid = true
	tree.Size = hitbox
	tree.OnDeath = s.treeLoot
	return tree
}

func newRock() *Entity {
	rock := NewEntity("Rock", Sprite{Key: "rock", Width: 85, Height: 60}, TeamNeutral)
	rock.Solid = true
	rock.Size = V(85, 50)
	return rock
}

func newHouse() *Entity {
	house := NewEntity("House", Sprite{Key: "house", Width: 260, Height: 230}, TeamNeutral)
	house.Solid = true
	return house
}

// newOffice creates an office building in the city, and the dungeon world behind its door
func (s *Session) newOffice() *Entity {
	r := s.env.Rand
	s.offices++

	office := NewPortal("Office", Sprite{Key: "office", Width: 170, Height: 220}, "Enter Office? (SPACE)")
	office.Solid = true
	office.Size = V(145, 180)

	size := V(float64(randInt(r, officeMinSize, officeMaxSize)), float64(randInt(r, officeMinSize, officeMaxSize)))
	inside := NewWorld(fmt.Sprintf("Officeworld #%d", s.offices), size, s.env)
	inside.OuterColor = rgb(officeOuterColor)
	inside.InnerColor = rgb(officeInnerColor)

	door := NewPortal("Door", Sprite{Key: "door", Width: 80, Height: 110}, "Leave Office? (SPACE)")
	door.Portal.ToEntity = office
	inside.Add(V(size.X/2, doorInset), door)

	s.addEncounter(inside)

	office.Portal.ToEntity = door
	return office
}

// addEncounter puts a random group of enemies at the far end of a dungeon
func (s *Session) addEncounter(w *World) {
	spawnAt := V(w.Size.X/2, w.Size.Y)
	add := func(t CreatureType, n int, loot DeathFunc) {
		for i := 0; i < n; i++ {
			w.Add(spawnAt, s.newCreature(t, loot))
		}
	}

	chance := s.env.Rand.Float64()
	switch {
	case chance < 0.2:
		add(CreatureRangerBoss, 1, s.rangerLoot)
	case chance < 0.4:
		add(CreatureBrawlerBoss, 1, s.bossLoot)
	case chance < 0.6:
		add(CreatureBoomer, 3, s.boomerLoot)
	case chance < 0.8:
		add(CreatureRanger, 3, s.rangerLoot)
	default:
		add(CreatureBrawler, 4, s.brawlerLoot)
	}
}

func (s *Session) newCreature(t CreatureType, loot DeathFunc) *Entity {
	e := NewCreature(t)
	e.OnDeath = loot
	return e
}

func newAppleItem() *Entity {
	return NewItem("Apple", itemSprite("apple"),
		func(player *Entity, w *World) { player.Heal(appleHeal) },
		func(player *Entity) bool { return player.CanHeal() },
	)
}

func newDamageUpItem() *Entity {
	return NewItem("Dmg Up", itemSprite("dmg_up"),
		func(player *Entity, w *World) { player.RaiseDamageMultiplier(damageUp) }, nil)
}

func newShieldItem() *Entity {
	return NewItem("Shield", itemSprite("shield"),
		func(player *Entity, w *World) { player.RaiseMaxHealth(shieldUp) }, nil)
}

func (s *Session) newPowerupItem(t PowerupType) *Entity {
	cfg := GetPowerupConfig(t)
	return NewItem(cfg.Name, itemSprite(cfg.Sprite),
		func(player *Entity, w *World) { s.Powerups.Gain(t) }, nil)
}

// newWrench builds an ally bot next to the player
func (s *Session) newWrench() *Entity {
	return NewItem("Wrench", itemSprite("wrench"), func(player *Entity, w *World) {
		w.Add(player.Pos.Sub(V(0, wrenchOffset)), s.newCreature(CreatureAllyBot, nil))
	}, nil)
}

// Loot tables

func (s *Session) treeLoot(self *Entity, w *World, team Team) {
	if s.env.Rand.Intn(2) == 1 {
		w.Add(self.Pos, newAppleItem())
	}
}

func (s *Session) brawlerLoot(self *Entity, w *World, team Team) {
	s.dropOne(self, w, lootChance, PowerupShotgun, PowerupSpeed)
}

func (s *Session) rangerLoot(self *Entity, w *World, team Team) {
	s.dropOne(self, w, lootChance, PowerupArrows, PowerupInvis)
}

func (s *Session) boomerLoot(self *Entity, w *World, team Team) {
	SpawnExplosion(self, w, team)
	s.dropOne(self, w, lootChance, PowerupGrenade)
}

func (s *Session) carLoot(self *Entity, w *World, team Team) {
	SpawnExplosion(self, w, team)
	if s.env.Rand.Float64() < lootChance {
		if s.env.Rand.Intn(2) == 0 {
			w.Add(self.Pos, s.newPowerupItem(PowerupMetalsuit))
		} else {
			w.Add(self.Pos, s.newWrench())
		}
	}
}

func (s *Session) bossLoot(self *Entity, w *World, team Team) {
	if s.env.Rand.Intn(2) == 0 {
		w.Add(self.Pos, newShieldItem())
	} else {
		w.Add(self.Pos, newDamageUpItem())
	}
}

// dropOne drops one of the powerups with the given chance
func (s *Session) dropOne(self *Entity, w *World, chance float64, choices ...PowerupType) {
	r := s.env.Rand
	if r.Float64() >= chance {
		return
	}
	w.Add(self.Pos, s.newPowerupItem(choices[r.Intn(len(choices))]))
}
