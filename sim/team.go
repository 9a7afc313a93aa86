package sim

// Team represents which side an entity belongs to
type Team int

const (
	TeamAlly Team = iota
	TeamEnemy
	TeamNeutral
)

func (t Team) String() string {
	switch t {
	case TeamAlly:
		return "ally"
	case TeamEnemy:
		return "enemy"
	case TeamNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Opposes reports whether self treats other as hostile.
// Allies fight enemies and neutrals, enemies fight allies. Invincible entities
// are never valid targets, except the player.
func Opposes(self, other *Entity) bool {
	hostile := (self.Team == TeamAlly && other.Team == TeamEnemy) ||
		(self.Team == TeamEnemy && other.Team == TeamAlly) ||
		(self.Team == TeamAlly && other.Team == TeamNeutral)
	return hostile && (!other.Invincible || other.IsPlayer())
}
