package sim

// CollisionSystem runs the pairwise overlap pass after all entities have updated
type CollisionSystem struct {
	// Contacts counts the overlapping ordered pairs found by the last pass
	Contacts int
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// CheckCollisions lets every entity collide with every other entity it overlaps.
// Each entity remembers who it touched so edge-triggered effects fire once per contact run.
// Entities added by collision effects join next frame.
func (c *CollisionSystem) CheckCollisions(w *World) {
	c.Contacts = 0
	entities := append([]*Entity(nil), w.entities...)

	for _, e := range entities {
		for _, other := range entities {
			if e == other {
				continue
			}

			// Dead entities stop colliding, so a blockable projectile hits once per pass
			if !e.alive || !other.alive {
				delete(e.lastCollisions, other.id)
				continue
			}

			if e.Colliding(other) {
				e.Collide(other, w)
				e.lastCollisions[other.id] = struct{}{}
				c.Contacts++
			} else {
				delete(e.lastCollisions, other.id)
			}
		}
	}
}
