package sim

// PortalState sends the player to another world, position or entity when interacted with
type PortalState struct {
	HoverMessage string

	// Destination. ToEntity wins over ToWorld for the world, ToPosition wins for the position.
	ToWorld    *World
	ToPosition *Vec
	ToEntity   *Entity

	// TouchingPlayer is set by the collision pass and cleared on every update
	TouchingPlayer bool
}

// NewPortal creates a portal entity
func NewPortal(name string, sprite Sprite, hoverMessage string) *Entity {
	e := NewEntity(name, sprite, TeamNeutral)
	e.Kind = KindPortal
	e.Portal = &PortalState{HoverMessage: hoverMessage}
	return e
}

// DestinationPosition returns where the portal sends the player, if anywhere specific
func (p *PortalState) DestinationPosition() (Vec, bool) {
	if p.ToPosition != nil {
		return *p.ToPosition, true
	}
	if p.ToEntity != nil {
		// Land at the base of the destination entity
		return p.ToEntity.Pos.Add(V(0, p.ToEntity.Hitbox().Size().Y/2)), true
	}
	return Vec{}, false
}

// DestinationWorld returns the world the portal leads to, or nil
func (p *PortalState) DestinationWorld() *World {
	if p.ToEntity != nil {
		return p.ToEntity.world
	}
	return p.ToWorld
}
