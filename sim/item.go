package sim

import "math"

// Pickup bob
const (
	bobFrequency = 0.004
	bobAmplitude = 8.0
)

// CollectFunc runs when the player picks up an item
type CollectFunc func(player *Entity, w *World)

// ConditionFunc decides whether the player may pick up an item right now
type ConditionFunc func(player *Entity) bool

// ItemState holds a pickup's callbacks
type ItemState struct {
	Collect   CollectFunc
	Condition ConditionFunc // nil means always collectable
}

// NewItem creates a pickup
func NewItem(name string, sprite Sprite, collect CollectFunc, condition ConditionFunc) *Entity {
	e := NewEntity(name, sprite, TeamNeutral)
	e.Kind = KindItem
	e.Item = &ItemState{Collect: collect, Condition: condition}
	return e
}

// itemHitbox bobs up and down without moving the stored position
func (e *Entity) itemHitbox() Rect {
	offset := V(0, math.Sin(e.Time*bobFrequency)*bobAmplitude)
	return RectCentered(e.Pos.Add(offset), e.Size)
}

func (e *Entity) collideItem(other *Entity, w *World) {
	if !other.IsPlayer() || !e.alive {
		return
	}
	it := e.Item
	if it.Condition != nil && !it.Condition(other) {
		return
	}
	if it.Collect != nil {
		it.Collect(other, w)
	}
	e.alive = false
}
