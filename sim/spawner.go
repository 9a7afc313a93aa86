package sim

import "slices"

// FactoryFunc builds a fresh entity for a spawner
type FactoryFunc func() *Entity

// Spawner periodically adds entities near the world center while fewer than Max of them are alive
type Spawner struct {
	Interval float64
	Factory  FactoryFunc
	Max      int

	// Spread is the spawn area as a fraction of the world size, centered on the world center
	Spread float64

	// PreSpawned entities are added when the spawner is attached to a world
	PreSpawned int

	timer   float64
	spawned []*Entity
}

// NewSpawner creates a spawner covering the whole world
func NewSpawner(interval float64, factory FactoryFunc, limit int) *Spawner {
	return &Spawner{
		Interval: interval,
		Factory:  factory,
		Max:      limit,
		Spread:   1,
	}
}

// Alive returns how many of the spawner's entities are still alive
func (s *Spawner) Alive() int {
	s.spawned = slices.DeleteFunc(s.spawned, func(e *Entity) bool {
		return !e.alive
	})
	return len(s.spawned)
}

// Update advances the timer and spawns when it is due and below the cap
func (s *Spawner) Update(w *World, dt float64) {
	s.timer += dt
	if s.timer >= s.Interval && s.Alive() < s.Max {
		s.spawn(w)
		s.timer = 0
	}
}

// PreSpawn adds the pre-spawned entities without waiting for the timer
func (s *Spawner) PreSpawn(w *World) {
	for i := 0; i < s.PreSpawned; i++ {
		s.spawn(w)
	}
}

func (s *Spawner) spawn(w *World) {
	e := s.Factory()
	if e == nil {
		return
	}

	r := w.rand()
	offset := V(
		(r.Float64()-0.5)*s.Spread*w.Size.X,
		(r.Float64()-0.5)*s.Spread*w.Size.Y,
	)
	w.Add(w.Center().Add(offset), e)
	s.spawned = append(s.spawned, e)
}
