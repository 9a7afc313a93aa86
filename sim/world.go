package sim

import (
	"image/color"
	"slices"
)

// World owns a bounded area, the entities in it and the spawners that populate it
type World struct {
	Name string
	Size Vec

	// OuterColor fills outside the border, InnerColor the ground
	OuterColor color.RGBA
	InnerColor color.RGBA

	// SolidBorder makes projectiles die when they leave the ground
	SolidBorder bool

	// Music is the background track played while the player is here
	Music string

	entities []*Entity
	spawners []*Spawner
	env      *Env
}

// NewWorld creates an empty world. A nil env gets a clock-seeded one without sound.
func NewWorld(name string, size Vec, env *Env) *World {
	if env == nil {
		env = NewEnv(0)
	}
	return &World{
		Name:        name,
		Size:        size,
		OuterColor:  color.RGBA{0, 0, 0, 255},
		InnerColor:  color.RGBA{128, 128, 128, 255},
		SolidBorder: true,
		entities:    make([]*Entity, 0, 64),
		env:         env,
	}
}

// Env returns the world's shared collaborators
func (w *World) Env() *Env { return w.env }

func (w *World) rand() Rand { return w.env.Rand }

// Add places e at pos and appends it to the world
func (w *World) Add(pos Vec, e *Entity) {
	e.Pos = pos
	e.world = w
	w.entities = append(w.entities, e)
}

// Remove detaches e from the world
func (w *World) Remove(e *Entity) {
	i := slices.Index(w.entities, e)
	if i < 0 {
		return
	}
	w.entities = slices.Delete(w.entities, i, i+1)
	e.world = nil
	clear(e.lastCollisions)
}

// Contains reports whether e is in the world
func (w *World) Contains(e *Entity) bool {
	return slices.Contains(w.entities, e)
}

// Entities returns the world's entities in iteration order. The slice must not be modified.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Spawners returns the attached spawners
func (w *World) Spawners() []*Spawner {
	return w.spawners
}

// AddSpawner attaches s and front-loads its pre-spawned entities
func (w *World) AddSpawner(s *Spawner) {
	w.spawners = append(w.spawners, s)
	s.PreSpawn(w)
}

// Center returns the middle of the world
func (w *World) Center() Vec {
	return w.Size.Div(2)
}

// RandPos returns a uniformly random point inside the world
func (w *World) RandPos() Vec {
	r := w.rand()
	return V(r.Float64()*w.Size.X, r.Float64()*w.Size.Y)
}

// Update runs the spawners, then every entity present at the start of the pass.
// Entities added during the pass are first updated next frame.
func (w *World) Update(dt float64) {
	for _, s := range w.spawners {
		s.Update(w, dt)
	}

	snapshot := slices.Clone(w.entities)
	for _, e := range snapshot {
		e.Update(w, dt)
	}
}

// RenderOrder returns the entities sorted back to front by the bottom of their hitbox
func (w *World) RenderOrder() []*Entity {
	sorted := slices.Clone(w.entities)
	slices.SortStableFunc(sorted, func(a, b *Entity) int {
		da, db := depth(a), depth(b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func depth(e *Entity) float64 {
	return e.Pos.Y + e.Size.Y/2
}

// Cull removes dead entities and returns how many were removed
func (w *World) Cull() int {
	before := len(w.entities)
	w.entities = slices.DeleteFunc(w.entities, func(e *Entity) bool {
		return !e.alive
	})
	return before - len(w.entities)
}
