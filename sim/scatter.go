package sim

import (
	"github.com/aquilax/go-perlin"
)

// Noise shape for prop clusters
const (
	scatterAlpha     = 2.0 // smoothing
	scatterBeta      = 2.0 // frequency
	scatterOctaves   = 3
	scatterScale     = 1.0 / 400 // world units per noise unit
	scatterThreshold = 0.55
	scatterAttempts  = 8
)

// Scatter places props in noise-shaped clusters instead of uniformly
type Scatter struct {
	noise *perlin.Perlin
}

// NewScatter creates a scatter with its own noise field
func NewScatter(seed int64) *Scatter {
	return &Scatter{
		noise: perlin.NewPerlin(scatterAlpha, scatterBeta, scatterOctaves, seed),
	}
}

// Density returns the cluster density at p, between 0 and 1
func (s *Scatter) Density(p Vec) float64 {
	n := s.noise.Noise2D(p.X*scatterScale, p.Y*scatterScale)
	return clamp((n+1)/2, 0, 1)
}

// Place adds count entities from factory to w. Each one takes the first random
// candidate dense enough, or the densest of its attempts.
func (s *Scatter) Place(w *World, count int, factory FactoryFunc) []*Entity {
	placed := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		e := factory()
		if e == nil {
			continue
		}

		best := w.RandPos()
		bestDensity := s.Density(best)
		for a := 1; a < scatterAttempts && bestDensity < scatterThreshold; a++ {
			candidate := w.RandPos()
			if d := s.Density(candidate); d > bestDensity {
				best, bestDensity = candidate, d
			}
		}

		w.Add(best, e)
		placed = append(placed, e)
	}
	return placed
}
