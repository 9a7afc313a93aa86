package sim

import (
	"math/rand"
	"time"
)

// Rand is the random source used by AI jitter, wandering, spawn placement and loot.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded random source. A zero seed seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sound identifies a sound effect
type Sound int

const (
	SoundHit Sound = iota
	SoundOwPlayer
	SoundShoot
	SoundShootShotgun
	SoundShootArrow
	SoundShootGrenade
	SoundBoom
)

// hitVariants and shootVariants are how many takes of each randomized effect exist
const (
	hitVariants   = 3
	shootVariants = 3
)

// SoundPlayer plays sounds for the simulation. Calls are fire-and-forget.
type SoundPlayer interface {
	// PlaySound plays effect attenuated by the distance from source to listener.
	// variant picks one of the recorded takes for randomized effects.
	PlaySound(effect Sound, variant int, source, listener Vec)
	// PlayMusic switches the background track. An empty name stops the music.
	PlayMusic(name string)
}

// Env carries the collaborators shared by every world of a session
type Env struct {
	Rand  Rand
	Sound SoundPlayer

	// Listener returns where sounds are heard from (the player)
	Listener func() Vec
}

// NewEnv returns an env with a seeded random source and no sound output
func NewEnv(seed int64) *Env {
	return &Env{Rand: NewRand(seed)}
}

func (e *Env) playSound(effect Sound, source Vec) {
	if e == nil || e.Sound == nil {
		return
	}
	listener := source
	if e.Listener != nil {
		listener = e.Listener()
	}
	variant := 0
	switch effect {
	case SoundHit:
		variant = e.Rand.Intn(hitVariants)
	case SoundShoot:
		variant = e.Rand.Intn(shootVariants)
	}
	e.Sound.PlaySound(effect, variant, source, listener)
}

func (e *Env) playMusic(name string) {
	if e == nil || e.Sound == nil {
		return
	}
	e.Sound.PlayMusic(name)
}

// randInt returns a uniform integer in [lo, hi]
func randInt(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
