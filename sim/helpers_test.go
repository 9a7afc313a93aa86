package sim

// fixedRand always returns the same values. Intn clamps n into range,
// so fixedRand{n: 100} gives zero attack jitter.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type playedSound struct {
	effect  Sound
	variant int
	source  Vec
}

// recordingSound remembers what the simulation asked to play
type recordingSound struct {
	sounds []playedSound
	music  []string
}

func (s *recordingSound) PlaySound(effect Sound, variant int, source, listener Vec) {
	s.sounds = append(s.sounds, playedSound{effect: effect, variant: variant, source: source})
}

func (s *recordingSound) PlayMusic(name string) {
	s.music = append(s.music, name)
}

func (s *recordingSound) played(effect Sound) int {
	n := 0
	for _, p := range s.sounds {
		if p.effect == effect {
			n++
		}
	}
	return n
}

// newTestWorld returns a 2000x2000 world with a quiet, predictable env
func newTestWorld() (*World, *recordingSound) {
	sound := &recordingSound{}
	env := &Env{Rand: fixedRand{f: 0.5, n: 100}, Sound: sound}
	return NewWorld("Arena", V(2000, 2000), env), sound
}

// dummy is a mortal 50x50 static entity
func dummy(name string, team Team, health float64) *Entity {
	e := NewEntity(name, Sprite{Key: name, Width: 50, Height: 50}, team)
	e.SetHealth(health)
	return e
}

func countNamed(w *World, name string) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Name == name {
			n++
		}
	}
	return n
}

func findNamed(w *World, name string) *Entity {
	for _, e := range w.Entities() {
		if e.Name == name {
			return e
		}
	}
	return nil
}
