package sim

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"

	"lifesim/config"
)

// Powerup effects on the player
const (
	shotUse            = 750.0 // ammo a powered shot costs
	metalsuitWear      = 500.0 // metalsuit drained per point of damage taken
	speedShoesBoost    = 1.4
	speedShoesWithSuit = 1.25
	metalsuitSlow      = 0.8
)

// Landmarks of the stock layout
var (
	housePos        = V(500, 500)
	caveEntrancePos = V(1500, 1500)
	caveExitPos     = V(700, -80)
)

// Session owns every world, the player and the powerups, and steps them in a fixed order
type Session struct {
	Config   *config.Config
	Player   *Entity
	Powerups *Powerups

	// Frames counts calls to Step
	Frames int

	env        *Env
	worlds     []*World
	current    *World
	collisions *CollisionSystem
	factories  map[string]FactoryFunc
	scatter    *Scatter
	offices    int
}

// NewSession builds the worlds described by cfg and puts the player in the first one.
// A nil env gets one seeded from the config.
func NewSession(cfg *config.Config, env *Env) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if env == nil {
		env = NewEnv(cfg.Seed)
	}

	s := &Session{
		Config:     cfg,
		Powerups:   NewPowerups(),
		env:        env,
		collisions: NewCollisionSystem(),
		scatter:    NewScatter(int64(env.Rand.Intn(math.MaxInt32))),
	}
	s.factories = s.contentFactories()

	s.Player = NewPlayer("Player", Sprite{Key: "player", Width: 60, Height: 90}, cfg.Player.Speed, cfg.Player.Health)
	s.Player.OnDeath = s.playerDied
	s.Player.Player.OnHurt = func(amount float64) {
		s.Powerups.Deplete(PowerupMetalsuit, amount*metalsuitWear)
	}
	env.Listener = func() Vec { return s.Player.Pos }

	for _, wc := range cfg.Worlds {
		w := NewWorld(wc.Name, V(wc.Width, wc.Height), env)
		w.OuterColor = rgb(wc.OuterColor)
		w.InnerColor = rgb(wc.InnerColor)
		w.SolidBorder = wc.SolidBorder
		w.Music = wc.Music
		s.worlds = append(s.worlds, w)
	}

	s.current = s.worlds[0]
	s.current.Add(s.current.Center(), s.Player)
	s.addLandmarks()

	for i, wc := range cfg.Worlds {
		if err := s.populate(s.worlds[i], wc); err != nil {
			return nil, err
		}
	}

	env.playMusic(s.current.Music)
	log.Printf("[Session] Built %d worlds, starting in %s", len(s.worlds), s.current.Name)
	return s, nil
}

// addLandmarks places the house and links the cave to the overworld when both worlds exist
func (s *Session) addLandmarks() {
	over := s.World("Overworld")
	if over == nil {
		return
	}
	over.Add(housePos, newHouse())

	cave := s.World("Caveworld")
	if cave == nil {
		return
	}

	entrance := NewPortal("Cave", Sprite{Key: "cave", Width: 280, Height: 170}, "Enter Cave? (SPACE)")
	entrance.Solid = true
	entrance.Size = V(260, 140)
	over.Add(caveEntrancePos, entrance)

	exit := NewPortal("Cave Exit", Sprite{Key: "cave_exit", Width: 200, Height: 150}, "Exit Cave? (SPACE)")
	exit.Portal.ToWorld = over
	exit.Portal.ToEntity = entrance
	cave.Add(caveExitPos, exit)

	entrance.Portal.ToEntity = exit
}

// populate scatters the world's props and attaches its spawners
func (s *Session) populate(w *World, wc config.WorldConfig) error {
	for _, pc := range wc.Props {
		factory, ok := s.factories[pc.Kind]
		if !ok {
			return fmt.Errorf("world %s: unknown prop kind %q", wc.Name, pc.Kind)
		}
		s.scatter.Place(w, pc.Count, factory)
	}

	for _, sc := range wc.Spawners {
		factory, ok := s.factories[sc.Kind]
		if !ok {
			return fmt.Errorf("world %s: unknown spawner kind %q", wc.Name, sc.Kind)
		}
		sp := NewSpawner(sc.Interval, factory, sc.Max)
		if sc.Spread > 0 {
			sp.Spread = sc.Spread
		}
		sp.PreSpawned = sc.PreSpawned
		w.AddSpawner(sp)
	}
	return nil
}

// Env returns the session's shared collaborators
func (s *Session) Env() *Env { return s.env }

// CurrentWorld returns the world the player is in
func (s *Session) CurrentWorld() *World { return s.current }

// Worlds returns the top-level worlds in travel order
func (s *Session) Worlds() []*World { return s.worlds }

// World returns the named top-level world, or nil
func (s *Session) World(name string) *World {
	for _, w := range s.worlds {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// Kinds returns the names of every spawnable kind, sorted
func (s *Session) Kinds() []string {
	kinds := make([]string, 0, len(s.factories))
	for k := range s.factories {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Spawn adds a new entity of the given kind to the current world at pos
func (s *Session) Spawn(kind string, pos Vec) (*Entity, error) {
	factory, ok := s.factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	e := factory()
	s.current.Add(pos, e)
	return e, nil
}

// PlayerDead reports whether the player has died
func (s *Session) PlayerDead() bool {
	return !s.Player.Alive()
}

// Step advances the session by dt milliseconds:
// input, powerups, player control, world update, collision pass, travel, cull.
func (s *Session) Step(in Input, dt float64) {
	s.Frames++
	p := s.Player

	p.Player.Interact = in.Interact
	for _, kind := range in.Spawns {
		if _, err := s.Spawn(kind, in.Mouse); err != nil {
			log.Printf("[Session] Debug spawn failed: %v", err)
		}
	}
	if in.WorldStep != 0 {
		s.cycleWorld(in.WorldStep)
	}
	if in.Fire && p.Health > 0 {
		s.fire(in.Mouse)
	}

	s.updatePowerups(dt)
	p.Control(in)

	s.current.Update(dt)
	s.collisions.CheckCollisions(s.current)
	s.applyTravel()
	s.current.Cull()
}

// fire shoots every active weapon powerup toward target, or the plain gun when none is active
func (s *Session) fire(target Vec) {
	p := s.Player
	s.Powerups.Clear(PowerupInvis)
	dir := target.Sub(p.Pos)

	weapons := []struct {
		powerup PowerupType
		fire    WeaponFunc
	}{
		{PowerupShotgun, ShotgunShot},
		{PowerupArrows, ArrowShot},
		{PowerupGrenade, GrenadeShot},
	}

	fired := false
	for _, wp := range weapons {
		if !s.Powerups.Active(wp.powerup) {
			continue
		}
		wp.fire(s.current, p, TeamAlly, dir)
		s.Powerups.Deplete(wp.powerup, shotUse)
		fired = true
	}
	if !fired {
		SingleShot(s.current, p, TeamAlly, dir)
	}
}

func (s *Session) updatePowerups(dt float64) {
	p := s.Player
	pw := s.Powerups
	base := s.Config.Player.Speed

	for _, t := range []PowerupType{PowerupShotgun, PowerupGrenade, PowerupArrows, PowerupInvis, PowerupMetalsuit} {
		pw.Deplete(t, dt)
	}

	suited := pw.Active(PowerupMetalsuit)
	switch {
	case pw.Active(PowerupSpeed) && suited:
		p.Speed = base * speedShoesWithSuit
	case pw.Active(PowerupSpeed):
		p.Speed = base * speedShoesBoost
	case suited:
		p.Speed = base * metalsuitSlow
	default:
		p.Speed = base
	}
	pw.Deplete(PowerupSpeed, dt)

	look := &p.Player.Appearance
	switch {
	case pw.Active(PowerupInvis):
		*look = AppearanceInvisible
	case suited:
		*look = AppearanceMetalsuit
		p.Invincible = true
		p.TakeKnockback = false
	default:
		p.Invincible = false
		p.TakeKnockback = true
	}

	if !suited && !pw.Active(PowerupInvis) && *look != AppearanceOw && *look != AppearanceDead {
		*look = AppearanceAlive
	}
}

func (s *Session) cycleWorld(step int) {
	n := len(s.worlds)
	i := slices.Index(s.worlds, s.current)
	if i < 0 {
		i = 0
	}
	i = ((i+step)%n + n) % n
	s.travel(s.worlds[i], nil)
}

// applyTravel moves the player through the portal it took this frame, if any
func (s *Session) applyTravel() {
	portal := s.Player.Player.travel
	s.Player.Player.travel = nil
	if portal == nil {
		return
	}

	dest := portal.Portal.DestinationWorld()
	if dest == nil {
		return
	}
	var at *Vec
	if pos, ok := portal.Portal.DestinationPosition(); ok {
		at = &pos
	}
	s.travel(dest, at)
}

// travel moves the player to dest, at pos or the world center
func (s *Session) travel(dest *World, pos *Vec) {
	p := s.Player
	if !s.current.Contains(p) {
		return
	}

	from := s.current
	from.Remove(p)
	from.Cull()
	s.current = dest
	dest.Add(dest.Center(), p)
	if pos != nil {
		p.Pos = *pos
	}
	p.keepInBounds(dest)

	s.env.playMusic(dest.Music)
	log.Printf("[Session] Player traveled from %s to %s", from.Name, dest.Name)
}

func (s *Session) playerDied(self *Entity, w *World, team Team) {
	SpawnGrave(self, w, team)
	log.Printf("[Session] Player died in %s after %d frames", w.Name, s.Frames)
}

// RenderList returns render states for the current world, back to front
func (s *Session) RenderList(r Rand) []RenderState {
	ordered := s.current.RenderOrder()
	states := make([]RenderState, 0, len(ordered))
	for _, e := range ordered {
		states = append(states, e.RenderState(r))
	}
	return states
}

// Stats summarizes the session for overlays and logs
type Stats struct {
	World    string
	Frames   int
	Entities int
	Contacts int
}

// Stats returns the current session stats
func (s *Session) Stats() Stats {
	return Stats{
		World:    s.current.Name,
		Frames:   s.Frames,
		Entities: len(s.current.entities),
		Contacts: s.collisions.Contacts,
	}
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}
