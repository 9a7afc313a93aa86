package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifesim/config"
	"lifesim/sim"
)

const (
	cameraEase       = 0.2
	fpsWindow        = 500.0 // ms
	fpsDropThreshold = 45.0
	fpsGracePeriod   = 3 * time.Second
	profileDuration  = 5 * time.Second
)

// Options are the collaborators a Game borrows from main
type Options struct {
	Settings    *SettingsManager // nil keeps settings in memory
	Audio       *audio.Context   // nil plays nothing
	ProfilesDir string
}

// Game represents the main game state
type Game struct {
	cfg      *config.Config
	session  *sim.Session
	renderer *Renderer
	camera   *Camera
	hud      *HUD
	input    *PlayerInput
	sound    *SoundManager
	settings *SettingsManager
	profiler *Profiler
	fps      *FPSMeter

	// renderRand drives shake and flicker, apart from the simulation's source
	renderRand *rand.Rand

	cursor    sim.Vec
	worldName string

	gameStartTime  time.Time
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	settings := opts.Settings
	if settings == nil {
		settings = NewSettingsManager(nil)
	}
	if opts.ProfilesDir == "" {
		opts.ProfilesDir = "profiles"
	}
	camera := NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))

	g := &Game{
		cfg:           cfg,
		renderer:      NewRenderer(camera),
		camera:        camera,
		hud:           NewHUD(cfg.ScreenWidth, cfg.ScreenHeight),
		input:         NewPlayerInput(),
		sound:         NewSoundManager(opts.Audio, settings),
		settings:      settings,
		profiler:      NewProfiler(opts.ProfilesDir, profileDuration),
		fps:           NewFPSMeter(fpsWindow),
		renderRand:    sim.NewRand(0),
		gameStartTime: time.Now(),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws away every world and builds a fresh session
func (g *Game) restart() error {
	env := sim.NewEnv(g.cfg.Seed)
	env.Sound = g.sound
	session, err := sim.NewSession(g.cfg, env)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	g.session = session
	g.worldName = session.CurrentWorld().Name
	g.camera.Follow(session.Player.Pos, 1)
	g.lastUpdateTime = time.Now()
	return nil
}

// Session exposes the running simulation
func (g *Game) Session() *sim.Session {
	return g.session
}

// FrameDelta converts a wall-clock gap into a simulation step in milliseconds
func FrameDelta(elapsed time.Duration, maxFrameTime float64) float64 {
	dt := float64(elapsed.Microseconds()) / 1000
	return max(0, min(dt, maxFrameTime))
}

// Update updates the game state
func (g *Game) Update() error {
	now := time.Now()
	dt := FrameDelta(now.Sub(g.lastUpdateTime), g.cfg.MaxFrameTime)
	g.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowHitboxes = !debugState.ShowHitboxes
	}

	ks := g.input.Poll(g.camera)
	in, cmd := Translate(ks)
	g.cursor = ks.Cursor

	if cmd.Restart {
		log.Printf("[Game] Restarting after %d frames", g.session.Frames)
		return g.restart()
	}
	g.applyCommands(cmd)

	g.session.Step(in, dt)

	// Snap on travel, ease otherwise
	ease := cameraEase
	if name := g.session.CurrentWorld().Name; name != g.worldName {
		g.worldName = name
		ease = 1
	}
	g.camera.Follow(g.session.Player.Pos, ease)

	g.trackFPS(dt)
	return nil
}

func (g *Game) applyCommands(cmd Commands) {
	if cmd.ToggleDebug {
		g.settings.Update(func(s *Settings) { s.DebugMode = !s.DebugMode })
	}
	if cmd.ToggleOverlay {
		g.settings.Update(func(s *Settings) { s.ShowOverlay = !s.ShowOverlay })
	}
	if cmd.ToggleSound {
		g.sound.SetEnabled(!g.settings.Settings().SoundEnabled)
	}
}

// trackFPS refreshes the frame rate and profiles severe drops
func (g *Game) trackFPS(dt float64) {
	if !g.fps.Tick(dt) || !g.cfg.ProfileOnFPSDrop {
		return
	}
	if g.fps.FPS >= fpsDropThreshold || time.Since(g.gameStartTime) < fpsGracePeriod {
		return
	}

	st := g.session.Stats()
	reason := fmt.Sprintf("fps%.0f-entities%d", g.fps.FPS, st.Entities)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("[Game] FPS drop detected (%.0f FPS) in %s. GC stats: NumGC=%d, PauseTotal=%v, HeapAlloc=%d KB",
		g.fps.FPS, st.World, m.NumGC, time.Duration(m.PauseTotalNs), m.HeapAlloc/1024)

	if err := g.profiler.Capture(reason); err != nil && !errors.Is(err, ErrProfilerBusy) {
		log.Printf("[Game] Failed to capture profile: %v", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	settings := g.settings.Settings()
	states := g.session.RenderList(g.renderRand)
	debug := settings.DebugMode || GetDebugState().ShowHitboxes
	g.renderer.Render(screen, g.session.CurrentWorld(), states, debug)

	caption := ""
	for _, rs := range states {
		if rs.Caption != "" {
			caption = rs.Caption
			break
		}
	}

	g.hud.Draw(screen, HUDState{
		Stats:       g.session.Stats(),
		Player:      g.session.Player,
		Powerups:    g.session.Powerups,
		Caption:     caption,
		FPS:         g.fps.FPS,
		Drawn:       g.renderer.Drawn,
		Cursor:      g.cursor,
		SoundOn:     g.sound.Enabled(),
		ShowOverlay: settings.ShowOverlay,
		Debug:       settings.DebugMode,
	})
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// Close waits for pending profiles and saves settings
func (g *Game) Close() error {
	g.profiler.Wait()
	return g.settings.Save()
}
