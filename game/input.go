package game

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifesim/sim"
)

// debugSpawnKeys drop an entity of the given kind at the cursor
var debugSpawnKeys = map[ebiten.Key]string{
	ebiten.KeyJ:         "brawler",
	ebiten.KeyK:         "brawler_boss",
	ebiten.KeyL:         "ranger",
	ebiten.KeySemicolon: "boomer",
	ebiten.KeyQuote:     "car",
	ebiten.KeyH:         "ally_bot",
	ebiten.KeyT:         "ranger_boss",
	ebiten.Key1:         "apple",
	ebiten.Key2:         "shield",
	ebiten.Key3:         "dmg_up",
	ebiten.Key4:         "shotgun",
	ebiten.Key5:         "arrows",
	ebiten.Key6:         "speed_shoes",
	ebiten.Key7:         "metalsuit",
	ebiten.Key8:         "grenade",
	ebiten.Key9:         "invis",
	ebiten.Key0:         "wrench",
}

// soundIconSize is the clickable sound toggle in the top-left corner
var soundIconSize = sim.V(55, 60)

// Commands are the frame's requests aimed at the game shell rather than the simulation
type Commands struct {
	Restart       bool
	ToggleDebug   bool
	ToggleOverlay bool
	ToggleSound   bool
}

// KeyState is one frame of raw device state
type KeyState struct {
	Held    []ebiten.Key
	Pressed []ebiten.Key // went down this frame

	LeftClick  bool
	RightClick bool

	// Cursor in screen and world space
	Cursor      sim.Vec
	CursorWorld sim.Vec
}

// PlayerInput provides input from keyboard and mouse
type PlayerInput struct {
	held    []ebiten.Key
	pressed []ebiten.Key
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		held:    make([]ebiten.Key, 0, 10),
		pressed: make([]ebiten.Key, 0, 10),
	}
}

// Poll reads the devices for this frame
func (p *PlayerInput) Poll(camera *Camera) KeyState {
	p.held = inpututil.AppendPressedKeys(p.held[:0])
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])

	mx, my := ebiten.CursorPosition()
	wx, wy := camera.ScreenToWorld(float64(mx), float64(my))

	return KeyState{
		Held:        p.held,
		Pressed:     p.pressed,
		LeftClick:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Cursor:      sim.V(float64(mx), float64(my)),
		CursorWorld: sim.V(wx, wy),
	}
}

// Translate turns raw device state into simulation input and shell commands
func Translate(ks KeyState) (sim.Input, Commands) {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if slices.Contains(ks.Held, k) {
				return true
			}
		}
		return false
	}
	pressed := func(k ebiten.Key) bool { return slices.Contains(ks.Pressed, k) }

	in := sim.Input{
		Up:       held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     held(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     held(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    held(ebiten.KeyD, ebiten.KeyArrowRight),
		Interact: ks.RightClick || pressed(ebiten.KeySpace),
		Mouse:    ks.CursorWorld,
	}
	cmd := Commands{
		Restart:       pressed(ebiten.KeyR),
		ToggleDebug:   pressed(ebiten.KeyV),
		ToggleOverlay: pressed(ebiten.KeyC),
		ToggleSound:   pressed(ebiten.KeyM),
	}

	if ks.LeftClick {
		if ks.Cursor.X < soundIconSize.X && ks.Cursor.Y < soundIconSize.Y {
			cmd.ToggleSound = true
		} else {
			in.Fire = true
		}
	}

	for _, k := range ks.Pressed {
		if kind, ok := debugSpawnKeys[k]; ok {
			in.Spawns = append(in.Spawns, kind)
		}
	}
	if pressed(ebiten.KeyB) {
		in.WorldStep--
	}
	if pressed(ebiten.KeyN) {
		in.WorldStep++
	}

	return in, cmd
}
