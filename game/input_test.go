package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"lifesim/sim"
)

func TestTranslateMovement(t *testing.T) {
	in, cmd := Translate(KeyState{
		Held:        []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowLeft},
		CursorWorld: sim.V(10, 20),
	})

	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.Down)
	assert.False(t, in.Right)
	assert.Equal(t, sim.V(10, 20), in.Mouse)
	assert.Equal(t, Commands{}, cmd)
}

func TestTranslateClicks(t *testing.T) {
	in, cmd := Translate(KeyState{LeftClick: true, Cursor: sim.V(400, 300)})
	assert.True(t, in.Fire)
	assert.False(t, cmd.ToggleSound)

	in, cmd = Translate(KeyState{LeftClick: true, Cursor: sim.V(20, 20)})
	assert.False(t, in.Fire, "clicking the sound icon doesn't shoot")
	assert.True(t, cmd.ToggleSound)

	in, _ = Translate(KeyState{RightClick: true})
	assert.True(t, in.Interact)

	in, _ = Translate(KeyState{Pressed: []ebiten.Key{ebiten.KeySpace}})
	assert.True(t, in.Interact)
}

func TestTranslateDebugKeys(t *testing.T) {
	in, cmd := Translate(KeyState{
		Pressed: []ebiten.Key{ebiten.KeyJ, ebiten.Key7, ebiten.KeyN, ebiten.KeyV, ebiten.KeyC, ebiten.KeyR},
	})

	assert.ElementsMatch(t, []string{"brawler", "metalsuit"}, in.Spawns)
	assert.Equal(t, 1, in.WorldStep)
	assert.True(t, cmd.ToggleDebug)
	assert.True(t, cmd.ToggleOverlay)
	assert.True(t, cmd.Restart)

	in, _ = Translate(KeyState{Pressed: []ebiten.Key{ebiten.KeyB}})
	assert.Equal(t, -1, in.WorldStep)

	in, _ = Translate(KeyState{Held: []ebiten.Key{ebiten.KeyJ}})
	assert.Empty(t, in.Spawns, "holding a key spawns once")
}

func TestDebugSpawnKeysAreKnownKinds(t *testing.T) {
	s, err := sim.NewSession(emptyConfig(), sim.NewEnv(1))
	if !assert.NoError(t, err) {
		return
	}
	kinds := s.Kinds()
	for key, kind := range debugSpawnKeys {
		assert.Contains(t, kinds, kind, "key %v", key)
	}
}
