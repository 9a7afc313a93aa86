package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsWithoutStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	assert.Equal(t, DefaultSettings(), sm.Settings())

	sm.Update(func(s *Settings) { s.DebugMode = true })
	assert.True(t, sm.Settings().DebugMode)
	assert.NoError(t, sm.Save())

	require.NoError(t, sm.Load())
	assert.False(t, sm.Settings().DebugMode, "nothing persists without a store")
}

func TestSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	store, err := OpenSettingsStore("lifesim_test")
	require.NoError(t, err)

	sm := NewSettingsManager(store)
	assert.Equal(t, DefaultSettings(), sm.Settings(), "first run uses defaults")

	sm.Update(func(s *Settings) {
		s.SoundEnabled = false
		s.ShowOverlay = false
		s.SoundVolume = 0.3
	})

	reloaded := NewSettingsManager(store)
	assert.False(t, reloaded.Settings().SoundEnabled)
	assert.False(t, reloaded.Settings().ShowOverlay)
	assert.Equal(t, 0.3, reloaded.Settings().SoundVolume)
}

func TestSettingsClampVolume(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	store, err := OpenSettingsStore("lifesim_clamp_test")
	require.NoError(t, err)
	require.NoError(t, store.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: 4\nmusicVolume: -1\n")))

	sm := NewSettingsManager(store)
	assert.Equal(t, 1.0, sm.Settings().SoundVolume)
	assert.Equal(t, 0.0, sm.Settings().MusicVolume)
}

func TestProfilerCooldown(t *testing.T) {
	p := NewProfiler(t.TempDir(), 10*time.Millisecond)
	require.NoError(t, p.Capture("test"))

	err := p.Capture("again")
	assert.ErrorIs(t, err, ErrProfilerBusy)

	p.Wait()
	assert.False(t, p.IsProfiling())
	assert.ErrorIs(t, p.Capture("cooling"), ErrProfilerBusy, "cooldown outlasts the capture")
}
