package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Worlds, 4)
	assert.Equal(t, "Overworld", cfg.Worlds[0].Name)
	assert.Equal(t, 0.65, cfg.Player.Speed)
	assert.Equal(t, 20.0, cfg.Player.Health)

	over, ok := cfg.World("Overworld")
	require.True(t, ok)
	require.Len(t, over.Spawners, 3)
	assert.Equal(t, SpawnerConfig{Kind: "tree", Interval: 8000, Max: 12, Spread: 1.25, PreSpawned: 12}, over.Spawners[0])

	city, ok := cfg.World("Cityworld")
	require.True(t, ok)
	assert.Equal(t, []PropConfig{{Kind: "office", Count: 10}}, city.Props)

	cave, ok := cfg.World("Caveworld")
	require.True(t, ok)
	assert.Equal(t, "cave", cave.Music)

	_, ok = cfg.World("Nowhere")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides defaults", func(t *testing.T) {
		content := `
screenWidth: 800
screenHeight: 600
seed: 42
player:
  speed: 0.8
  health: 30
worlds:
  - name: Arena
    width: 1000
    height: 900
    solidBorder: true
    innerColor: [1, 2, 3]
    spawners:
      - kind: brawler
        interval: 3000
        max: 1
    props:
      - kind: rock
        count: 4
`
		path := filepath.Join(tempDir, "arena.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 800, cfg.ScreenWidth)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 60, cfg.TPS, "unset fields keep their defaults")
		assert.Equal(t, 0.8, cfg.Player.Speed)
		require.Len(t, cfg.Worlds, 1)

		arena := cfg.Worlds[0]
		assert.Equal(t, "Arena", arena.Name)
		assert.Equal(t, [3]uint8{1, 2, 3}, arena.InnerColor)
		assert.Equal(t, []SpawnerConfig{{Kind: "brawler", Interval: 3000, Max: 1}}, arena.Spawners)
		assert.Equal(t, []PropConfig{{Kind: "rock", Count: 4}}, arena.Props)
	})

	t.Run("env fallback", func(t *testing.T) {
		path := filepath.Join(tempDir, "env.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tps: 30\n"), 0644))
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.TPS)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("worlds: [\n"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no worlds", func(c *Config) { c.Worlds = nil }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero frame cap", func(c *Config) { c.MaxFrameTime = 0 }},
		{"player speed", func(c *Config) { c.Player.Speed = 0 }},
		{"player health", func(c *Config) { c.Player.Health = -1 }},
		{"duplicate world", func(c *Config) { c.Worlds = append(c.Worlds, c.Worlds[0]) }},
		{"empty world name", func(c *Config) { c.Worlds[0].Name = "" }},
		{"world size", func(c *Config) { c.Worlds[1].Width = 0 }},
		{"negative interval", func(c *Config) { c.Worlds[0].Spawners[0].Interval = -1 }},
		{"negative max", func(c *Config) { c.Worlds[0].Spawners[0].Max = -1 }},
		{"negative spread", func(c *Config) { c.Worlds[0].Spawners[0].Spread = -1 }},
		{"empty spawner kind", func(c *Config) { c.Worlds[0].Spawners[0].Kind = "" }},
		{"negative prop count", func(c *Config) { c.Worlds[0].Props[0].Count = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
