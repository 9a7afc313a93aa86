package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is consulted by Load when no explicit path is given.
const EnvConfigPath = "LIFESIM_CONFIG"

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// TPS is the number of simulation ticks per second
	TPS int `yaml:"tps"`

	// MaxFrameTime caps a single frame's delta time in milliseconds
	MaxFrameTime float64 `yaml:"maxFrameTime"`

	// Seed for the simulation random source. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// ProfileOnFPSDrop writes a CPU profile when the frame rate collapses
	ProfileOnFPSDrop bool `yaml:"profileOnFPSDrop"`

	Player PlayerConfig `yaml:"player"`

	// Worlds in travel order. The player starts in the first one.
	Worlds []WorldConfig `yaml:"worlds"`
}

// PlayerConfig holds the player's base stats
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Health float64 `yaml:"health"`
}

// WorldConfig describes one world and what populates it
type WorldConfig struct {
	Name        string          `yaml:"name"`
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	OuterColor  [3]uint8        `yaml:"outerColor"`
	InnerColor  [3]uint8        `yaml:"innerColor"`
	SolidBorder bool            `yaml:"solidBorder"`
	Music       string          `yaml:"music"`
	Spawners    []SpawnerConfig `yaml:"spawners"`
	Props       []PropConfig    `yaml:"props"`
}

// SpawnerConfig describes a periodic spawner. Kind names an entity factory.
type SpawnerConfig struct {
	Kind       string  `yaml:"kind"`
	Interval   float64 `yaml:"interval"`
	Max        int     `yaml:"max"`
	Spread     float64 `yaml:"spread"`
	PreSpawned int     `yaml:"preSpawned"`
}

// PropConfig scatters Count entities of Kind when the world is built
type PropConfig struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// Default returns the stock four-world layout
func Default() *Config {
	return &Config{
		ScreenWidth:  1280,
		ScreenHeight: 800,
		TPS:          60,
		MaxFrameTime: 100,
		Player: PlayerConfig{
			Speed:  0.65,
			Health: 20,
		},
		Worlds: []WorldConfig{
			{
				Name:        "Overworld",
				Width:       2500,
				Height:      2500,
				OuterColor:  [3]uint8{220, 200, 140},
				InnerColor:  [3]uint8{85, 175, 95},
				SolidBorder: true,
				Spawners: []SpawnerConfig{
					{Kind: "tree", Interval: 8000, Max: 12, Spread: 1.25, PreSpawned: 12},
					{Kind: "brawler", Interval: 4000, Max: 5},
					{Kind: "brawler_boss", Interval: 45000, Max: 1},
				},
				Props: []PropConfig{{Kind: "rock", Count: 15}},
			},
			{
				Name:        "Cityworld",
				Width:       2500,
				Height:      2500,
				OuterColor:  [3]uint8{105, 210, 150},
				InnerColor:  [3]uint8{175, 175, 175},
				SolidBorder: true,
				Spawners: []SpawnerConfig{
					{Kind: "office", Interval: 0, Max: 10, PreSpawned: 10},
					{Kind: "city_tree", Interval: 0, Max: 8, PreSpawned: 8},
					{Kind: "car", Interval: 0, Max: 3, PreSpawned: 3},
				},
				Props: []PropConfig{{Kind: "office", Count: 10}},
			},
			{
				Name:        "Forestworld",
				Width:       2250,
				Height:      2250,
				OuterColor:  [3]uint8{13, 46, 37},
				InnerColor:  [3]uint8{35, 75, 65},
				SolidBorder: true,
				Music:       "forest",
				Spawners: []SpawnerConfig{
					{Kind: "ranger", Interval: 6000, Max: 4, PreSpawned: 2},
					{Kind: "winter_tree", Interval: 5000, Max: 20, PreSpawned: 20},
				},
				Props: []PropConfig{{Kind: "rock", Count: 8}},
			},
			{
				Name:        "Caveworld",
				Width:       1400,
				Height:      2000,
				OuterColor:  [3]uint8{10, 10, 10},
				InnerColor:  [3]uint8{40, 40, 40},
				SolidBorder: true,
				Music:       "cave",
				Spawners: []SpawnerConfig{
					{Kind: "brawler_boss", Interval: 3000, Max: 4, PreSpawned: 1},
				},
			},
		},
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path falls back to $LIFESIM_CONFIG; if that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the config for values the simulation cannot run with
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("maxFrameTime must be positive, got %v", c.MaxFrameTime)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %v", c.Player.Speed)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player health must be positive, got %v", c.Player.Health)
	}
	if len(c.Worlds) == 0 {
		return fmt.Errorf("at least one world is required")
	}

	names := make(map[string]bool, len(c.Worlds))
	for _, w := range c.Worlds {
		if w.Name == "" {
			return fmt.Errorf("world name cannot be empty")
		}
		if names[w.Name] {
			return fmt.Errorf("duplicate world name %q", w.Name)
		}
		names[w.Name] = true

		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("world %s: size must be positive, got %vx%v", w.Name, w.Width, w.Height)
		}

		for _, s := range w.Spawners {
			if s.Kind == "" {
				return fmt.Errorf("world %s: spawner kind cannot be empty", w.Name)
			}
			if s.Interval < 0 {
				return fmt.Errorf("world %s: spawner %s interval cannot be negative, got %v", w.Name, s.Kind, s.Interval)
			}
			if s.Max < 0 {
				return fmt.Errorf("world %s: spawner %s max cannot be negative, got %d", w.Name, s.Kind, s.Max)
			}
			if s.Spread < 0 {
				return fmt.Errorf("world %s: spawner %s spread cannot be negative, got %v", w.Name, s.Kind, s.Spread)
			}
			if s.PreSpawned < 0 {
				return fmt.Errorf("world %s: spawner %s preSpawned cannot be negative, got %d", w.Name, s.Kind, s.PreSpawned)
			}
		}

		for _, p := range w.Props {
			if p.Kind == "" {
				return fmt.Errorf("world %s: prop kind cannot be empty", w.Name)
			}
			if p.Count < 0 {
				return fmt.Errorf("world %s: prop %s count cannot be negative, got %d", w.Name, p.Kind, p.Count)
			}
		}
	}

	return nil
}

// World returns the config of the named world
func (c *Config) World(name string) (WorldConfig, bool) {
	for _, w := range c.Worlds {
		if w.Name == name {
			return w, true
		}
	}
	return WorldConfig{}, false
}
