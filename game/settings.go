package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player's preferences, kept across runs
type Settings struct {
	SoundVolume  float64 `yaml:"soundVolume"`
	MusicVolume  float64 `yaml:"musicVolume"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	ShowOverlay  bool    `yaml:"showOverlay"`
	DebugMode    bool    `yaml:"debugMode"`
}

// DefaultSettings returns the out-of-the-box preferences
func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:  0.8,
		MusicVolume:  1.0,
		SoundEnabled: true,
		ShowOverlay:  true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings. With no gdata manager it keeps them in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

// OpenSettingsStore opens the per-user data directory for appName
func OpenSettingsStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	return m, nil
}

// NewSettingsManager creates a settings manager and loads whatever was saved before
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load reads the saved settings, falling back to defaults when nothing was saved
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	sm.settings = &loaded
	return nil
}

// Save writes the settings. It is a no-op without a store.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the live settings
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// Update applies fn to the settings and saves them
func (sm *SettingsManager) Update(fn func(s *Settings)) {
	fn(sm.settings)
	if err := sm.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
