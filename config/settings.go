// Package config persists user input settings: the serialized key
// binding table plus the handful of tunables that live next to it in
// the settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/coldiron/colonist/input"
)

// Settings is the on-disk input configuration
type Settings struct {
	// KeyBindings is the input.Manager binding string
	KeyBindings string `toml:"key_bindings"`

	JoystickDeadzone float64 `toml:"joystick_deadzone"`
	MouseSensitivity float64 `toml:"mouse_sensitivity"`
	InvertMouseY     bool    `toml:"invert_mouse_y"`
}

// Default returns the factory settings
func Default() Settings {
	m := input.New()
	return Settings{
		KeyBindings:      m.Save(),
		JoystickDeadzone: input.DefaultDeadzone,
		MouseSensitivity: 1.0,
	}
}

// Load reads settings from a TOML file. A missing file is not an
// error: the factory settings are returned so first launch works
// without any configuration present.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes settings from TOML bytes. Decode errors return the
// factory settings alongside the error so callers can degrade.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes settings as TOML, creating parent directories as needed.
// The write goes through a temp file and rename so a crash mid-write
// cannot truncate the existing settings.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing settings file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing settings %s: %w", path, err)
	}
	return nil
}

// Apply pushes the persisted bindings and deadzone into a manager
func (s Settings) Apply(m *input.Manager) {
	m.Load(s.KeyBindings)
	m.SetDeadzone(s.JoystickDeadzone)
}

// Capture refreshes the binding string and deadzone from a manager,
// leaving the other tunables untouched
func (s *Settings) Capture(m *input.Manager) {
	s.KeyBindings = m.Save()
	s.JoystickDeadzone = m.Deadzone()
}
