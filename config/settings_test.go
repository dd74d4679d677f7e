package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coldiron/colonist/input"
	"github.com/coldiron/colonist/key"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.toml")

	m := input.New()
	if err := m.SetBinding(input.SlotAction, input.Bind(key.Enter)); err != nil {
		t.Fatal(err)
	}
	m.SetDeadzone(0.35)

	s := Default()
	s.Capture(m)
	s.MouseSensitivity = 1.5
	s.InvertMouseY = true

	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != s {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "input.toml")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != Default() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestParseCorruptTOML(t *testing.T) {
	got, err := Parse([]byte("key_bindings = [this is not toml"))
	if err == nil {
		t.Error("expected parse error")
	}
	if got != Default() {
		t.Errorf("corrupt input should fall back to defaults, got %+v", got)
	}
}

func TestParsePartialFileKeepsDefaults(t *testing.T) {
	got, err := Parse([]byte("mouse_sensitivity = 2.0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.MouseSensitivity != 2.0 {
		t.Errorf("mouse_sensitivity = %v, want 2.0", got.MouseSensitivity)
	}
	if got.JoystickDeadzone != input.DefaultDeadzone {
		t.Errorf("unset deadzone = %v, want default", got.JoystickDeadzone)
	}
	if got.KeyBindings == "" {
		t.Error("unset key_bindings should keep the default blob")
	}
}

func TestApplyCapture(t *testing.T) {
	m := input.New()
	if err := m.SetBinding(input.SlotHelp, input.Bind(key.F2)); err != nil {
		t.Fatal(err)
	}
	m.SetDeadzone(0.4)

	var s Settings
	s.Capture(m)

	fresh := input.New()
	s.Apply(fresh)

	b, _ := fresh.BindingFor(input.SlotHelp)
	if b.Primary != key.F2 {
		t.Errorf("help = %+v, want F2", b)
	}
	if fresh.Deadzone() != 0.4 {
		t.Errorf("deadzone = %v, want 0.4", fresh.Deadzone())
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "input.toml")

	if err := Default().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	if !strings.Contains(string(data), "key_bindings") {
		t.Error("settings file missing key_bindings field")
	}
}
