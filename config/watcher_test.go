package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.toml")

	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Settings, 1)
	w, err := Watch(path, func(s Settings) {
		select {
		case reloaded <- s:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	changed := Default()
	changed.MouseSensitivity = 3.0
	if err := changed.Save(path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-reloaded:
		if got.MouseSensitivity != 3.0 {
			t.Errorf("reloaded sensitivity = %v, want 3.0", got.MouseSensitivity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after settings change")
	}
}

func TestWatcherDeliversAfterWriteBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.toml")

	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Settings, 16)
	w, err := Watch(path, func(s Settings) {
		select {
		case reloaded <- s:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Rapid rewrites pile fs events onto an already-running debounce
	// timer; the last write must still produce a reload
	for i := 1; i <= 5; i++ {
		s := Default()
		s.MouseSensitivity = float64(i)
		if err := s.Save(path); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-reloaded:
			if got.MouseSensitivity == 5.0 {
				return
			}
		case <-deadline:
			t.Fatal("final write of the burst was never reloaded")
		}
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.toml")

	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	w, err := Watch(path, func(Settings) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := Default().Save(filepath.Join(dir, "other.toml")); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Error("watcher fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
