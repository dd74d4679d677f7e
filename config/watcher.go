package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of fs events editors emit per save
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the settings file when it changes on disk. The parent
// directory is watched rather than the file itself so editors that
// replace the file via rename keep triggering.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	handler func(Settings)
	done    chan struct{}
}

// Watch starts watching path and invokes handler with the re-parsed
// settings after each change. The handler runs on the watcher goroutine.
func Watch(path string, handler func(Settings)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving settings path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating settings watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching settings dir: %w", err)
	}

	w := &Watcher{
		path:    abs,
		fw:      fw,
		handler: handler,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) run() {
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
			} else {
				// Drain a tick that fired while we were handling
				// events, otherwise Reset delivers it early
				if !debounce.Stop() {
					select {
					case <-fire:
					default:
					}
				}
				debounce.Reset(debounceDelay)
			}

		case <-fire:
			debounce = nil
			fire = nil
			s, err := Load(w.path)
			if err != nil {
				// Mid-write or corrupt file; keep current settings
				continue
			}
			w.handler(s)

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}
