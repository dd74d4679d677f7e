package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/key"
)

func translateOne(t *testing.T, src *Terminal, ev tcell.Event) []event.Event {
	t.Helper()
	return src.Translate(ev, nil)
}

func TestTranslateRuneKey(t *testing.T) {
	src := NewTerminal()

	out := translateOne(t, src, tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	if out[0].Type != event.KeyDown || out[0].Key != key.FromRune('w') {
		t.Errorf("event = %+v, want KeyDown 'w'", out[0])
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	src := NewTerminal()

	tests := []struct {
		tk   tcell.Key
		want key.Code
	}{
		{tcell.KeyUp, key.Up},
		{tcell.KeyPgUp, key.PageUp},
		{tcell.KeyF5, key.F5},
		{tcell.KeyEscape, key.Escape},
		{tcell.KeyBackspace2, key.Backspace},
	}
	for _, tt := range tests {
		out := translateOne(t, src, tcell.NewEventKey(tt.tk, 0, tcell.ModNone))
		if len(out) != 1 || out[0].Key != tt.want {
			t.Errorf("tcell key %v -> %+v, want %v", tt.tk, out, tt.want)
		}
	}
}

func TestTranslateCtrlLetter(t *testing.T) {
	src := NewTerminal()

	out := translateOne(t, src, tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	if out[0].Key != key.FromRune('f') {
		t.Errorf("key = %v, want 'f'", out[0].Key)
	}
	if out[0].Mods&event.ModCtrl == 0 {
		t.Error("ctrl modifier should be set")
	}
}

func TestTranslateModifiers(t *testing.T) {
	src := NewTerminal()

	out := translateOne(t, src, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModShift|tcell.ModAlt))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	want := event.ModShift | event.ModAlt
	if out[0].Mods != want {
		t.Errorf("mods = %v, want %v", out[0].Mods, want)
	}
}

func TestTranslateMouseButtonTransitions(t *testing.T) {
	src := NewTerminal()

	// Press: MouseMove + MouseDown
	out := translateOne(t, src, tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if len(out) != 2 {
		t.Fatalf("press: got %d events, want 2: %+v", len(out), out)
	}
	if out[0].Type != event.MouseMove {
		t.Errorf("first event = %v, want MouseMove", out[0].Type)
	}
	if out[1].Type != event.MouseDown || out[1].Button != 0 {
		t.Errorf("second event = %+v, want MouseDown button 0", out[1])
	}
	if out[1].Pos.X != 10 || out[1].Pos.Y != 5 {
		t.Errorf("pos = %+v, want (10,5)", out[1].Pos)
	}

	// Held: no transition, just motion
	out = translateOne(t, src, tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	if len(out) != 1 || out[0].Type != event.MouseMove {
		t.Errorf("held: got %+v, want single MouseMove", out)
	}

	// Release: MouseMove + MouseUp
	out = translateOne(t, src, tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	if len(out) != 2 || out[1].Type != event.MouseUp || out[1].Button != 0 {
		t.Errorf("release: got %+v, want MouseUp button 0", out)
	}
}

func TestTranslateMouseWheel(t *testing.T) {
	src := NewTerminal()

	out := translateOne(t, src, tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	found := false
	for _, ev := range out {
		if ev.Type == event.MouseWheel && ev.Wheel == 1 {
			found = true
		}
		if ev.Type == event.MouseDown || ev.Type == event.MouseUp {
			t.Errorf("wheel produced button transition: %+v", ev)
		}
	}
	if !found {
		t.Errorf("no wheel event in %+v", out)
	}

	// Wheel bits must not linger as held buttons
	out = translateOne(t, src, tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	for _, ev := range out {
		if ev.Type == event.MouseUp {
			t.Errorf("phantom MouseUp after wheel: %+v", ev)
		}
	}
}

func TestTranslateFocusLost(t *testing.T) {
	src := NewTerminal()

	out := translateOne(t, src, tcell.NewEventFocus(false))
	if len(out) != 1 || out[0].Type != event.FocusLost {
		t.Errorf("got %+v, want FocusLost", out)
	}

	out = translateOne(t, src, tcell.NewEventFocus(true))
	if len(out) != 0 {
		t.Errorf("focus gain should produce no events, got %+v", out)
	}
}
