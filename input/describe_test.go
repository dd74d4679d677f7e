package input

import (
	"testing"

	"github.com/coldiron/colonist/key"
)

func TestKeysString(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		want    string
	}{
		{"both bound", Bind2(key.FromRune('w'), key.Up), "W or Up Arrow"},
		{"primary only", Bind(key.F5), "F5"},
		{"secondary only", Binding{Secondary: key.PageDown}, "Page Down"},
		{"unbound", Binding{}, "?"},
		{"space", Bind(key.FromRune(' ')), "Space"},
		{"joy button", Bind(key.JoyButton(3)), "Joy 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeysString(tt.binding); got != tt.want {
				t.Errorf("KeysString(%+v) = %q, want %q", tt.binding, got, tt.want)
			}
		})
	}
}

func TestSlotKeysString(t *testing.T) {
	m := New()

	if got := m.SlotKeysString(SlotMoveForward); got != "W or Up Arrow" {
		t.Errorf("SlotKeysString(move_forward) = %q", got)
	}
	if got := m.SlotKeysString(SlotCount); got != "?" {
		t.Errorf("SlotKeysString(out of range) = %q, want ?", got)
	}
}
