// Package event defines the raw device event records produced by
// backends and consumed by the input manager. Events arrive on the main
// thread in device-generation order.
package event

import (
	"github.com/coldiron/colonist/key"
	"github.com/coldiron/colonist/vmath"
)

// Type discriminates raw input events
type Type uint8

const (
	None Type = iota
	KeyDown
	KeyUp
	MouseMove
	MouseDown
	MouseUp
	MouseWheel
	JoyAxis
	JoyButtonDown
	JoyButtonUp
	FocusLost
	Quit
)

// Mod is a keyboard modifier bitmask
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModMeta  Mod = 1 << 3
)

// Event is one raw device event. Only the fields relevant to Type are
// populated; the rest stay zero.
type Event struct {
	Type Type

	// KeyDown, KeyUp, JoyButtonDown, JoyButtonUp
	Key  key.Code
	Mods Mod

	// MouseMove, MouseDown, MouseUp, MouseWheel
	Pos    vmath.Point
	Button int // 0 = left, 1 = right, 2 = middle

	// Wheel is the scroll delta, positive away from the user. The
	// input manager does not accumulate wheel deltas; hosts consume
	// them from the event stream (camera zoom and the like).
	Wheel int

	// JoyAxis
	Axis  int
	Value float64 // -1..1
}

func (t Type) String() string {
	switch t {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case MouseMove:
		return "mouse_move"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case MouseWheel:
		return "mouse_wheel"
	case JoyAxis:
		return "joy_axis"
	case JoyButtonDown:
		return "joy_button_down"
	case JoyButtonUp:
		return "joy_button_up"
	case FocusLost:
		return "focus_lost"
	case Quit:
		return "quit"
	}
	return "none"
}
