// Package input translates raw device events into logical game actions.
// A Manager owns the rebindable binding tables, tracks modifier, tracked-key
// and mouse-button state, and derives keyboard and joystick motion vectors.
//
// The Manager is not safe for concurrent use; the host application feeds
// it from its main event loop.
package input

import (
	"fmt"
	"math"

	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/key"
	"github.com/coldiron/colonist/vmath"
)

// TrackedKey is a bitmask of auxiliary keys whose pressed state is
// tracked independently of slot bindings (camera nudging, zoom).
type TrackedKey uint8

const (
	TrackedNumUp TrackedKey = 1 << iota
	TrackedNumDown
	TrackedNumLeft
	TrackedNumRight
	TrackedNumPlus
	TrackedNumMinus
	TrackedPageUp
	TrackedPageDown
)

// trackedCodes maps physical codes to tracked-key bits
var trackedCodes = map[key.Code]TrackedKey{
	key.NumUp:    TrackedNumUp,
	key.NumDown:  TrackedNumDown,
	key.NumLeft:  TrackedNumLeft,
	key.NumRight: TrackedNumRight,
	key.NumPlus:  TrackedNumPlus,
	key.NumMinus: TrackedNumMinus,
	key.PageUp:   TrackedPageUp,
	key.PageDown: TrackedPageDown,
}

// DefaultDeadzone is the factory joystick deadzone threshold
const DefaultDeadzone = 0.2

// maxMouseButtons bounds the mouse-button bitmask
const maxMouseButtons = 8

// Manager is the single authoritative translator from raw events to
// logical input state and the single owner of the binding configuration.
// Construct one per application context with New; there is no package
// level instance.
type Manager struct {
	bindings     [SlotCount]Binding
	axisBindings [AxisSlotCount]AxisBinding
	deadzone     float64

	mods         event.Mod
	trackedKeys  TrackedKey
	mousePos     vmath.Point
	mouseButtons uint8

	keyMotion vmath.Vec3
	joyMotion vmath.Vec3
}

// New returns a Manager populated with the factory bindings
func New() *Manager {
	m := &Manager{deadzone: DefaultDeadzone}
	m.SetDefaults()
	return m
}

// Process consumes one raw event and updates modifier, tracked-key,
// mouse and motion state. For key and joystick-button events it returns
// the slot the code resolves to; ok is false when no binding matches or
// the event carries no bindable code.
func (m *Manager) Process(ev event.Event) (Slot, bool) {
	switch ev.Type {
	case event.KeyDown:
		m.mods = ev.Mods
		m.setTracked(ev.Key, true)
		return m.resolvePress(ev.Key, true)

	case event.KeyUp:
		m.mods = ev.Mods
		m.setTracked(ev.Key, false)
		return m.resolvePress(ev.Key, false)

	case event.JoyButtonDown:
		return m.resolvePress(ev.Key, true)

	case event.JoyButtonUp:
		return m.resolvePress(ev.Key, false)

	case event.MouseMove:
		m.mousePos = ev.Pos

	case event.MouseDown:
		m.mousePos = ev.Pos
		if ev.Button >= 0 && ev.Button < maxMouseButtons {
			m.mouseButtons |= 1 << ev.Button
		}

	case event.MouseUp:
		m.mousePos = ev.Pos
		if ev.Button >= 0 && ev.Button < maxMouseButtons {
			m.mouseButtons &^= 1 << ev.Button
		}

	case event.MouseWheel:
		m.mousePos = ev.Pos

	case event.JoyAxis:
		m.applyAxis(ev.Axis, ev.Value)

	case event.FocusLost:
		m.ResetKeyStates()
	}
	return SlotCount, false
}

// resolvePress maps a code to its slot and drives the keyboard motion
// vector for movement slots
func (m *Manager) resolvePress(c key.Code, down bool) (Slot, bool) {
	slot, ok := m.FindBinding(c)
	if !ok {
		return SlotCount, false
	}
	m.applyKeyMotion(slot, down)
	return slot, true
}

func (m *Manager) setTracked(c key.Code, down bool) {
	bit, ok := trackedCodes[c]
	if !ok {
		return
	}
	if down {
		m.trackedKeys |= bit
	} else {
		m.trackedKeys &^= bit
	}
}

// applyKeyMotion sets motion components to ±1 on press. Release only
// clears a component still owned by this slot's direction, so opposing
// keys hand over cleanly.
func (m *Manager) applyKeyMotion(slot Slot, down bool) {
	switch slot {
	case SlotTurnLeft:
		setMotionComponent(&m.keyMotion.X, -1, down)
	case SlotTurnRight:
		setMotionComponent(&m.keyMotion.X, 1, down)
	case SlotMoveForward:
		setMotionComponent(&m.keyMotion.Y, 1, down)
	case SlotMoveBack:
		setMotionComponent(&m.keyMotion.Y, -1, down)
	case SlotAscend:
		setMotionComponent(&m.keyMotion.Z, 1, down)
	case SlotDescend:
		setMotionComponent(&m.keyMotion.Z, -1, down)
	}
}

func setMotionComponent(c *float64, dir float64, down bool) {
	if down {
		*c = dir
	} else if *c == dir {
		*c = 0
	}
}

// applyAxis routes a physical axis value into the joystick motion
// vector through the deadzone and inversion flags
func (m *Manager) applyAxis(axis int, value float64) {
	if axis < 0 {
		return
	}
	for s := AxisSlot(0); s < AxisSlotCount; s++ {
		b := m.axisBindings[s]
		if !b.IsBound() || b.Axis != axis {
			continue
		}
		v := value
		if b.Invert {
			v = -v
		}
		if math.Abs(v) < m.deadzone {
			v = 0
		}
		switch s {
		case AxisSlotMoveX:
			m.joyMotion.X = v
		case AxisSlotMoveY:
			m.joyMotion.Y = v
		case AxisSlotAltitude:
			m.joyMotion.Z = v
		}
	}
}

// MouseMove records a pointer-motion position. Equivalent to processing
// a MouseMove event; kept as an explicit entry point for hosts that
// receive pointer motion outside their event queue.
func (m *Manager) MouseMove(pos vmath.Point) {
	m.mousePos = pos
}

// MousePos returns the current pointer position in interface coordinates
func (m *Manager) MousePos() vmath.Point {
	return m.mousePos
}

// Mods returns the current modifier bitmask
func (m *Manager) Mods() event.Mod {
	return m.mods
}

// ModState reports whether every bit in mod is active
func (m *Manager) ModState(mod event.Mod) bool {
	return mod != 0 && m.mods&mod == mod
}

// TrackedState reports whether every bit in k is pressed
func (m *Manager) TrackedState(k TrackedKey) bool {
	return k != 0 && m.trackedKeys&k == k
}

// ButtonState reports whether mouse button index is pressed.
// Indices outside the known range report false.
func (m *Manager) ButtonState(index int) bool {
	if index < 0 || index >= maxMouseButtons {
		return false
	}
	return m.mouseButtons&(1<<index) != 0
}

// ResetKeyStates clears tracked-key and modifier state and zeroes the
// keyboard motion vector. Called on focus loss and mode transitions so
// keys released while unfocused do not stick.
func (m *Manager) ResetKeyStates() {
	m.trackedKeys = 0
	m.mods = event.ModNone
	m.keyMotion = vmath.Vec3{}
}

// KeyMotion returns the keyboard/button-derived motion vector,
// components in {-1, 0, 1}
func (m *Manager) KeyMotion() vmath.Vec3 {
	return m.keyMotion
}

// JoyMotion returns the joystick-axis-derived motion vector,
// components in [-1, 1] after deadzone filtering
func (m *Manager) JoyMotion() vmath.Vec3 {
	return m.joyMotion
}

// SetBinding replaces the physical codes bound to a slot. Each code
// must be key.Invalid or carry a canonical name, so every table built
// through this method survives a Save/Load cycle intact.
func (m *Manager) SetBinding(slot Slot, b Binding) error {
	if slot >= SlotCount {
		return fmt.Errorf("input: slot %d out of range", slot)
	}
	if err := validateCode(b.Primary); err != nil {
		return err
	}
	if err := validateCode(b.Secondary); err != nil {
		return err
	}
	m.bindings[slot] = b
	return nil
}

func validateCode(c key.Code) error {
	if c != key.Invalid && !key.Canonical(c) {
		return fmt.Errorf("input: code %#x has no canonical name", uint32(c))
	}
	return nil
}

// BindingFor returns the binding for a slot.
// Out-of-range slots return the zero binding and false.
func (m *Manager) BindingFor(slot Slot) (Binding, bool) {
	if slot >= SlotCount {
		return Binding{}, false
	}
	return m.bindings[slot], true
}

// SetAxisBinding replaces the physical axis bound to an axis slot.
// Axis must be a non-negative index or AxisNone.
func (m *Manager) SetAxisBinding(slot AxisSlot, b AxisBinding) error {
	if slot >= AxisSlotCount {
		return fmt.Errorf("input: axis slot %d out of range", slot)
	}
	if b.Axis < 0 && b.Axis != AxisNone {
		return fmt.Errorf("input: axis index %d out of range", b.Axis)
	}
	m.axisBindings[slot] = b
	return nil
}

// AxisBindingFor returns the axis binding for an axis slot.
// Out-of-range slots return the unassigned binding and false.
func (m *Manager) AxisBindingFor(slot AxisSlot) (AxisBinding, bool) {
	if slot >= AxisSlotCount {
		return NoAxis(), false
	}
	return m.axisBindings[slot], true
}

// SetDeadzone sets the joystick deadzone threshold shared by all axes,
// clamped to [0, 1]
func (m *Manager) SetDeadzone(zone float64) {
	if zone < 0 {
		zone = 0
	}
	if zone > 1 {
		zone = 1
	}
	m.deadzone = zone
}

// Deadzone returns the joystick deadzone threshold
func (m *Manager) Deadzone() float64 {
	return m.deadzone
}

// FindBinding returns the first slot whose binding matches c. Slots are
// scanned in declaration order, primary before secondary within a slot.
// Returns SlotCount and false when no binding matches.
func (m *Manager) FindBinding(c key.Code) (Slot, bool) {
	if c == key.Invalid {
		return SlotCount, false
	}
	for s := Slot(0); s < SlotCount; s++ {
		if m.bindings[s].Matches(c) {
			return s, true
		}
	}
	return SlotCount, false
}
