package input

import "github.com/coldiron/colonist/key"

// defaultBindings is the factory key table: WASD with arrow-key
// secondaries, joystick button 0 on the action slot
var defaultBindings = [SlotCount]Binding{
	SlotMoveForward:   Bind2(key.FromRune('w'), key.Up),
	SlotMoveBack:      Bind2(key.FromRune('s'), key.Down),
	SlotTurnLeft:      Bind2(key.FromRune('a'), key.Left),
	SlotTurnRight:     Bind2(key.FromRune('d'), key.Right),
	SlotAscend:        Bind(key.FromRune('e')),
	SlotDescend:       Bind(key.FromRune('q')),
	SlotCameraCloser:  Bind(key.NumPlus),
	SlotCameraFarther: Bind(key.NumMinus),
	SlotAction:        Bind2(key.FromRune(' '), key.JoyButton(0)),
	SlotDeselect:      Bind(key.FromRune('x')),
	SlotSelectNext:    Bind(key.Tab),
	SlotPause:         Bind2(key.Pause, key.FromRune('p')),
	SlotSpeedSlower:   Bind(key.FromRune('-')),
	SlotSpeedFaster:   Bind(key.FromRune('=')),
	SlotQuickSave:     Bind(key.F5),
	SlotQuickLoad:     Bind(key.F9),
	SlotHelp:          Bind(key.F1),
	SlotConsole:       Bind(key.FromRune('`')),
	SlotScreenshot:    Bind(key.F12),
	SlotQuit:          Bind(key.Escape),
}

// defaultAxisBindings assumes the common stick layout: axis 0 = X,
// axis 1 = Y (up is negative on most pads, so inverted), axis 2 = throttle
var defaultAxisBindings = [AxisSlotCount]AxisBinding{
	AxisSlotMoveX:    {Axis: 0},
	AxisSlotMoveY:    {Axis: 1, Invert: true},
	AxisSlotAltitude: {Axis: 2},
}

// SetDefaults populates all binding tables with the factory bindings
// and restores the factory deadzone
func (m *Manager) SetDefaults() {
	m.bindings = defaultBindings
	m.axisBindings = defaultAxisBindings
	m.deadzone = DefaultDeadzone
}
