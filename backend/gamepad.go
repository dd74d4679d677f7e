package backend

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/key"
)

// axisEpsilon suppresses axis events for sub-noise movement; the input
// manager applies the user-configurable deadzone on top of this
const axisEpsilon = 0.01

// Gamepad polls one ebiten gamepad and emits transition events: button
// diffs become JoyButtonDown/Up with virtual joystick codes, axes that
// moved become JoyAxis events. Poll once per frame from the game loop.
type Gamepad struct {
	id      ebiten.GamepadID
	buttons []bool
	axes    []float64
}

// NewGamepad returns a poller for the given gamepad
func NewGamepad(id ebiten.GamepadID) *Gamepad {
	return &Gamepad{id: id}
}

// ID returns the polled gamepad's identifier
func (g *Gamepad) ID() ebiten.GamepadID {
	return g.id
}

// Poll reads the gamepad state and appends one event per transition
// since the previous call
func (g *Gamepad) Poll(dst []event.Event) []event.Event {
	dst = g.pollButtons(dst)
	dst = g.pollAxes(dst)
	return dst
}

func (g *Gamepad) pollButtons(dst []event.Event) []event.Event {
	n := ebiten.GamepadButtonCount(g.id)
	if n > len(g.buttons) {
		g.buttons = append(g.buttons, make([]bool, n-len(g.buttons))...)
	}

	for i := 0; i < n; i++ {
		pressed := ebiten.IsGamepadButtonPressed(g.id, ebiten.GamepadButton(i))
		if pressed == g.buttons[i] {
			continue
		}
		g.buttons[i] = pressed

		typ := event.JoyButtonUp
		if pressed {
			typ = event.JoyButtonDown
		}
		dst = append(dst, event.Event{Type: typ, Key: key.JoyButton(i)})
	}
	return dst
}

func (g *Gamepad) pollAxes(dst []event.Event) []event.Event {
	n := ebiten.GamepadAxisCount(g.id)
	if n > len(g.axes) {
		g.axes = append(g.axes, make([]float64, n-len(g.axes))...)
	}

	for i := 0; i < n; i++ {
		v := ebiten.GamepadAxisValue(g.id, i)
		if math.Abs(v-g.axes[i]) < axisEpsilon {
			continue
		}
		g.axes[i] = v
		dst = append(dst, event.Event{Type: event.JoyAxis, Axis: i, Value: v})
	}
	return dst
}
