// Package backend translates device-specific APIs into engine event
// records. Each source owns the state needed to synthesize transitions
// the underlying API does not report directly.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/key"
	"github.com/coldiron/colonist/vmath"
)

// Terminal translates tcell events into engine events. Terminals report
// key presses only (no release), so keyboard output is KeyDown events;
// mouse button transitions are synthesized by diffing tcell's button mask.
type Terminal struct {
	buttons tcell.ButtonMask
}

// NewTerminal returns a translator with no buttons held
func NewTerminal() *Terminal {
	return &Terminal{}
}

// tcellSpecial maps tcell named keys to key codes
var tcellSpecial = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
	tcell.KeyPause:      key.Pause,
	tcell.KeyPrint:      key.PrintScreen,
}

// mouseButtons pairs tcell button bits with engine button indices,
// in the 0 = left, 1 = right, 2 = middle convention
var mouseButtons = []struct {
	mask  tcell.ButtonMask
	index int
}{
	{tcell.Button1, 0},
	{tcell.Button2, 1},
	{tcell.Button3, 2},
}

// Translate converts one tcell event into zero or more engine events
// appended to dst
func (t *Terminal) Translate(ev tcell.Event, dst []event.Event) []event.Event {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		code, mods, ok := translateKey(tev)
		if !ok {
			return dst
		}
		return append(dst, event.Event{
			Type: event.KeyDown,
			Key:  code,
			Mods: mods,
		})

	case *tcell.EventMouse:
		return t.translateMouse(tev, dst)

	case *tcell.EventFocus:
		if !tev.Focused {
			return append(dst, event.Event{Type: event.FocusLost})
		}

	case *tcell.EventInterrupt:
		return append(dst, event.Event{Type: event.Quit})
	}
	return dst
}

func translateKey(ev *tcell.EventKey) (key.Code, event.Mod, bool) {
	mods := translateMods(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		code := key.FromRune(ev.Rune())
		if code == key.Invalid {
			return key.Invalid, mods, false
		}
		return code, mods, true
	}

	if code, ok := tcellSpecial[k]; ok {
		return code, mods, true
	}

	// Ctrl+letter arrives as a control code, not a rune
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.FromRune(r), mods | event.ModCtrl, true
	}

	return key.Invalid, mods, false
}

func translateMods(m tcell.ModMask) event.Mod {
	var mods event.Mod
	if m&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= event.ModMeta
	}
	return mods
}

func (t *Terminal) translateMouse(ev *tcell.EventMouse, dst []event.Event) []event.Event {
	x, y := ev.Position()
	pos := vmath.Point{X: float64(x), Y: float64(y)}

	dst = append(dst, event.Event{Type: event.MouseMove, Pos: pos})

	cur := ev.Buttons()

	// Wheel bits are transient, not part of the held-button state
	if cur&tcell.WheelUp != 0 {
		dst = append(dst, event.Event{Type: event.MouseWheel, Pos: pos, Wheel: 1})
	}
	if cur&tcell.WheelDown != 0 {
		dst = append(dst, event.Event{Type: event.MouseWheel, Pos: pos, Wheel: -1})
	}

	for _, b := range mouseButtons {
		was := t.buttons&b.mask != 0
		is := cur&b.mask != 0
		if is && !was {
			dst = append(dst, event.Event{Type: event.MouseDown, Pos: pos, Button: b.index})
		}
		if !is && was {
			dst = append(dst, event.Event{Type: event.MouseUp, Pos: pos, Button: b.index})
		}
	}
	t.buttons = cur &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	return dst
}
