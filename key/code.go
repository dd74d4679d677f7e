// Package key defines the physical input source identifier space shared
// by event backends and the input manager: printable keys, named special
// keys, and virtual joystick buttons.
package key

// Code identifies a physical input source. Three sub-ranges share the
// space so a single binding table covers keyboard and joystick buttons:
//
//	0x20..0x10FFFF     printable key, value is the lowercased rune
//	specialBase..      named special keys (arrows, function keys, numpad)
//	joyBase..          virtual joystick buttons, see JoyButton
type Code uint32

// Invalid is the unbound sentinel
const Invalid Code = 0

const (
	specialBase Code = 0x0020_0000
	joyBase     Code = 0x0040_0000
	joyMax           = 256 // virtual joystick button indices 0..255
)

// Special key codes
const (
	Escape Code = specialBase + iota
	Enter
	Tab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Pause
	PrintScreen
	LeftShift
	RightShift
	LeftCtrl
	RightCtrl
	LeftAlt
	RightAlt
	NumUp
	NumDown
	NumLeft
	NumRight
	NumPlus
	NumMinus
	specialEnd // keep last
)

// FromRune returns the Code for a printable key. Letters are normalized
// to lowercase so 'W' and 'w' resolve to the same binding.
func FromRune(r rune) Code {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 0x20 {
		return Invalid
	}
	return Code(r)
}

// JoyButton returns the virtual code for joystick button n.
// Out-of-range indices return Invalid.
func JoyButton(n int) Code {
	if n < 0 || n >= joyMax {
		return Invalid
	}
	return joyBase + Code(n)
}

// IsRune reports whether c is a printable key code
func (c Code) IsRune() bool {
	return c >= 0x20 && c < specialBase
}

// Rune returns the rune for a printable key code, or 0
func (c Code) Rune() rune {
	if !c.IsRune() {
		return 0
	}
	return rune(c)
}

// IsSpecial reports whether c is a named special key
func (c Code) IsSpecial() bool {
	return c >= specialBase && c < specialEnd
}

// IsJoyButton reports whether c is a virtual joystick button
func (c Code) IsJoyButton() bool {
	return c >= joyBase && c < joyBase+joyMax
}

// JoyButtonIndex returns the joystick button index, or -1
func (c Code) JoyButtonIndex() int {
	if !c.IsJoyButton() {
		return -1
	}
	return int(c - joyBase)
}
