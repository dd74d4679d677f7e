package key

import (
	"fmt"
	"strconv"
	"strings"
)

// specialToName maps special key codes to canonical config string names
var specialToName = map[Code]string{
	Escape:      "escape",
	Enter:       "enter",
	Tab:         "tab",
	Backspace:   "backspace",
	Delete:      "delete",
	Insert:      "insert",
	Home:        "home",
	End:         "end",
	PageUp:      "page_up",
	PageDown:    "page_down",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	F1:          "f1",
	F2:          "f2",
	F3:          "f3",
	F4:          "f4",
	F5:          "f5",
	F6:          "f6",
	F7:          "f7",
	F8:          "f8",
	F9:          "f9",
	F10:         "f10",
	F11:         "f11",
	F12:         "f12",
	Pause:       "pause",
	PrintScreen: "print_screen",
	LeftShift:   "left_shift",
	RightShift:  "right_shift",
	LeftCtrl:    "left_ctrl",
	RightCtrl:   "right_ctrl",
	LeftAlt:     "left_alt",
	RightAlt:    "right_alt",
	NumUp:       "num_up",
	NumDown:     "num_down",
	NumLeft:     "num_left",
	NumRight:    "num_right",
	NumPlus:     "num_plus",
	NumMinus:    "num_minus",
}

// runeAliases names printable keys that would collide with the
// serialization format or be unreadable as bare characters
var runeAliases = map[string]rune{
	"space":     ' ',
	"comma":     ',',
	"semicolon": ';',
	"equals":    '=',
	"dash":      '-',
	"backslash": '\\',
	"backtick":  '`',
	"at":        '@',
}

var nameToSpecial map[string]Code
var runeToAlias map[rune]string

func init() {
	nameToSpecial = make(map[string]Code, len(specialToName))
	for k, v := range specialToName {
		nameToSpecial[v] = k
	}
	// Aliases
	nameToSpecial["pgup"] = PageUp
	nameToSpecial["pgdn"] = PageDown

	runeToAlias = make(map[rune]string, len(runeAliases))
	for name, r := range runeAliases {
		runeToAlias[r] = name
	}
}

// Name returns the canonical config name for a code.
// Returns empty string for Invalid or unknown codes.
func Name(c Code) string {
	switch {
	case c == Invalid:
		return ""
	case c.IsSpecial():
		return specialToName[c]
	case c.IsJoyButton():
		return "joy_" + strconv.Itoa(c.JoyButtonIndex())
	case c.IsRune():
		if alias, ok := runeToAlias[c.Rune()]; ok {
			return alias
		}
		return string(c.Rune())
	}
	return ""
}

// ByName resolves a canonical config name to a code.
// Returns Invalid and false if the name is unknown.
func ByName(name string) (Code, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Invalid, false
	}
	if r, ok := runeAliases[name]; ok {
		return FromRune(r), true
	}
	if c, ok := nameToSpecial[name]; ok {
		return c, true
	}
	if idx, ok := strings.CutPrefix(name, "joy_"); ok {
		n, err := strconv.Atoi(idx)
		if err != nil || JoyButton(n) == Invalid {
			return Invalid, false
		}
		return JoyButton(n), true
	}
	runes := []rune(name)
	if len(runes) == 1 {
		if c := FromRune(runes[0]); c != Invalid {
			return c, true
		}
	}
	return Invalid, false
}

// Canonical reports whether c is representable in the config name
// space: Name yields a non-empty name that resolves back to c. Codes
// outside the defined ranges, or rune codes that Name would fold onto
// a different code, are not canonical.
func Canonical(c Code) bool {
	n := Name(c)
	if n == "" {
		return false
	}
	r, ok := ByName(n)
	return ok && r == c
}

// specialToLabel maps special keys to human display labels
var specialToLabel = map[Code]string{
	Escape:      "Escape",
	Enter:       "Enter",
	Tab:         "Tab",
	Backspace:   "Backspace",
	Delete:      "Delete",
	Insert:      "Insert",
	Home:        "Home",
	End:         "End",
	PageUp:      "Page Up",
	PageDown:    "Page Down",
	Up:          "Up Arrow",
	Down:        "Down Arrow",
	Left:        "Left Arrow",
	Right:       "Right Arrow",
	Pause:       "Pause",
	PrintScreen: "Print Screen",
	LeftShift:   "Left Shift",
	RightShift:  "Right Shift",
	LeftCtrl:    "Left Ctrl",
	RightCtrl:   "Right Ctrl",
	LeftAlt:     "Left Alt",
	RightAlt:    "Right Alt",
	NumUp:       "Num Up",
	NumDown:     "Num Down",
	NumLeft:     "Num Left",
	NumRight:    "Num Right",
	NumPlus:     "Num +",
	NumMinus:    "Num -",
}

// Label returns a human-readable display name for a code, for use in
// settings screens ("W", "Up Arrow", "Joy 3").
// Returns empty string for Invalid or unknown codes.
func Label(c Code) string {
	switch {
	case c == Invalid:
		return ""
	case c.IsSpecial():
		if l, ok := specialToLabel[c]; ok {
			return l
		}
		// F1..F12 read fine as their uppercase config names
		return strings.ToUpper(specialToName[c])
	case c.IsJoyButton():
		return fmt.Sprintf("Joy %d", c.JoyButtonIndex())
	case c == Code(' '):
		return "Space"
	case c.IsRune():
		return strings.ToUpper(string(c.Rune()))
	}
	return ""
}
