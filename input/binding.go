package input

import (
	"github.com/coldiron/colonist/key"
)

// AxisNone marks an axis binding with no physical axis assigned
const AxisNone = -1

// Binding associates one logical slot with up to two physical sources.
// Either code may be key.Invalid (unbound).
type Binding struct {
	Primary   key.Code
	Secondary key.Code
}

// Bind is shorthand for a primary-only binding
func Bind(primary key.Code) Binding {
	return Binding{Primary: primary}
}

// Bind2 is shorthand for a primary+secondary binding
func Bind2(primary, secondary key.Code) Binding {
	return Binding{Primary: primary, Secondary: secondary}
}

// Matches reports whether c equals the primary or secondary code.
// Invalid never matches, so unbound entries cannot shadow real keys.
func (b Binding) Matches(c key.Code) bool {
	return c != key.Invalid && (b.Primary == c || b.Secondary == c)
}

// IsBound reports whether at least one code is assigned
func (b Binding) IsBound() bool {
	return b.Primary != key.Invalid || b.Secondary != key.Invalid
}

// AxisBinding associates one logical axis slot with a physical joystick
// axis index, optionally inverted. Axis is AxisNone when unassigned.
type AxisBinding struct {
	Axis   int
	Invert bool
}

// NoAxis is the unassigned axis binding
func NoAxis() AxisBinding {
	return AxisBinding{Axis: AxisNone}
}

// IsBound reports whether a physical axis is assigned
func (b AxisBinding) IsBound() bool {
	return b.Axis != AxisNone
}
