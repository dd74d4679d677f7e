package input

import (
	"github.com/coldiron/colonist/key"
)

// KeysString renders a binding as display text for settings screens,
// e.g. "W or Up Arrow". Unbound entries render as "?".
func KeysString(b Binding) string {
	primary := key.Label(b.Primary)
	secondary := key.Label(b.Secondary)

	switch {
	case primary != "" && secondary != "":
		return primary + " or " + secondary
	case primary != "":
		return primary
	case secondary != "":
		return secondary
	}
	return "?"
}

// SlotKeysString renders the binding currently assigned to a slot.
// Out-of-range slots render as "?".
func (m *Manager) SlotKeysString(slot Slot) string {
	b, ok := m.BindingFor(slot)
	if !ok {
		return "?"
	}
	return KeysString(b)
}
