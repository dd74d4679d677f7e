package input

import (
	"strconv"
	"strings"

	"github.com/coldiron/colonist/key"
)

// Persisted binding string format, one text blob for the settings file:
//
//	v1;move_forward=w,up;...;@move_x=0;@move_y=1,inv;@altitude=2
//
// Slot entries are name=primary,secondary using canonical key names with
// "-" for unbound codes. Axis entries are prefixed with '@' and carry the
// axis index with an optional ",inv" flag, or "-" when unassigned.
// Name-based entries stay stable when the slot enum is reordered.
const bindingsVersion = "v1"

const unboundToken = "-"

// Save serializes the entire binding table to its textual form.
// The result round-trips exactly through Load.
func (m *Manager) Save() string {
	var sb strings.Builder
	sb.WriteString(bindingsVersion)

	for s := Slot(0); s < SlotCount; s++ {
		b := m.bindings[s]
		sb.WriteByte(';')
		sb.WriteString(SlotName(s))
		sb.WriteByte('=')
		sb.WriteString(codeToken(b.Primary))
		sb.WriteByte(',')
		sb.WriteString(codeToken(b.Secondary))
	}

	for s := AxisSlot(0); s < AxisSlotCount; s++ {
		b := m.axisBindings[s]
		sb.WriteByte(';')
		sb.WriteByte('@')
		sb.WriteString(AxisSlotName(s))
		sb.WriteByte('=')
		if !b.IsBound() {
			sb.WriteString(unboundToken)
			continue
		}
		sb.WriteString(strconv.Itoa(b.Axis))
		if b.Invert {
			sb.WriteString(",inv")
		}
	}

	return sb.String()
}

// Load parses a persisted binding string. The table is first reset to
// the factory bindings, then every parseable entry is applied; corrupt
// or unknown entries are skipped so a damaged settings file degrades to
// defaults instead of aborting. Returns the number of entries skipped.
func (m *Manager) Load(s string) int {
	m.SetDefaults()

	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	skipped := 0
	tokens := strings.Split(s, ";")
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		// Version marker, accepted anywhere but conventionally first
		if i == 0 && !strings.ContainsRune(tok, '=') {
			continue
		}
		if strings.HasPrefix(tok, "@") {
			if !m.parseAxisEntry(tok[1:]) {
				skipped++
			}
			continue
		}
		if !m.parseSlotEntry(tok) {
			skipped++
		}
	}
	return skipped
}

func (m *Manager) parseSlotEntry(tok string) bool {
	name, val, ok := strings.Cut(tok, "=")
	if !ok {
		return false
	}
	slot, ok := SlotByName(name)
	if !ok {
		return false
	}

	primStr, secStr, hasSec := strings.Cut(val, ",")
	prim, ok := parseCodeToken(primStr)
	if !ok {
		return false
	}
	sec := key.Invalid
	if hasSec {
		if sec, ok = parseCodeToken(secStr); !ok {
			return false
		}
	}

	m.bindings[slot] = Binding{Primary: prim, Secondary: sec}
	return true
}

func (m *Manager) parseAxisEntry(tok string) bool {
	name, val, ok := strings.Cut(tok, "=")
	if !ok {
		return false
	}
	slot, ok := AxisSlotByName(name)
	if !ok {
		return false
	}

	val = strings.TrimSpace(val)
	if val == unboundToken {
		m.axisBindings[slot] = NoAxis()
		return true
	}

	idxStr, flag, hasFlag := strings.Cut(val, ",")
	axis, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil || axis < 0 {
		return false
	}
	invert := false
	if hasFlag {
		if strings.TrimSpace(flag) != "inv" {
			return false
		}
		invert = true
	}

	m.axisBindings[slot] = AxisBinding{Axis: axis, Invert: invert}
	return true
}

func codeToken(c key.Code) string {
	if c == key.Invalid {
		return unboundToken
	}
	if n := key.Name(c); n != "" {
		return n
	}
	return unboundToken
}

func parseCodeToken(s string) (key.Code, bool) {
	s = strings.TrimSpace(s)
	if s == unboundToken || s == "" {
		return key.Invalid, true
	}
	return key.ByName(s)
}
