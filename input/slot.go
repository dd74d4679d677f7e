package input

import "strings"

// Slot is a logical, rebindable action identity. Slots index the
// binding table; the set is fixed at compile time.
type Slot uint8

const (
	SlotMoveForward Slot = iota
	SlotMoveBack
	SlotTurnLeft
	SlotTurnRight
	SlotAscend
	SlotDescend
	SlotCameraCloser
	SlotCameraFarther
	SlotAction
	SlotDeselect
	SlotSelectNext
	SlotPause
	SlotSpeedSlower
	SlotSpeedFaster
	SlotQuickSave
	SlotQuickLoad
	SlotHelp
	SlotConsole
	SlotScreenshot
	SlotQuit

	SlotCount // keep last
)

// AxisSlot is a logical joystick axis identity
type AxisSlot uint8

const (
	AxisSlotMoveX AxisSlot = iota // turn left/right
	AxisSlotMoveY                 // forward/back
	AxisSlotAltitude

	AxisSlotCount // keep last
)

// slotToName maps slots to canonical config string names
var slotToName = map[Slot]string{
	SlotMoveForward:   "move_forward",
	SlotMoveBack:      "move_back",
	SlotTurnLeft:      "turn_left",
	SlotTurnRight:     "turn_right",
	SlotAscend:        "ascend",
	SlotDescend:       "descend",
	SlotCameraCloser:  "camera_closer",
	SlotCameraFarther: "camera_farther",
	SlotAction:        "action",
	SlotDeselect:      "deselect",
	SlotSelectNext:    "select_next",
	SlotPause:         "pause",
	SlotSpeedSlower:   "speed_slower",
	SlotSpeedFaster:   "speed_faster",
	SlotQuickSave:     "quick_save",
	SlotQuickLoad:     "quick_load",
	SlotHelp:          "help",
	SlotConsole:       "console",
	SlotScreenshot:    "screenshot",
	SlotQuit:          "quit",
}

var axisSlotToName = map[AxisSlot]string{
	AxisSlotMoveX:    "move_x",
	AxisSlotMoveY:    "move_y",
	AxisSlotAltitude: "altitude",
}

var nameToSlot map[string]Slot
var nameToAxisSlot map[string]AxisSlot

func init() {
	nameToSlot = make(map[string]Slot, len(slotToName))
	for s, n := range slotToName {
		nameToSlot[n] = s
	}
	nameToAxisSlot = make(map[string]AxisSlot, len(axisSlotToName))
	for s, n := range axisSlotToName {
		nameToAxisSlot[n] = s
	}
}

// SlotName returns the canonical config name for a slot,
// empty string for out-of-range values
func SlotName(s Slot) string {
	return slotToName[s]
}

// SlotByName resolves a canonical name to a slot.
// Returns SlotCount and false if the name is unknown.
func SlotByName(name string) (Slot, bool) {
	s, ok := nameToSlot[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SlotCount, false
	}
	return s, true
}

// AxisSlotName returns the canonical config name for an axis slot
func AxisSlotName(s AxisSlot) string {
	return axisSlotToName[s]
}

// AxisSlotByName resolves a canonical name to an axis slot.
// Returns AxisSlotCount and false if the name is unknown.
func AxisSlotByName(name string) (AxisSlot, bool) {
	s, ok := nameToAxisSlot[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return AxisSlotCount, false
	}
	return s, true
}

func (s Slot) String() string {
	if n := SlotName(s); n != "" {
		return n
	}
	return "invalid"
}

func (s AxisSlot) String() string {
	if n := AxisSlotName(s); n != "" {
		return n
	}
	return "invalid"
}
