package input

import "testing"

func TestSlotNamesRoundTrip(t *testing.T) {
	for s := Slot(0); s < SlotCount; s++ {
		name := SlotName(s)
		if name == "" {
			t.Fatalf("slot %d has no name", s)
		}
		got, ok := SlotByName(name)
		if !ok || got != s {
			t.Errorf("SlotByName(%q) = (%v, %v), want (%v, true)", name, got, ok, s)
		}
	}
}

func TestSlotByNameUnknown(t *testing.T) {
	if s, ok := SlotByName("warp_drive"); ok || s != SlotCount {
		t.Errorf("SlotByName(unknown) = (%v, %v), want (SlotCount, false)", s, ok)
	}
	if _, ok := SlotByName(""); ok {
		t.Error("empty name should not resolve")
	}
}

func TestSlotByNameNormalizes(t *testing.T) {
	s, ok := SlotByName("  Move_Forward ")
	if !ok || s != SlotMoveForward {
		t.Errorf("SlotByName with case/space = (%v, %v)", s, ok)
	}
}

func TestAxisSlotNamesRoundTrip(t *testing.T) {
	for s := AxisSlot(0); s < AxisSlotCount; s++ {
		name := AxisSlotName(s)
		if name == "" {
			t.Fatalf("axis slot %d has no name", s)
		}
		got, ok := AxisSlotByName(name)
		if !ok || got != s {
			t.Errorf("AxisSlotByName(%q) = (%v, %v), want (%v, true)", name, got, ok, s)
		}
	}
}

func TestSlotNamesUnique(t *testing.T) {
	seen := make(map[string]Slot, SlotCount)
	for s := Slot(0); s < SlotCount; s++ {
		name := SlotName(s)
		if prev, dup := seen[name]; dup {
			t.Errorf("slots %v and %v share name %q", prev, s, name)
		}
		seen[name] = s
	}
}
