package cpu

import "testing"

func TestKeyboardMapping(t *testing.T) {
	var k Keyboard
	if got := k.Map('1'); got != Unmapped {
		t.Errorf("Map without a table: expected Unmapped, got %d", got)
	}

	k.SetMapping(DefaultKeyMap)
	tests := []struct {
		host int
		key  int
	}{
		{'0', 0x0},
		{'9', 0x9},
		{'a', 0xA},
		{'f', 0xF},
		{'g', Unmapped},
		{'A', Unmapped},
	}
	for _, tc := range tests {
		if got := k.Map(tc.host); got != tc.key {
			t.Errorf("Map(%q): expected %d, got %d", rune(tc.host), tc.key, got)
		}
	}
}

func TestKeyboardPressRelease(t *testing.T) {
	var k Keyboard
	k.KeyDown(0xF)
	k.KeyDown(0x3)
	if !k.IsDown(0xF) || !k.IsDown(0x3) || k.IsDown(0x4) {
		t.Error("unexpected key state after presses")
	}
	k.KeyUp(0xF)
	if k.IsDown(0xF) {
		t.Error("0xF still down after KeyUp")
	}

	k.SetMapping(DefaultKeyMap)
	k.Reset()
	if k.IsDown(0x3) {
		t.Error("Reset left 0x3 down")
	}
	if k.Map('3') != 3 {
		t.Error("Reset dropped the mapping table")
	}

	for _, key := range []int{-1, KeyCount} {
		f := expectFault(t, func() { k.KeyDown(key) })
		if f.Kind != FaultKeyboard {
			t.Errorf("KeyDown(%d): expected keyboard fault, got %s", key, f.Kind)
		}
	}
}
