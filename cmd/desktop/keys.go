package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gochip8/pkg/cpu"
)

// keyCodes translates ebiten keys into the ASCII codes used by the keypad
// mapping tables.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2', ebiten.KeyDigit3: '3',
	ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5', ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7',
	ebiten.KeyDigit8: '8', ebiten.KeyDigit9: '9',

	ebiten.KeyNumpad0: '0', ebiten.KeyNumpad1: '1', ebiten.KeyNumpad2: '2', ebiten.KeyNumpad3: '3',
	ebiten.KeyNumpad4: '4', ebiten.KeyNumpad5: '5', ebiten.KeyNumpad6: '6', ebiten.KeyNumpad7: '7',
	ebiten.KeyNumpad8: '8', ebiten.KeyNumpad9: '9',

	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',
}

// cosmacKeyMap places the hex keypad on the left block of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var cosmacKeyMap = [cpu.KeyCount]int{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

var layouts = map[string][cpu.KeyCount]int{
	"hex":    cpu.DefaultKeyMap,
	"cosmac": cosmacKeyMap,
}

// hostCode returns the host code for k, or false if k has none.
func hostCode(k ebiten.Key) (int, bool) {
	code, ok := keyCodes[k]
	return code, ok
}
