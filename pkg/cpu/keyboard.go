package cpu

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Unmapped is returned by Keyboard.Map for host keys with no virtual key.
const Unmapped = -1

// DefaultKeyMap maps ASCII '0'-'9' and 'a'-'f' to keys 0x0-0xF.
var DefaultKeyMap = [KeyCount]int{
	'0', '1', '2', '3',
	'4', '5', '6', '7',
	'8', '9', 'a', 'b',
	'c', 'd', 'e', 'f',
}

// Keyboard tracks the pressed state of the 16 virtual keys and the table used
// to translate host key codes into them. Entry i of the table is the host code
// for virtual key i.
type Keyboard struct {
	down    [KeyCount]bool
	mapping [KeyCount]int
	mapped  bool
}

func checkKey(key int) {
	if key < 0 || key >= KeyCount {
		fault(FaultKeyboard, key, "key %d out of range", key)
	}
}

// SetMapping installs the host-key table.
func (k *Keyboard) SetMapping(table [KeyCount]int) {
	k.mapping = table
	k.mapped = true
}

// Map returns the virtual key for a host key code, or Unmapped.
func (k *Keyboard) Map(host int) int {
	if !k.mapped {
		return Unmapped
	}
	for i, code := range k.mapping {
		if code == host {
			return i
		}
	}
	return Unmapped
}

// KeyDown marks key as pressed.
func (k *Keyboard) KeyDown(key int) {
	checkKey(key)
	k.down[key] = true
}

// KeyUp marks key as released.
func (k *Keyboard) KeyUp(key int) {
	checkKey(key)
	k.down[key] = false
}

// IsDown reports whether key is pressed.
func (k *Keyboard) IsDown(key int) bool {
	checkKey(key)
	return k.down[key]
}

// Reset releases every key. The mapping table is kept.
func (k *Keyboard) Reset() {
	k.down = [KeyCount]bool{}
}
