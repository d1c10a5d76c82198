package cpu

import "fmt"

const (
	// MemorySize is the size of the flat address space in bytes.
	MemorySize = 4096
	// ProgramStart is where programs are loaded and where execution begins.
	ProgramStart = 0x200
	// GlyphHeight is the number of bytes (rows) per built-in font glyph.
	GlyphHeight = 5
)

// font holds the hexadecimal digits 0-F, five rows each, stored at address 0.
var font = [16 * GlyphHeight]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the machine's byte-addressable RAM. Every accessor faults on an
// out-of-range index.
type Memory [MemorySize]byte

func checkAddr(index int) {
	if index < 0 || index >= MemorySize {
		fault(FaultMemory, index, "address 0x%x out of range", index)
	}
}

// reset zeroes memory and installs the font.
func (m *Memory) reset() {
	*m = Memory{}
	copy(m[:], font[:])
}

// Set stores val at index.
func (m *Memory) Set(index int, val byte) {
	checkAddr(index)
	m[index] = val
}

// Get returns the byte at index.
func (m *Memory) Get(index int) byte {
	checkAddr(index)
	return m[index]
}

// GetWord reads a big-endian word from index and index+1.
func (m *Memory) GetWord(index int) uint16 {
	hi := m.Get(index)
	lo := m.Get(index + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Slice returns a read-only view of n bytes starting at index.
func (m *Memory) Slice(index, n int) []byte {
	if n == 0 {
		return nil
	}
	checkAddr(index)
	checkAddr(index + n - 1)
	return m[index : index+n : index+n]
}

// Load copies data into memory at addr. It returns a load-size fault if the
// data does not fit.
func (m *Memory) Load(addr int, data []byte) error {
	if addr < 0 || addr+len(data) > MemorySize {
		return &Fault{
			Kind: FaultLoadSize,
			Addr: addr + len(data),
			Msg:  fmt.Sprintf("%d bytes at 0x%x exceed %d bytes of memory", len(data), addr, MemorySize),
		}
	}
	copy(m[addr:], data)
	return nil
}
