package cpu

import (
	"strings"

	"gochip8/pkg/grid"
)

const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Screen is the monochrome framebuffer, indexed [y][x].
type Screen struct {
	pixels [ScreenHeight][ScreenWidth]bool
	dirty  bool
}

func checkCoords(x, y int) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		fault(FaultScreen, grid.GetIndex(x, y, ScreenWidth), "pixel (%d, %d) out of range", x, y)
	}
}

// Clear turns every pixel off.
func (s *Screen) Clear() {
	s.pixels = [ScreenHeight][ScreenWidth]bool{}
	s.dirty = true
}

// Set turns the pixel at (x, y) on.
func (s *Screen) Set(x, y int) {
	checkCoords(x, y)
	s.pixels[y][x] = true
	s.dirty = true
}

// IsSet reports whether the pixel at (x, y) is on.
func (s *Screen) IsSet(x, y int) bool {
	checkCoords(x, y)
	return s.pixels[y][x]
}

// DrawSprite XORs n rows of sprite data onto the screen at (x, y). The most
// significant bit of each row is the leftmost pixel. Coordinates wrap on both
// axes. It reports whether any lit pixel was turned off.
func (s *Screen) DrawSprite(x, y int, sprite []byte, n int) bool {
	collision := false
	for row := 0; row < n; row++ {
		b := sprite[row]
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			py := (y + row) % ScreenHeight
			px := (x + col) % ScreenWidth
			if s.pixels[py][px] {
				collision = true
			}
			s.pixels[py][px] = !s.pixels[py][px]
		}
	}
	s.dirty = true
	return collision
}

// Dirty reports whether the screen changed since the last ClearDirty.
func (s *Screen) Dirty() bool {
	return s.dirty
}

// ClearDirty marks the current contents as presented.
func (s *Screen) ClearDirty() {
	s.dirty = false
}

// Count returns the number of lit pixels.
func (s *Screen) Count() int {
	n := 0
	for y := range s.pixels {
		for x := range s.pixels[y] {
			if s.pixels[y][x] {
				n++
			}
		}
	}
	return n
}

// String renders the screen as text, one line per row, '#' for lit pixels.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := range s.pixels {
		for x := range s.pixels[y] {
			if s.pixels[y][x] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
