package cpu

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"gochip8/pkg/grid"
)

// Palette holds the colors of lit and unlit pixels.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// DefaultPalette draws white pixels on black.
var DefaultPalette = Palette{
	On:  color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	Off: color.RGBA{0x00, 0x00, 0x00, 0xFF},
}

// FramebufferRGBA renders the screen into a 64×32 RGBA8888 byte slice
// (length 64*32*4) using the CPU palette.
func (c *CPU) FramebufferRGBA() []byte {
	pixels := make([]byte, ScreenWidth*ScreenHeight*4)
	for i := 0; i < ScreenWidth*ScreenHeight; i++ {
		x, y := grid.GetGridCoords(i, ScreenWidth)
		col := c.Palette.Off
		if c.Screen.IsSet(x, y) {
			col = c.Palette.On
		}
		pixels[i*4+0] = col.R
		pixels[i*4+1] = col.G
		pixels[i*4+2] = col.B
		pixels[i*4+3] = col.A
	}
	return pixels
}

// FramebufferImage returns the screen as an *image.RGBA.
func (c *CPU) FramebufferImage() *image.RGBA {
	return &image.RGBA{
		Pix:    c.FramebufferRGBA(),
		Stride: ScreenWidth * 4,
		Rect:   image.Rect(0, 0, ScreenWidth, ScreenHeight),
	}
}

// ScaledImage returns the screen enlarged by scale using nearest-neighbour
// sampling so pixels stay square.
func (c *CPU) ScaledImage(scale int) *image.RGBA {
	src := c.FramebufferImage()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, ScreenWidth*scale, ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SaveScreenshot encodes the screen, enlarged by scale, as a PNG file.
func (c *CPU) SaveScreenshot(filename string, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create screenshot %s", filename)
	}
	defer f.Close()

	if err := png.Encode(f, c.ScaledImage(scale)); err != nil {
		return errors.Wrapf(err, "encode screenshot %s", filename)
	}
	return nil
}
