package host

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"

	"github.com/jgorelli/mos6502/video"
)

// frameImage adapts a Framebuffer to image.Image so it can be handed
// straight to bmp.Encode without an intermediate copy into image.RGBA.
type frameImage struct {
	fb *video.Framebuffer
}

func (frameImage) ColorModel() color.Model { return color.RGBAModel }

func (frameImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, video.Width, video.Height)
}

func (f frameImage) At(x, y int) color.Color {
	argb := f.fb.At(x, y)
	return color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: 0xFF,
	}
}

// SaveScreenshot encodes fb's current contents as a BMP file at path, the
// concrete consumer SPEC_FULL.md §15 wires up for golang.org/x/image/bmp.
func SaveScreenshot(fb *video.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("host: create screenshot %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, frameImage{fb: fb}); err != nil {
		return fmt.Errorf("host: encode screenshot %s: %w", path, err)
	}
	return nil
}
