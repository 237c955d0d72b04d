// Package host implements the SDL2 window, renderer and streaming texture
// that present the framebuffer shim's pixels, adapted from the teacher's
// c64/c64.go NewC64/RenderFrame/Cleanup (SPEC_FULL.md §14) and retargeted
// from the C64's 320x200 VIC buffer to this spec's fixed 128x128 window.
package host

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jgorelli/mos6502/input"
	"github.com/jgorelli/mos6502/video"
)

// Scale is the integer factor the logical 128x128 framebuffer is presented
// at; the window itself is Scale times larger than the streaming texture.
const Scale = 2

// Display owns the SDL window, renderer and texture backing one running
// emulation's screen.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// NewDisplay opens an SDL window sized for the framebuffer at Scale and
// returns a Display ready to receive frames.
func NewDisplay(title string) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		video.Width*Scale, video.Height*Scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		sdl.TEXTUREACCESS_STREAMING,
		video.Width, video.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	return &Display{
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, video.Width*video.Height*4),
	}, nil
}

// PollEvents drains the SDL event queue, latching key-down/key-up events
// into latch (the low 8 bits of the key symbol, per SPEC_FULL.md §6) and
// reports whether the user asked to close the window.
func (d *Display) PollEvents(latch *input.Latch) (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				latch.KeyDown(uint8(e.Keysym.Sym & 0xFF))
			case sdl.KEYUP:
				latch.KeyUp()
			}
		}
	}
	return quit
}

// Present uploads fb's pixels to the streaming texture and draws it scaled
// to fill the window.
func (d *Display) Present(fb *video.Framebuffer) error {
	pixels := fb.Pixels()
	for i, argb := range pixels {
		offset := i * 4
		d.pixels[offset+0] = byte(argb & 0xFF)         // B
		d.pixels[offset+1] = byte((argb >> 8) & 0xFF)  // G
		d.pixels[offset+2] = byte((argb >> 16) & 0xFF) // R
		d.pixels[offset+3] = byte((argb >> 24) & 0xFF) // A
	}

	if err := d.texture.Update(nil, unsafe.Pointer(&d.pixels[0]), video.Width*4); err != nil {
		return err
	}
	if err := d.renderer.Clear(); err != nil {
		return err
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return err
	}
	d.renderer.Present()
	return nil
}

// Close releases the texture, renderer and window and shuts down SDL.
func (d *Display) Close() {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
}
