package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	mem [65536]uint8
}

func (f *fakeReader) Read(addr uint16) uint8 { return f.mem[addr] }

// Scenario 8: mem[0x0205]=0x02 after STA $0205 with A=0x02 -> pixel[5] == palette[2] (red).
func TestObserveTranslatesFramebufferWrite(t *testing.T) {
	bus := &fakeReader{}
	bus.mem[0x0205] = 0x02
	fb := NewFramebuffer()

	fb.Observe(bus, 0x0205, true)

	assert.Equal(t, Palette[2], fb.At(5, 0))
}

func TestObserveIgnoresWritesOutsideWindow(t *testing.T) {
	bus := &fakeReader{}
	bus.mem[0x0100] = 0x02
	fb := NewFramebuffer()

	fb.Observe(bus, 0x0100, true)

	assert.Equal(t, Palette[0], fb.At(0, 0))
}

func TestObserveIgnoresNoWrite(t *testing.T) {
	bus := &fakeReader{}
	bus.mem[0x0205] = 0x02
	fb := NewFramebuffer()

	fb.Observe(bus, 0x0205, false)

	assert.Equal(t, Palette[0], fb.At(5, 0))
}
