// Package input implements the single-byte keyboard latch read via the
// CPU's 0x00FF magic cell, per SPEC_FULL.md §6.
package input

import "sync/atomic"

// Latch holds the low 8 bits of the most recently pressed key, or 0 if no
// key is currently held down. It satisfies cpu.Keyboard. atomic.Uint32 is
// used rather than a bare uint8 plus mutex so a host that polls SDL events
// on the same goroutine as Step (the reference host does, per SPEC_FULL.md
// §5) pays no synchronization cost, while a host that chooses to poll
// events on a separate goroutine still gets safe concurrent access without
// an explicit lock.
type Latch struct {
	value atomic.Uint32
}

// NewLatch returns a latch reporting no key held down.
func NewLatch() *Latch {
	return &Latch{}
}

// KeyDown latches the low 8 bits of the given key code.
func (l *Latch) KeyDown(code uint8) {
	l.value.Store(uint32(code))
}

// KeyUp clears the latch.
func (l *Latch) KeyUp() {
	l.value.Store(0)
}

// Read returns the latched key code, satisfying cpu.Keyboard.
func (l *Latch) Read() uint8 {
	return uint8(l.value.Load())
}
