// Package memory implements the flat 64 KiB address space the CPU operates
// over, grounded on c64/memory.Manager's Read/Write/DumpMemory shape but
// stripped of C64 bank switching: this system has no ROM overlay, so every
// address is plain RAM and the struct is little more than the array itself.
package memory

// Bus is a flat, zero-initialized 64 KiB byte array satisfying cpu.Bus.
type Bus struct {
	ram [65536]uint8
}

// NewBus returns a zeroed 64 KiB address space.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Read(address uint16) uint8 {
	return b.ram[address]
}

func (b *Bus) Write(address uint16, value uint8) {
	b.ram[address] = value
}

// Load copies data verbatim into the bus starting at base, matching the ROM
// loader's "copy bytes in, no relocation" contract (SPEC_FULL.md §6).
func (b *Bus) Load(base uint16, data []uint8) {
	copy(b.ram[base:], data)
}

// DumpMemory returns a copy of length bytes starting at start, for the
// CLI's on-halt memory dump, adapted from
// c64/memory.Manager.DumpMemory.
func (b *Bus) DumpMemory(start uint16, length uint16) []uint8 {
	dump := make([]uint8, length)
	for i := uint16(0); i < length; i++ {
		dump[i] = b.ram[start+i]
	}
	return dump
}

// Zero reproduces the source's power-on behavior of clearing all of memory,
// for hosts that want a hard reset rather than a soft one.
func (b *Bus) Zero() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}
