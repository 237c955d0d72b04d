// Package cpu implements the MOS 6502 instruction interpreter: registers,
// status flags, the thirteen addressing modes, and the 256-entry opcode
// dispatch table covering both the documented and the "illegal" instructions.
package cpu

// Bus is the memory the CPU operates over. Implementations decide what lives
// behind each address (RAM, ROM, memory-mapped I/O); the CPU only ever reads
// and writes through this interface, save for the two reserved cells
// intercepted by the instruction-stream fetch path (see fetchByte).
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// RNG supplies the byte returned by a fetch of the reserved address 0x00FE.
// Exposed as an interface so tests can inject a deterministic sequence
// instead of depending on a process-wide seed.
type RNG interface {
	Intn(n int) int
}

// Keyboard supplies the byte returned by a fetch of the reserved address
// 0x00FF: the low 8 bits of the most recently pressed key, or 0 if none is
// currently held down.
type Keyboard interface {
	Read() uint8
}

// Status register flag bits. Bit 5 ("_", the reserved/unused bit) is not
// named here; it is forced to 1 wherever the status register is pushed or
// restored.
const (
	FlagC uint8 = 0x01 // Carry
	FlagZ uint8 = 0x02 // Zero
	FlagI uint8 = 0x04 // Interrupt disable
	FlagD uint8 = 0x08 // Decimal mode (tracked, not applied to arithmetic)
	FlagB uint8 = 0x10 // Break (meaningful only in a pushed copy of P)
	flagU uint8 = 0x20 // Unused, always read back as 1
	FlagV uint8 = 0x40 // Overflow
	FlagN uint8 = 0x80 // Negative
)

// State distinguishes a CPU that can still be stepped from one that has
// executed a KIL opcode or fallen off the end of the dispatch table. There
// is no transition back to Running.
type State int

const (
	Running State = iota
	Halted
)

// haltVector is the PC value that marks the CPU Halted, matching the
// source's use of PC==0xFFFF as the host's termination signal.
const haltVector = 0xFFFF

// CPU holds the complete architectural state of one 6502: the six registers
// plus whatever pending-interrupt bookkeeping the host has asked for. It
// owns no memory itself; Bus, RNG and Keyboard are supplied by the caller so
// the interpreter can be exercised without any host toolkit.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	Bus      Bus
	RNG      RNG
	Keyboard Keyboard

	pendingIRQ bool
	pendingNMI bool

	lastWriteValid bool
	lastWriteAddr  uint16
}

// NewCPU constructs a CPU wired to the given bus. RNG and Keyboard default
// to a seedable math/rand source and an always-zero keyboard respectively;
// override them on the returned value before the first Reset if different
// behavior is required.
func NewCPU(bus Bus) *CPU {
	return &CPU{
		Bus:      bus,
		RNG:      NewSeededRNG(0),
		Keyboard: NullKeyboard{},
	}
}

// Reset reproduces the source's power-on/reset sequence: registers and the
// break/unused flag pattern are reinitialized and PC is loaded from the
// reset vector at 0xFFFC/0xFFFD. It does not touch the contents of Bus;
// callers that want the C source's "zero everything" behavior should do so
// on their own backing memory before calling Reset.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.P = flagU
	c.pendingIRQ = false
	c.pendingNMI = false
	c.lastWriteValid = false
	c.PC = c.loadVector(vectorReset)
}

// State reports whether the CPU is still able to execute instructions.
func (c *CPU) State() State {
	if c.PC == haltVector {
		return Halted
	}
	return Running
}

// RaiseIRQ marks a maskable interrupt pending. It is honored at the start of
// the next Step only if the interrupt-disable flag is clear.
func (c *CPU) RaiseIRQ() {
	c.pendingIRQ = true
}

// RaiseNMI marks a non-maskable interrupt pending. It is always honored at
// the start of the next Step, regardless of the interrupt-disable flag.
func (c *CPU) RaiseNMI() {
	c.pendingNMI = true
}

// Step services a pending interrupt if one is outstanding, then fetches and
// executes exactly one instruction. The caller observes a halted CPU via
// State after Step returns.
func (c *CPU) Step() {
	if c.State() == Halted {
		return
	}

	if c.pendingNMI {
		c.pendingNMI = false
		c.serviceInterrupt(vectorNMI)
		return
	}
	if c.pendingIRQ && c.P&FlagI == 0 {
		c.pendingIRQ = false
		c.serviceInterrupt(vectorIRQ)
		return
	}

	c.lastWriteValid = false
	opcode := c.fetchByte()
	c.execute(opcode)
}

// LastWrite returns the address of the most recent memory write performed
// by the instruction executed in the last Step, if any. The framebuffer
// shim (package video) uses this instead of re-deriving "the last address
// touched" from operand resolution, so that pure-read addressing never
// triggers a spurious repaint (see SPEC_FULL.md, the framebuffer shim
// design note).
func (c *CPU) LastWrite() (addr uint16, ok bool) {
	return c.lastWriteAddr, c.lastWriteValid
}

// write is the single path every opcode handler uses to mutate memory; it
// exists so LastWrite can be tracked without threading an out-parameter
// through every handler.
func (c *CPU) write(addr uint16, value uint8) {
	c.Bus.Write(addr, value)
	c.lastWriteAddr = addr
	c.lastWriteValid = true
}

// read is a plain, non-intercepting memory read, used for every data fetch
// at a resolved effective address (including the data byte of an immediate
// operand). Only fetchByte ever intercepts 0x00FE/0x00FF.
func (c *CPU) read(addr uint16) uint8 {
	return c.Bus.Read(addr)
}

// fetchByte reads the byte at PC, advances PC, and is the sole path through
// which 0x00FE (RNG) and 0x00FF (keyboard) are intercepted. It is used for
// the opcode byte itself and for the single-byte operand of the ZP, ZPX,
// ZPY, IZX, IZY and REL addressing modes, matching the source's fetch_byte.
func (c *CPU) fetchByte() uint8 {
	addr := c.PC
	c.PC++
	switch addr {
	case 0x00FE:
		return uint8(c.RNG.Intn(256))
	case 0x00FF:
		return c.Keyboard.Read()
	default:
		return c.Bus.Read(addr)
	}
}

// fetchWord reads two little-endian bytes directly from the bus at PC,
// advancing PC by two. Deliberately bypasses fetchByte's intercept, mirroring
// the source's fetch_word which indexes cpu->mem[] directly: the ABS/ABX/
// ABY/IND operand word is never subject to the RNG/keyboard magic cells.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.Bus.Read(c.PC))
	c.PC++
	hi := uint16(c.Bus.Read(c.PC))
	c.PC++
	return hi<<8 | lo
}

func (c *CPU) push(value uint8) {
	c.write(0x0100|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pull() uint8 {
	c.SP++
	return c.read(0x0100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

func (c *CPU) setNZ(v uint8) {
	if v == 0 {
		c.P |= FlagZ
	} else {
		c.P &^= FlagZ
	}
	if v&0x80 != 0 {
		c.P |= FlagN
	} else {
		c.P &^= FlagN
	}
}
