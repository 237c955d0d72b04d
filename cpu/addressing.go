package cpu

// Mode tags one of the processor's thirteen addressing modes. The naming
// mirrors the teacher's own convention (instruction name + suffix): ZP, ZPX,
// ZPY, ABS, ABX, ABY, IZX ("(zp,X)"), IZY ("(zp),Y"), IND, IMM, REL, ACC,
// IMP.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// resolve consumes the operand bytes for mode from the instruction stream
// (advancing PC as it goes) and returns the effective address a data read
// or write should target. ModeImplied and ModeAccumulator have no address
// and return 0; callers for those modes never consult it.
func (c *CPU) resolve(mode Mode) uint16 {
	switch mode {
	case ModeImmediate:
		// The operand IS the next byte in the stream; the address of that
		// byte is returned without reading it, and without going through
		// fetchByte, exactly as the source's get_address(AM_IMM) does.
		addr := c.PC
		c.PC++
		return addr

	case ModeZeroPage:
		return uint16(c.fetchByte())

	case ModeZeroPageX:
		return uint16(c.fetchByte() + c.X)

	case ModeZeroPageY:
		return uint16(c.fetchByte() + c.Y)

	case ModeAbsolute:
		return c.fetchWord()

	case ModeAbsoluteX:
		return c.fetchWord() + uint16(c.X)

	case ModeAbsoluteY:
		return c.fetchWord() + uint16(c.Y)

	case ModeIndirect:
		ptr := c.fetchWord()
		lo := uint16(c.read(ptr))
		hi := uint16(c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF)))
		return lo | hi<<8

	case ModeIndirectX:
		zp := c.fetchByte() + c.X
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return lo | hi<<8

	case ModeIndirectY:
		zp := c.fetchByte()
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return (lo | hi<<8) + uint16(c.Y)

	case ModeRelative:
		offset := int8(c.fetchByte())
		return uint16(int32(c.PC) + int32(offset))

	default: // ModeImplied, ModeAccumulator
		return 0
	}
}
