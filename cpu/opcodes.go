package cpu

// regID names one of the three general-purpose registers, letting the
// family handlers below be written once and parameterized rather than
// duplicated per register (the teacher's own LDA/LDX/LDY, TAX/TAY/etc.
// cases are otherwise near-identical copies of each other).
type regID int

const (
	regA regID = iota
	regX
	regY
)

func (c *CPU) reg(id regID) *uint8 {
	switch id {
	case regA:
		return &c.A
	case regX:
		return &c.X
	default:
		return &c.Y
	}
}

type opFunc func(c *CPU, mode Mode)

type opEntry struct {
	name string
	mode Mode
	run  opFunc
}

// table is the 256-entry opcode dispatch. Unassigned slots keep their zero
// value (nil run), which execute treats as an unknown opcode and halts on,
// matching the source's default case in execute_instruction.
var table [256]opEntry

func set(opcode uint8, name string, mode Mode, run opFunc) {
	table[opcode] = opEntry{name: name, mode: mode, run: run}
}

// execute resolves and runs the instruction for opcode, or halts the CPU if
// the table has no entry (an opcode the source's switch would have hit its
// default case on).
func (c *CPU) execute(opcode uint8) {
	entry := table[opcode]
	if entry.run == nil {
		c.PC = haltVector
		return
	}
	entry.run(c, entry.mode)
}

// --- operation families -----------------------------------------------

func opLoad(id regID) opFunc {
	return func(c *CPU, mode Mode) {
		addr := c.resolve(mode)
		v := c.read(addr)
		*c.reg(id) = v
		c.setNZ(v)
	}
}

func opStore(id regID) opFunc {
	return func(c *CPU, mode Mode) {
		addr := c.resolve(mode)
		c.write(addr, *c.reg(id))
	}
}

func opLogical(combine func(a, m uint8) uint8) opFunc {
	return func(c *CPU, mode Mode) {
		addr := c.resolve(mode)
		c.A = combine(c.A, c.read(addr))
		c.setNZ(c.A)
	}
}

func opShift(do func(c *CPU, v uint8) uint8) opFunc {
	return func(c *CPU, mode Mode) {
		if mode == ModeAccumulator {
			c.A = do(c, c.A)
			c.setNZ(c.A)
			return
		}
		addr := c.resolve(mode)
		result := do(c, c.read(addr))
		c.write(addr, result)
		c.setNZ(result)
	}
}

func opIncDec(delta uint8) opFunc {
	return func(c *CPU, mode Mode) {
		addr := c.resolve(mode)
		v := c.read(addr) + delta
		c.write(addr, v)
		c.setNZ(v)
	}
}

func opCompare(id regID) opFunc {
	return func(c *CPU, mode Mode) {
		addr := c.resolve(mode)
		c.compare(*c.reg(id), c.read(addr))
	}
}

func opBranch(cond func(c *CPU) bool) opFunc {
	return func(c *CPU, mode Mode) {
		target := c.resolve(mode)
		if cond(c) {
			c.PC = target
		}
	}
}

func opNop(c *CPU, mode Mode) {
	c.resolve(mode)
}

func opKil(c *CPU, _ Mode) {
	c.PC = haltVector
}

// asl/lsr/rol/ror implement the shared shift/rotate semantics used both
// directly (ASL/LSR/ROL/ROR) and as the memory half of the fused illegal
// opcodes SLO/SRE/RLA/RRA in illegal.go.
func (c *CPU) asl(v uint8) uint8 {
	if v&0x80 != 0 {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	return v << 1
}

func (c *CPU) lsr(v uint8) uint8 {
	if v&0x01 != 0 {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	return v >> 1
}

func (c *CPU) rol(v uint8) uint8 {
	carryIn := c.P & FlagC
	if v&0x80 != 0 {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	result := v << 1
	if carryIn != 0 {
		result |= 0x01
	}
	return result
}

func (c *CPU) ror(v uint8) uint8 {
	carryIn := c.P & FlagC
	if v&0x01 != 0 {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	result := v >> 1
	if carryIn != 0 {
		result |= 0x80
	}
	return result
}

func init() {
	m := ModeImplied
	_ = m

	// --- Load/Store ---
	set(0xA9, "LDA", ModeImmediate, opLoad(regA))
	set(0xA5, "LDA", ModeZeroPage, opLoad(regA))
	set(0xB5, "LDA", ModeZeroPageX, opLoad(regA))
	set(0xAD, "LDA", ModeAbsolute, opLoad(regA))
	set(0xBD, "LDA", ModeAbsoluteX, opLoad(regA))
	set(0xB9, "LDA", ModeAbsoluteY, opLoad(regA))
	set(0xA1, "LDA", ModeIndirectX, opLoad(regA))
	set(0xB1, "LDA", ModeIndirectY, opLoad(regA))

	set(0xA2, "LDX", ModeImmediate, opLoad(regX))
	set(0xA6, "LDX", ModeZeroPage, opLoad(regX))
	set(0xB6, "LDX", ModeZeroPageY, opLoad(regX))
	set(0xAE, "LDX", ModeAbsolute, opLoad(regX))
	set(0xBE, "LDX", ModeAbsoluteY, opLoad(regX))

	set(0xA0, "LDY", ModeImmediate, opLoad(regY))
	set(0xA4, "LDY", ModeZeroPage, opLoad(regY))
	set(0xB4, "LDY", ModeZeroPageX, opLoad(regY))
	set(0xAC, "LDY", ModeAbsolute, opLoad(regY))
	set(0xBC, "LDY", ModeAbsoluteX, opLoad(regY))

	set(0x85, "STA", ModeZeroPage, opStore(regA))
	set(0x95, "STA", ModeZeroPageX, opStore(regA))
	set(0x8D, "STA", ModeAbsolute, opStore(regA))
	set(0x9D, "STA", ModeAbsoluteX, opStore(regA))
	set(0x99, "STA", ModeAbsoluteY, opStore(regA))
	set(0x81, "STA", ModeIndirectX, opStore(regA))
	set(0x91, "STA", ModeIndirectY, opStore(regA))

	set(0x86, "STX", ModeZeroPage, opStore(regX))
	set(0x96, "STX", ModeZeroPageY, opStore(regX))
	set(0x8E, "STX", ModeAbsolute, opStore(regX))

	set(0x84, "STY", ModeZeroPage, opStore(regY))
	set(0x94, "STY", ModeZeroPageX, opStore(regY))
	set(0x8C, "STY", ModeAbsolute, opStore(regY))

	// --- Register transfers ---
	set(0xAA, "TAX", ModeImplied, func(c *CPU, _ Mode) { c.X = c.A; c.setNZ(c.X) })
	set(0xA8, "TAY", ModeImplied, func(c *CPU, _ Mode) { c.Y = c.A; c.setNZ(c.Y) })
	set(0x8A, "TXA", ModeImplied, func(c *CPU, _ Mode) { c.A = c.X; c.setNZ(c.A) })
	set(0x98, "TYA", ModeImplied, func(c *CPU, _ Mode) { c.A = c.Y; c.setNZ(c.A) })
	set(0xBA, "TSX", ModeImplied, func(c *CPU, _ Mode) { c.X = c.SP; c.setNZ(c.X) })
	set(0x9A, "TXS", ModeImplied, func(c *CPU, _ Mode) { c.SP = c.X })

	// --- Stack ---
	set(0x48, "PHA", ModeImplied, func(c *CPU, _ Mode) { c.push(c.A) })
	set(0x08, "PHP", ModeImplied, func(c *CPU, _ Mode) { c.push(c.P | FlagB | flagU) })
	set(0x68, "PLA", ModeImplied, func(c *CPU, _ Mode) { c.A = c.pull(); c.setNZ(c.A) })
	set(0x28, "PLP", ModeImplied, func(c *CPU, _ Mode) { c.P = (c.pull() &^ FlagB) | flagU })

	// --- Logical ---
	set(0x29, "AND", ModeImmediate, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x25, "AND", ModeZeroPage, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x35, "AND", ModeZeroPageX, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x2D, "AND", ModeAbsolute, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x3D, "AND", ModeAbsoluteX, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x39, "AND", ModeAbsoluteY, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x21, "AND", ModeIndirectX, opLogical(func(a, m uint8) uint8 { return a & m }))
	set(0x31, "AND", ModeIndirectY, opLogical(func(a, m uint8) uint8 { return a & m }))

	set(0x49, "EOR", ModeImmediate, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x45, "EOR", ModeZeroPage, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x55, "EOR", ModeZeroPageX, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x4D, "EOR", ModeAbsolute, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x5D, "EOR", ModeAbsoluteX, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x59, "EOR", ModeAbsoluteY, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x41, "EOR", ModeIndirectX, opLogical(func(a, m uint8) uint8 { return a ^ m }))
	set(0x51, "EOR", ModeIndirectY, opLogical(func(a, m uint8) uint8 { return a ^ m }))

	set(0x09, "ORA", ModeImmediate, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x05, "ORA", ModeZeroPage, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x15, "ORA", ModeZeroPageX, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x0D, "ORA", ModeAbsolute, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x1D, "ORA", ModeAbsoluteX, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x19, "ORA", ModeAbsoluteY, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x01, "ORA", ModeIndirectX, opLogical(func(a, m uint8) uint8 { return a | m }))
	set(0x11, "ORA", ModeIndirectY, opLogical(func(a, m uint8) uint8 { return a | m }))

	set(0x24, "BIT", ModeZeroPage, opBit)
	set(0x2C, "BIT", ModeAbsolute, opBit)

	// --- Shifts/rotates ---
	set(0x0A, "ASL", ModeAccumulator, opShift((*CPU).asl))
	set(0x06, "ASL", ModeZeroPage, opShift((*CPU).asl))
	set(0x16, "ASL", ModeZeroPageX, opShift((*CPU).asl))
	set(0x0E, "ASL", ModeAbsolute, opShift((*CPU).asl))
	set(0x1E, "ASL", ModeAbsoluteX, opShift((*CPU).asl))

	set(0x4A, "LSR", ModeAccumulator, opShift((*CPU).lsr))
	set(0x46, "LSR", ModeZeroPage, opShift((*CPU).lsr))
	set(0x56, "LSR", ModeZeroPageX, opShift((*CPU).lsr))
	set(0x4E, "LSR", ModeAbsolute, opShift((*CPU).lsr))
	set(0x5E, "LSR", ModeAbsoluteX, opShift((*CPU).lsr))

	set(0x2A, "ROL", ModeAccumulator, opShift((*CPU).rol))
	set(0x26, "ROL", ModeZeroPage, opShift((*CPU).rol))
	set(0x36, "ROL", ModeZeroPageX, opShift((*CPU).rol))
	set(0x2E, "ROL", ModeAbsolute, opShift((*CPU).rol))
	set(0x3E, "ROL", ModeAbsoluteX, opShift((*CPU).rol))

	set(0x6A, "ROR", ModeAccumulator, opShift((*CPU).ror))
	set(0x66, "ROR", ModeZeroPage, opShift((*CPU).ror))
	set(0x76, "ROR", ModeZeroPageX, opShift((*CPU).ror))
	set(0x6E, "ROR", ModeAbsolute, opShift((*CPU).ror))
	set(0x7E, "ROR", ModeAbsoluteX, opShift((*CPU).ror))

	// --- Arithmetic ---
	set(0x69, "ADC", ModeImmediate, opAdc)
	set(0x65, "ADC", ModeZeroPage, opAdc)
	set(0x75, "ADC", ModeZeroPageX, opAdc)
	set(0x6D, "ADC", ModeAbsolute, opAdc)
	set(0x7D, "ADC", ModeAbsoluteX, opAdc)
	set(0x79, "ADC", ModeAbsoluteY, opAdc)
	set(0x61, "ADC", ModeIndirectX, opAdc)
	set(0x71, "ADC", ModeIndirectY, opAdc)

	set(0xE9, "SBC", ModeImmediate, opSbc)
	set(0xE5, "SBC", ModeZeroPage, opSbc)
	set(0xF5, "SBC", ModeZeroPageX, opSbc)
	set(0xED, "SBC", ModeAbsolute, opSbc)
	set(0xFD, "SBC", ModeAbsoluteX, opSbc)
	set(0xF9, "SBC", ModeAbsoluteY, opSbc)
	set(0xE1, "SBC", ModeIndirectX, opSbc)
	set(0xF1, "SBC", ModeIndirectY, opSbc)
	set(0xEB, "*SBC", ModeImmediate, opSbc) // illegal duplicate of 0xE9

	set(0xE6, "INC", ModeZeroPage, opIncDec(1))
	set(0xF6, "INC", ModeZeroPageX, opIncDec(1))
	set(0xEE, "INC", ModeAbsolute, opIncDec(1))
	set(0xFE, "INC", ModeAbsoluteX, opIncDec(1))

	set(0xC6, "DEC", ModeZeroPage, opIncDec(0xFF))
	set(0xD6, "DEC", ModeZeroPageX, opIncDec(0xFF))
	set(0xCE, "DEC", ModeAbsolute, opIncDec(0xFF))
	set(0xDE, "DEC", ModeAbsoluteX, opIncDec(0xFF))

	set(0xE8, "INX", ModeImplied, func(c *CPU, _ Mode) { c.X++; c.setNZ(c.X) })
	set(0xC8, "INY", ModeImplied, func(c *CPU, _ Mode) { c.Y++; c.setNZ(c.Y) })
	set(0xCA, "DEX", ModeImplied, func(c *CPU, _ Mode) { c.X--; c.setNZ(c.X) })
	set(0x88, "DEY", ModeImplied, func(c *CPU, _ Mode) { c.Y--; c.setNZ(c.Y) })

	// --- Compares ---
	set(0xC9, "CMP", ModeImmediate, opCompare(regA))
	set(0xC5, "CMP", ModeZeroPage, opCompare(regA))
	set(0xD5, "CMP", ModeZeroPageX, opCompare(regA))
	set(0xCD, "CMP", ModeAbsolute, opCompare(regA))
	set(0xDD, "CMP", ModeAbsoluteX, opCompare(regA))
	set(0xD9, "CMP", ModeAbsoluteY, opCompare(regA))
	set(0xC1, "CMP", ModeIndirectX, opCompare(regA))
	set(0xD1, "CMP", ModeIndirectY, opCompare(regA))

	set(0xE0, "CPX", ModeImmediate, opCompare(regX))
	set(0xE4, "CPX", ModeZeroPage, opCompare(regX))
	set(0xEC, "CPX", ModeAbsolute, opCompare(regX))

	set(0xC0, "CPY", ModeImmediate, opCompare(regY))
	set(0xC4, "CPY", ModeZeroPage, opCompare(regY))
	set(0xCC, "CPY", ModeAbsolute, opCompare(regY))

	// --- Branches ---
	set(0x10, "BPL", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagN == 0 }))
	set(0x30, "BMI", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagN != 0 }))
	set(0x50, "BVC", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagV == 0 }))
	set(0x70, "BVS", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagV != 0 }))
	set(0x90, "BCC", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagC == 0 }))
	set(0xB0, "BCS", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagC != 0 }))
	set(0xD0, "BNE", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagZ == 0 }))
	set(0xF0, "BEQ", ModeRelative, opBranch(func(c *CPU) bool { return c.P&FlagZ != 0 }))

	// --- Jumps & calls ---
	set(0x4C, "JMP", ModeAbsolute, func(c *CPU, mode Mode) { c.PC = c.resolve(mode) })
	set(0x6C, "JMP", ModeIndirect, func(c *CPU, mode Mode) { c.PC = c.resolve(mode) })
	set(0x20, "JSR", ModeAbsolute, func(c *CPU, mode Mode) {
		target := c.resolve(mode)
		c.push16(c.PC - 1)
		c.PC = target
	})
	set(0x60, "RTS", ModeImplied, func(c *CPU, _ Mode) { c.PC = c.pull16() + 1 })
	set(0x40, "RTI", ModeImplied, func(c *CPU, _ Mode) {
		c.P = (c.pull() &^ FlagB) | flagU
		c.PC = c.pull16()
	})
	set(0x00, "BRK", ModeImplied, func(c *CPU, _ Mode) { c.brk() })

	// --- Flag changes ---
	set(0x18, "CLC", ModeImplied, func(c *CPU, _ Mode) { c.P &^= FlagC })
	set(0x38, "SEC", ModeImplied, func(c *CPU, _ Mode) { c.P |= FlagC })
	set(0x58, "CLI", ModeImplied, func(c *CPU, _ Mode) { c.P &^= FlagI })
	set(0x78, "SEI", ModeImplied, func(c *CPU, _ Mode) { c.P |= FlagI })
	set(0xD8, "CLD", ModeImplied, func(c *CPU, _ Mode) { c.P &^= FlagD })
	set(0xF8, "SED", ModeImplied, func(c *CPU, _ Mode) { c.P |= FlagD })
	set(0xB8, "CLV", ModeImplied, func(c *CPU, _ Mode) { c.P &^= FlagV })

	// --- NOP and its illegal variants ---
	set(0xEA, "NOP", ModeImplied, opNop)
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, "*NOP", ModeImplied, opNop)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, "*NOP", ModeImmediate, opNop)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		set(op, "*NOP", ModeZeroPage, opNop)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, "*NOP", ModeZeroPageX, opNop)
	}
	set(0x0C, "*NOP", ModeAbsolute, opNop)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, "*NOP", ModeAbsoluteX, opNop)
	}

	// --- KIL / JAM ---
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, "JAM", ModeImplied, opKil)
	}

	initIllegal()
}

func opBit(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	v := c.read(addr)
	if v&0x80 != 0 {
		c.P |= FlagN
	} else {
		c.P &^= FlagN
	}
	if v&0x40 != 0 {
		c.P |= FlagV
	} else {
		c.P &^= FlagV
	}
	if c.A&v == 0 {
		c.P |= FlagZ
	} else {
		c.P &^= FlagZ
	}
}

func opAdc(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.adc(c.read(addr))
}

func opSbc(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.sbc(c.read(addr))
}
