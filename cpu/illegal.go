package cpu

// The undocumented combined opcodes, grounded on original_source/6502.c's
// case labels for each. The remaining undocumented slots (the NOP aliases,
// JAM and 0xEB SBC) are registered in opcodes.go. Most are simple fusions of two documented
// operations sharing one memory read/write cycle; a handful (ANC, ALR,
// ARR, AXS, XAA, LAS, AHX, SHX, SHY, TAS) have no documented equivalent
// and are transcribed directly from the source's bit-level formulas.
func initIllegal() {
	// SLO = ASL(M) then ORA(A,M)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0x07, ModeZeroPage}, {0x17, ModeZeroPageX}, {0x03, ModeIndirectX}, {0x13, ModeIndirectY}, {0x0F, ModeAbsolute}, {0x1F, ModeAbsoluteX}, {0x1B, ModeAbsoluteY}} {
		set(e.op, "*SLO", e.mode, opSlo)
	}

	// RLA = ROL(M) then AND(A,M)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0x27, ModeZeroPage}, {0x37, ModeZeroPageX}, {0x23, ModeIndirectX}, {0x33, ModeIndirectY}, {0x2F, ModeAbsolute}, {0x3F, ModeAbsoluteX}, {0x3B, ModeAbsoluteY}} {
		set(e.op, "*RLA", e.mode, opRla)
	}

	// SRE = LSR(M) then EOR(A,M)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0x47, ModeZeroPage}, {0x57, ModeZeroPageX}, {0x43, ModeIndirectX}, {0x53, ModeIndirectY}, {0x4F, ModeAbsolute}, {0x5F, ModeAbsoluteX}, {0x5B, ModeAbsoluteY}} {
		set(e.op, "*SRE", e.mode, opSre)
	}

	// RRA = ROR(M) then ADC(A,M), using the carry ROR just produced
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0x67, ModeZeroPage}, {0x77, ModeZeroPageX}, {0x63, ModeIndirectX}, {0x73, ModeIndirectY}, {0x6F, ModeAbsolute}, {0x7F, ModeAbsoluteX}, {0x7B, ModeAbsoluteY}} {
		set(e.op, "*RRA", e.mode, opRra)
	}

	// DCP = DEC(M) then CMP(A,M)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0xC7, ModeZeroPage}, {0xD7, ModeZeroPageX}, {0xC3, ModeIndirectX}, {0xD3, ModeIndirectY}, {0xCF, ModeAbsolute}, {0xDF, ModeAbsoluteX}, {0xDB, ModeAbsoluteY}} {
		set(e.op, "*DCP", e.mode, opDcp)
	}

	// ISC (aka ISB) = INC(M) then SBC(A,M)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0xE7, ModeZeroPage}, {0xF7, ModeZeroPageX}, {0xE3, ModeIndirectX}, {0xF3, ModeIndirectY}, {0xEF, ModeAbsolute}, {0xFF, ModeAbsoluteX}, {0xFB, ModeAbsoluteY}} {
		set(e.op, "*ISC", e.mode, opIsc)
	}

	// LAX = LDA(M) then TAX (loads A and X from the same fetch)
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0xA7, ModeZeroPage}, {0xB7, ModeZeroPageY}, {0xA3, ModeIndirectX}, {0xB3, ModeIndirectY}, {0xAF, ModeAbsolute}, {0xBF, ModeAbsoluteY}} {
		set(e.op, "*LAX", e.mode, opLax)
	}
	set(0xAB, "*LAX", ModeImmediate, opLax)

	// SAX = store A&X, no flags touched
	for _, e := range []struct {
		op   uint8
		mode Mode
	}{{0x87, ModeZeroPage}, {0x97, ModeZeroPageY}, {0x83, ModeIndirectX}, {0x8F, ModeAbsolute}} {
		set(e.op, "*SAX", e.mode, opSax)
	}

	set(0x0B, "*ANC", ModeImmediate, opAnc)
	set(0x2B, "*ANC", ModeImmediate, opAnc)
	set(0x4B, "*ALR", ModeImmediate, opAlr)
	set(0x6B, "*ARR", ModeImmediate, opArr)
	set(0xCB, "*AXS", ModeImmediate, opAxs)
	set(0x8B, "*XAA", ModeImmediate, opXaa)
	set(0xBB, "*LAS", ModeAbsoluteY, opLas)
	set(0x93, "*AHX", ModeIndirectY, opAhx)
	set(0x9F, "*AHX", ModeAbsoluteY, opAhx)
	set(0x9E, "*SHX", ModeAbsoluteY, opShx)
	set(0x9C, "*SHY", ModeAbsoluteX, opShy)
	set(0x9B, "*TAS", ModeAbsoluteY, opTas)
}

func opSlo(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	result := c.asl(c.read(addr))
	c.write(addr, result)
	c.A |= result
	c.setNZ(c.A)
}

func opRla(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	result := c.rol(c.read(addr))
	c.write(addr, result)
	c.A &= result
	c.setNZ(c.A)
}

func opSre(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	result := c.lsr(c.read(addr))
	c.write(addr, result)
	c.A ^= result
	c.setNZ(c.A)
}

func opRra(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	result := c.ror(c.read(addr))
	c.write(addr, result)
	c.adc(result)
}

func opDcp(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.compare(c.A, v)
}

func opIsc(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.sbc(v)
}

func opLax(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	v := c.read(addr)
	c.A = v
	c.X = v
	c.setNZ(v)
}

func opSax(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.write(addr, c.A&c.X)
}

// opAnc = AND immediate, then copy bit 7 of the result into carry (as if
// the accumulator had been shifted out of an imaginary ninth bit).
func opAnc(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.A &= c.read(addr)
	c.setNZ(c.A)
	if c.A&0x80 != 0 {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
}

// opAlr = AND immediate, then LSR A.
func opAlr(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.A &= c.read(addr)
	c.A = c.lsr(c.A)
	c.setNZ(c.A)
}

// opArr = AND immediate, then ROR A, with V computed from bits 6 and 5 of
// the rotated result (SPEC_FULL.md §4.3). Carry is the bit ROR shifts out.
func opArr(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.A &= c.read(addr)
	c.A = c.ror(c.A)
	bit6 := (c.A >> 6) & 1
	bit5 := (c.A >> 5) & 1
	if bit6^bit5 != 0 {
		c.P |= FlagV
	} else {
		c.P &^= FlagV
	}
	c.setNZ(c.A)
}

// opAxs (aka SBX) = X = (A&X) - M, carry set as in an unsigned compare.
func opAxs(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	v := c.read(addr)
	t := c.A & c.X
	if t >= v {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	c.X = t - v
	c.setNZ(c.X)
}

// opXaa = A = X & M. Unstable on real silicon; the source models it as
// this simple fusion, which SPEC_FULL.md adopts as the defined behavior.
func opXaa(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.A = c.X & c.read(addr)
	c.setNZ(c.A)
}

// opLas = A = X = SP = M & SP.
func opLas(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	result := c.read(addr) & c.SP
	c.A, c.X, c.SP = result, result, result
	c.setNZ(result)
}

// opAhx (aka SHA) = store A & X & (high byte of address + 1).
func opAhx(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	hi := uint8(addr>>8) + 1
	c.write(addr, c.A&c.X&hi)
}

// opShx = store X & (high byte of address + 1).
func opShx(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	hi := uint8(addr>>8) + 1
	c.write(addr, c.X&hi)
}

// opShy = store Y & (high byte of address + 1).
func opShy(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	hi := uint8(addr>>8) + 1
	c.write(addr, c.Y&hi)
}

// opTas = SP = A&X, then store SP & (high byte of address + 1).
func opTas(c *CPU, mode Mode) {
	addr := c.resolve(mode)
	c.SP = c.A & c.X
	hi := uint8(addr>>8) + 1
	c.write(addr, c.SP&hi)
}
