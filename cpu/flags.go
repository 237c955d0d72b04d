package cpu

// adc implements ADC's full semantics per the source and SPEC_FULL.md §4.2:
// sum in a 9-bit-wide accumulator for the carry-out, and the classic
// same-sign-operands/different-sign-result overflow test. Decimal mode is a
// documented non-goal: FlagD is tracked but never consulted here.
func (c *CPU) adc(value uint8) {
	origA := c.A
	sum := uint16(origA) + uint16(value) + uint16(c.P&FlagC)

	c.P &^= FlagC | FlagV
	if sum > 0xFF {
		c.P |= FlagC
	}
	result := uint8(sum)
	if (origA^result)&(value^result)&0x80 != 0 {
		c.P |= FlagV
	}

	c.A = result
	c.setNZ(c.A)
}

// sbc mirrors adc with a borrow instead of a carry-in, matching the source's
// `result = A - value - (C ? 0 : 1)` rather than the "SBC is ADC of the
// complement" shortcut some implementations use.
func (c *CPU) sbc(value uint8) {
	origA := c.A
	borrow := int16(0)
	if c.P&FlagC == 0 {
		borrow = 1
	}
	diff := int16(origA) - int16(value) - borrow

	c.P &^= FlagC | FlagV
	if diff >= 0 {
		c.P |= FlagC
	}
	result := uint8(diff)
	if (origA^result)&(^value^result)&0x80 != 0 {
		c.P |= FlagV
	}

	c.A = result
	c.setNZ(c.A)
}

// compare implements the shared CMP/CPX/CPY semantics: carry set when the
// register is greater than or equal to the operand, N/Z from the 8-bit
// wrapping subtraction.
func (c *CPU) compare(reg, value uint8) {
	if reg >= value {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
	c.setNZ(reg - value)
}
