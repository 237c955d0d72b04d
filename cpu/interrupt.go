package cpu

// Vector addresses, per SPEC_FULL.md §3. These are ordinary memory
// locations, not separate entities: reset, NMI and IRQ/BRK each load PC from
// a fixed little-endian pointer here.
const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)

func (c *CPU) loadVector(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// serviceInterrupt runs the shared IRQ/NMI prologue: push PC high/low, push
// P with the break flag clear in the pushed copy, set the interrupt-disable
// flag, and vector PC. BRK (an opcode, not an asynchronous line) has its own
// near-identical handler, brk below, because it pushes PC+1 and sets B.
func (c *CPU) serviceInterrupt(vector uint16) {
	c.push16(c.PC)
	c.push(c.P &^ FlagB | flagU)
	c.P |= FlagI
	c.PC = c.loadVector(vector)
}

func (c *CPU) brk() {
	c.push16(c.PC + 1)
	c.push(c.P | FlagB | flagU)
	c.P |= FlagI
	c.PC = c.loadVector(vectorIRQ)
}
