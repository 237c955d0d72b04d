package disassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBus struct {
	mem [65536]uint8
}

func (b *fakeBus) Read(addr uint16) uint8 { return b.mem[addr] }

func TestDecodeDocumented(t *testing.T) {
	inst, ok := Decode(0xA9) // LDA #imm
	assert.True(t, ok)
	assert.Equal(t, "LDA", inst.Name)
	assert.Equal(t, Immediate, inst.Mode)
	assert.Equal(t, 2, inst.Bytes)
}

func TestDecodeIllegal(t *testing.T) {
	inst, ok := Decode(0x07) // SLO zero page
	assert.True(t, ok)
	assert.Equal(t, "*SLO", inst.Name)
	assert.Equal(t, ZeroPage, inst.Mode)
}

func TestDecodeJam(t *testing.T) {
	inst, ok := Decode(0x02)
	assert.True(t, ok)
	assert.Equal(t, "JAM", inst.Name)
}

func TestDecodeNopAlias(t *testing.T) {
	inst, ok := Decode(0x1A)
	assert.True(t, ok)
	assert.Equal(t, "*NOP", inst.Name)
}

func TestDecodeLaxImmediate(t *testing.T) {
	inst, ok := Decode(0xAB)
	assert.True(t, ok)
	assert.Equal(t, "*LAX", inst.Name)
	assert.Equal(t, Immediate, inst.Mode)
	assert.Equal(t, 2, inst.Bytes)
}

func TestDecodeAncSecondOpcode(t *testing.T) {
	inst, ok := Decode(0x2B)
	assert.True(t, ok)
	assert.Equal(t, "*ANC", inst.Name)
	assert.Equal(t, Immediate, inst.Mode)
}

func TestDisassembleMemoryFormatsOperand(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x8000] = 0xA9 // LDA #$42
	bus.mem[0x8001] = 0x42
	bus.mem[0x8002] = 0x60 // RTS

	out := DisassembleMemory(bus, 0x8000, 3)
	assert.Contains(t, out, "LDA #$42")
	assert.Contains(t, out, "RTS")
}

func TestDisassembleOneRelativeBranch(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x8000] = 0xF0 // BEQ +4
	bus.mem[0x8001] = 0x04

	loc := DisassembleOne(bus, 0x8000)
	assert.Equal(t, 2, loc.Size())
	assert.Contains(t, loc.String(), "BEQ $8006")
}

func TestDisassembleTruncatedOperandFallsBackToDataByte(t *testing.T) {
	// No opcode in the cpu package's dispatch table is actually left
	// unassigned, but Location must still degrade gracefully if asked to
	// decode past the end of memory.
	bus := &fakeBus{}
	bus.mem[0xFFFF] = 0xAD // ABS LDA with no room for its 2-byte operand

	loc := disassembleLocation(bus, 0xFFFF)
	assert.Nil(t, loc.Inst)
	assert.Equal(t, 1, loc.Size())
}
