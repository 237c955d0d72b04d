// Package disassembler turns a loaded memory image back into mnemonic and
// operand text, adapted from the teacher's dis/disassembler package and
// extended to name every illegal opcode this spec's cpu package executes
// (SPEC_FULL.md §12).
package disassembler

import (
	"fmt"

	"github.com/jgorelli/mos6502/internal/assembler"
)

// AddressingMode mirrors assembler.AddressMode's ordering; the two are kept
// as distinct types (rather than one shared export) because FormatOperand
// below belongs to the disassembler's concerns, not the assembler's.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Instruction is a decoded opcode: its mnemonic, addressing mode, and total
// encoded size in bytes (opcode + operand).
type Instruction struct {
	Name   string
	Mode   AddressingMode
	Bytes  int
	OpCode byte
}

// FormatOperand renders an instruction's operand bytes in assembler syntax.
// Relative branches are rendered as "$PC" by Location.instruction, which
// knows the instruction's own address; FormatOperand's Relative case is
// unused directly but kept for completeness against GetOperandBytes.
func (mode AddressingMode) FormatOperand(bytes []byte) string {
	switch mode {
	case Implicit:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", bytes[0])
	case ZeroPage:
		return fmt.Sprintf("$%02X", bytes[0])
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", bytes[0])
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", bytes[0])
	case Absolute:
		return fmt.Sprintf("$%02X%02X", bytes[1], bytes[0])
	case AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", bytes[1], bytes[0])
	case AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", bytes[1], bytes[0])
	case Indirect:
		return fmt.Sprintf("($%02X%02X)", bytes[1], bytes[0])
	case IndirectX:
		return fmt.Sprintf("($%02X,X)", bytes[0])
	case IndirectY:
		return fmt.Sprintf("($%02X),Y", bytes[0])
	case Relative:
		return fmt.Sprintf("$%02X", bytes[0])
	default:
		return "???"
	}
}

// GetOperandBytes returns the number of operand bytes consumed by mode.
func (mode AddressingMode) GetOperandBytes() int {
	switch mode {
	case Implicit, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

func (mode AddressingMode) String() string {
	switch mode {
	case Implicit:
		return "Implicit"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "Zero Page"
	case ZeroPageX:
		return "Zero Page,X"
	case ZeroPageY:
		return "Zero Page,Y"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "Absolute,X"
	case AbsoluteY:
		return "Absolute,Y"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "Indirect,X"
	case IndirectY:
		return "Indirect,Y"
	case Relative:
		return "Relative"
	default:
		return "Unknown"
	}
}

// illegalMnemonics are prefixed with "*" in disassembly output, the common
// convention for undocumented 6502 opcodes (matching the naming cpu/opcodes.go
// and cpu/illegal.go already use for these same mnemonics).
var illegalMnemonics = map[string]bool{
	"SLO": true, "RLA": true, "SRE": true, "RRA": true, "DCP": true, "ISC": true,
	"LAX": true, "SAX": true, "ANC": true, "ALR": true, "ARR": true, "AXS": true,
	"XAA": true, "LAS": true, "AHX": true, "SHX": true, "SHY": true, "TAS": true,
}

// instructionSet maps every opcode this repository's cpu package can
// execute to its disassembly. Most of it is inverted directly from
// assembler.Instructions() so the assembler and disassembler never drift
// apart; JAM, the dense NOP alias family, and ANC's second opcode (0x2B) are
// layered on explicitly since the assembler only ever needs one canonical
// opcode per mnemonic/mode while the disassembler must recognize every
// alias byte pattern.
var instructionSet = buildInstructionSet()

func buildInstructionSet() map[byte]Instruction {
	set := make(map[byte]Instruction, 256)

	for mnemonic, entry := range assembler.Instructions() {
		if mnemonic == "JAM" || mnemonic == "NOP" {
			continue
		}
		name := mnemonic
		if illegalMnemonics[mnemonic] {
			name = "*" + mnemonic
		}
		for _, inst := range entry.Modes {
			set[inst.Opcode] = Instruction{
				Name:   name,
				Mode:   AddressingMode(inst.AddressMode),
				Bytes:  inst.Size,
				OpCode: inst.Opcode,
			}
		}
	}

	set[0xEA] = Instruction{"NOP", Implicit, 1, 0xEA}
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set[op] = Instruction{"*NOP", Implicit, 1, op}
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set[op] = Instruction{"*NOP", Immediate, 2, op}
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		set[op] = Instruction{"*NOP", ZeroPage, 2, op}
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set[op] = Instruction{"*NOP", ZeroPageX, 2, op}
	}
	set[0x0C] = Instruction{"*NOP", Absolute, 3, 0x0C}
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set[op] = Instruction{"*NOP", AbsoluteX, 3, op}
	}

	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set[op] = Instruction{"JAM", Implicit, 1, op}
	}

	set[0xEB] = Instruction{"*SBC", Immediate, 2, 0xEB}

	// ANC's second real opcode; the assembler canonically emits 0x0B for
	// "ANC #imm" so 0x2B is only ever added here, not in instructionSet.
	set[0x2B] = Instruction{"*ANC", Immediate, 2, 0x2B}

	return set
}

// Decode returns the instruction encoded by opcode, or false if no
// instruction in the cpu package's dispatch table uses that byte pattern
// (which, per SPEC_FULL.md §4.3, cannot happen: every opcode either runs a
// defined instruction or halts as JAM/unknown, and this table covers all
// 256 values the cpu package assigns a handler to).
func Decode(opcode byte) (Instruction, bool) {
	instruction, exists := instructionSet[opcode]
	return instruction, exists
}
