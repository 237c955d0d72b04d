package disassembler

import (
	"fmt"
	"strings"
)

const maxMemory = 0x10000

// MemoryBus is the subset of memory.Bus the disassembler needs: a plain,
// non-intercepting byte read. Disassembly never triggers the CPU's
// fetchByte magic-address interception (SPEC_FULL.md §4.1's fetch
// asymmetry is a CPU-execution concern, not a static-analysis one).
type MemoryBus interface {
	Read(addr uint16) uint8
}

// Location is one decoded instruction at a fixed address, used both by the
// `dis` subcommand's linear sweep and the monitor's disassembly pane.
type Location struct {
	PC           uint16
	Value        uint8
	OperandBytes []byte
	Inst         *Instruction
}

func (l Location) instruction() string {
	if l.Inst == nil {
		return fmt.Sprintf("db $%02X", l.Value)
	}
	operand := l.Inst.Mode.FormatOperand(l.OperandBytes)
	if operand == "" {
		return l.Inst.Name
	}

	if l.Inst.Mode == Relative {
		offset := int8(l.OperandBytes[0])
		target := l.PC + 2 + uint16(offset)
		return fmt.Sprintf("%s $%04X", l.Inst.Name, target)
	}

	return fmt.Sprintf("%s %s", l.Inst.Name, operand)
}

// Size returns the total number of bytes (opcode plus operand) this
// instruction occupies, so callers can advance PC past it.
func (l Location) Size() int {
	if l.Inst == nil {
		return 1
	}
	return l.Inst.Bytes
}

func (l Location) String() string {
	var hexDump string
	switch len(l.OperandBytes) {
	case 0:
		hexDump = fmt.Sprintf("%02X", l.Value)
	case 1:
		hexDump = fmt.Sprintf("%02X %02X", l.Value, l.OperandBytes[0])
	default:
		hexDump = fmt.Sprintf("%02X %02X %02X", l.Value, l.OperandBytes[0], l.OperandBytes[1])
	}

	return fmt.Sprintf("$%04X: %-8s  %s", l.PC, hexDump, l.instruction())
}

func disassembleLocation(memory MemoryBus, pc int) Location {
	opcode := memory.Read(uint16(pc))
	l := Location{PC: uint16(pc), Value: opcode}

	inst, exists := instructionSet[opcode]
	if !exists {
		return l
	}

	operandCount := inst.Mode.GetOperandBytes()
	if pc+operandCount >= maxMemory {
		return l
	}
	l.Inst = &inst

	if operandCount > 0 {
		l.OperandBytes = make([]byte, operandCount)
		for i := 0; i < operandCount; i++ {
			l.OperandBytes[i] = memory.Read(uint16(pc + 1 + i))
		}
	}

	return l
}

// DisassembleInstructions walks the entire 64 KiB address space from 0,
// decoding one instruction after another. Because data regions disassemble
// as plausible-looking but meaningless instructions, this is meant for a
// ROM image that is code start-to-end, not arbitrary RAM. The monitor seeds
// its disassembly pane with this sweep.
func DisassembleInstructions(memory MemoryBus) []Location {
	pc := 0
	var rows []Location
	for pc < maxMemory {
		loc := disassembleLocation(memory, pc)
		rows = append(rows, loc)
		pc += loc.Size()
	}
	return rows
}

// DisassembleMemory renders a range of memory as one line of text per
// decoded instruction, used by the `dis` subcommand.
func DisassembleMemory(memory MemoryBus, startAddr int, length int) string {
	var out strings.Builder
	pc := startAddr
	endAddr := startAddr + length

	for pc < endAddr {
		loc := disassembleLocation(memory, pc)
		out.WriteString(loc.String())
		out.WriteString("\n")
		pc += loc.Size()
	}

	return out.String()
}

// DisassembleOne decodes a single instruction at pc.
func DisassembleOne(memory MemoryBus, pc uint16) Location {
	return disassembleLocation(memory, int(pc))
}
