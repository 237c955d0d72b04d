// Package assembler turns 6502 source text into a loadable ROM image,
// adapted from the teacher's as/assembler package (lexer, parser,
// instruction table, two-pass label resolution) and extended to cover
// every illegal opcode this spec's cpu package implements.
package assembler

import (
	"fmt"
)

// Symbol represents a label or variable in the assembly
type Symbol struct {
	Name      string
	Value     uint16
	IsDefined bool
}

// Assembler holds the state of our assembler
type Assembler struct {
	symbols     map[string]*Symbol
	currentPass int
	pc          uint16
	output      []byte
	errors      []string
}

// NewAssembler creates a new instance of our assembler
func NewAssembler() *Assembler {
	return &Assembler{
		symbols: make(map[string]*Symbol),
		pc:      0,
		errors:  make([]string, 0),
	}
}

// Assemble runs the two-pass assembly: pass one collects label addresses,
// pass two emits bytes now that every symbol reference resolves.
func (a *Assembler) Assemble(source string) error {
	a.currentPass = 1
	a.pc = 0
	a.output = make([]byte, 0)

	lexer := NewLexer(source)
	parser := NewParser(lexer, a)

	for {
		line, err := parser.ParseLine()
		if err != nil {
			return err
		}
		if line == nil {
			break
		}

		if line.Label != "" {
			a.symbols[line.Label] = &Symbol{
				Name:      line.Label,
				Value:     a.pc,
				IsDefined: true,
			}
		}
		if line.Directive != "" {
			if handler, exists := directiveHandlers[line.Directive]; exists {
				if err := handler(a, line.Operand); err != nil {
					return err
				}
			}
		}

		if line.Instruction != "" {
			if inst, exists := instructionSet[line.Instruction]; exists {
				if mode, exists := inst.Modes[line.AddressMode]; exists {
					a.pc += uint16(mode.Size)
				}
			}
		}
	}

	a.currentPass = 2
	a.pc = 0
	lexer = NewLexer(source)
	parser = NewParser(lexer, a)

	for {
		line, err := parser.ParseLine()
		if err != nil {
			return err
		}
		if line == nil {
			break
		}

		if err := a.generateCode(line); err != nil {
			return err
		}
	}

	return nil
}

func (a *Assembler) generateCode(line *Line) error {
	if line.Directive != "" {
		if handler, exists := directiveHandlers[line.Directive]; exists {
			if err := handler(a, line.Operand); err != nil {
				return err
			}
		}
		return nil
	}

	if line.Instruction == "" {
		return nil
	}

	inst, exists := instructionSet[line.Instruction]
	if !exists {
		return fmt.Errorf("unknown instruction: %s", line.Instruction)
	}

	if line.SymbolName != "" {
		if symbol, exists := a.symbols[line.SymbolName]; exists {
			line.Value = symbol.Value
			if line.Value < 0x100 {
				var optimizedMode AddressMode
				switch line.AddressMode {
				case Absolute:
					optimizedMode = ZeroPage
				case AbsoluteX:
					optimizedMode = ZeroPageX
				case AbsoluteY:
					optimizedMode = ZeroPageY
				}
				if optimizedMode != line.AddressMode {
					if _, supported := inst.Modes[optimizedMode]; supported {
						line.AddressMode = optimizedMode
					}
				}
			}
		}
	}

	mode, exists := inst.Modes[line.AddressMode]
	if !exists {
		return fmt.Errorf("invalid addressing mode for instruction %s", line.Instruction)
	}

	a.output = append(a.output, mode.Opcode)

	if mode.AddressMode == Relative {
		nextPC := a.pc + 2
		offset := int16(line.Value) - int16(nextPC)

		if offset < -128 || offset > 127 {
			return fmt.Errorf("branch target out of range (%d bytes)", offset)
		}

		a.output = append(a.output, uint8(offset))
	} else {
		switch mode.Size {
		case 2:
			a.output = append(a.output, uint8(line.Value))
		case 3:
			a.output = append(a.output, uint8(line.Value))
			a.output = append(a.output, uint8(line.Value>>8))
		}
	}

	a.pc += uint16(mode.Size)
	return nil
}

// GetOutput returns the assembled ROM image.
func (a *Assembler) GetOutput() []byte {
	return a.output
}
