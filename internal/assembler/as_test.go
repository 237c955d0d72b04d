package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleInstructions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{
			name:     "LDA immediate",
			input:    "LDA #$FF",
			expected: []byte{0xA9, 0xFF},
		},
		{
			name:     "LDA zero page",
			input:    "LDA $12",
			expected: []byte{0xA5, 0x12},
		},
		{
			name:     "LDA absolute",
			input:    "LDA $1234",
			expected: []byte{0xAD, 0x34, 0x12},
		},
		{
			name:     "STA absolute",
			input:    "STA $0081",
			expected: []byte{0x85, 0x81}, // Should use zero page
		},
		{
			name:     "LSR accumulator implicit",
			input:    "LSR",
			expected: []byte{0x4A},
		},
		{
			name:     "LSR accumulator explicit",
			input:    "LSR A",
			expected: []byte{0x4A},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := NewAssembler()
			err := asm.Assemble(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, asm.output)
		})
	}
}

func TestIllegalInstructions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{name: "SLO zero page", input: "SLO $10", expected: []byte{0x07, 0x10}},
		{name: "RLA indirect X", input: "RLA ($20,X)", expected: []byte{0x23, 0x20}},
		{name: "SRE absolute Y", input: "SRE $3000,Y", expected: []byte{0x5B, 0x00, 0x30}},
		{name: "RRA indirect Y", input: "RRA ($30),Y", expected: []byte{0x73, 0x30}},
		{name: "DCP zero page X", input: "DCP $40,X", expected: []byte{0xD7, 0x40}},
		{name: "ISC absolute", input: "ISC $4000", expected: []byte{0xEF, 0x00, 0x40}},
		{name: "LAX zero page", input: "LAX $50", expected: []byte{0xA7, 0x50}},
		{name: "SAX zero page", input: "SAX $60", expected: []byte{0x87, 0x60}},
		{name: "ANC immediate", input: "ANC #$FF", expected: []byte{0x0B, 0xFF}},
		{name: "ALR immediate", input: "ALR #$0F", expected: []byte{0x4B, 0x0F}},
		{name: "ARR immediate", input: "ARR #$0F", expected: []byte{0x6B, 0x0F}},
		{name: "AXS immediate", input: "AXS #$01", expected: []byte{0xCB, 0x01}},
		{name: "XAA immediate", input: "XAA #$00", expected: []byte{0x8B, 0x00}},
		{name: "LAS absolute Y", input: "LAS $5000,Y", expected: []byte{0xBB, 0x00, 0x50}},
		{name: "AHX indirect Y", input: "AHX ($70),Y", expected: []byte{0x93, 0x70}},
		{name: "SHX absolute Y", input: "SHX $6000,Y", expected: []byte{0x9E, 0x00, 0x60}},
		{name: "SHY absolute X", input: "SHY $6000,X", expected: []byte{0x9C, 0x00, 0x60}},
		{name: "TAS absolute Y", input: "TAS $7000,Y", expected: []byte{0x9B, 0x00, 0x70}},
		{name: "JAM implicit", input: "JAM", expected: []byte{0x02}},
		{name: "NOP zero page", input: "NOP $10", expected: []byte{0x04, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := NewAssembler()
			err := asm.Assemble(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, asm.output)
		})
	}
}

func TestBranchInstructions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{
			name: "forward branch",
			input: `
				BEQ target
				NOP
				NOP
			target:
				RTS`,
			expected: []byte{0xF0, 0x02, 0xEA, 0xEA, 0x60},
		},
		{
			name: "backward branch",
			input: `
			start:
				NOP
				BEQ start
				RTS`,
			expected: []byte{0xEA, 0xF0, 0xFD, 0x60},
		},
		{
			name: "branch too far",
			input: `
				BEQ target
				.org $1000
			target:
				RTS`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := NewAssembler()
			err := asm.Assemble(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, asm.output)
		})
	}
}

func TestDirectives(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{
			name: "org directive",
			input: `
				.org $1000
				LDA #$00`,
			expected: []byte{0xA9, 0x00},
		},
		{
			name:     "byte directive",
			input:    `.byte $01, $02, $03`,
			expected: []byte{0x01, 0x02, 0x03},
		},
		{
			name:     "word directive",
			input:    `.word $1234, $5678`,
			expected: []byte{0x34, 0x12, 0x78, 0x56},
		},
		{
			name:     "byte string directive",
			input:    `.byte "Hello"`,
			expected: []byte{0x48, 0x65, 0x6C, 0x6C, 0x6F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := NewAssembler()
			err := asm.Assemble(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, asm.output)
		})
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name: "forward reference",
			input: `
				JMP target
			target:
				RTS`,
			expected: []byte{0x4C, 0x03, 0x00, 0x60},
		},
		{
			name: "backward reference",
			input: `
			start:
				JMP start`,
			expected: []byte{0x4C, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := NewAssembler()
			err := asm.Assemble(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, asm.output)
		})
	}
}
