package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgorelli/mos6502/internal/assembler"
)

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm <in.s> <out.bin>",
		Short: "Assemble a 6502 source file into a raw binary ROM image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("asm: read %s: %w", args[0], err)
			}

			a := assembler.NewAssembler()
			if err := a.Assemble(string(source)); err != nil {
				return fmt.Errorf("asm: %w", err)
			}

			if err := os.WriteFile(args[1], a.GetOutput(), 0o644); err != nil {
				return fmt.Errorf("asm: write %s: %w", args[1], err)
			}

			fmt.Printf("wrote %d bytes to %s\n", len(a.GetOutput()), args[1])
			return nil
		},
	}
}
