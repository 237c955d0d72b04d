package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgorelli/mos6502/internal/disassembler"
	"github.com/jgorelli/mos6502/memory"
	"github.com/jgorelli/mos6502/rom"
)

func newDisCmd() *cobra.Command {
	var baseStr string

	cmd := &cobra.Command{
		Use:   "dis <rom>",
		Short: "Disassemble a ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseAddr(baseStr)
			if err != nil {
				return fmt.Errorf("invalid --base: %w", err)
			}

			bus := memory.NewBus()
			n, err := rom.LoadFile(bus, args[0], base)
			if err != nil {
				return err
			}

			fmt.Print(disassembler.DisassembleMemory(bus, int(base), n))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseStr, "base", "8000", "address the ROM image was loaded at")
	return cmd
}
