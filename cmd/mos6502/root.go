package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mos6502",
		Short: "A MOS 6502 emulator, assembler, disassembler and interactive monitor",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newAsmCmd())
	root.AddCommand(newDisCmd())
	root.AddCommand(newMonitorCmd())

	return root
}
