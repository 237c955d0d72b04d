package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jgorelli/mos6502/cpu"
	"github.com/jgorelli/mos6502/internal/monitor"
	"github.com/jgorelli/mos6502/memory"
	"github.com/jgorelli/mos6502/rom"
)

func newMonitorCmd() *cobra.Command {
	var baseStr string
	var screenshot string

	cmd := &cobra.Command{
		Use:   "monitor <rom>",
		Short: "Load a ROM image and open the interactive monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseAddr(baseStr)
			if err != nil {
				return fmt.Errorf("invalid --base: %w", err)
			}

			bus := memory.NewBus()
			if _, err := rom.LoadFile(bus, args[0], base); err != nil {
				return err
			}
			bus.Write(0xFFFC, uint8(base))
			bus.Write(0xFFFD, uint8(base>>8))

			c := cpu.NewCPU(bus)
			c.Reset()

			m := monitor.New(c, bus, screenshot)
			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&baseStr, "base", "8000", "load address and reset vector")
	cmd.Flags().StringVar(&screenshot, "screenshot", "monitor.bmp", "path the 'c' key saves a framebuffer capture to")
	return cmd
}
