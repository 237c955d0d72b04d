package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jgorelli/mos6502/cpu"
	"github.com/jgorelli/mos6502/input"
	"github.com/jgorelli/mos6502/internal/host"
	"github.com/jgorelli/mos6502/memory"
	"github.com/jgorelli/mos6502/rom"
	"github.com/jgorelli/mos6502/video"
)

func newRunCmd() *cobra.Command {
	var (
		baseStr      string
		maxSteps     int64
		seed         int64
		nmiAfter     int64
		screenshot   string
		headless     bool
	)

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM image and run it in an SDL2 window",
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

			latch := input.NewLatch()
			c := cpu.NewCPU(bus)
			c.RNG = cpu.NewSeededRNG(seed)
			c.Keyboard = latch
			c.Reset()

			fb := video.NewFramebuffer()

			var display *host.Display
			if !headless {
				display, err = host.NewDisplay("mos6502")
				if err != nil {
					return fmt.Errorf("run: open display: %w", err)
				}
				defer display.Close()
			}

			var steps int64
			for c.State() != cpu.Halted {
				if maxSteps > 0 && steps >= maxSteps {
					break
				}
				if nmiAfter > 0 && steps == nmiAfter {
					c.RaiseNMI()
				}

				c.Step()
				if addr, ok := c.LastWrite(); ok {
					fb.Observe(bus, addr, ok)
				}
				steps++

				if display != nil {
					if display.PollEvents(latch) {
						break
					}
					if err := display.Present(fb); err != nil {
						log.Printf("run: present frame: %v", err)
					}
				}
			}

			if screenshot != "" {
				if err := host.SaveScreenshot(fb, screenshot); err != nil {
					return err
				}
			}

			dumpRegisters(c)
			dumpMemory(bus, base)

			return nil
		},
	}

	cmd.Flags().StringVar(&baseStr, "base", "8000", "load address and reset vector")
	cmd.Flags().Int64Var(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the 0x00FE random-byte source")
	cmd.Flags().Int64Var(&nmiAfter, "nmi-after", 0, "raise an NMI after this many steps (0 = never)")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "write a BMP screenshot of the framebuffer on exit")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without opening an SDL window")

	return cmd
}

// dumpRegisters prints the CPU's architectural state on quit/halt, ported
// from original_source/6502.c's dump_registers.
func dumpRegisters(c *cpu.CPU) {
	fmt.Println("\n--- CPU State ---")
	fmt.Printf("A:  $%02X\n", c.A)
	fmt.Printf("X:  $%02X\n", c.X)
	fmt.Printf("Y:  $%02X\n", c.Y)
	fmt.Printf("SP: $%02X\n", c.SP)
	fmt.Printf("PC: $%04X\n", c.PC)
	fmt.Printf("P:  $%02X (N=%d, V=%d, B=%d, D=%d, I=%d, Z=%d, C=%d)\n", c.P,
		bit(c.P, cpu.FlagN), bit(c.P, cpu.FlagV), bit(c.P, cpu.FlagB), bit(c.P, cpu.FlagD),
		bit(c.P, cpu.FlagI), bit(c.P, cpu.FlagZ), bit(c.P, cpu.FlagC))
}

func bit(p, flag uint8) int {
	if p&flag != 0 {
		return 1
	}
	return 0
}

// dumpMemory prints a small window around the ROM's load address, ported
// from original_source/6502.c's dump_memory(&cpu, rom_load_address - 10,
// rom_load_address + 100).
func dumpMemory(bus *memory.Bus, base uint16) {
	start := uint16(0)
	if base > 10 {
		start = base - 10
	}
	length := uint16(110)
	if int(start)+int(length) > 0x10000 {
		length = 0xFFFF - start
	}

	window := bus.DumpMemory(start, length)

	fmt.Println("\n--- Memory Dump ---")
	for i, b := range window {
		fmt.Printf("$%04X: %02X ", start+uint16(i), b)
		if (i+1)%8 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}
