// Command mos6502 wraps the emulator core, assembler, disassembler and
// monitor into one Cobra command tree, grounded on the teacher's pack-wide
// sibling z80-optimizer's cmd/z80opt (itself the only Cobra-based CLI in
// the retrieval pack) and the shape of the teacher's own mon/main.go flags
// (SPEC_FULL.md §10.3).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
