package main

import (
	"strconv"
	"strings"
)

// parseAddr accepts a hex address in "$F000", "0xF000" or bare "F000" form,
// matching the teacher's mon/main.go flag convention.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
