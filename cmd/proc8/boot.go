package main

import (
	"errors"

	"github.com/ARUN-apu/8-bit-simple-processor/cpu"
)

var ErrBootExclusive = errors.New("only one of -c, -b or -i may be given")

// bootSource selects the instruction source from the command line files.
func bootSource(compile, binary, input string) (boot cpu.CodeSource, err error) {
	boot = cpu.SOURCE_UI_IN

	given := 0
	if len(compile) != 0 {
		boot = cpu.SOURCE_ROM
		given++
	}
	if len(binary) != 0 {
		boot = cpu.SOURCE_ROM
		given++
	}
	if len(input) != 0 {
		boot = cpu.SOURCE_TAPE
		given++
	}

	if given > 1 {
		err = ErrBootExclusive
	}

	return
}
