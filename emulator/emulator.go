package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/ARUN-apu/8-bit-simple-processor/cpu"
	"github.com/ARUN-apu/8-bit-simple-processor/internal"
	"github.com/ARUN-apu/8-bit-simple-processor/io"
)

const (
	RESET_CYCLES = 10 // Default reset hold, in clock cycles.
)

var _emulator_defines = map[string]string{
	"RESET_CYCLES": fmt.Sprintf("%v", RESET_CYCLES),
}

// Emulator state. CPU + instruction sources + input pins.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom  io.Rom  // Program ROM instruction source.
	Tape io.Tape // Sequential instruction source.

	UiIn  uint8 // Value driven on ui_in.
	UioIn uint8 // Value driven on uio_in.

	err error // Error that stopped Run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Rom.Defines(),
		emu.Tape.Defines(),
	)
}

// inputs returns the pins driven this cycle.
func (emu *Emulator) inputs(rst_n bool) cpu.Inputs {
	return cpu.Inputs{
		Ena:   true,
		RstN:  rst_n,
		UiIn:  emu.UiIn,
		UioIn: emu.UioIn,
	}
}

// Reset the emulator, booting from the instruction source.
// The reset line is held low for the given number of cycles, then released.
func (emu *Emulator) Reset(boot cpu.CodeSource, cycles int) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.err = nil

	switch boot {
	case cpu.SOURCE_UI_IN:
		emu.Cpu.SetMemory(nil)
	case cpu.SOURCE_ROM:
		err = emu.Rom.Load(emu.Program.Binary())
		if err != nil {
			return
		}
		emu.Cpu.SetMemory(&emu.Rom)
	case cpu.SOURCE_TAPE:
		emu.Cpu.SetMemory(&emu.Tape)
	default:
		err = ErrBootSource
		return
	}

	if emu.Verbose {
		log.Printf("emulator: boot from %v", boot)
	}

	err = emu.Hold(cycles)
	return
}

// Hold asserts reset for the given number of cycles, at least one.
func (emu *Emulator) Hold(cycles int) (err error) {
	for range max(cycles, 1) {
		err = emu.Cpu.Tick(emu.inputs(false))
		if err != nil {
			return
		}
	}

	return
}

// Ticks returns the total executed cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc.Value)
}

// Code returns the listing code at the current program counter.
func (emu *Emulator) Code() cpu.Code {
	for pc, code := range emu.Program.Codes() {
		if emu.Cpu.Pc.Value == pc {
			return code
		}
	}

	return cpu.Code(0)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc.Value)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single clock cycle of the emulator.
// Done is set when a sequential instruction source is exhausted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc.Value
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick(emu.inputs(true))
	if errors.Is(err, goio.EOF) {
		err = nil
		done = true
		return
	}

	return
}

// Run iterates over the outputs after each of up to cycles clock cycles.
// Iteration stops early at the end of the tape, or on error; see Err().
func (emu *Emulator) Run(cycles int) iter.Seq2[int, cpu.Outputs] {
	return func(yield func(cycle int, out cpu.Outputs) bool) {
		for cycle := range cycles {
			done, err := emu.Tick()
			if err != nil {
				emu.err = err
				return
			}
			if done {
				return
			}
			out, err := emu.Cpu.Outputs()
			if err != nil {
				emu.err = err
				return
			}
			if !yield(cycle, out) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last Run.
func (emu *Emulator) Err() error {
	return emu.err
}
