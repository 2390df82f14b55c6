package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ARUN-apu/8-bit-simple-processor/cpu"
	"github.com/ARUN-apu/8-bit-simple-processor/emulator"
)

func main() {
	var compile string
	var binary string
	var input string
	var output string
	var cycles int
	var reset int
	var uiIn uint
	var verbose bool
	var dump bool

	flag.StringVar(&compile, "c", "", ".asm file to compile into ROM")
	flag.StringVar(&binary, "b", "", "Binary ROM image to load")
	flag.StringVar(&input, "i", "", "Tape input, one instruction per cycle ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Cycle trace output")
	flag.IntVar(&cycles, "n", 256, "Number of cycles to run")
	flag.IntVar(&reset, "r", emulator.RESET_CYCLES, "Reset hold cycles")
	flag.UintVar(&uiIn, "u", 0, "Instruction driven on ui_in when no ROM or tape is given")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump final processor state")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if uiIn > 0xff {
		log.Fatalf("%v: -u %v: %v", os.Args[0], uiIn, cpu.ErrByteRange)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.UiIn = uint8(uiIn)

	boot, err := bootSource(compile, binary, input)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog
	}

	if len(binary) != 0 {
		data, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		if len(data) > cpu.PROGRAM_SIZE {
			log.Fatalf("%v: %v", binary, cpu.ErrProgramFull)
		}
		emu.Program = &cpu.Program{}
		for pc, word := range data {
			emu.Program.Opcodes = append(emu.Program.Opcodes, cpu.Opcode{
				Pc:    pc,
				Words: []string{".byte", fmt.Sprintf("0x%02x", word)},
				Codes: []cpu.Code{cpu.Code(word)},
			})
		}
	}

	switch input {
	case "":
		// pass
	case "-":
		emu.Tape.Input = os.Stdin
	default:
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	var trace io.Writer
	switch output {
	case "-":
		trace = os.Stdout
	default:
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		trace = ouf
	}

	err = emu.Reset(boot, reset)
	if err != nil {
		log.Fatal(err)
	}

	for cycle, out := range emu.Run(cycles) {
		fmt.Fprintf(trace, "%4d pc=%02x alu=%02x oe=%02x\n", cycle, out.UioOut, out.UoOut, out.UioOe)
	}
	if emu.Err() != nil {
		log.Fatal(emu.Err())
	}

	if dump {
		spew.Fdump(os.Stderr, emu.Cpu)
	}
}
