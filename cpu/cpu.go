package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ARUN-apu/8-bit-simple-processor/io"
)

// Memory is an instruction source interface.
type Memory io.Memory

// UIO_OE_OUTPUT configures every bidirectional pin as an output.
const UIO_OE_OUTPUT = uint8(0xff)

var _cpu_defines = map[string]string{
	"OPCODE_SHIFT":  fmt.Sprintf("%v", OPCODE_SHIFT),
	"OPERAND_MASK":  fmt.Sprintf("0x%x", OPERAND_MASK),
	"OP_ADD":        fmt.Sprintf("0x%02x", uint8(MakeCode(OP_ADD, 0))),
	"OP_SUB":        fmt.Sprintf("0x%02x", uint8(MakeCode(OP_SUB, 0))),
	"OP_OR":         fmt.Sprintf("0x%02x", uint8(MakeCode(OP_OR, 0))),
	"OP_UNDEFINED":  fmt.Sprintf("0x%02x", uint8(MakeCode(OP_UNDEFINED, 0))),
	"UIO_OE_OUTPUT": fmt.Sprintf("0x%02x", UIO_OE_OUTPUT),
}

// Inputs are the signals sampled by the core on a clock edge.
type Inputs struct {
	Ena   bool  // Global enable.
	RstN  bool  // Active-low synchronous reset.
	UiIn  uint8 // Dedicated input bus.
	UioIn uint8 // Bidirectional bus, input direction.
}

// Outputs are the signals driven by the core after a clock edge.
type Outputs struct {
	UoOut  uint8 // ALU result.
	UioOut uint8 // Program counter.
	UioOe  uint8 // Bidirectional bus output enable.
}

// Cpu is the simulation context for the 8-bit processor core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc  ProgramCounter // Program counter unit.
	Acc uint8          // Accumulator, the latest ALU result.
	Ir  Code           // Most recently executed instruction.

	Ticks int // Executed cycles since reset.

	out         Outputs // Output latch.
	ui_in       uint8   // Last driven dedicated input.
	memory      Memory  // Instruction source, nil to execute from ui_in.
	initialized bool
}

// NewCpu creates a new CPU. It must be reset before use.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetMemory sets the instruction source. A nil memory fetches from ui_in.
func (cpu *Cpu) SetMemory(memory Memory) {
	cpu.memory = memory
}

// GetMemory gets the instruction source.
func (cpu *Cpu) GetMemory() Memory {
	return cpu.memory
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	if !cpu.initialized {
		return "   pc: --\n  acc: --\n"
	}

	text += fmt.Sprintf("% 5s: %02X (%v)\n", "pc", cpu.Pc.Value, cpu.Pc.State)
	text += fmt.Sprintf("% 5s: %02X\n", "acc", cpu.Acc)
	text += fmt.Sprintf("% 5s: %02X %v\n", "ir", uint8(cpu.Ir), cpu.Ir)
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
//   - Zeros the program counter and the accumulator.
//   - Holds the program counter until the next released clock edge.
//   - Rewinds the instruction source.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc.Clock(true)
	cpu.Acc = 0
	cpu.Ir = 0
	cpu.Ticks = 0

	if cpu.memory != nil {
		cpu.memory.Rewind()
	}

	cpu.initialized = true
	cpu.latch()
}

// latch captures the registers onto the output pins.
func (cpu *Cpu) latch() {
	cpu.out = Outputs{
		UoOut:  cpu.Acc,
		UioOut: cpu.Pc.Value,
		UioOe:  UIO_OE_OUTPUT,
	}
}

// Outputs returns the signals driven by the core.
func (cpu *Cpu) Outputs() (out Outputs, err error) {
	if !cpu.initialized {
		err = ErrUninitialized
		return
	}

	out = cpu.out
	return
}

// PcValue returns the program counter as seen on uio_out.
func (cpu *Cpu) PcValue() (pc uint8, err error) {
	out, err := cpu.Outputs()
	pc = out.UioOut
	return
}

// Result returns the ALU result as seen on uo_out.
func (cpu *Cpu) Result() (result uint8, err error) {
	out, err := cpu.Outputs()
	result = out.UoOut
	return
}

// FetchCode fetches the instruction at the current program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.memory == nil {
		code = Code(cpu.ui_in)
		return
	}

	word, err := cpu.memory.Fetch(cpu.Pc.Value)
	if err != nil {
		err = errors.Join(ErrFetch, err)
		return
	}

	code = Code(word)
	return
}

// Tick performs a single clock edge.
func (cpu *Cpu) Tick(in Inputs) (err error) {
	if in.Ena && !in.RstN {
		cpu.Reset()
		return
	}

	if !cpu.initialized {
		err = ErrUninitialized
		return
	}

	// Clock gated.
	if !in.Ena {
		return
	}

	cpu.ui_in = in.UiIn

	if cpu.Pc.Running() {
		var code Code
		code, err = cpu.FetchCode()
		if err != nil {
			return
		}
		cpu.Execute(code)
	}

	cpu.Pc.Clock(false)
	cpu.latch()

	return
}

// Step performs a single released clock edge, keeping the last ui_in value.
func (cpu *Cpu) Step() (err error) {
	return cpu.Tick(Inputs{Ena: true, RstN: true, UiIn: cpu.ui_in})
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) {
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc.Value, code)
	}

	op, operand := code.Decode()
	cpu.Acc = Alu(op, cpu.Acc, operand)
	cpu.Ir = code
	cpu.Ticks++
}
