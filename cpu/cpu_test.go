package cpu

import (
	"errors"
	goio "io"
	"iter"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARUN-apu/8-bit-simple-processor/io"
)

var (
	pinsReset   = Inputs{Ena: true, RstN: false}
	pinsRelease = Inputs{Ena: true, RstN: true}
)

// brokenMemory fails every fetch.
type brokenMemory struct {
	err     error
	rewinds int
}

func (bm *brokenMemory) Rewind() { bm.rewinds++ }

func (bm *brokenMemory) Fetch(addr uint8) (uint8, error) { return 0, bm.err }

func (bm *brokenMemory) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

func doHold(t *testing.T, cpu *Cpu, cycles int) {
	for range cycles {
		assert.NoError(t, cpu.Tick(pinsReset))
	}
}

func doPc(t *testing.T, cpu *Cpu) uint8 {
	pc, err := cpu.PcValue()
	assert.NoError(t, err)
	return pc
}

func TestCpuUninitialized(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	_, err := cpu.Outputs()
	assert.ErrorIs(err, ErrUninitialized)
	_, err = cpu.PcValue()
	assert.ErrorIs(err, ErrUninitialized)
	_, err = cpu.Result()
	assert.ErrorIs(err, ErrUninitialized)

	assert.ErrorIs(cpu.Step(), ErrUninitialized)
	assert.ErrorIs(cpu.Tick(pinsRelease), ErrUninitialized)
	assert.ErrorIs(cpu.Tick(Inputs{Ena: false, RstN: false}), ErrUninitialized)

	assert.Contains(cpu.String(), "--")
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Reset()

	out, err := cpu.Outputs()
	assert.NoError(err)
	assert.Equal(Outputs{UoOut: 0, UioOut: 0, UioOe: 0xff}, out)
	assert.Equal(PC_HELD, cpu.Pc.State)

	assert.NoError(cpu.Step())
	assert.NoError(cpu.Step())
	assert.Equal(uint8(1), doPc(t, cpu))

	// Software reset is the same as a held reset line.
	cpu.Reset()
	assert.Equal(uint8(0), doPc(t, cpu))
	assert.Equal(0, cpu.Ticks)
}

func TestCpuResetTiming(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	doHold(t, cpu, 10)
	assert.Equal(uint8(0), doPc(t, cpu))

	// Release: one edge to re-arm, the next advances.
	assert.NoError(cpu.Tick(pinsRelease))
	assert.Equal(uint8(0), doPc(t, cpu))
	assert.NoError(cpu.Tick(pinsRelease))
	assert.Equal(uint8(1), doPc(t, cpu))

	for range 10 {
		assert.NoError(cpu.Step())
	}
	assert.Equal(uint8(11), doPc(t, cpu))

	// Reset during execution.
	doHold(t, cpu, 2)
	assert.Equal(uint8(0), doPc(t, cpu))
	result, err := cpu.Result()
	assert.NoError(err)
	assert.Equal(uint8(0), result)

	// Restart.
	assert.NoError(cpu.Tick(pinsRelease))
	assert.NoError(cpu.Tick(pinsRelease))
	assert.Equal(uint8(1), doPc(t, cpu))
}

func TestCpuResetHeld(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Reset()

	for range 5 {
		assert.NoError(cpu.Tick(Inputs{Ena: true, RstN: false, UiIn: 0x3f}))
		assert.Equal(uint8(0), doPc(t, cpu))
		result, err := cpu.Result()
		assert.NoError(err)
		assert.Equal(uint8(0), result)
	}
}

func TestCpuAdvance(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	doHold(t, cpu, 5)
	assert.NoError(cpu.Step())

	// Over a full wrap, and then some.
	for range 300 {
		before := doPc(t, cpu)
		assert.NoError(cpu.Step())
		assert.Equal(before+1, doPc(t, cpu))
	}

	start := doPc(t, cpu)
	for range 20 {
		assert.NoError(cpu.Step())
	}
	assert.Equal(uint8(20), doPc(t, cpu)-start)
}

func TestCpuOutputEnable(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	doHold(t, cpu, 5)

	for n := range 32 {
		assert.NoError(cpu.Tick(Inputs{Ena: true, RstN: true, UiIn: uint8(n * 7)}))
		out, err := cpu.Outputs()
		assert.NoError(err)
		assert.Equal(UIO_OE_OUTPUT, out.UioOe)
	}
}

func TestCpuUiIn(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	doHold(t, cpu, 10)
	assert.NoError(cpu.Tick(pinsRelease))
	assert.NoError(cpu.Tick(pinsRelease))
	assert.Equal(uint8(1), doPc(t, cpu))

	table := [](struct {
		code   Code
		op     CodeOp
		result uint8
	}){
		{0x01, OP_ADD, 0x01},
		{0x42, OP_SUB, 0xff},
		{0x83, OP_OR, 0xff},
		{0xc4, OP_UNDEFINED, 0xff},
		{0xc9, OP_UNDEFINED, 0xff},
		{0x46, OP_SUB, 0xf9},
		{0x87, OP_OR, 0xff},
		{0x00, OP_ADD, 0xff},
	}

	for n, entry := range table {
		assert.NoError(cpu.Tick(Inputs{Ena: true, RstN: true, UiIn: uint8(entry.code)}))
		out, err := cpu.Outputs()
		assert.NoError(err)
		assert.Equal(entry.op, cpu.Ir.Op(), "%v", entry.code)
		assert.Equal(entry.result, out.UoOut, "%v", entry.code)
		assert.Equal(uint8(n+2), out.UioOut, "%v", entry.code)
	}

	// Step keeps the last driven ui_in.
	assert.NoError(cpu.Step())
	result, err := cpu.Result()
	assert.NoError(err)
	assert.Equal(uint8(0xff), result)
	assert.Equal(Code(0x00), cpu.Ir)
}

func TestCpuLiveness(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	doHold(t, cpu, 5)
	assert.NoError(cpu.Tick(pinsRelease))
	assert.NoError(cpu.Tick(pinsRelease))

	for range 10 {
		before, err := cpu.Outputs()
		assert.NoError(err)
		for range 5 {
			assert.NoError(cpu.Step())
		}
		after, err := cpu.Outputs()
		assert.NoError(err)
		assert.True(before.UoOut != after.UoOut || before.UioOut != after.UioOut)
	}
}

func TestCpuEnable(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	doHold(t, cpu, 2)
	assert.NoError(cpu.Tick(pinsRelease))
	assert.NoError(cpu.Tick(Inputs{Ena: true, RstN: true, UiIn: 0x05}))
	assert.Equal(uint8(1), doPc(t, cpu))

	// Clock gated: neither execution nor reset.
	for range 4 {
		assert.NoError(cpu.Tick(Inputs{Ena: false, RstN: true, UiIn: 0x05}))
		assert.NoError(cpu.Tick(Inputs{Ena: false, RstN: false}))
	}
	assert.Equal(uint8(1), doPc(t, cpu))
	result, err := cpu.Result()
	assert.NoError(err)
	assert.Equal(uint8(5), result)

	assert.NoError(cpu.Tick(Inputs{Ena: true, RstN: true, UiIn: 0x05}))
	assert.Equal(uint8(2), doPc(t, cpu))
	result, err = cpu.Result()
	assert.NoError(err)
	assert.Equal(uint8(10), result)
}

func TestCpuRom(t *testing.T) {
	assert := assert.New(t)

	rom := &io.Rom{Data: []uint8{
		uint8(MakeCode(OP_ADD, 0x10)),
		uint8(MakeCode(OP_ADD, 0x20)),
		uint8(MakeCode(OP_SUB, 0x01)),
		uint8(MakeCode(OP_OR, 0x03)),
	}}

	cpu := NewCpu()
	cpu.SetMemory(rom)
	assert.Equal(Memory(rom), cpu.GetMemory())

	cpu.Reset()
	assert.NoError(cpu.Step())

	expected := []uint8{0x10, 0x30, 0x2f, 0x2f, 0x2f}
	for n, result := range expected {
		assert.NoError(cpu.Step())
		out, err := cpu.Outputs()
		assert.NoError(err)
		assert.Equal(result, out.UoOut, "pc %v", n)
		assert.Equal(uint8(n+1), out.UioOut)
	}

	assert.Equal(5, cpu.Ticks)
	assert.True(strings.Contains(cpu.String(), "acc: 2F"))
}

func TestCpuFetchError(t *testing.T) {
	assert := assert.New(t)

	mem := &brokenMemory{err: goio.EOF}

	cpu := NewCpu()
	cpu.SetMemory(mem)
	cpu.Reset()
	assert.Equal(1, mem.rewinds)

	// Arming does not fetch.
	assert.NoError(cpu.Step())

	err := cpu.Step()
	assert.ErrorIs(err, ErrFetch)
	assert.True(errors.Is(err, goio.EOF))

	// Nothing advanced.
	assert.Equal(uint8(0), doPc(t, cpu))
	assert.Equal(0, cpu.Ticks)
}

func TestCpuDefines(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	defines := maps.Collect(cpu.Defines())

	assert.Equal("6", defines["OPCODE_SHIFT"])
	assert.Equal("0x3f", defines["OPERAND_MASK"])
	assert.Equal("0x40", defines["OP_SUB"])
	assert.Equal("0xc0", defines["OP_UNDEFINED"])
	assert.Equal("0xff", defines["UIO_OE_OUTPUT"])
}
