package cpu

import (
	"iter"
)

// PROGRAM_SIZE is the number of words addressable by the program counter.
const PROGRAM_SIZE = 256

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing entry for a program counter.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode that generated the word at pc.
func (prog *Program) Debug(pc uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(pc) >= op.Pc && int(pc) < op.Pc+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc) - op.Pc,
			}
			break
		}
	}

	return
}

// Size returns the length of the binary image.
func (prog *Program) Size() (size int) {
	for _, op := range prog.Opcodes {
		size = max(size, op.Pc+len(op.Codes))
	}

	return
}

// Binary returns the ROM image of the program. Gaps left by .org are zero filled.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, prog.Size())
	for pc, code := range prog.Codes() {
		bins[pc] = uint8(code)
	}

	return
}

// Codes iterates over every assembled word and its address.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(pc uint8, code Code) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(uint8(op.Pc+n), code) {
					return
				}
			}
		}
	}
}
