package cpu

import (
	"fmt"
)

// Instruction word layout.
const (
	OPCODE_SHIFT = 6    // Bit position of the opcode field.
	OPCODE_MASK  = 0x3  // Mask of the opcode field, after shifting.
	OPERAND_MASK = 0x3f // Mask of the operand field.
)

// CodeOp is an ALU operation type, decoded from instruction bits [7:6].
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD       = CodeOp(0) // add
	OP_SUB       = CodeOp(1) // sub
	OP_OR        = CodeOp(2) // or
	OP_UNDEFINED = CodeOp(3) // undef
)

// CodeSource selects where the core fetches instructions from.
type CodeSource int

//go:generate go tool stringer -linecomment -type=CodeSource
const (
	SOURCE_UI_IN = CodeSource(0) // ui_in
	SOURCE_ROM   = CodeSource(1) // rom
	SOURCE_TAPE  = CodeSource(2) // tape
)

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo    int
	Pc        int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Code is a single 8-bit instruction word.
type Code uint8

// MakeCode creates an instruction from an operation and a 6-bit operand.
func MakeCode(op CodeOp, operand uint8) Code {
	return Code((uint8(op)&OPCODE_MASK)<<OPCODE_SHIFT | (operand & OPERAND_MASK))
}

// Op returns the operation from the instruction word.
func (code Code) Op() CodeOp {
	return CodeOp((uint8(code) >> OPCODE_SHIFT) & OPCODE_MASK)
}

// Operand returns the 6-bit operand field, zero extended.
func (code Code) Operand() uint8 {
	return uint8(code) & OPERAND_MASK
}

// Decode returns the operation and operand of the instruction word.
// Every word decodes; OP_UNDEFINED is a valid outcome.
func (code Code) Decode() (op CodeOp, operand uint8) {
	op = code.Op()
	operand = code.Operand()
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	op, operand := code.Decode()
	return fmt.Sprintf("%v 0x%02x", op.String(), operand)
}
