package cpu

// Alu performs the requested ALU operation and returns the 8-bit result.
//
// Input a is the accumulator, b the zero extended operand. The undefined
// operation passes the accumulator through unchanged.
func Alu(op CodeOp, a, b uint8) (output uint8) {
	switch op {
	case OP_ADD: // add
		output = a + b
	case OP_SUB: // sub
		output = a + ((^b) + 1)
	case OP_OR: // or
		output = a | b
	default: // undef
		output = a
	}

	return
}
