// Package cpu implements the 8-bit processor core and its assembler.
//
// The core consists of an 8-bit program counter (PC), an instruction decoder,
// an accumulator ALU with add, subtract and or operations, and a synchronous
// active-low reset. One instruction executes per clock cycle. The PC is driven
// on the uio_out bus and the ALU result on the uo_out bus.
//
// The assembler provides a small assembly language for the instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
