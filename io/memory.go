// Package io provides instruction sources for the 8-bit processor core.
// It includes a program ROM addressed by the program counter (Rom), and a
// sequential instruction stream that delivers one word per fetch (Tape).
package io

import (
	"iter"
)

// Memory defines the interface for all instruction sources.
type Memory interface {
	// Rewind resets the source to its initial state.
	Rewind()
	// Fetch returns the instruction word at the address.
	Fetch(addr uint8) (code uint8, err error)
	// Defines returns an iter of assembler defines for the source.
	Defines() iter.Seq2[string, string]
}
