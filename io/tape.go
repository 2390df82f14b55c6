package io

import (
	"io"
	"iter"
	"maps"
)

// Tape provides a sequential instruction stream from an io.Reader.
// Each fetch consumes the next byte, regardless of the requested address.
type Tape struct {
	Input io.Reader

	count int
}

var _ Memory = (*Tape)(nil)

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Count returns the number of words read from the tape.
func (tc *Tape) Count() int {
	return tc.count
}

// Fetch reads the next word from the input stream.
// Returns io.EOF at the end of the tape.
func (tc *Tape) Fetch(addr uint8) (code uint8, err error) {
	if tc.Input == nil {
		err = ErrTapeEmpty
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err != nil {
		return
	}

	code = one[0]
	tc.count++

	return
}
