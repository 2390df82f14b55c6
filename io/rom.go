package io

import (
	"fmt"
	"iter"
	"maps"
)

// ROM_SIZE is the size of the PC addressable program space.
const ROM_SIZE = 256

// Rom is a program memory addressed by the program counter.
// Addresses beyond the end of Data read as 0x00.
type Rom struct {
	Data []uint8
}

var _ Memory = (*Rom)(nil)

// Load replaces the ROM contents with an image.
func (rc *Rom) Load(image []uint8) (err error) {
	if len(image) > ROM_SIZE {
		err = ErrRomFull
		return
	}

	rc.Data = append(rc.Data[:0], image...)

	return
}

// Defines returns an iter of defines for the ROM.
func (rc *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%v", ROM_SIZE),
	})
}

// Rewind does nothing, the ROM is random access.
func (rc *Rom) Rewind() {
}

// Fetch returns the word at addr.
func (rc *Rom) Fetch(addr uint8) (code uint8, err error) {
	if int(addr) < len(rc.Data) {
		code = rc.Data[addr]
	}
	return
}
