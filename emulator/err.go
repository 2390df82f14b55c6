package emulator

import (
	"errors"

	"github.com/ARUN-apu/8-bit-simple-processor/translate"
)

var f = translate.From

var (
	ErrBootSource = errors.New(f("boot source invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     uint8
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%02x line %d %v", err.Pc, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
