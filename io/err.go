package io

import (
	"errors"

	"github.com/ARUN-apu/8-bit-simple-processor/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrRomFull   = errors.New(f("rom full"))
	ErrTapeEmpty = errors.New(f("tape has no input"))
)
