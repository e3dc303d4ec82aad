package gameboy

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy instance.
type Opt func(gb *GameBoy)

// Debug enables the per-instruction disassembly trace.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// WithLogger replaces the default logger throughout the machine.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
		gb.CPU.SetLogger(l)
		gb.Bus.SetLogger(l)
	}
}

// WithROM copies the given image onto the bus starting at address 0,
// the way an external loader would populate memory at construction.
func WithROM(data []byte) Opt {
	return func(gb *GameBoy) {
		gb.Bus.CopyFrom(0x0000, data)
	}
}

// WithPC overrides the initial program counter, for harnesses that
// execute code fragments rather than full images.
func WithPC(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.CPU.PC = pc
	}
}
