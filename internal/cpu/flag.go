package cpu

import "github.com/thelolagemann/gbcore/internal/types"

const (
	flagZero      = types.Bit7
	flagSubtract  = types.Bit6
	flagHalfCarry = types.Bit5
	flagCarry     = types.Bit4
)

// setFlags sets all four flags at once. Callers that must leave a
// flag untouched pass its current value back in.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= flagZero
	}
	if n {
		f |= flagSubtract
	}
	if h {
		f |= flagHalfCarry
	}
	if carry {
		f |= flagCarry
	}
	c.F = f
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&flag != 0
}
