package cpu

// Register represents one of the 8-bit CPU registers: A, B, C, D, E,
// H, L and F. The F register holds the four condition flags in its
// high nibble; its low nibble always reads as zero.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit registers. It holds no
// storage of its own: the high register supplies the upper byte and
// the low register the lower byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to the low byte on every write. It is 0xFF
	// for all pairs except AF, where the low nibble of F is not
	// writable.
	lowMask uint8
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}
