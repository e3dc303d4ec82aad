package cpu

import "testing"

func TestBit_FlagSemantics(t *testing.T) {
	c := newTestCPU()
	for bit := uint8(0); bit < 8; bit++ {
		c.B = ^(uint8(1) << bit) // tested bit clear, everything else set
		c.F = flagCarry

		run(t, c, 0xCB, 0x40+bit*8) // BIT bit, B

		if !c.isFlagSet(flagZero) {
			t.Errorf("BIT %d: expected zero flag set for a clear bit", bit)
		}
		if !c.isFlagSet(flagHalfCarry) {
			t.Errorf("BIT %d: expected half-carry flag set", bit)
		}
		if c.isFlagSet(flagSubtract) {
			t.Errorf("BIT %d: expected subtract flag reset", bit)
		}
		if !c.isFlagSet(flagCarry) {
			t.Errorf("BIT %d: expected carry flag untouched", bit)
		}
		if c.B != ^(uint8(1)<<bit) {
			t.Errorf("BIT %d: expected tested byte unchanged, got 0x%02X", bit, c.B)
		}

		c.B = 1 << bit
		run(t, c, 0xCB, 0x40+bit*8)
		if c.isFlagSet(flagZero) {
			t.Errorf("BIT %d: expected zero flag reset for a set bit", bit)
		}
	}
}

func TestBit_MemoryTarget(t *testing.T) {
	c := newTestCPU()
	c.HL.SetUint16(0x3000)
	c.b.Write(0x3000, 0x40)
	run(t, c, 0xCB, 0x76) // BIT 6, (HL)
	if c.isFlagSet(flagZero) {
		t.Errorf("expected zero flag reset, got F=0x%02X", c.F)
	}
	if got := c.b.Read(0x3000); got != 0x40 {
		t.Errorf("expected memory unchanged, got 0x%02X", got)
	}
}

func TestResSet_NoFlags(t *testing.T) {
	c := newTestCPU()
	c.A = 0x00
	c.F = 0xB0
	run(t, c, 0xCB, 0xFF) // SET 7, A
	if c.A != 0x80 {
		t.Errorf("expected A to be 0x80, got 0x%02X", c.A)
	}
	if c.F != 0xB0 {
		t.Errorf("expected flags untouched, got F=0x%02X", c.F)
	}

	run(t, c, 0xCB, 0xBF) // RES 7, A
	if c.A != 0x00 {
		t.Errorf("expected A to be 0x00, got 0x%02X", c.A)
	}
	if c.F != 0xB0 {
		t.Errorf("expected flags untouched, got F=0x%02X", c.F)
	}
}

func TestResSet_EveryBit(t *testing.T) {
	c := newTestCPU()
	for bit := uint8(0); bit < 8; bit++ {
		c.E = 0x00
		run(t, c, 0xCB, 0xC3+bit*8) // SET bit, E
		if c.E != 1<<bit {
			t.Errorf("SET %d: expected 0x%02X, got 0x%02X", bit, 1<<bit, c.E)
		}
		c.E = 0xFF
		run(t, c, 0xCB, 0x83+bit*8) // RES bit, E
		if c.E != ^(uint8(1)<<bit) {
			t.Errorf("RES %d: expected 0x%02X, got 0x%02X", bit, ^(uint8(1)<<bit), c.E)
		}
	}
}
