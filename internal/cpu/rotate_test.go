package cpu

import "testing"

func TestRotateAccumulator_ZeroUntouched(t *testing.T) {
	t.Run("RLCA", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x85
		c.F = flagZero
		run(t, c, 0x07)
		if c.A != 0x0B {
			t.Errorf("expected A to be 0x0B, got 0x%02X", c.A)
		}
		if !c.isFlagSet(flagCarry) {
			t.Error("expected bit 7 to land in carry")
		}
		if !c.isFlagSet(flagZero) {
			t.Error("expected zero flag to be left untouched")
		}
	})
	t.Run("RRCA", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x01
		run(t, c, 0x0F)
		if c.A != 0x80 || !c.isFlagSet(flagCarry) {
			t.Errorf("expected A=0x80 with carry set, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	t.Run("RLA", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x80
		c.F = flagCarry
		run(t, c, 0x17)
		if c.A != 0x01 {
			t.Errorf("expected carry to rotate into bit 0, got A=0x%02X", c.A)
		}
		if !c.isFlagSet(flagCarry) {
			t.Error("expected bit 7 to become the new carry")
		}
	})
	t.Run("RRA", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x01
		c.F = flagCarry
		run(t, c, 0x1F)
		if c.A != 0x80 || !c.isFlagSet(flagCarry) {
			t.Errorf("expected A=0x80 with carry set, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
}

func TestExtendedRotate_SetsZero(t *testing.T) {
	c := newTestCPU()
	c.B = 0x00
	run(t, c, 0xCB, 0x00) // RLC B
	if !c.isFlagSet(flagZero) {
		t.Error("expected zero flag from a zero result")
	}

	c.C = 0x80
	run(t, c, 0xCB, 0x01) // RLC C
	if c.C != 0x01 || !c.isFlagSet(flagCarry) {
		t.Errorf("expected C=0x01 with carry set, got C=0x%02X F=0x%02X", c.C, c.F)
	}

	// carry is still set from the RLC above; RR rotates it into bit 7
	c.D = 0x01
	run(t, c, 0xCB, 0x1A) // RR D
	if c.D != 0x80 || !c.isFlagSet(flagCarry) {
		t.Errorf("expected D=0x80 with carry set, got D=0x%02X F=0x%02X", c.D, c.F)
	}
}

func TestShift_SLA(t *testing.T) {
	c := newTestCPU()
	c.E = 0x81
	run(t, c, 0xCB, 0x23) // SLA E
	if c.E != 0x02 || !c.isFlagSet(flagCarry) {
		t.Errorf("expected E=0x02 with carry set, got E=0x%02X F=0x%02X", c.E, c.F)
	}
}

func TestShift_SRAPreservesSign(t *testing.T) {
	c := newTestCPU()
	c.H = 0x81
	run(t, c, 0xCB, 0x2C) // SRA H
	if c.H != 0xC0 {
		t.Errorf("expected bit 7 to be preserved, got 0x%02X", c.H)
	}
	if !c.isFlagSet(flagCarry) {
		t.Error("expected bit 0 to land in carry")
	}
}

func TestShift_SRLClearsHighBit(t *testing.T) {
	c := newTestCPU()
	c.L = 0x81
	run(t, c, 0xCB, 0x3D) // SRL L
	if c.L != 0x40 || !c.isFlagSet(flagCarry) {
		t.Errorf("expected L=0x40 with carry set, got L=0x%02X F=0x%02X", c.L, c.F)
	}
}

func TestSwap(t *testing.T) {
	c := newTestCPU()
	c.A = 0xF1
	c.F = flagCarry
	run(t, c, 0xCB, 0x37) // SWAP A
	if c.A != 0x1F {
		t.Errorf("expected A to be 0x1F, got 0x%02X", c.A)
	}
	if c.F != 0 {
		t.Errorf("expected SWAP to reset every flag, got F=0x%02X", c.F)
	}

	c.A = 0x00
	run(t, c, 0xCB, 0x37)
	if c.F != flagZero {
		t.Errorf("expected only the zero flag, got F=0x%02X", c.F)
	}
}

func TestExtended_MemoryTarget(t *testing.T) {
	c := newTestCPU()
	c.HL.SetUint16(0x2345)
	c.b.Write(0x2345, 0x80)
	run(t, c, 0xCB, 0x06) // RLC (HL)
	if got := c.b.Read(0x2345); got != 0x01 {
		t.Errorf("expected memory at 0x2345 to be 0x01, got 0x%02X", got)
	}
}
