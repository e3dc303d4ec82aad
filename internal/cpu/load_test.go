package cpu

import "testing"

func TestLoad_RegisterToRegister(t *testing.T) {
	c := newTestCPU()
	c.C = 0x42
	run(t, c, 0x41) // LD B, C
	if c.B != 0x42 {
		t.Errorf("expected B to be 0x42, got 0x%02X", c.B)
	}
	c.F = 0xB0
	c.H = 0x99
	run(t, c, 0x7C) // LD A, H
	if c.A != 0x99 {
		t.Errorf("expected A to be 0x99, got 0x%02X", c.A)
	}
	if c.F != 0xB0 {
		t.Errorf("expected flags untouched, got F=0x%02X", c.F)
	}
}

func TestLoad_Immediate(t *testing.T) {
	c := newTestCPU()
	run(t, c, 0x06, 0x7F) // LD B, d8
	if c.B != 0x7F {
		t.Errorf("expected B to be 0x7F, got 0x%02X", c.B)
	}
	run(t, c, 0x11, 0x34, 0x12) // LD DE, d16
	if got := c.DE.Uint16(); got != 0x1234 {
		t.Errorf("expected DE to be 0x1234, got 0x%04X", got)
	}
}

func TestLoad_IndirectPairs(t *testing.T) {
	c := newTestCPU()
	c.A = 0x5A
	c.BC.SetUint16(0x2000)
	run(t, c, 0x02) // LD (BC), A
	if got := c.b.Read(0x2000); got != 0x5A {
		t.Errorf("expected memory at 0x2000 to be 0x5A, got 0x%02X", got)
	}

	c.b.Write(0x2080, 0xA5)
	c.DE.SetUint16(0x2080)
	run(t, c, 0x1A) // LD A, (DE)
	if c.A != 0xA5 {
		t.Errorf("expected A to be 0xA5, got 0x%02X", c.A)
	}
}

func TestLoad_HLIncrementDecrement(t *testing.T) {
	c := newTestCPU()
	c.A = 0x11
	c.HL.SetUint16(0x3000)
	run(t, c, 0x22) // LD (HL+), A
	if got := c.b.Read(0x3000); got != 0x11 {
		t.Errorf("expected memory at 0x3000 to be 0x11, got 0x%02X", got)
	}
	if got := c.HL.Uint16(); got != 0x3001 {
		t.Errorf("expected HL to be 0x3001 after post-increment, got 0x%04X", got)
	}

	run(t, c, 0x32) // LD (HL-), A
	if got := c.HL.Uint16(); got != 0x3000 {
		t.Errorf("expected HL to be 0x3000 after post-decrement, got 0x%04X", got)
	}

	c.b.Write(0x3000, 0x77)
	run(t, c, 0x2A) // LD A, (HL+)
	if c.A != 0x77 {
		t.Errorf("expected A to be 0x77, got 0x%02X", c.A)
	}
	if got := c.HL.Uint16(); got != 0x3001 {
		t.Errorf("expected HL to advance past the read, got 0x%04X", got)
	}
}

func TestLoad_HighPage(t *testing.T) {
	c := newTestCPU()
	c.A = 0x3C
	run(t, c, 0xE0, 0x40) // LDH (a8), A
	if got := c.b.Read(0xFF40); got != 0x3C {
		t.Errorf("expected memory at 0xFF40 to be 0x3C, got 0x%02X", got)
	}

	c.A = 0x00
	run(t, c, 0xF0, 0x40) // LDH A, (a8)
	if c.A != 0x3C {
		t.Errorf("expected A to be 0x3C, got 0x%02X", c.A)
	}

	c.C = 0x44
	c.A = 0x91
	run(t, c, 0xE2) // LD (C), A
	if got := c.b.Read(0xFF44); got != 0x91 {
		t.Errorf("expected memory at 0xFF44 to be 0x91, got 0x%02X", got)
	}

	c.A = 0x00
	run(t, c, 0xF2) // LD A, (C)
	if c.A != 0x91 {
		t.Errorf("expected A to be 0x91, got 0x%02X", c.A)
	}
}

func TestLoad_Absolute(t *testing.T) {
	c := newTestCPU()
	c.A = 0x66
	run(t, c, 0xEA, 0x00, 0x40) // LD (a16), A
	if got := c.b.Read(0x4000); got != 0x66 {
		t.Errorf("expected memory at 0x4000 to be 0x66, got 0x%02X", got)
	}

	c.A = 0x00
	run(t, c, 0xFA, 0x00, 0x40) // LD A, (a16)
	if c.A != 0x66 {
		t.Errorf("expected A to be 0x66, got 0x%02X", c.A)
	}
}

func TestLoad_StackPointerForms(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xDFF8
	run(t, c, 0x08, 0x00, 0x20) // LD (a16), SP
	if got := c.b.ReadWord(0x2000); got != 0xDFF8 {
		t.Errorf("expected word at 0x2000 to be 0xDFF8, got 0x%04X", got)
	}

	run(t, c, 0xF8, 0x08) // LD HL, SP+r8
	if got := c.HL.Uint16(); got != 0xE000 {
		t.Errorf("expected HL to be 0xE000, got 0x%04X", got)
	}

	c.HL.SetUint16(0xC123)
	run(t, c, 0xF9) // LD SP, HL
	if c.SP != 0xC123 {
		t.Errorf("expected SP to be 0xC123, got 0x%04X", c.SP)
	}
}

func TestPushPop_RoundTrip(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFFE
	c.BC.SetUint16(0x1234)
	run(t, c, 0xC5) // PUSH BC
	if c.SP != 0xFFFC {
		t.Errorf("expected SP to be 0xFFFC, got 0x%04X", c.SP)
	}

	run(t, c, 0xD1) // POP DE
	if got := c.DE.Uint16(); got != 0x1234 {
		t.Errorf("expected DE to be 0x1234, got 0x%04X", got)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP restored to 0xFFFE, got 0x%04X", c.SP)
	}
}

func TestPopAF_ClampsLowNibble(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFFC
	c.b.WriteWord(0xFFFC, 0x12FF)
	run(t, c, 0xF1) // POP AF
	if c.A != 0x12 {
		t.Errorf("expected A to be 0x12, got 0x%02X", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("expected F low nibble cleared, got 0x%02X", c.F)
	}
	if got := c.AF.Uint16(); got != 0x12F0 {
		t.Errorf("expected AF to be 0x12F0, got 0x%04X", got)
	}
}
