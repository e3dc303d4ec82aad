// Package cpu implements the LR35902 instruction core: a two-table
// opcode decoder and the execution engine that consumes its decoded
// instructions.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// CPU represents the processor core. It owns the register file and
// drives the memory bus; it is the only writer of both.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Debug emits a disassembly trace of every executed instruction.
	Debug bool

	b   *mmu.Bus
	log log.Logger
}

// NewCPU creates a new CPU instance with the given bus. The bus is
// used to read and write to the memory.
func NewCPU(b *mmu.Bus, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &CPU{
		b:   b,
		log: l,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C, lowMask: 0xFF}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E, lowMask: 0xFF}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L, lowMask: 0xFF}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F, lowMask: 0xF0}
	return c
}

// SetLogger replaces the logger used for the instruction trace.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// Step fetches, decodes and executes a single instruction, storing
// back the next program counter. When decoding fails the typed error
// is returned and the machine state is left exactly as it was before
// the attempted fetch.
func (c *CPU) Step() error {
	opcode := c.b.Read(c.PC)
	extended := opcode == PrefixCB
	if extended {
		opcode = c.b.Read(c.PC + 1)
	}

	instr, err := Decode(opcode, extended)
	if err != nil {
		return err
	}
	if c.Debug {
		c.log.Debugf("%04X  %s", c.PC, instr)
	}

	nextPC, err := c.execute(instr)
	if err != nil {
		return err
	}
	c.PC = nextPC
	return nil
}

// readImm8 reads the byte operand following the opcode.
func (c *CPU) readImm8() uint8 {
	return c.b.Read(c.PC + 1)
}

// readImm16 reads the word operand following the opcode.
func (c *CPU) readImm16() uint16 {
	return c.b.ReadWord(c.PC + 1)
}

// push decrements the stack pointer by 2, then writes the given word
// at the new pointer.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.b.WriteWord(c.SP, value)
}

// pop reads the word at the stack pointer, then increments the
// pointer by 2.
func (c *CPU) pop() uint16 {
	value := c.b.ReadWord(c.SP)
	c.SP += 2
	return value
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
}
