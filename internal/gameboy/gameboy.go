// Package gameboy wires the instruction core together: the memory
// bus, the video RAM tile cache and the CPU, as one aggregate with a
// single-step execution surface.
package gameboy

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// GameBoy represents the emulated machine. It contains all the
// mutable state of the core; the CPU is its only writer. Execution is
// single-threaded and synchronous: one full instruction completes
// before the next begins, and a renderer consuming the tile cache
// must read between steps, never concurrently with one.
type GameBoy struct {
	CPU *cpu.CPU
	Bus *mmu.Bus
	PPU *ppu.PPU

	log.Logger
}

// NewGameBoy returns a new GameBoy with the register file holding the
// architecture-defined post-boot values.
func NewGameBoy(opts ...Opt) *GameBoy {
	p := ppu.New()
	logger := log.New()
	b := mmu.NewBus(p, logger)

	g := &GameBoy{
		CPU:    cpu.NewCPU(b, logger),
		Bus:    b,
		PPU:    p,
		Logger: logger,
	}
	g.Reset()

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Reset restores the register file to the DMG post-boot values.
func (g *GameBoy) Reset() {
	g.CPU.A = 0x01
	g.CPU.F = 0xB0
	g.CPU.B = 0x00
	g.CPU.C = 0x13
	g.CPU.D = 0x00
	g.CPU.E = 0xD8
	g.CPU.H = 0x01
	g.CPU.L = 0x4D
	g.CPU.SP = 0xFFFE
	g.CPU.PC = 0x0100
}

// Step advances the machine by exactly one instruction. A decode
// failure is logged and returned with the machine left untouched; the
// caller decides whether to halt, skip or report.
func (g *GameBoy) Step() error {
	if err := g.CPU.Step(); err != nil {
		g.Errorf("step failed at %04X: %v", g.CPU.PC, err)
		return err
	}
	return nil
}

// saveSize is the exact payload produced by Save: the CPU register
// file and its two pointers, the raw bus and the raw VRAM.
const saveSize = 12 + mmu.AddressSpaceSize + ppu.VRAMSize

// Save serializes the machine state, to be taken between steps.
func (g *GameBoy) Save() []byte {
	s := types.NewState()
	g.CPU.Save(s)
	g.Bus.Save(s)
	g.PPU.Save(s)
	return s.Bytes()
}

// Load restores machine state produced by Save. A corrupt or
// truncated byte stream is rejected and the machine is left
// unmodified.
func (g *GameBoy) Load(raw []byte) error {
	s, err := types.StateFromBytes(raw)
	if err != nil {
		return err
	}
	if s.Remaining() != saveSize {
		return fmt.Errorf("state payload is %d bytes, want %d", s.Remaining(), saveSize)
	}
	g.CPU.Load(s)
	g.Bus.Load(s)
	g.PPU.Load(s)
	return nil
}
