// Package mmu provides the flat memory bus for the emulation core. The
// bus is unaware of the components behind it, and delegates the video
// RAM window through the IOBus interface so that tile decoding sees
// every write.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// AddressSpaceSize is the size of the full 16-bit address space.
	AddressSpaceSize = 0x10000

	// VRAMBegin is the first address of the video RAM window.
	VRAMBegin uint16 = 0x8000
	// VRAMEnd is the last address of the video RAM window.
	VRAMEnd uint16 = 0x9FFF
)

// IOBus is the interface that the Bus uses to communicate with the
// components that own a window of the address space. Addresses are
// relative to the start of the window.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Bus is the memory bus for the emulation core. It handles all memory
// reads and writes to the 64kB address space. Word accesses are
// little-endian, and the partner byte of a word access wraps around
// the top of the address space rather than faulting.
type Bus struct {
	// 64kB address space
	raw [AddressSpaceSize]uint8

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	video IOBus

	log log.Logger
}

// NewBus returns a new Bus. Reads and writes inside the video RAM
// window are routed to the given IOBus.
func NewBus(video IOBus, l log.Logger) *Bus {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Bus{
		video: video,
		log:   l,
	}
}

// SetLogger replaces the logger used by the bus.
func (b *Bus) SetLogger(l log.Logger) {
	b.log = l
}

// Read returns the value at the given address.
func (b *Bus) Read(address uint16) uint8 {
	if address >= VRAMBegin && address <= VRAMEnd {
		return b.video.Read(address - VRAMBegin)
	}
	return b.raw[address]
}

// Write writes the value to the given address.
func (b *Bus) Write(address uint16, value uint8) {
	if address >= VRAMBegin && address <= VRAMEnd {
		b.video.Write(address-VRAMBegin, value)
		return
	}
	b.raw[address] = value
}

// ReadWord returns the little-endian word at the given address. The
// high byte is read from address+1, wrapping around the address space.
func (b *Bus) ReadWord(address uint16) uint16 {
	return uint16(b.Read(address)) | uint16(b.Read(address+1))<<8
}

// WriteWord writes the given word to the given address, low byte
// first. The high byte lands at address+1, wrapping around the
// address space.
func (b *Bus) WriteWord(address uint16, value uint16) {
	b.Write(address, uint8(value&0xFF))
	b.Write(address+1, uint8(value>>8))
}

// CopyFrom writes the given data to the bus starting at the given
// address. This is the entry point for an external loader; data flows
// through Write so that stores into the video RAM window decode tiles.
func (b *Bus) CopyFrom(address uint16, data []byte) {
	for i, v := range data {
		b.Write(address+uint16(i), v)
	}
	b.log.Debugf("loaded %d bytes at %04X", len(data), address)
}

var _ types.Stater = (*Bus)(nil)

// Save writes the raw contents of the bus to the given state. The
// video RAM window is owned by its component and saved there.
func (b *Bus) Save(s *types.State) {
	s.WriteData(b.raw[:])
}

// Load restores the raw contents of the bus from the given state.
func (b *Bus) Load(s *types.State) {
	s.ReadData(b.raw[:])
}
