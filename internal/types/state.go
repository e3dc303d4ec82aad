package types

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// State is a byte stream used to save and load machine state between
// runs. Snapshots are taken between engine steps, never mid-instruction.
type State struct {
	raw           []byte // raw state data (for serialization)
	readPosition  int    // current read position
	writePosition int    // current write position
}

// Stater is an interface that allows an object to be saved and loaded
// from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a state from the given bytes, as produced by
// Bytes. The trailing checksum is verified and stripped; a stream that
// fails verification is rejected.
func StateFromBytes(raw []byte) (*State, error) {
	if len(raw) < 8 {
		return nil, fmt.Errorf("state too short: %d bytes", len(raw))
	}
	data, trailer := raw[:len(raw)-8], raw[len(raw)-8:]

	var sum uint64
	for i := 0; i < 8; i++ {
		sum |= uint64(trailer[i]) << (i * 8)
	}
	if xxhash.Sum64(data) != sum {
		return nil, fmt.Errorf("state checksum mismatch")
	}

	return &State{raw: data}, nil
}

// Bytes returns the serialized state with an xxhash checksum appended,
// suitable for StateFromBytes.
func (s *State) Bytes() []byte {
	sum := xxhash.Sum64(s.raw)
	out := make([]byte, len(s.raw), len(s.raw)+8)
	copy(out, s.raw)
	for i := 0; i < 8; i++ {
		out = append(out, byte(sum>>(i*8)))
	}
	return out
}

// ResetPosition resets the read and write positions, allowing the
// state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.writePosition = 0
}

// Remaining returns the number of unread bytes in the stream.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

// take returns the next n bytes of the stream. When fewer than n
// remain it consumes the rest and returns nil, so that reading past
// the end of a stream yields zero values rather than faulting.
func (s *State) take(n int) []byte {
	if s.readPosition+n > len(s.raw) {
		s.readPosition = len(s.raw)
		return nil
	}
	chunk := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return chunk
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
	s.writePosition++
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
	s.writePosition += 2
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
	s.writePosition++
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
	s.writePosition += len(data)
}

func (s *State) Read8() uint8 {
	chunk := s.take(1)
	if chunk == nil {
		return 0
	}
	return chunk[0]
}

func (s *State) Read16() uint16 {
	chunk := s.take(2)
	if chunk == nil {
		return 0
	}
	return uint16(chunk[0]) | uint16(chunk[1])<<8
}

func (s *State) ReadBool() bool {
	chunk := s.take(1)
	return chunk != nil && chunk[0] != 0
}

func (s *State) ReadData(data []byte) {
	copy(data, s.take(len(data)))
}
