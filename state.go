package guidgen

import (
	"encoding/binary"
	"fmt"
)

// State is the part of a Generator worth keeping across process restarts:
// the last issued ticks and sequences, and the node when it is random.
// Zero LastTicks or LastMillis means that clock state was never used.
type State struct {
	LastTicks  int64
	ClockSeq   uint16
	LastMillis int64
	Counter    uint16
	Node       [6]byte
	HasNode    bool
}

// StateStore persists generator state. LoadState returns ErrStateNotFound
// when nothing was saved yet.
type StateStore interface {
	LoadState() (State, error)
	SaveState(State) error
}

const (
	stateFormatV1 = 1
	stateSize     = 1 + 1 + 8 + 2 + 8 + 2 + 6
	stateHasNode  = 1 << 0
)

// MarshalBinary implements encoding.BinaryMarshaler. The layout is a format
// byte, a flags byte, then every field big-endian.
func (s State) MarshalBinary() ([]byte, error) {
	b := make([]byte, stateSize)
	b[0] = stateFormatV1
	if s.HasNode {
		b[1] |= stateHasNode
	}
	binary.BigEndian.PutUint64(b[2:10], uint64(s.LastTicks))
	binary.BigEndian.PutUint16(b[10:12], s.ClockSeq)
	binary.BigEndian.PutUint64(b[12:20], uint64(s.LastMillis))
	binary.BigEndian.PutUint16(b[20:22], s.Counter)
	copy(b[22:28], s.Node[:])
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return ErrInvalidLength
	}
	if b[0] != stateFormatV1 {
		return fmt.Errorf("guidgen: unknown state format %d", b[0])
	}
	if len(b) != stateSize {
		return ErrInvalidLength
	}
	*s = State{
		HasNode:    b[1]&stateHasNode != 0,
		LastTicks:  int64(binary.BigEndian.Uint64(b[2:10])),
		ClockSeq:   binary.BigEndian.Uint16(b[10:12]),
		LastMillis: int64(binary.BigEndian.Uint64(b[12:20])),
		Counter:    binary.BigEndian.Uint16(b[20:22]),
	}
	copy(s.Node[:], b[22:28])
	return nil
}
