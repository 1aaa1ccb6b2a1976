package guidgen

import "encoding/binary"

// nodeMode selects what fills the low 64 bits of a Gregorian time-based UUID.
type nodeMode int

const (
	// nodeStable uses the generator's node identity.
	nodeStable nodeMode = iota
	// nodeRandom draws a new multicast node for every call.
	nodeRandom
	// nodePadded fills clock sequence and node with random bits.
	nodePadded
)

// gregorianTime carries the time-dependent parts of a version 1, 2 or 6 UUID.
type gregorianTime struct {
	tick int64
	seq  uint16
	// tail holds bytes 8 through 15: the node for nodeStable and nodeRandom,
	// everything for nodePadded.
	tail [8]byte
}

// nextGregorian gathers entropy and the node before touching the clock state,
// so a failing collaborator leaves the state as it was.
func (g *Generator) nextGregorian(op string, mode nodeMode) (gregorianTime, error) {
	var gt gregorianTime
	var entropy [10]byte
	if err := g.read(op, entropy[:]); err != nil {
		return gt, err
	}

	switch mode {
	case nodeStable:
		node, err := g.node.get(g.rand)
		if err != nil {
			return gt, newError(op, ErrEntropyUnavailable, err)
		}
		copy(gt.tail[2:], node[:])
	case nodeRandom:
		copy(gt.tail[2:], entropy[4:10])
		gt.tail[2] |= 0x01
	case nodePadded:
		copy(gt.tail[:], entropy[2:10])
		gt.tail[2] |= 0x01
	}

	tick, seq, err := g.gregorian.advance(g.clock, binary.BigEndian.Uint16(entropy[0:2]))
	if err != nil {
		return gt, newError(op, ErrClockUnavailable, err)
	}
	gt.tick, gt.seq = tick, seq
	return gt, nil
}

// timeBased builds a version 1 or 6 UUID.
func (g *Generator) timeBased(op string, version Version, mode nodeMode) (UUID, error) {
	gt, err := g.nextGregorian(op, mode)
	if err != nil {
		return Nil, err
	}

	var u UUID
	if version == VersionReorderedTime {
		putTicksV6(&u, gt.tick)
	} else {
		putTicksV1(&u, gt.tick)
	}
	copy(u[8:], gt.tail[:])
	if mode != nodePadded {
		putClockSeq(&u, gt.seq)
	}
	return Assemble(u, version, VariantRFC4122), nil
}

// NewV1 generates a version 1 UUID from the current time, the clock sequence
// and the node ID.
func (g *Generator) NewV1() (UUID, error) {
	return g.timeBased("NewV1", VersionTimeBased, nodeStable)
}

// NewV1R generates a version 1 UUID whose node is a fresh random multicast
// value, so no hardware address leaks into the identifier.
func (g *Generator) NewV1R() (UUID, error) {
	return g.timeBased("NewV1R", VersionTimeBased, nodeRandom)
}

// NewV6 generates a version 6 UUID: the version 1 timestamp stored most
// significant bits first, so byte order follows creation time. Clock sequence
// and node are random bits drawn per call, with the multicast bit set.
func (g *Generator) NewV6() (UUID, error) {
	if !revisionEnabled {
		return Nil, newError("NewV6", ErrUnsupportedScheme, nil)
	}
	return g.timeBased("NewV6", VersionReorderedTime, nodePadded)
}

// NewV6P generates a version 6 UUID carrying the clock sequence and the
// generator's node ID, usually the physical hardware address.
func (g *Generator) NewV6P() (UUID, error) {
	if !revisionEnabled {
		return Nil, newError("NewV6P", ErrUnsupportedScheme, nil)
	}
	return g.timeBased("NewV6P", VersionReorderedTime, nodeStable)
}

// NewV6R generates a version 6 UUID with a fresh random multicast node.
func (g *Generator) NewV6R() (UUID, error) {
	if !revisionEnabled {
		return Nil, newError("NewV6R", ErrUnsupportedScheme, nil)
	}
	return g.timeBased("NewV6R", VersionReorderedTime, nodeRandom)
}
