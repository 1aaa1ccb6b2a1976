package guidgen

import (
	"encoding/binary"
)

// NewV7 generates a version 7 UUID: 48 bits of Unix milliseconds, a 12-bit
// counter and 62 random bits. The counter keeps UUIDs from the same generator
// ordered within a millisecond; when it runs out the timestamp is advanced
// by one millisecond instead.
func (g *Generator) NewV7() (UUID, error) {
	const op = "NewV7"
	if !revisionEnabled {
		return Nil, newError(op, ErrUnsupportedScheme, nil)
	}

	/*
	 *The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
	 *random data, such as from a cryptographically secure random number generator.
	 */
	var entropy [10]byte
	if err := g.read(op, entropy[:]); err != nil {
		return Nil, err
	}

	ms, counter, err := g.unix.advance(g.clock, binary.BigEndian.Uint16(entropy[0:2]))
	if err != nil {
		return Nil, newError(op, ErrClockUnavailable, err)
	}

	var u UUID
	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(u[0:8], uint64(ms)<<16)
	// rand_a (12 bits) - bytes 6-7, version nibble added by Assemble
	u[6] = byte(counter >> 8)
	u[7] = byte(counter)
	copy(u[8:], entropy[2:])
	return Assemble(u, VersionTimeSorted, VariantRFC4122), nil
}

// New generates a version 7 UUID.
func (g *Generator) New() (UUID, error) {
	return g.NewV7()
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Counter returns the 12-bit rand_a field of a UUIDv7, which this package
// fills with its monotonic counter. It returns -1 for other versions.
func (u UUID) Counter() int {
	if u.Version() != VersionTimeSorted {
		return -1
	}
	return int(u[6]&0x0f)<<8 | int(u[7])
}
