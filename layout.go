package guidgen

import (
	"encoding/binary"
	"time"
)

// gregorianOffset is the number of 100-ns intervals between the Gregorian
// reform (1582-10-15) and the Unix epoch.
const gregorianOffset = 122192928000000000

// Fields is the RFC 4122 field view of a UUID. All multi-byte fields are in
// host integer form; their wire representation is big-endian.
type Fields struct {
	TimeLow              uint32
	TimeMid              uint16
	TimeHiAndVersion     uint16
	ClockSeqHiAndVariant uint8
	ClockSeqLow          uint8
	Node                 [6]byte
}

// Assemble stamps version and variant onto 16 bytes laid out in network order.
// Version goes into the high nibble of byte 6 and the variant pattern into the
// top bits of byte 8; every other bit is kept. VariantNone leaves byte 8 as is.
func Assemble(b [16]byte, version Version, variant Variant) UUID {
	u := UUID(b)
	u[6] = (u[6] & 0x0f) | byte(version)<<4
	switch variant {
	case VariantNCS:
		u[8] &= 0x7f
	case VariantRFC4122:
		u[8] = (u[8] & 0x3f) | 0x80
	case VariantMicrosoft:
		u[8] = (u[8] & 0x1f) | 0xc0
	case VariantFuture:
		u[8] = (u[8] & 0x1f) | 0xe0
	}
	return u
}

// Fields decomposes the UUID into its RFC 4122 fields.
func (u UUID) Fields() Fields {
	f := Fields{
		TimeLow:              binary.BigEndian.Uint32(u[0:4]),
		TimeMid:              binary.BigEndian.Uint16(u[4:6]),
		TimeHiAndVersion:     binary.BigEndian.Uint16(u[6:8]),
		ClockSeqHiAndVariant: u[8],
		ClockSeqLow:          u[9],
	}
	copy(f.Node[:], u[10:16])
	return f
}

// FromFields is the inverse of UUID.Fields.
func FromFields(f Fields) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], f.TimeLow)
	binary.BigEndian.PutUint16(u[4:6], f.TimeMid)
	binary.BigEndian.PutUint16(u[6:8], f.TimeHiAndVersion)
	u[8] = f.ClockSeqHiAndVariant
	u[9] = f.ClockSeqLow
	copy(u[10:16], f.Node[:])
	return u
}

// putTicksV1 writes the 60-bit tick count in the legacy time_low, time_mid,
// time_hi order used by versions 1 and 2.
func putTicksV1(u *UUID, ticks int64) {
	t := uint64(ticks)
	binary.BigEndian.PutUint32(u[0:4], uint32(t))
	binary.BigEndian.PutUint16(u[4:6], uint16(t>>32))
	binary.BigEndian.PutUint16(u[6:8], uint16(t>>48)&0x0fff)
}

// putTicksV6 writes the 60-bit tick count most significant bits first so that
// byte order equals time order.
func putTicksV6(u *UUID, ticks int64) {
	t := uint64(ticks)
	binary.BigEndian.PutUint32(u[0:4], uint32(t>>28))
	binary.BigEndian.PutUint16(u[4:6], uint16(t>>12))
	binary.BigEndian.PutUint16(u[6:8], uint16(t)&0x0fff)
}

// putClockSeq writes a 14-bit clock sequence into bytes 8 and 9.
func putClockSeq(u *UUID, seq uint16) {
	u[8] = byte(seq>>8) & 0x3f
	u[9] = byte(seq)
}

// Ticks returns the 60-bit count of 100-ns intervals since 1582-10-15 held by
// version 1 and 6 UUIDs. For version 2 the low 32 bits are replaced by the
// local ID, so only the mid and high parts are returned. Other versions yield 0.
func (u UUID) Ticks() int64 {
	switch u.Version() {
	case VersionTimeBased:
		return int64(binary.BigEndian.Uint32(u[0:4])) |
			int64(binary.BigEndian.Uint16(u[4:6]))<<32 |
			int64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48
	case VersionDCESecurity:
		return int64(binary.BigEndian.Uint16(u[4:6]))<<32 |
			int64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48
	case VersionReorderedTime:
		return int64(binary.BigEndian.Uint32(u[0:4]))<<28 |
			int64(binary.BigEndian.Uint16(u[4:6]))<<12 |
			int64(binary.BigEndian.Uint16(u[6:8])&0x0fff)
	}
	return 0
}

// Time returns the creation time embedded in a version 1, 2, 6 or 7 UUID,
// and the zero time for every other version.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeBased, VersionDCESecurity, VersionReorderedTime:
		ticks := u.Ticks() - gregorianOffset
		return time.Unix(ticks/1e7, (ticks%1e7)*100)
	case VersionTimeSorted:
		return time.UnixMilli(u.Timestamp())
	}
	return time.Time{}
}

// ClockSequence returns the 14-bit clock sequence of a version 1 or 6 UUID
// (6 bits for version 2), or -1 when the version has none.
func (u UUID) ClockSequence() int {
	switch u.Version() {
	case VersionTimeBased, VersionReorderedTime:
		return int(binary.BigEndian.Uint16(u[8:10]) & 0x3fff)
	case VersionDCESecurity:
		return int(u[8] & 0x3f)
	}
	return -1
}

// NodeID returns the 48-bit node of the UUID.
func (u UUID) NodeID() [6]byte {
	var node [6]byte
	copy(node[:], u[10:16])
	return node
}

// Domain returns the DCE security domain of a version 2 UUID.
func (u UUID) Domain() Domain {
	return Domain(u[9])
}

// LocalID returns the DCE local ID of a version 2 UUID.
func (u UUID) LocalID() uint32 {
	return binary.BigEndian.Uint32(u[0:4])
}
