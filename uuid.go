package guidgen

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
//
// The 16 bytes are always kept in network (big-endian) field order, which is
// the order used by the text form and by byte-wise comparison. The Microsoft
// GUID memory layout is only produced by GUIDBytes.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	VersionNil Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReorderedTime // UUIDv6
	VersionTimeSorted    // UUIDv7
	VersionCustom        // UUIDv8
)

// String returns the conventional name of the version.
func (v Version) String() string {
	switch v {
	case VersionNil:
		return "nil"
	case VersionTimeBased:
		return "time-based"
	case VersionDCESecurity:
		return "dce-security"
	case VersionNameBasedMD5:
		return "name-based-md5"
	case VersionRandom:
		return "random"
	case VersionNameBasedSHA1:
		return "name-based-sha1"
	case VersionReorderedTime:
		return "reordered-time"
	case VersionTimeSorted:
		return "unix-time"
	case VersionCustom:
		return "custom"
	default:
		return fmt.Sprintf("version(%d)", byte(v))
	}
}

// IsTimeBased reports whether UUIDs of this version embed the generation time.
func (v Version) IsTimeBased() bool {
	switch v {
	case VersionTimeBased, VersionDCESecurity, VersionReorderedTime, VersionTimeSorted:
		return true
	}
	return false
}

// IsNameBased reports whether UUIDs of this version are derived from a namespace and a name.
// Version 8 is excluded since its payload is application defined.
func (v Version) IsNameBased() bool {
	return v == VersionNameBasedMD5 || v == VersionNameBasedSHA1
}

// IsRandomized reports whether UUIDs of this version carry mostly random bits.
func (v Version) IsRandomized() bool {
	return v == VersionRandom || v == VersionTimeSorted
}

// IsCustom reports whether the version is reserved for custom layouts.
func (v Version) IsCustom() bool {
	return v == VersionCustom
}

// HasClockSequence reports whether UUIDs of this version carry a clock sequence.
func (v Version) HasClockSequence() bool {
	return v == VersionTimeBased || v == VersionDCESecurity || v == VersionReorderedTime
}

// HasNodeID reports whether UUIDs of this version carry a node ID.
func (v Version) HasNodeID() bool {
	return v.HasClockSequence()
}

// HasLocalID reports whether UUIDs of this version carry a DCE local ID.
func (v Version) HasLocalID() bool {
	return v == VersionDCESecurity
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture

	// VariantNone tells Assemble to leave the variant bits as they are.
	// UUID.Variant never returns it.
	VariantNone Variant = 0xff
)

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	case VariantNone:
		return "None"
	default:
		return fmt.Sprintf("variant(%d)", byte(v))
	}
}

// Nil is the nil UUID (all zeros)
var Nil UUID

// Max is the max UUID (all ones) defined by RFC 9562.
var Max = UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	var uuid UUID

	if len(s) == 45 && strings.EqualFold(s[:9], urnPrefix) {
		s = s[9:]
	} else if len(s) == 38 && s[0] == '{' && s[37] == '}' {
		s = s[1:37]
	}

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return uuid, ErrInvalidFormat
		}
		segments := [...]struct{ dst, src [2]int }{
			{[2]int{0, 4}, [2]int{0, 8}},
			{[2]int{4, 6}, [2]int{9, 13}},
			{[2]int{6, 8}, [2]int{14, 18}},
			{[2]int{8, 10}, [2]int{19, 23}},
			{[2]int{10, 16}, [2]int{24, 36}},
		}
		for _, seg := range segments {
			if err := decodeHexSegment(uuid[seg.dst[0]:seg.dst[1]], s[seg.src[0]:seg.src[1]]); err != nil {
				return uuid, err
			}
		}
		return uuid, nil
	case 32:
		if err := decodeHexSegment(uuid[:], s); err != nil {
			return uuid, err
		}
		return uuid, nil
	}

	return uuid, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guidgen: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guidgen: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
