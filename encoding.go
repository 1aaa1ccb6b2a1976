package guidgen

import (
	"encoding/base64"
	"encoding/hex"
)

const urnPrefix = "urn:uuid:"

// URN returns the RFC 9562 URN form, urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) URN() string {
	var buf [45]byte
	copy(buf[:], urnPrefix)
	encodeHex(buf[len(urnPrefix):], u)
	return string(buf[:])
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes a 32-digit hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 32 {
		return Nil, ErrInvalidLength
	}
	if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return uuid, nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}

// FromBytes creates a UUID from a 16-byte slice in network byte order.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return Nil, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// GUIDBytes returns the Microsoft GUID memory layout of u, in which
// time_low, time_mid and time_hi_and_version are little-endian.
func (u UUID) GUIDBytes() [16]byte {
	b := [16]byte(u)
	swapGUIDFields(&b)
	return b
}

// FromGUIDBytes reads a UUID from the Microsoft GUID memory layout.
func FromGUIDBytes(b []byte) (UUID, error) {
	u, err := FromBytes(b)
	if err != nil {
		return Nil, err
	}
	swapGUIDFields((*[16]byte)(&u))
	return u, nil
}

func swapGUIDFields(b *[16]byte) {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
}
