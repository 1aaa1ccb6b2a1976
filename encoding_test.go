package guidgen

import (
	"errors"
	"testing"
)

func TestEncodings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"hex", sampleUUID.EncodeToHex(), "f47ac10b58cc4372a5670e02b2c3d479"},
		{"base64", sampleUUID.EncodeToBase64(), "9HrBC1jMQ3KlZw4CssPUeQ"},
		{"urn", sampleUUID.URN(), "urn:uuid:" + sampleText},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestDecodeFromHex(t *testing.T) {
	uuid, err := DecodeFromHex("f47ac10b58cc4372a5670e02b2c3d479")
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if uuid != sampleUUID {
		t.Errorf("DecodeFromHex() = %v, want %v", uuid, sampleUUID)
	}

	if _, err := DecodeFromHex("f47ac10b"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short hex error = %v, want ErrInvalidLength", err)
	}
	if _, err := DecodeFromHex("z47ac10b58cc4372a5670e02b2c3d479"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad hex error = %v, want ErrInvalidFormat", err)
	}
}

func TestDecodeFromBase64(t *testing.T) {
	uuid, err := DecodeFromBase64(sampleUUID.EncodeToBase64())
	if err != nil {
		t.Fatalf("DecodeFromBase64() error = %v", err)
	}
	if uuid != sampleUUID {
		t.Errorf("DecodeFromBase64() = %v, want %v", uuid, sampleUUID)
	}

	if _, err := DecodeFromBase64("!!!"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad base64 error = %v, want ErrInvalidFormat", err)
	}
	if _, err := DecodeFromBase64("AQID"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short base64 error = %v, want ErrInvalidLength", err)
	}
}

func TestFromBytes(t *testing.T) {
	uuid, err := FromBytes(sampleUUID[:])
	if err != nil || uuid != sampleUUID {
		t.Errorf("FromBytes() = %v, %v", uuid, err)
	}
	for _, n := range []int{0, 15, 17} {
		if _, err := FromBytes(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FromBytes(%d bytes) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestGUIDBytes(t *testing.T) {
	want := [16]byte{
		0x0b, 0xc1, 0x7a, 0xf4, // time_low reversed
		0xcc, 0x58, // time_mid reversed
		0x72, 0x43, // time_hi_and_version reversed
		0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79,
	}
	got := sampleUUID.GUIDBytes()
	if got != want {
		t.Errorf("GUIDBytes() = %x, want %x", got, want)
	}

	back, err := FromGUIDBytes(got[:])
	if err != nil {
		t.Fatalf("FromGUIDBytes() error = %v", err)
	}
	if back != sampleUUID {
		t.Errorf("FromGUIDBytes() = %v, want %v", back, sampleUUID)
	}
	if _, err := FromGUIDBytes(got[:8]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromGUIDBytes(8 bytes) error = %v, want ErrInvalidLength", err)
	}
	// The receiver is left alone.
	if sampleUUID.String() != sampleText {
		t.Error("GUIDBytes() modified its receiver")
	}
}

func TestEncodingRoundTrips(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 100; i++ {
		uuid := Must(gen.NewV4())

		if got, err := Parse(uuid.String()); err != nil || got != uuid {
			t.Errorf("String round-trip failed: %v, %v", got, err)
		}
		if got, err := Parse(uuid.URN()); err != nil || got != uuid {
			t.Errorf("URN round-trip failed: %v, %v", got, err)
		}
		if got, err := DecodeFromHex(uuid.EncodeToHex()); err != nil || got != uuid {
			t.Errorf("Hex round-trip failed: %v, %v", got, err)
		}
		if got, err := DecodeFromBase64(uuid.EncodeToBase64()); err != nil || got != uuid {
			t.Errorf("Base64 round-trip failed: %v, %v", got, err)
		}
		guid := uuid.GUIDBytes()
		if got, err := FromGUIDBytes(guid[:]); err != nil || got != uuid {
			t.Errorf("GUID round-trip failed: %v, %v", got, err)
		}
	}
}
