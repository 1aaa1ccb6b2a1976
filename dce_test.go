package guidgen

import (
	"errors"
	"testing"
	"time"
)

type fixedLocalIDs struct {
	uid, gid uint32
	err      error
}

func (f fixedLocalIDs) UserID() (uint32, error)  { return f.uid, f.err }
func (f fixedLocalIDs) GroupID() (uint32, error) { return f.gid, f.err }

func TestNewV2Org_FieldPlacement(t *testing.T) {
	now := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := NewGenerator(WithClock(newManualClock(now)), WithNodeID(testNode))

	uuid, err := gen.NewV2Org(0x12345678)
	if err != nil {
		t.Fatalf("NewV2Org() error = %v", err)
	}

	if got := uuid[0:4]; got[0] != 0x12 || got[1] != 0x34 || got[2] != 0x56 || got[3] != 0x78 {
		t.Errorf("time_low bytes = %x, want 12345678", got)
	}
	if uuid[9] != byte(DomainOrg) {
		t.Errorf("clock_seq_low = %#x, want %#x", uuid[9], byte(DomainOrg))
	}
	if uuid.Version() != VersionDCESecurity {
		t.Errorf("version = %v, want %v", uuid.Version(), VersionDCESecurity)
	}
	if uuid.Variant() != VariantRFC4122 {
		t.Errorf("variant = %v, want %v", uuid.Variant(), VariantRFC4122)
	}
	if uuid.LocalID() != 0x12345678 || uuid.Domain() != DomainOrg {
		t.Errorf("LocalID() = %#x Domain() = %v", uuid.LocalID(), uuid.Domain())
	}
	if uuid.NodeID() != testNode {
		t.Errorf("NodeID() = %x, want %x", uuid.NodeID(), testNode)
	}
	// time_mid and time_hi survive.
	if got, want := uuid.Ticks(), gregorianTicks(now)&^0xffffffff; got != want {
		t.Errorf("Ticks() = %#x, want %#x", got, want)
	}
	if seq := uuid.ClockSequence(); seq < 0 || seq > 0x3f {
		t.Errorf("ClockSequence() = %d, want 6 bits", seq)
	}
}

func TestNewV2Org_SixtyFourPerWindow(t *testing.T) {
	gen := NewGenerator(WithClock(newManualClock(time.Now())), WithNodeID(testNode))

	seen := make(map[UUID]int, 64)
	var first UUID
	for i := 0; i < 64; i++ {
		uuid := Must(gen.NewV2Org(0x12345678))
		if i == 0 {
			first = uuid
		}
		if j, ok := seen[uuid]; ok {
			t.Fatalf("call %d repeated call %d: %v", i, j, uuid)
		}
		seen[uuid] = i
	}

	// The 6-bit sequence wraps and time_low holds the local ID.
	if again := Must(gen.NewV2Org(0x12345678)); again != first {
		t.Errorf("call 64 = %v, want a repeat of call 0 %v", again, first)
	}
}

func TestNewV2_LocalIDSource(t *testing.T) {
	gen := NewGenerator(WithNodeID(testNode), WithLocalIDSource(fixedLocalIDs{uid: 501, gid: 20}))

	tests := []struct {
		domain Domain
		want   uint32
	}{
		{DomainPerson, 501},
		{DomainGroup, 20},
	}
	for _, tt := range tests {
		t.Run(tt.domain.String(), func(t *testing.T) {
			uuid, err := gen.NewV2(tt.domain)
			if err != nil {
				t.Fatalf("NewV2(%v) error = %v", tt.domain, err)
			}
			if uuid.LocalID() != tt.want {
				t.Errorf("LocalID() = %d, want %d", uuid.LocalID(), tt.want)
			}
			if uuid.Domain() != tt.domain {
				t.Errorf("Domain() = %v, want %v", uuid.Domain(), tt.domain)
			}
		})
	}
}

func TestNewV2_MissingLocalID(t *testing.T) {
	gen := NewGenerator(WithNodeID(testNode))

	for _, domain := range []Domain{DomainOrg, Domain(9)} {
		uuid, err := gen.NewV2(domain)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewV2(%v) error = %v, want ErrInvalidArgument", domain, err)
		}
		if !uuid.IsNil() {
			t.Errorf("NewV2(%v) = %v, want Nil", domain, uuid)
		}
	}

	unavailable := errors.New("no uid")
	gen = NewGenerator(WithNodeID(testNode), WithLocalIDSource(fixedLocalIDs{err: unavailable}))
	_, err := gen.NewV2(DomainPerson)
	if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, unavailable) {
		t.Errorf("NewV2(Person) error = %v, want ErrInvalidArgument wrapping the cause", err)
	}
}

func TestNewV2Other(t *testing.T) {
	gen := NewGenerator(WithNodeID(testNode))
	uuid, err := gen.NewV2Other(Domain(7), 42)
	if err != nil {
		t.Fatalf("NewV2Other() error = %v", err)
	}
	if uuid.Domain() != Domain(7) || uuid.LocalID() != 42 {
		t.Errorf("Domain() = %v LocalID() = %d", uuid.Domain(), uuid.LocalID())
	}
	if got := Domain(7).String(); got != "Domain7" {
		t.Errorf("Domain(7).String() = %q", got)
	}
}

func TestNewV2_EntropyFailure(t *testing.T) {
	gen := NewGenerator(WithRandReader(&brokenReader{}), WithNodeID(testNode))
	if _, err := gen.NewV2Org(1); !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("NewV2Org() error = %v, want ErrEntropyUnavailable", err)
	}
}
