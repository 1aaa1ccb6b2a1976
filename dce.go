package guidgen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// Domain is a DCE security domain, stored in the clock_seq_low byte of a
// version 2 UUID.
type Domain byte

const (
	DomainPerson Domain = 0
	DomainGroup  Domain = 1
	DomainOrg    Domain = 2
)

// String returns the domain name, or "Domain<n>" for other values.
func (d Domain) String() string {
	switch d {
	case DomainPerson:
		return "Person"
	case DomainGroup:
		return "Group"
	case DomainOrg:
		return "Org"
	default:
		return fmt.Sprintf("Domain%d", byte(d))
	}
}

// LocalIDSource resolves the local IDs used by the Person and Group domains.
type LocalIDSource interface {
	UserID() (uint32, error)
	GroupID() (uint32, error)
}

// OSLocalIDSource reports the POSIX UID and GID of the current process.
// It fails on platforms without them, such as Windows.
var OSLocalIDSource LocalIDSource = osLocalIDs{}

var errNoLocalID = errors.New("local ID not available on this platform")

type osLocalIDs struct{}

func (osLocalIDs) UserID() (uint32, error) {
	if id := os.Getuid(); id >= 0 {
		return uint32(id), nil
	}
	return 0, errNoLocalID
}

func (osLocalIDs) GroupID() (uint32, error) {
	if id := os.Getgid(); id >= 0 {
		return uint32(id), nil
	}
	return 0, errNoLocalID
}

// NewV2 generates a version 2 UUID for the Person or Group domain, taking the
// local ID from the generator's LocalIDSource. Other domains have no implied
// local ID and fail with ErrInvalidArgument; use NewV2Org or NewV2Other.
//
// Version 2 keeps only 6 bits of clock sequence and drops time_low, so at
// most 64 distinct UUIDs exist per (domain, local ID) within one time_mid
// step of about 429 seconds. The 65th call in that window repeats the first.
func (g *Generator) NewV2(domain Domain) (UUID, error) {
	return g.dceSecurity("NewV2", domain, 0, false)
}

// NewV2Org generates a version 2 UUID in the Org domain. The 64 UUIDs per
// 429 second window limit of NewV2 applies.
func (g *Generator) NewV2Org(localID uint32) (UUID, error) {
	return g.dceSecurity("NewV2Org", DomainOrg, localID, true)
}

// NewV2Other generates a version 2 UUID for any domain and local ID. The 64
// UUIDs per 429 second window limit of NewV2 applies.
func (g *Generator) NewV2Other(domain Domain, localID uint32) (UUID, error) {
	return g.dceSecurity("NewV2Other", domain, localID, true)
}

// dceSecurity lays out a version 1 UUID, then replaces time_low with the
// local ID and clock_seq_low with the domain. Only 6 bits of clock sequence
// survive, in clock_seq_hi.
func (g *Generator) dceSecurity(op string, domain Domain, localID uint32, hasLocalID bool) (UUID, error) {
	if !hasLocalID {
		var err error
		switch domain {
		case DomainPerson:
			localID, err = g.localIDs.UserID()
		case DomainGroup:
			localID, err = g.localIDs.GroupID()
		default:
			err = fmt.Errorf("domain %s requires an explicit local ID", domain)
		}
		if err != nil {
			return Nil, newError(op, ErrInvalidArgument, err)
		}
	}

	gt, err := g.nextGregorian(op, nodeStable)
	if err != nil {
		return Nil, err
	}

	var u UUID
	putTicksV1(&u, gt.tick)
	copy(u[8:], gt.tail[:])
	binary.BigEndian.PutUint32(u[0:4], localID)
	u[8] = byte(gt.seq) & 0x3f
	u[9] = byte(domain)
	return Assemble(u, VersionDCESecurity, VariantRFC4122), nil
}
