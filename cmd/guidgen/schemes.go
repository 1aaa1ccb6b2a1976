package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Lzww0608/guidgen"
	"github.com/Lzww0608/guidgen/internal/config"
)

// request is a config resolved into generator arguments.
type request struct {
	namespace  guidgen.UUID
	name       []byte
	domain     guidgen.Domain
	localID    uint32
	hasLocalID bool
}

type schemeFunc func(g *guidgen.Generator, r request) (guidgen.UUID, error)

func nameBased(alg guidgen.HashAlgorithm) schemeFunc {
	return func(g *guidgen.Generator, r request) (guidgen.UUID, error) {
		return g.NewNameBased(alg, r.namespace, r.name)
	}
}

var schemes = map[string]schemeFunc{
	"v1":  func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV1() },
	"v1r": func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV1R() },
	"v2": func(g *guidgen.Generator, r request) (guidgen.UUID, error) {
		if r.hasLocalID {
			return g.NewV2Other(r.domain, r.localID)
		}
		return g.NewV2(r.domain)
	},
	"v3":  nameBased(guidgen.MD5),
	"v4":  func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV4() },
	"v5":  nameBased(guidgen.SHA1),
	"v6":  func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV6() },
	"v6p": func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV6P() },
	"v6r": func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV6R() },
	"v7":  func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV7() },
	"v8":  func(g *guidgen.Generator, _ request) (guidgen.UUID, error) { return g.NewV8() },

	"v8-sha256":   nameBased(guidgen.SHA256),
	"v8-sha384":   nameBased(guidgen.SHA384),
	"v8-sha512":   nameBased(guidgen.SHA512),
	"v8-sha3-256": nameBased(guidgen.SHA3_256),
	"v8-sha3-384": nameBased(guidgen.SHA3_384),
	"v8-sha3-512": nameBased(guidgen.SHA3_512),
	"v8-shake128": nameBased(guidgen.SHAKE128),
	"v8-shake256": nameBased(guidgen.SHAKE256),
}

func schemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var namespaces = map[string]guidgen.UUID{
	"dns":  guidgen.NamespaceDNS,
	"url":  guidgen.NamespaceURL,
	"oid":  guidgen.NamespaceOID,
	"x500": guidgen.NamespaceX500,
}

// parseNamespace accepts a well-known namespace name or any UUID.
func parseNamespace(s string) (guidgen.UUID, error) {
	if ns, ok := namespaces[strings.ToLower(s)]; ok {
		return ns, nil
	}
	ns, err := guidgen.Parse(s)
	if err != nil {
		return guidgen.Nil, fmt.Errorf("namespace %q: %w", s, err)
	}
	return ns, nil
}

// parseDomain accepts person, group, org or a byte value.
func parseDomain(s string) (guidgen.Domain, error) {
	switch strings.ToLower(s) {
	case "person":
		return guidgen.DomainPerson, nil
	case "group":
		return guidgen.DomainGroup, nil
	case "org":
		return guidgen.DomainOrg, nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("domain %q: want person, group, org or 0-255", s)
	}
	return guidgen.Domain(n), nil
}

func newRequest(c config.Config) (request, error) {
	var r request
	var err error
	if r.namespace, err = parseNamespace(c.Namespace); err != nil {
		return r, err
	}
	if r.domain, err = parseDomain(c.Domain); err != nil {
		return r, err
	}
	r.name = []byte(c.Name)
	if c.LocalID >= 0 {
		r.localID, r.hasLocalID = uint32(c.LocalID), true
	}
	return r, nil
}
