package guidgen

import "errors"

// Well known namespace IDs.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

var errNilName = errors.New("name must not be nil")

// NewNameBased hashes namespace and name with alg. MD5 yields version 3,
// SHA-1 version 5 and every other algorithm version 8. The same inputs always
// give the same UUID. A nil name is rejected; an empty one is not.
func NewNameBased(alg HashAlgorithm, namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewNameBased", alg, namespace, name)
}

func nameBased(op string, alg HashAlgorithm, namespace UUID, name []byte) (UUID, error) {
	if name == nil {
		return Nil, newError(op, ErrInvalidArgument, errNilName)
	}
	d, err := Digester(alg)
	if err != nil {
		return Nil, newError(op, ErrInvalidArgument, err)
	}
	version := alg.Version()
	if version == VersionCustom && !revisionEnabled {
		return Nil, newError(op, ErrUnsupportedScheme, nil)
	}
	return Assemble(d.Sum(namespace, name), version, VariantRFC4122), nil
}

// Name-based generation keeps no state; the Generator methods exist so that
// every scheme is reachable from a *Generator.

// NewNameBased is the method form of the package-level NewNameBased.
func (g *Generator) NewNameBased(alg HashAlgorithm, namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewNameBased", alg, namespace, name)
}

// NewV3 generates a version 3 UUID from the MD5 hash of namespace and name.
func (g *Generator) NewV3(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV3", MD5, namespace, name)
}

// NewV5 generates a version 5 UUID from the SHA-1 hash of namespace and name.
func (g *Generator) NewV5(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV5", SHA1, namespace, name)
}

// NewV8SHA256 generates a version 8 UUID from the first 16 bytes of the
// SHA-256 hash of namespace and name.
func (g *Generator) NewV8SHA256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA256", SHA256, namespace, name)
}

// NewV8SHA384 generates a version 8 UUID from the first 16 bytes of the
// SHA-384 hash of namespace and name.
func (g *Generator) NewV8SHA384(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA384", SHA384, namespace, name)
}

// NewV8SHA512 generates a version 8 UUID from the first 16 bytes of the
// SHA-512 hash of namespace and name.
func (g *Generator) NewV8SHA512(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA512", SHA512, namespace, name)
}

// NewV8SHA3_256 generates a version 8 UUID from the first 16 bytes of the
// SHA3-256 hash of namespace and name.
func (g *Generator) NewV8SHA3_256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_256", SHA3_256, namespace, name)
}

// NewV8SHA3_384 generates a version 8 UUID from the first 16 bytes of the
// SHA3-384 hash of namespace and name.
func (g *Generator) NewV8SHA3_384(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_384", SHA3_384, namespace, name)
}

// NewV8SHA3_512 generates a version 8 UUID from the first 16 bytes of the
// SHA3-512 hash of namespace and name.
func (g *Generator) NewV8SHA3_512(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_512", SHA3_512, namespace, name)
}

// NewV8SHAKE128 reads 16 bytes of SHAKE128 output.
func (g *Generator) NewV8SHAKE128(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHAKE128", SHAKE128, namespace, name)
}

// NewV8SHAKE256 reads 16 bytes of SHAKE256 output.
func (g *Generator) NewV8SHAKE256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHAKE256", SHAKE256, namespace, name)
}
