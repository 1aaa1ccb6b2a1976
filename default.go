package guidgen

// defaultGenerator is the package-level generator used by the New* functions.
var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV1 generates a version 1 UUID using the default generator.
func NewV1() (UUID, error) { return defaultGenerator.NewV1() }

// NewV1R generates a version 1 UUID with a random node using the default generator.
func NewV1R() (UUID, error) { return defaultGenerator.NewV1R() }

// NewV2 generates a version 2 UUID for the Person or Group domain using the
// default generator.
func NewV2(domain Domain) (UUID, error) { return defaultGenerator.NewV2(domain) }

// NewV2Org generates a version 2 UUID in the Org domain using the default generator.
func NewV2Org(localID uint32) (UUID, error) {
	return defaultGenerator.NewV2Org(localID)
}

// NewV2Other generates a version 2 UUID for any domain using the default generator.
func NewV2Other(domain Domain, localID uint32) (UUID, error) {
	return defaultGenerator.NewV2Other(domain, localID)
}

// NewV3 generates a version 3 (MD5) name-based UUID.
func NewV3(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV3", MD5, namespace, name)
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) { return defaultGenerator.NewV4() }

// NewV5 generates a version 5 (SHA-1) name-based UUID.
func NewV5(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV5", SHA1, namespace, name)
}

// NewV6 generates a version 6 UUID with a random tail using the default generator.
func NewV6() (UUID, error) { return defaultGenerator.NewV6() }

// NewV6P generates a version 6 UUID carrying the node ID using the default generator.
func NewV6P() (UUID, error) { return defaultGenerator.NewV6P() }

// NewV6R generates a version 6 UUID with a random node using the default generator.
func NewV6R() (UUID, error) { return defaultGenerator.NewV6R() }

// NewV7 is an alias for New() when the version should be explicit
func NewV7() (UUID, error) { return defaultGenerator.NewV7() }

// NewV8 generates a random version 8 UUID using the default generator.
func NewV8() (UUID, error) { return defaultGenerator.NewV8() }

// NewV8SHA256 generates a version 8 name-based UUID with SHA-256.
func NewV8SHA256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA256", SHA256, namespace, name)
}

// NewV8SHA384 generates a version 8 name-based UUID with SHA-384.
func NewV8SHA384(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA384", SHA384, namespace, name)
}

// NewV8SHA512 generates a version 8 name-based UUID with SHA-512.
func NewV8SHA512(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA512", SHA512, namespace, name)
}

// NewV8SHA3_256 generates a version 8 name-based UUID with SHA3-256.
func NewV8SHA3_256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_256", SHA3_256, namespace, name)
}

// NewV8SHA3_384 generates a version 8 name-based UUID with SHA3-384.
func NewV8SHA3_384(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_384", SHA3_384, namespace, name)
}

// NewV8SHA3_512 generates a version 8 name-based UUID with SHA3-512.
func NewV8SHA3_512(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHA3_512", SHA3_512, namespace, name)
}

// NewV8SHAKE128 generates a version 8 name-based UUID with SHAKE128.
func NewV8SHAKE128(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHAKE128", SHAKE128, namespace, name)
}

// NewV8SHAKE256 generates a version 8 name-based UUID with SHAKE256.
func NewV8SHAKE256(namespace UUID, name []byte) (UUID, error) {
	return nameBased("NewV8SHAKE256", SHAKE256, namespace, name)
}
