package guidgen

// NewV4 generates a version 4 UUID from 122 random bits.
func (g *Generator) NewV4() (UUID, error) {
	return g.random("NewV4", VersionRandom)
}

// NewV8 generates a version 8 UUID whose custom bits are all random.
func (g *Generator) NewV8() (UUID, error) {
	if !revisionEnabled {
		return Nil, newError("NewV8", ErrUnsupportedScheme, nil)
	}
	return g.random("NewV8", VersionCustom)
}

func (g *Generator) random(op string, version Version) (UUID, error) {
	var u UUID
	if err := g.read(op, u[:]); err != nil {
		return Nil, err
	}
	return Assemble(u, version, VariantRFC4122), nil
}
