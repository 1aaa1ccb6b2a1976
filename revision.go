//go:build !guidgen_legacy

package guidgen

// revisionEnabled reports whether the RFC 9562 versions 6, 7 and 8 are
// compiled in. Build with -tags guidgen_legacy to restrict the package to
// the RFC 4122 versions 1 through 5.
const revisionEnabled = true
