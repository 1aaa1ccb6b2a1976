//go:build guidgen_legacy

package guidgen

const revisionEnabled = false
