package hashstream

import (
	"fmt"

	"github.com/opencontainers/go-digest"
)

// Algorithm is the go-digest algorithm name under which stream digests are
// rendered. It is not a registered algorithm; values formatted with it are
// meant for manifests and logs, not for go-digest verification.
const Algorithm = digest.Algorithm("murmur3-128")

// Digest128 is a 128-bit stream digest.
//
// H1 is the first 64-bit half; the 64-bit form of a digest is H1, and the
// 32-bit form is the low 32 bits of H1. Neither is an independent hash.
type Digest128 struct {
	H1 uint64
	H2 uint64
}

// Sum64 returns the 64-bit form of the digest.
func (d Digest128) Sum64() uint64 {
	return d.H1
}

// Sum32 returns the 32-bit form of the digest.
func (d Digest128) Sum32() uint32 {
	return uint32(d.H1)
}

// Encoded returns the digest as 32 lowercase hex digits, H1 first.
func (d Digest128) Encoded() string {
	return fmt.Sprintf("%016x%016x", d.H1, d.H2)
}

// Digest renders the value as an opencontainers digest under [Algorithm].
func (d Digest128) Digest() digest.Digest {
	return digest.NewDigestFromEncoded(Algorithm, d.Encoded())
}

// String implements fmt.Stringer.
func (d Digest128) String() string {
	return d.Encoded()
}
