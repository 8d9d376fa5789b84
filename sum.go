package hashstream

import (
	"io"

	"github.com/twmb/murmur3"
)

// Sum returns the digest of p under the default seed.
func Sum(p []byte) Digest128 {
	h1, h2 := murmur3.Sum128(p)
	return Digest128{H1: h1, H2: h2}
}

// SeedSum returns the digest of p under an explicit seed pair.
func SeedSum(seed1, seed2 uint64, p []byte) Digest128 {
	h1, h2 := murmur3.SeedSum128(seed1, seed2, p)
	return Digest128{H1: h1, H2: h2}
}

// SumString returns the digest of s under the default seed, without
// copying the string.
func SumString(s string) Digest128 {
	h1, h2 := murmur3.StringSum128(s)
	return Digest128{H1: h1, H2: h2}
}

// SumReader drains r and returns the digest of everything it produced
// under the default seed, along with the byte count. Faults from r
// propagate unchanged; the returned digest then covers the bytes consumed
// before the fault.
func SumReader(r io.Reader) (int64, Digest128, error) {
	return sumReader(r, murmur3.New128())
}

// SeedSumReader is SumReader under an explicit seed pair.
func SeedSumReader(seed1, seed2 uint64, r io.Reader) (int64, Digest128, error) {
	return sumReader(r, murmur3.SeedNew128(seed1, seed2))
}

func sumReader(r io.Reader, h murmur3.Hash128) (int64, Digest128, error) {
	n, err := io.Copy(h, r)
	h1, h2 := h.Sum128()
	return n, Digest128{H1: h1, H2: h2}, err
}
