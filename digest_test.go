package hashstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest128Forms(t *testing.T) {
	d := Digest128{H1: 0xdeadbeefcafebabe, H2: 0x0123456789abcdef}

	assert.Equal(t, uint64(0xdeadbeefcafebabe), d.Sum64(), "64-bit form is the first half")
	assert.Equal(t, uint32(0xcafebabe), d.Sum32(), "32-bit form is the low half of Sum64")
	assert.Equal(t, "deadbeefcafebabe0123456789abcdef", d.Encoded())
	assert.Equal(t, d.Encoded(), d.String())
}

func TestDigest128EncodedWidth(t *testing.T) {
	assert.Equal(t, "00000000000000010000000000000002", Digest128{H1: 1, H2: 2}.Encoded())
	assert.Len(t, Digest128{}.Encoded(), 32)
}

func TestDigest128OCIDigest(t *testing.T) {
	d := Digest128{H1: 1, H2: 2}
	oci := d.Digest()

	assert.Equal(t, Algorithm, oci.Algorithm())
	assert.Equal(t, d.Encoded(), oci.Encoded())
	assert.Equal(t, "murmur3-128:00000000000000010000000000000002", string(oci))
}

func TestSumVariantsAgree(t *testing.T) {
	data := []byte("convenience")

	assert.Equal(t, Sum(data), SumString(string(data)))
	assert.Equal(t, Sum(data), SeedSum(0, 0, data))

	s := NewWriter(discardWriter{})
	_, err := s.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, Sum(data), s.WriteDigest())
}

// discardWriter is a minimal io.Writer so the test does not depend on
// io.Discard's extra methods.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
