package hashstream

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumReader(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 1000)

	n, d, err := SumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), d)

	// Chunking on the reader side is invisible to the digest.
	n, d, err = SumReader(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), d)
}

func TestSeedSumReader(t *testing.T) {
	data := []byte("seeded drain")

	_, d, err := SeedSumReader(7, 11, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, SeedSum(7, 11, data), d)
	assert.NotEqual(t, Sum(data), d)
}

func TestSumReaderFault(t *testing.T) {
	fault := errors.New("torn source")
	data := []byte("partial")

	n, d, err := SumReader(iotest.DataErrReader(&faultTail{data: data, err: fault}))
	assert.ErrorIs(t, err, fault)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), d, "digest covers the bytes consumed before the fault")
}

// faultTail yields its data, then a fault instead of io.EOF.
type faultTail struct {
	data []byte
	err  error
}

func (f *faultTail) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}
