package hashstream

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRoundTripPipe(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 1<<16)
	_, err := rng.Read(data)
	require.NoError(t, err)

	const seed1, seed2 = 0x5eed, 0xfeed

	pr, pw := io.Pipe()
	src := NewWriter(pw, WithSeed(seed1, seed2))
	dst := NewReader(pr, WithSeed(seed1, seed2))

	var got bytes.Buffer
	var eg errgroup.Group

	eg.Go(func() error {
		defer pw.Close()
		// Irregular chunk sizes on the write side.
		for rest := data; len(rest) > 0; {
			n := 1 + rng.Intn(4096)
			if n > len(rest) {
				n = len(rest)
			}
			if _, err := src.Write(rest[:n]); err != nil {
				return err
			}
			rest = rest[n:]
		}
		return nil
	})
	eg.Go(func() error {
		// Different chunk sizes on the read side.
		_, err := io.CopyBuffer(&got, dst, make([]byte, 1231))
		return err
	})
	require.NoError(t, eg.Wait())

	require.Equal(t, data, got.Bytes())
	assert.Equal(t, src.WriteDigest(), dst.ReadDigest())
	assert.Equal(t, SeedSum(seed1, seed2, data), dst.ReadDigest())
}

func TestRoundTripZstdPipeline(t *testing.T) {
	data := bytes.Repeat([]byte("compressible payload "), 4096)

	// Digest the plaintext while compressing it.
	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)

	src := NewWriter(enc)
	_, err = src.Write(data)
	require.NoError(t, err)
	require.NoError(t, src.Flush()) // zstd.Encoder exposes Flush
	require.NoError(t, enc.Close())

	// Digest the plaintext again while decompressing.
	dec, err := zstd.NewReader(bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	defer dec.Close()

	dst := NewReader(dec)
	got, err := io.ReadAll(dst)
	require.NoError(t, err)

	require.Equal(t, data, got)
	assert.Equal(t, src.WriteDigest(), dst.ReadDigest())
	assert.Equal(t, Sum(data), dst.ReadDigest())
}

func TestRoundTripByteAtATime(t *testing.T) {
	data := []byte("one byte at a time, both directions")

	var buf bytes.Buffer
	src := NewWriter(&buf)
	for _, c := range data {
		require.NoError(t, src.WriteByte(c))
	}

	dst := NewReader(&buf)
	for {
		_, err := dst.ReadByte()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	assert.Equal(t, src.WriteDigest(), dst.ReadDigest())
}
