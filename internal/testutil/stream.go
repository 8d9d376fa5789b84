// Package testutil provides in-memory backing streams for hashstream tests.
package testutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// RWStream is an in-memory backing stream with the full capability surface:
// reads, writes, seeks, truncation, size queries, and deadlines. Writes past
// the end grow the buffer, zero-filling any gap, like a file.
type RWStream struct {
	buf []byte
	pos int64

	readDeadline  time.Time
	writeDeadline time.Time

	closed     bool
	CloseCount int
}

// NewRWStream creates an RWStream preloaded with data, cursor at offset 0.
func NewRWStream(data []byte) *RWStream {
	return &RWStream{buf: append([]byte(nil), data...)}
}

// Bytes returns the current contents.
func (m *RWStream) Bytes() []byte { return m.buf }

// Read implements io.Reader.
func (m *RWStream) Read(p []byte) (int, error) {
	if !m.readDeadline.IsZero() && time.Now().After(m.readDeadline) {
		return 0, os.ErrDeadlineExceeded
	}
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

// Write implements io.Writer.
func (m *RWStream) Write(p []byte) (int, error) {
	if !m.writeDeadline.IsZero() && time.Now().After(m.writeDeadline) {
		return 0, os.ErrDeadlineExceeded
	}
	if grow := m.pos + int64(len(p)) - int64(len(m.buf)); grow > 0 {
		m.buf = append(m.buf, make([]byte, grow)...)
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (m *RWStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("testutil: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("testutil: negative position")
	}
	m.pos = abs
	return abs, nil
}

// Truncate resizes the buffer without touching the cursor.
func (m *RWStream) Truncate(size int64) error {
	if size < 0 {
		return errors.New("testutil: negative size")
	}
	if size <= int64(len(m.buf)) {
		m.buf = m.buf[:size]
	} else {
		m.buf = append(m.buf, make([]byte, size-int64(len(m.buf)))...)
	}
	return nil
}

// Size reports the buffer length.
func (m *RWStream) Size() int64 { return int64(len(m.buf)) }

// SetReadDeadline records the read deadline. A deadline in the past makes
// subsequent reads fail with os.ErrDeadlineExceeded.
func (m *RWStream) SetReadDeadline(t time.Time) error {
	m.readDeadline = t
	return nil
}

// SetWriteDeadline records the write deadline.
func (m *RWStream) SetWriteDeadline(t time.Time) error {
	m.writeDeadline = t
	return nil
}

// Close counts close calls so tests can assert exactly-once release.
func (m *RWStream) Close() error {
	m.CloseCount++
	if m.closed {
		return errors.New("testutil: double close")
	}
	m.closed = true
	return nil
}

// ChunkReader wraps a reader and caps every Read at ChunkSize bytes,
// forcing short reads regardless of the caller's buffer.
type ChunkReader struct {
	R         io.Reader
	ChunkSize int
}

// Read implements io.Reader.
func (c *ChunkReader) Read(p []byte) (int, error) {
	if len(p) > c.ChunkSize {
		p = p[:c.ChunkSize]
	}
	return c.R.Read(p)
}

// FaultStream fails every operation with Err. It claims the full capability
// surface so tests can verify that failed operations leave proxy state
// untouched.
type FaultStream struct {
	Err error
}

func (f *FaultStream) Read(p []byte) (int, error)         { return 0, f.Err }
func (f *FaultStream) Write(p []byte) (int, error)        { return 0, f.Err }
func (f *FaultStream) Seek(int64, int) (int64, error)     { return 0, f.Err }
func (f *FaultStream) Truncate(int64) error               { return f.Err }
func (f *FaultStream) Sync() error                        { return f.Err }
func (f *FaultStream) SetReadDeadline(t time.Time) error  { return f.Err }
func (f *FaultStream) SetWriteDeadline(t time.Time) error { return f.Err }

// HalfWriter accepts at most half of every write, rounded up, mimicking a
// writer that reports short writes with an error.
type HalfWriter struct {
	Err error
	Buf []byte
}

// Write implements io.Writer.
func (h *HalfWriter) Write(p []byte) (int, error) {
	n := (len(p) + 1) / 2
	h.Buf = append(h.Buf, p[:n]...)
	if n < len(p) {
		return n, h.Err
	}
	return n, nil
}
