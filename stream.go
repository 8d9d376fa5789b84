package hashstream

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/twmb/murmur3"
)

// Capability surfaces recognized on the backing stream beyond the io
// interfaces. A backing stream opts into Size, Truncate, Flush, and
// deadline passthrough by implementing the corresponding method.
type (
	sizer     interface{ Size() int64 }
	stater    interface{ Stat() (fs.FileInfo, error) }
	truncater interface{ Truncate(size int64) error }
	syncer    interface{ Sync() error }
	flusher   interface{ Flush() error }

	readDeadlineSetter  interface{ SetReadDeadline(t time.Time) error }
	writeDeadlineSetter interface{ SetWriteDeadline(t time.Time) error }
)

// Stream wraps a backing byte stream and maintains a running digest per
// direction: one over bytes read through it, one over bytes written through
// it. Every operation is forwarded to the backing stream; only the bytes
// actually transferred are folded into the corresponding digest.
//
// Stream is not safe for concurrent use.
type Stream struct {
	backing any

	r  io.Reader
	br io.ByteReader
	w  io.Writer
	bw io.ByteWriter
	s  io.Seeker
	rd readDeadlineSetter
	wd writeDeadlineSetter

	rsum murmur3.Hash128
	wsum murmur3.Hash128

	readSeed    [2]uint64
	writeSeed   [2]uint64
	readSeeded  bool
	writeSeeded bool

	moved  bool
	closed bool
}

// Interface compliance.
var (
	_ io.Reader     = (*Stream)(nil)
	_ io.ByteReader = (*Stream)(nil)
	_ io.Writer     = (*Stream)(nil)
	_ io.ByteWriter = (*Stream)(nil)
	_ io.Seeker     = (*Stream)(nil)
	_ io.Closer     = (*Stream)(nil)
)

// New creates a Stream around backing.
//
// The backing stream's capabilities are discovered once, by interface
// assertion: io.Reader, io.Writer, io.Seeker, io.ByteReader, io.ByteWriter,
// io.Closer, Size/Stat, Truncate, Sync/Flush, and net.Conn-style deadline
// setters. It must implement at least one of io.Reader and io.Writer.
//
// The Stream takes ownership of backing: Close closes it if it is an
// io.Closer, and no other owner should use or close it while the Stream is
// live.
func New(backing any, opts ...Option) (*Stream, error) {
	if backing == nil {
		return nil, ErrNoBacking
	}

	s := &Stream{backing: backing}
	s.r, _ = backing.(io.Reader)
	s.br, _ = backing.(io.ByteReader)
	s.w, _ = backing.(io.Writer)
	s.bw, _ = backing.(io.ByteWriter)
	s.s, _ = backing.(io.Seeker)
	s.rd, _ = backing.(readDeadlineSetter)
	s.wd, _ = backing.(writeDeadlineSetter)

	if s.r == nil && s.w == nil {
		return nil, fmt.Errorf("hashstream: backing stream %T supports neither reads nor writes: %w",
			backing, errors.ErrUnsupported)
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.readSeeded {
		s.rsum = murmur3.SeedNew128(s.readSeed[0], s.readSeed[1])
	} else {
		s.rsum = murmur3.New128()
	}
	if s.writeSeeded {
		s.wsum = murmur3.SeedNew128(s.writeSeed[0], s.writeSeed[1])
	} else {
		s.wsum = murmur3.New128()
	}
	return s, nil
}

// NewReader creates a Stream around an io.Reader.
func NewReader(r io.Reader, opts ...Option) *Stream {
	s, err := New(r, opts...)
	if err != nil {
		// Only reachable with a nil reader, which is caller error.
		panic(err)
	}
	return s
}

// NewWriter creates a Stream around an io.Writer.
func NewWriter(w io.Writer, opts ...Option) *Stream {
	s, err := New(w, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// CanRead reports whether the backing stream supports reads.
func (s *Stream) CanRead() bool { return s.r != nil }

// CanWrite reports whether the backing stream supports writes.
func (s *Stream) CanWrite() bool { return s.w != nil }

// CanSeek reports whether the backing stream supports seeking.
func (s *Stream) CanSeek() bool { return s.s != nil }

// CanTimeout reports whether the backing stream supports read or write
// deadlines.
func (s *Stream) CanTimeout() bool { return s.rd != nil || s.wd != nil }

// Read implements io.Reader.
//
// The bytes placed into p by the backing stream are folded into the read
// digest before returning, including a short read that also reports an
// error such as io.EOF. The count and error are returned verbatim.
func (s *Stream) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotReadable
	}
	n, err := s.r.Read(p)
	if n > 0 {
		_, _ = s.rsum.Write(p[:n])
	}
	return n, err
}

// ReadByte implements io.ByteReader.
//
// The backing stream's own ReadByte is used when available; otherwise the
// byte is read through a one-byte Read. The byte is folded into the read
// digest only when it was actually delivered.
func (s *Stream) ReadByte() (byte, error) {
	if s.r == nil {
		return 0, ErrNotReadable
	}
	var buf [1]byte
	if s.br != nil {
		c, err := s.br.ReadByte()
		if err != nil {
			return c, err
		}
		buf[0] = c
	} else {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return 0, err
		}
	}
	_, _ = s.rsum.Write(buf[:])
	return buf[0], nil
}

// Write implements io.Writer.
//
// The write is forwarded first; only when the backing stream accepts it
// without error are the written bytes folded into the write digest. A
// failed write leaves the write digest untouched.
func (s *Stream) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotWritable
	}
	n, err := s.w.Write(p)
	if err != nil {
		return n, err
	}
	_, _ = s.wsum.Write(p[:n])
	return n, nil
}

// WriteByte implements io.ByteWriter. The byte is folded into the write
// digest only after the backing stream accepts it.
func (s *Stream) WriteByte(c byte) error {
	if s.w == nil {
		return ErrNotWritable
	}
	buf := [1]byte{c}
	if s.bw != nil {
		if err := s.bw.WriteByte(c); err != nil {
			return err
		}
	} else {
		if _, err := s.w.Write(buf[:]); err != nil {
			return err
		}
	}
	_, _ = s.wsum.Write(buf[:])
	return nil
}

// Seek implements io.Seeker. A successful seek marks the stream as moved;
// a failed one leaves the flag unchanged.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.s == nil {
		return 0, ErrNotSeekable
	}
	pos, err := s.s.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	s.moved = true
	return pos, nil
}

// Position returns the current cursor offset. It is a pure query: unlike
// Seek, it never marks the stream as moved.
func (s *Stream) Position() (int64, error) {
	if s.s == nil {
		return 0, ErrNotSeekable
	}
	return s.s.Seek(0, io.SeekCurrent)
}

// SetPosition moves the cursor to an absolute offset, marking the stream as
// moved on success.
func (s *Stream) SetPosition(offset int64) error {
	_, err := s.Seek(offset, io.SeekStart)
	return err
}

// Size returns the total size of the backing stream, via its Size method or
// a Stat call. It never seeks, so it never marks the stream as moved.
func (s *Stream) Size() (int64, error) {
	switch b := s.backing.(type) {
	case sizer:
		return b.Size(), nil
	case stater:
		info, err := b.Stat()
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}
	return 0, ErrNoSize
}

// Truncate changes the length of the backing stream. A successful length
// change marks the stream as moved; a failed one leaves the flag unchanged.
func (s *Stream) Truncate(size int64) error {
	t, ok := s.backing.(truncater)
	if !ok {
		return ErrNotTruncatable
	}
	if err := t.Truncate(size); err != nil {
		return err
	}
	s.moved = true
	return nil
}

// Flush forwards to the backing stream's Sync or Flush method if it has
// one, and is a no-op otherwise. Flushing never affects the digests.
func (s *Stream) Flush() error {
	switch b := s.backing.(type) {
	case syncer:
		return b.Sync()
	case flusher:
		return b.Flush()
	}
	return nil
}

// SetReadDeadline forwards to the backing stream's read deadline.
func (s *Stream) SetReadDeadline(t time.Time) error {
	if s.rd == nil {
		return ErrNoDeadline
	}
	return s.rd.SetReadDeadline(t)
}

// SetWriteDeadline forwards to the backing stream's write deadline.
func (s *Stream) SetWriteDeadline(t time.Time) error {
	if s.wd == nil {
		return ErrNoDeadline
	}
	return s.wd.SetWriteDeadline(t)
}

// Moved reports whether the cursor was ever repositioned outside sequential
// reads and writes: a successful Seek, SetPosition, or Truncate. The flag
// is monotonic; once set it stays set for the life of the Stream.
func (s *Stream) Moved() bool { return s.moved }

// Close closes the backing stream if it is an io.Closer. The backing
// stream is closed at most once; repeated Close calls are no-ops returning
// nil. The digests remain queryable after Close.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.backing.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadDigest returns the 128-bit digest of all bytes read through the
// Stream so far. It is a pure query: it never changes accumulator state
// and may be interleaved freely with further transfers.
func (s *Stream) ReadDigest() Digest128 {
	h1, h2 := s.rsum.Sum128()
	return Digest128{H1: h1, H2: h2}
}

// ReadDigest64 returns the 64-bit form of the current read digest.
func (s *Stream) ReadDigest64() uint64 { return s.ReadDigest().Sum64() }

// ReadDigest32 returns the 32-bit form of the current read digest.
func (s *Stream) ReadDigest32() uint32 { return s.ReadDigest().Sum32() }

// WriteDigest returns the 128-bit digest of all bytes successfully written
// through the Stream so far. Like ReadDigest, it is a pure query.
func (s *Stream) WriteDigest() Digest128 {
	h1, h2 := s.wsum.Sum128()
	return Digest128{H1: h1, H2: h2}
}

// WriteDigest64 returns the 64-bit form of the current write digest.
func (s *Stream) WriteDigest64() uint64 { return s.WriteDigest().Sum64() }

// WriteDigest32 returns the 32-bit form of the current write digest.
func (s *Stream) WriteDigest32() uint32 { return s.WriteDigest().Sum32() }
