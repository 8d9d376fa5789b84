package hashstream

import (
	"errors"
	"fmt"
)

// ErrNoBacking is returned by New when the backing stream is nil.
var ErrNoBacking = errors.New("hashstream: nil backing stream")

// Capability errors. Each wraps errors.ErrUnsupported so callers can test
// for the whole class with errors.Is.
var (
	// ErrNotReadable is returned by read operations when the backing stream
	// does not implement io.Reader.
	ErrNotReadable = fmt.Errorf("hashstream: backing stream not readable: %w", errors.ErrUnsupported)

	// ErrNotWritable is returned by write operations when the backing stream
	// does not implement io.Writer.
	ErrNotWritable = fmt.Errorf("hashstream: backing stream not writable: %w", errors.ErrUnsupported)

	// ErrNotSeekable is returned by Seek, Position, and SetPosition when the
	// backing stream does not implement io.Seeker.
	ErrNotSeekable = fmt.Errorf("hashstream: backing stream not seekable: %w", errors.ErrUnsupported)

	// ErrNoSize is returned by Size when the backing stream exposes neither
	// a Size method nor a Stat method.
	ErrNoSize = fmt.Errorf("hashstream: backing stream has no size: %w", errors.ErrUnsupported)

	// ErrNotTruncatable is returned by Truncate when the backing stream has
	// no Truncate method.
	ErrNotTruncatable = fmt.Errorf("hashstream: backing stream not truncatable: %w", errors.ErrUnsupported)

	// ErrNoDeadline is returned by SetReadDeadline and SetWriteDeadline when
	// the backing stream has no deadline support.
	ErrNoDeadline = fmt.Errorf("hashstream: backing stream has no deadline support: %w", errors.ErrUnsupported)
)
