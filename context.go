package hashstream

import (
	"context"
)

// ReadContext reads like Read but honors ctx at two points: immediately
// before the backing transfer and immediately after it completes, before
// the digest is updated. Cancellation observed at either point surfaces as
// ctx.Err().
//
// When cancellation is observed after the transfer, the bytes the backing
// stream already placed into p are NOT folded into the read digest, so the
// digest and the backing cursor disagree from that point on. This mirrors
// advisory post-completion cancellation as found in other stream stacks;
// callers that cannot tolerate the gap should discard the Stream after a
// cancellation fault. The transfer itself is not interrupted mid-flight —
// ctx is only consulted at the two points above.
//
// At most one ReadContext or WriteContext call may be outstanding per
// Stream; the proxy performs no serialization of its own.
func (s *Stream) ReadContext(ctx context.Context, p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotReadable
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.r.Read(p)
	if cerr := ctx.Err(); cerr != nil {
		return 0, cerr
	}
	if n > 0 {
		_, _ = s.rsum.Write(p[:n])
	}
	return n, err
}

// WriteContext writes like Write but honors ctx at the same two points as
// ReadContext. Cancellation observed after the backing stream accepted the
// bytes surfaces as ctx.Err() and leaves the write digest untouched, even
// though the bytes were physically written. See ReadContext for the
// consequences.
func (s *Stream) WriteContext(ctx context.Context, p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotWritable
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.w.Write(p)
	if cerr := ctx.Err(); cerr != nil {
		return 0, cerr
	}
	if err != nil {
		return n, err
	}
	_, _ = s.wsum.Write(p[:n])
	return n, nil
}
