// Package hashstream provides a transparent byte-stream proxy that computes
// two independent running digests — one over bytes read, one over bytes
// written — while forwarding every other operation to the backing stream.
//
// The digest is the 128-bit MurmurHash3 variant provided by
// github.com/twmb/murmur3, seeded independently per direction. Digests are
// incremental: they can be queried at any point, any number of times, and
// reflect exactly the bytes transferred so far. No buffering or second pass
// over the content is required.
//
// # Quick Start
//
// Digest a file while reading it:
//
//	f, err := os.Open("data.bin")
//	if err != nil {
//	    return err
//	}
//	s := hashstream.NewReader(f)
//	defer s.Close() // closes f
//
//	if _, err := io.Copy(dst, s); err != nil {
//	    return err
//	}
//	fmt.Println(s.ReadDigest())
//
// Wrap an arbitrary backing stream, with explicit seeds:
//
//	s, err := hashstream.New(conn,
//	    hashstream.WithSeed(0x9ae16a3b2f90404f, 0xc3a5c85c97cb3127),
//	)
//
// The proxy adds no capabilities of its own: reads, writes, seeks,
// truncation, flushes, and deadlines are available exactly when the backing
// stream supports them, and faults from the backing stream propagate
// unchanged.
//
// # Access Tracking
//
// [Stream.Moved] reports whether the cursor was ever repositioned outside
// plain sequential reads and writes (a successful Seek, SetPosition, or
// Truncate). Once set, the flag stays set. It lets callers decide whether
// the running digests still describe a contiguous prefix of the resource.
//
// # Cancellation
//
// [Stream.ReadContext] and [Stream.WriteContext] check the context before
// and after the backing transfer. A context canceled while the transfer is
// in flight surfaces as ctx.Err() and the transferred bytes are not folded
// into the digest, even though the backing stream already moved them. See
// the method documentation for the consequences.
//
// A Stream is not safe for concurrent use, matching the contract of the
// streams it wraps.
package hashstream
