package hashstream

// Option configures a Stream.
type Option func(*Stream)

// WithSeed seeds both the read-side and write-side accumulators with the
// same pair. Without any seed option, the algorithm's default seed is used
// for both directions.
func WithSeed(seed1, seed2 uint64) Option {
	return func(s *Stream) {
		s.readSeed = [2]uint64{seed1, seed2}
		s.readSeeded = true
		s.writeSeed = [2]uint64{seed1, seed2}
		s.writeSeeded = true
	}
}

// WithReadSeed seeds only the read-side accumulator. Combine with
// WithWriteSeed to control the two directions independently.
func WithReadSeed(seed1, seed2 uint64) Option {
	return func(s *Stream) {
		s.readSeed = [2]uint64{seed1, seed2}
		s.readSeeded = true
	}
}

// WithWriteSeed seeds only the write-side accumulator.
func WithWriteSeed(seed1, seed2 uint64) Option {
	return func(s *Stream) {
		s.writeSeed = [2]uint64{seed1, seed2}
		s.writeSeeded = true
	}
}
