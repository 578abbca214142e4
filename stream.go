// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bio

// KmerStream is a non-restartable, not-thread-safe cursor over a DNA
// value emitting its k-length window of K-mers in order, step 1. All
// cursor state (the symbol position of the next window, which fixes its
// byte index and intra-byte offset, and the remaining count) lives in
// the struct so the stream can be driven one step at a time by the
// caller without a goroutine.
type KmerStream struct {
	dna       DNA
	k         int
	pos       int // index of the first symbol of the next window to emit
	remaining int // windows left to emit
}

// NewKmerStream returns a stream of the DNA value's sliding k-mers,
// advancing one symbol at a time. k must be in 1..32; k > length yields an
// empty, immediately-exhausted stream (not an error).
func NewKmerStream(d DNA, k int) (*KmerStream, error) {
	if k <= 0 || k > MaxK {
		return nil, newErr(KmerStreamK, "k=%d out of range 1..%d", k, MaxK)
	}
	length := d.Len()
	remaining := length - k + 1
	if remaining < 0 {
		remaining = 0
	}
	return &KmerStream{dna: d, k: k, remaining: remaining}, nil
}

// Next returns the next K-mer in the stream and advances the cursor by
// one symbol. ok is false once the stream is exhausted.
func (s *KmerStream) Next() (m Kmer, ok bool) {
	if s.remaining <= 0 {
		return Kmer{}, false
	}
	var v uint64
	for i := 0; i < s.k; i++ {
		v = (v << 2) | uint64(s.dna.symbolAt(s.pos+i))
	}
	s.pos++
	s.remaining--
	return Kmer{Value: v, K: uint8(s.k)}, true
}

// Remaining returns the number of K-mers left to emit.
func (s *KmerStream) Remaining() int {
	return s.remaining
}

// Kmers materializes the entire stream as a slice, in order. Provided
// for callers that don't need the lazy, step-wise protocol.
func Kmers(d DNA, k int) ([]Kmer, error) {
	s, err := NewKmerStream(d, k)
	if err != nil {
		return nil, err
	}
	out := make([]Kmer, 0, s.Remaining())
	for {
		m, ok := s.Next()
		if !ok {
			return out, nil
		}
		out = append(out, m)
	}
}
