// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bio

import "math/bits"

// FindAll returns every position in seq (0-indexed, overlaps included)
// where motif occurs verbatim. It is FindAllWithin with zero allowed
// mismatches, walking seq's K-mer stream one window at a time.
func FindAll(seq DNA, motif Kmer) ([]int, error) {
	return FindAllWithin(seq, motif, 0)
}

// FindAllWithin returns every position in seq where a window of the
// motif's length lies within Hamming distance maxMismatches of motif.
// Distance is counted in mismatched symbols (2-bit groups), not raw
// bits, matching the teacher's byte-per-symbol DNA8HammingVariants
// notion of distance reimplemented over the packed representation.
func FindAllWithin(seq DNA, motif Kmer, maxMismatches int) ([]int, error) {
	stream, err := NewKmerStream(seq, int(motif.K))
	if err != nil {
		return nil, err
	}
	var positions []int
	for pos := 0; ; pos++ {
		window, ok := stream.Next()
		if !ok {
			break
		}
		if hammingDistance(window, motif) <= maxMismatches {
			positions = append(positions, pos)
		}
	}
	return positions, nil
}

// hammingDistance counts the number of mismatched symbols between two
// K-mers of equal length.
func hammingDistance(a, b Kmer) int {
	x := a.Value ^ b.Value
	// Fold each 2-bit symbol down to a single "differs" bit, then
	// popcount: a symbol differs iff either of its two XOR bits is set.
	folded := (x | (x >> 1)) & 0x5555555555555555
	return bits.OnesCount64(folded)
}
