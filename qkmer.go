// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bio

import "strings"

// QKmer is a fixed-length string of 1..32 IUPAC ambiguity codes. Each
// symbol is packed as a 2-bit pair in Ac and a 2-bit pair in Gt such
// that the 4-bit nibble (ac<<2)|gt equals the IUPAC encoding of the
// symbol: A=1000, C=0100, G=0010, T=0001, and their unions for the
// ambiguity codes.
type QKmer struct {
	Ac uint64
	Gt uint64
	K  uint8
}

// iupacPair is the (ac,gt) 2-bit pair encoding for one IUPAC symbol.
type iupacPair struct{ ac, gt byte }

var iupacEncode = map[byte]iupacPair{
	'A': {0b10, 0b00},
	'C': {0b01, 0b00},
	'G': {0b00, 0b10},
	'T': {0b00, 0b01},
	'W': {0b10, 0b01},
	'S': {0b01, 0b10},
	'M': {0b11, 0b00},
	'K': {0b00, 0b11},
	'R': {0b10, 0b10},
	'Y': {0b01, 0b01},
	'B': {0b01, 0b11},
	'D': {0b10, 0b11},
	'H': {0b11, 0b01},
	'V': {0b11, 0b10},
	'N': {0b11, 0b11},
}

var iupacDecode = func() map[iupacPair]byte {
	m := make(map[iupacPair]byte, len(iupacEncode))
	for c, p := range iupacEncode {
		m[p] = c
	}
	return m
}()

// ParseQKmer parses a string of 1..32 IUPAC ambiguity codes
// (case-insensitive).
func ParseQKmer(s string) (QKmer, error) {
	if len(s) == 0 {
		return QKmer{}, newErr(LengthOutOfRange, "qkmer string must not be empty")
	}
	if len(s) > MaxK {
		return QKmer{}, newErr(LengthOutOfRange, "qkmer string exceeds %d symbols", MaxK)
	}
	var ac, gt uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		p, ok := iupacEncode[c]
		if !ok {
			return QKmer{}, newErr(InvalidSymbol, "byte %q at position %d is not a valid IUPAC code", s[i], i)
		}
		ac = (ac << 2) | uint64(p.ac)
		gt = (gt << 2) | uint64(p.gt)
	}
	return QKmer{Ac: ac, Gt: gt, K: uint8(len(s))}, nil
}

// String renders the QK-mer back to its canonical uppercase form.
func (q QKmer) String() string {
	if q.K == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(q.K))
	for i := 0; i < int(q.K); i++ {
		shift := uint(int(q.K)-i-1) * 2
		p := iupacPair{ac: byte(q.Ac>>shift) & 0b11, gt: byte(q.Gt>>shift) & 0b11}
		sb.WriteByte(iupacDecode[p])
	}
	return sb.String()
}

// FirstKQ returns the QK-mer formed by the first j symbols of q. It is
// an error for j to exceed q.K.
func FirstKQ(q QKmer, j uint8) (QKmer, error) {
	if j > q.K {
		return QKmer{}, newErr(PrefixTooLong, "j=%d exceeds k=%d", j, q.K)
	}
	shift := 2 * uint(q.K-j)
	return QKmer{Ac: q.Ac >> shift, Gt: q.Gt >> shift, K: j}, nil
}

// nibblesFromKmer builds the one-hot (ac,gt) nibble representation of a
// K-mer, the form QK-mer containment compares against. Uses the
// bit-twiddling trick from the original implementation: isolate T, A, C,
// G pairs via the masks 0x3333..., 0xCCCC..., 0x5555..., 0xAAAA....
func nibblesFromKmer(m Kmer) (ac, gt uint64) {
	const (
		oddPairMask  = 0x3333333333333333
		evenPairMask = 0xCCCCCCCCCCCCCCCC
	)
	v := m.Value

	tOdd := v & oddPairMask
	tEven := v & evenPairMask
	t := tOdd&(tOdd>>1) | tEven&(tEven>>1)

	aOdd := ^v & oddPairMask
	aEven := ^v & evenPairMask
	a := aOdd&(aOdd>>1) | aEven&(aEven>>1)
	a <<= 1

	const (
		zeroOneMask = 0x5555555555555555
		oneZeroMask = 0xAAAAAAAAAAAAAAAA
	)
	c := v & zeroOneMask & ^t
	g := (v & oneZeroMask) >> 1 & ^t
	g <<= 1

	lengthMask := uint64(1)<<(2*uint(m.K)) - 1
	ac = (a | c) & lengthMask
	gt = (g | t) & lengthMask
	return ac, gt
}

// ContainsEqualLength reports whether q accepts K-mer m, requiring
// q.K == m.K exactly. This is the strict qkmer_contains semantics: a
// QK-mer and a K-mer of different lengths never match.
func ContainsEqualLength(q QKmer, m Kmer) bool {
	if q.K != m.K {
		return false
	}
	ac, gt := nibblesFromKmer(m)
	return (ac&q.Ac) == ac && (gt&q.Gt) == gt
}

// ContainsPrefix reports whether the first n symbols of q accept the
// first n symbols of m. Unlike ContainsEqualLength, this truncates both
// operands to n symbols before comparing -- the semantics used while
// descending the SPT index, where reconstructed values are partial.
// n must not exceed min(q.K, m.K).
func ContainsPrefix(q QKmer, m Kmer, n uint8) bool {
	fq, err := FirstKQ(q, n)
	if err != nil {
		return false
	}
	fm, err := FirstK(m, n)
	if err != nil {
		return false
	}
	return ContainsEqualLength(fq, fm)
}
