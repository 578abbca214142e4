// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package bio defines packed representations for DNA, K-mer, and QK-mer
// values and the algebra over them. See the spgist subpackage for the
// space-partitioned radix trie that indexes K-mers.
package bio

import "strings"

// The four Sigma4 symbols, packed 2 bits per symbol, most significant
// pair first within a byte.
const (
	symA byte = 0b00
	symC byte = 0b01
	symG byte = 0b10
	symT byte = 0b11
)

var symToByte = [4]byte{symA: 'A', symC: 'C', symG: 'G', symT: 'T'}

func encodeSym(c byte) (byte, bool) {
	switch c {
	case 'A', 'a':
		return symA, true
	case 'C', 'c':
		return symC, true
	case 'G', 'g':
		return symG, true
	case 'T', 't':
		return symT, true
	default:
		return 0, false
	}
}

// DNA is a variable-length packed Sigma4 string: one header byte giving
// the number of valid symbols in the final data byte (1..4), followed by
// ceil(length/4) data bytes, four symbols per byte MSB-first. Padding
// pairs in the tail byte are encoded as A (00) but are not part of the
// value.
type DNA struct {
	lengthTag byte
	bytes     []byte
}

// Len returns the true symbol length of the DNA value.
func (d DNA) Len() int {
	if len(d.bytes) == 0 {
		return 0
	}
	return len(d.bytes)*4 - (4 - int(d.lengthTag))
}

// ParseDNA parses a non-empty string over {A,C,G,T}, case-insensitive.
// It rejects empty strings and any character outside the alphabet.
func ParseDNA(s string) (DNA, error) {
	if len(s) == 0 {
		return DNA{}, newErr(EmptyDNA, "dna string must not be empty")
	}
	n := (len(s) + 3) / 4
	out := make([]byte, n)
	for i := 0; i < len(s); i += 4 {
		var b byte
		for j := 0; j < 4; j++ {
			b <<= 2
			if i+j < len(s) {
				sym, ok := encodeSym(s[i+j])
				if !ok {
					return DNA{}, newErr(InvalidSymbol, "byte %q at position %d is not in {A,C,G,T}", s[i+j], i+j)
				}
				b |= sym
			}
		}
		out[i/4] = b
	}
	tag := byte(len(s) % 4)
	if tag == 0 {
		tag = 4
	}
	return DNA{lengthTag: tag, bytes: out}, nil
}

// String renders the DNA value back to its canonical uppercase form.
func (d DNA) String() string {
	length := d.Len()
	if length == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < len(d.bytes); i++ {
		b := d.bytes[i]
		n := 4
		if i == len(d.bytes)-1 {
			n = int(d.lengthTag)
		}
		for j := 0; j < n; j++ {
			shift := uint(6 - j*2)
			sb.WriteByte(symToByte[(b>>shift)&0b11])
		}
	}
	return sb.String()
}

// symbolAt returns the 2-bit symbol at position i (0-indexed from the
// start of the sequence). Callers must ensure 0 <= i < d.Len().
func (d DNA) symbolAt(i int) byte {
	byteIdx := i / 4
	sub := i % 4
	shift := uint(6 - sub*2)
	return (d.bytes[byteIdx] >> shift) & 0b11
}
