// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MarshalBinary encodes the DNA value as a 32-bit big-endian length
// prefix followed by that many raw octets: the first octet is the
// tail-symbol tag, the rest are the packed data bytes.
func (d DNA) MarshalBinary() ([]byte, error) {
	payload := append([]byte{d.lengthTag}, d.bytes...)
	out := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(out, uint32(len(payload)))
	copy(out[4:], payload)
	return out, nil
}

// UnmarshalBinary decodes a DNA value from the wire format produced by
// MarshalBinary.
func (d *DNA) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("bio: dna wire format truncated (need 4-byte length prefix, got %d bytes)", len(data))
	}
	n := binary.BigEndian.Uint32(data)
	rest := data[4:]
	if uint32(len(rest)) != n {
		return fmt.Errorf("bio: dna wire format length mismatch (prefix says %d, got %d)", n, len(rest))
	}
	if n == 0 {
		return fmt.Errorf("bio: dna wire format missing tail-tag byte")
	}
	d.lengthTag = rest[0]
	d.bytes = append([]byte(nil), rest[1:]...)
	return nil
}

// WriteTo writes the wire format of the K-mer: a 64-bit big-endian
// Value followed by an 8-bit K.
func (m Kmer) WriteTo(w io.Writer) (int64, error) {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], m.Value)
	buf[8] = m.K
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadKmerFrom reads a K-mer in the wire format produced by WriteTo.
func ReadKmerFrom(r io.Reader) (Kmer, error) {
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Kmer{}, err
	}
	return Kmer{Value: binary.BigEndian.Uint64(buf[:8]), K: buf[8]}, nil
}

// WriteTo writes the wire format of the QK-mer: 64-bit Ac, 64-bit Gt,
// 8-bit K, all big-endian.
func (q QKmer) WriteTo(w io.Writer) (int64, error) {
	var buf [17]byte
	binary.BigEndian.PutUint64(buf[:8], q.Ac)
	binary.BigEndian.PutUint64(buf[8:16], q.Gt)
	buf[16] = q.K
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadQKmerFrom reads a QK-mer in the wire format produced by WriteTo.
func ReadQKmerFrom(r io.Reader) (QKmer, error) {
	var buf [17]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return QKmer{}, err
	}
	return QKmer{
		Ac: binary.BigEndian.Uint64(buf[:8]),
		Gt: binary.BigEndian.Uint64(buf[8:16]),
		K:  buf[16],
	}, nil
}
