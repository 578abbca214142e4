// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package fasta streams FASTA records into packed bio.DNA values.
// Grounded in the teacher's FASTAReader (a bufio.Reader-backed,
// header-lookahead reader over raw Seq bytes); adapted here to decode
// into bio.DNA instead of a byte slice, to transparently decompress
// .gz/.bz2 inputs the way pbnjay-goseq's Open does, and to surface the
// codec's own InvalidSymbol/EmptyDNA errors rather than accepting
// anything.
package fasta

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/kelvinhash/nucleospt"
)

// Record is one FASTA entry: its header line (including '>') and its
// decoded sequence.
type Record struct {
	Header string
	Seq    bio.DNA
}

// ID extracts the sequence identifier from the header, the text
// between '>' and the first space.
func (r Record) ID() string {
	if r.Header == "" {
		return ""
	}
	id := r.Header[1:]
	if sp := strings.IndexByte(id, ' '); sp >= 0 {
		return id[:sp]
	}
	return id
}

// Reader streams Records from an io.Reader one at a time.
type Reader struct {
	r          *bufio.Reader
	nextHeader string
	done       bool
}

// NewReader constructs a Reader around r. r is assumed to already be
// decompressed; use Open for transparent .gz/.bz2 handling from a file
// path.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Open opens path, transparently decompressing a .gz or .bz2 suffix,
// and returns a Reader over its contents plus the underlying *os.File
// so the caller can Close it.
func Open(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		r = gz
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(f)
	}

	return NewReader(r), f, nil
}

// ReadRecord returns the next record. It returns io.EOF once the
// input is exhausted, after every prior record has already been
// returned successfully.
func (rd *Reader) ReadRecord() (Record, error) {
	if rd.done {
		return Record{}, io.EOF
	}

	header := rd.nextHeader
	rd.nextHeader = ""
	var seqBytes []byte

	for {
		line, isPrefix, err := rd.r.ReadLine()
		if isPrefix {
			return Record{}, errors.New("fasta: line too long")
		}
		if err != nil {
			rd.done = true
			if err == io.EOF {
				break
			}
			return Record{}, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if header != "" {
				rd.nextHeader = string(line)
				break
			}
			header = string(line)
			continue
		}
		if header == "" {
			return Record{}, errors.New("fasta: sequence data before first header")
		}
		seqBytes = append(seqBytes, line...)
	}

	if header == "" {
		return Record{}, io.EOF
	}
	seq, err := bio.ParseDNA(string(seqBytes))
	if err != nil {
		return Record{}, err
	}
	return Record{Header: header, Seq: seq}, nil
}

// ReadAll drains rd into a slice of every remaining record.
func ReadAll(rd *Reader) ([]Record, error) {
	var out []Record
	for {
		rec, err := rd.ReadRecord()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
