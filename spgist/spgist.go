// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package spgist implements the space-partitioned radix trie operators
// over packed K-mers: config, choose, pick-split, inner-consistent, and
// leaf-consistent. Each operator is a pure function taking an in{} and
// returning an out{} struct, mirroring the operator-class callback
// surface of the system this trie is modeled on, so a future host
// binding is a thin adapter rather than a rewrite.
//
// Choose outcomes and scan keys are modeled as Go interfaces with
// unexported marker methods rather than a single struct with a tag
// field and a grab-bag of unused members: a MatchNodeResult never has
// split-tuple fields sitting around unset. Pick-split and
// inner-consistent return plain structs.
package spgist

import (
	"sort"

	"github.com/kelvinhash/nucleospt"
)

// Strategy identifies a scan key's comparison semantics.
type Strategy int

const (
	Equal      Strategy = 1
	Prefix     Strategy = 2
	QKmerMatch Strategy = 3
)

// Config describes the fixed shape of this trie's operator class, per
// spec §4.D.1. It carries no state; it exists so callers (and tests)
// have one place to name the declared shape.
type Config struct {
	PrefixType    string // "Kmer"
	LabelType     string // "int16"
	CanReturnData bool
	LongValuesOK  bool
}

// DefaultConfig is the operator class's declared configuration.
var DefaultConfig = Config{
	PrefixType:    "Kmer",
	LabelType:     "int16",
	CanReturnData: true,
	LongValuesOK:  false,
}

// ScanKey is a search argument: one of EqualKey, PrefixKey, or
// QKmerMatchKey. The marker method keeps arbitrary types from
// satisfying the interface by accident.
type ScanKey interface {
	isScanKey()
}

type EqualKey struct{ Kmer bio.Kmer }

func (EqualKey) isScanKey() {}

type PrefixKey struct{ Kmer bio.Kmer }

func (PrefixKey) isScanKey() {}

type QKmerMatchKey struct{ QKmer bio.QKmer }

func (QKmerMatchKey) isScanKey() {}

// searchLabel performs the binary search over a sorted label array
// that §4.D.2 calls for. It returns the position of label if present,
// and the insertion point (where addNode should splice a new slot)
// when absent.
func searchLabel(labels []int16, label int16) (pos int, found bool) {
	i := sort.Search(len(labels), func(i int) bool { return labels[i] >= label })
	if i < len(labels) && labels[i] == label {
		return i, true
	}
	return i, false
}
