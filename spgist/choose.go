// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package spgist

import (
	"github.com/kelvinhash/nucleospt"
)

// ChooseIn is the input to Choose: the K-mer being inserted, how many
// symbols of it the path to this node has already consumed, the
// node's optional shared prefix, and its sorted child labels.
type ChooseIn struct {
	Datum       bio.Kmer
	Level       int
	HasPrefix   bool
	PrefixDatum bio.Kmer
	NodeLabels  []int16 // sorted ascending
	AllTheSame  bool
}

// ChooseResult is one of MatchNodeResult, AddNodeResult, or
// SplitTupleResult.
type ChooseResult interface {
	isChooseResult()
}

// MatchNodeResult descends into an existing child.
type MatchNodeResult struct {
	NodeIndex int
	LevelAdd  int
	RestDatum bio.Kmer
}

func (MatchNodeResult) isChooseResult() {}

// AddNodeResult asks the driver to create a new child slot labeled
// Label at position InsertAt (preserving sort order) and retry.
type AddNodeResult struct {
	Label    int16
	InsertAt int
}

func (AddNodeResult) isChooseResult() {}

// SplitTupleResult asks the driver to reparent the current node: a new
// prefix node takes its place, with one child (labeled
// PrefixNodeLabels[0]) pointing at the old node, whose own prefix
// shrinks to PostfixPrefixDatum.
type SplitTupleResult struct {
	PrefixHasPrefix    bool
	PrefixPrefixDatum  bio.Kmer
	PrefixNodeLabels   []int16
	PostfixHasPrefix   bool
	PostfixPrefixDatum bio.Kmer
}

func (SplitTupleResult) isChooseResult() {}

// Choose implements §4.D.2: decide how to route datum x into a node
// currently holding level consumed symbols, an optional prefix, and a
// set of child labels.
func Choose(in ChooseIn) (ChooseResult, error) {
	tail := bio.LastK(in.Datum, subNonNeg(in.Datum.K, in.Level))

	if !in.HasPrefix {
		return chooseAtLevel(in.Datum, in.Level, in.NodeLabels, in.AllTheSame)
	}

	c := bio.CommonPrefixLen(tail, in.PrefixDatum)
	if c == in.PrefixDatum.K {
		return chooseAtLevel(in.Datum, in.Level+int(in.PrefixDatum.K), in.NodeLabels, in.AllTheSame)
	}

	// tail and the node's prefix diverge before the prefix ends:
	// reparent the node behind a new, shorter shared prefix.
	P := in.PrefixDatum
	var prefixHasPrefix bool
	var prefixPrefixDatum bio.Kmer
	if c > 0 {
		prefixPrefixDatum, _ = bio.FirstK(P, c)
		prefixHasPrefix = true
	}
	label := int16(P.SymbolAt(int(c)))

	var postfixHasPrefix bool
	var postfixPrefixDatum bio.Kmer
	if P.K-c != 1 {
		postfixPrefixDatum = bio.LastK(P, P.K-c-1)
		postfixHasPrefix = true
	}

	return SplitTupleResult{
		PrefixHasPrefix:    prefixHasPrefix,
		PrefixPrefixDatum:  prefixPrefixDatum,
		PrefixNodeLabels:   []int16{label},
		PostfixHasPrefix:   postfixHasPrefix,
		PostfixPrefixDatum: postfixPrefixDatum,
	}, nil
}

// chooseAtLevel implements the no-prefix case of §4.D.2 (case 1),
// reused by the prefix-present case once the node's own prefix has
// been confirmed to match (case 2, c = P.k).
func chooseAtLevel(x bio.Kmer, level int, nodeLabels []int16, allTheSame bool) (ChooseResult, error) {
	var s int16 = -1
	if level < int(x.K) {
		s = int16(x.SymbolAt(level))
	}

	pos, found := searchLabel(nodeLabels, s)
	if found {
		levelAdd := 1
		if s == -1 {
			levelAdd = 0
		}
		rest := bio.LastK(x, subNonNeg(x.K, level+levelAdd))
		return MatchNodeResult{NodeIndex: pos, LevelAdd: levelAdd, RestDatum: rest}, nil
	}

	if allTheSame {
		return SplitTupleResult{
			PrefixNodeLabels: []int16{-2},
		}, nil
	}

	return AddNodeResult{Label: s, InsertAt: pos}, nil
}

// subNonNeg returns uint8(max(0, a-b)); last_k's second argument is
// always a non-negative symbol count even when b could in principle
// exceed a (it shouldn't, for well-formed input, but this keeps the
// subtraction from wrapping around uint8).
func subNonNeg(a uint8, b int) uint8 {
	if int(a) <= b {
		return 0
	}
	return a - uint8(b)
}
