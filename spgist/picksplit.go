// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package spgist

import (
	"sort"

	"github.com/kelvinhash/nucleospt"
)

// PickSplitIn is a page of K-mers awaiting partition into a new node.
type PickSplitIn struct {
	Datums []bio.Kmer
}

// PickSplitOut is the new node's shape: an optional shared prefix, the
// distinct child labels it gained, and for each input datum which
// output node it landed in and what leaf datum it carries there.
type PickSplitOut struct {
	HasPrefix        bool
	PrefixDatum      bio.Kmer
	NodeLabels       []int16
	MapTuplesToNodes []int
	LeafTupleDatums  []bio.Kmer
}

// PickSplit implements §4.D.3.
func PickSplit(in PickSplitIn) PickSplitOut {
	n := len(in.Datums)
	if n == 0 {
		return PickSplitOut{}
	}

	var cpl uint8
	if n == 1 {
		cpl = in.Datums[0].K
	} else {
		cpl = in.Datums[0].K
		for i := 1; i < n; i++ {
			if c := bio.CommonPrefixLen(in.Datums[0], in.Datums[i]); c < cpl {
				cpl = c
			}
		}
	}

	var out PickSplitOut
	if cpl > 0 {
		out.PrefixDatum, _ = bio.FirstK(in.Datums[0], cpl)
		out.HasPrefix = true
	}

	labels := make([]int16, n)
	for i, m := range in.Datums {
		if m.K == cpl {
			labels[i] = -1
		} else {
			labels[i] = int16(m.SymbolAt(int(cpl)))
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return labels[order[a]] < labels[order[b]] })

	out.NodeLabels = nil
	out.MapTuplesToNodes = make([]int, n)
	out.LeafTupleDatums = make([]bio.Kmer, n)

	nodeOf := make(map[int16]int)
	for _, i := range order {
		nodeIdx, ok := nodeOf[labels[i]]
		if !ok {
			nodeIdx = len(out.NodeLabels)
			out.NodeLabels = append(out.NodeLabels, labels[i])
			nodeOf[labels[i]] = nodeIdx
		}
		out.MapTuplesToNodes[i] = nodeIdx

		m := in.Datums[i]
		if cpl < m.K {
			out.LeafTupleDatums[i] = bio.LastK(m, m.K-cpl-1)
		} else {
			out.LeafTupleDatums[i] = bio.Kmer{}
		}
	}

	return out
}
