// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package spgist

import (
	"context"
	"fmt"

	"github.com/kelvinhash/nucleospt"
)

// maxBucket bounds how many leaf tuples a single label slot holds
// before pickSplit turns it into a proper subtree. It is an index
// policy, not a property of the operators above: search correctness
// holds for any value, including one that never splits.
const maxBucket = 4

type leafEntry struct {
	leafDatum bio.Kmer
	full      bio.Kmer
}

type node struct {
	parent       *node
	slotInParent int

	prefix *bio.Kmer
	level  int // symbols consumed from root through this node, including prefix

	labels   []int16
	children []*node
	buckets  [][]leafEntry
}

func (n *node) prefixDatum() bio.Kmer {
	if n.prefix == nil {
		return bio.Kmer{}
	}
	return *n.prefix
}

// Index is an in-memory space-partitioned radix trie over K-mers,
// driven entirely by Choose, PickSplit, InnerConsistent, and
// LeafConsistent. It has no internal locking: concurrent Search calls
// are safe once Insert calls have quiesced, same as the operators'
// own single-writer/many-reader contract.
type Index struct {
	root *node
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

func slotConsumes(label int16) int {
	if label >= 0 {
		return 1
	}
	return 0
}

// Insert adds x to the index.
func (ix *Index) Insert(x bio.Kmer) error {
	if ix.root == nil {
		ix.root = &node{}
	}
	return ix.insertAt(ix.root, x)
}

func (ix *Index) insertAt(n *node, x bio.Kmer) error {
	in := ChooseIn{
		Datum:       x,
		Level:       n.level - int(prefixLenOf(n)),
		HasPrefix:   n.prefix != nil,
		PrefixDatum: n.prefixDatum(),
		NodeLabels:  n.labels,
		AllTheSame:  false, // this index never forces an all-the-same split; see DESIGN.md
	}
	res, err := Choose(in)
	if err != nil {
		return err
	}

	switch r := res.(type) {
	case MatchNodeResult:
		if child := n.children[r.NodeIndex]; child != nil {
			return ix.insertAt(child, x)
		}
		n.buckets[r.NodeIndex] = append(n.buckets[r.NodeIndex], leafEntry{leafDatum: r.RestDatum, full: x})
		if shouldSplit(n.buckets[r.NodeIndex]) {
			ix.splitBucketIntoNode(n, r.NodeIndex)
		}
		return nil

	case AddNodeResult:
		n.insertEmptySlot(r.InsertAt, r.Label)
		return ix.insertAt(n, x)

	case SplitTupleResult:
		ix.applySplit(n, r)
		return ix.insertAt(ix.root, x)

	default:
		return fmt.Errorf("spgist: choose returned unhandled result type %T", res)
	}
}

func (n *node) insertEmptySlot(at int, label int16) {
	n.labels = append(n.labels, 0)
	copy(n.labels[at+1:], n.labels[at:])
	n.labels[at] = label

	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = nil
	for i := at + 1; i < len(n.children); i++ {
		if n.children[i] != nil {
			n.children[i].slotInParent = i
		}
	}

	n.buckets = append(n.buckets, nil)
	copy(n.buckets[at+1:], n.buckets[at:])
	n.buckets[at] = nil
}

func shouldSplit(bucket []leafEntry) bool {
	if len(bucket) <= maxBucket {
		return false
	}
	for _, e := range bucket {
		if e.leafDatum.K > 0 {
			return true
		}
	}
	return false // every entry is an exact duplicate; splitting further makes no progress
}

func (ix *Index) splitBucketIntoNode(n *node, slotIdx int) {
	bucket := n.buckets[slotIdx]
	datums := make([]bio.Kmer, len(bucket))
	for i, e := range bucket {
		datums[i] = e.leafDatum
	}
	out := PickSplit(PickSplitIn{Datums: datums})

	childLevel := n.level + slotConsumes(n.labels[slotIdx])
	if out.HasPrefix {
		childLevel += int(out.PrefixDatum.K)
	}

	child := &node{parent: n, slotInParent: slotIdx, level: childLevel}
	if out.HasPrefix {
		p := out.PrefixDatum
		child.prefix = &p
	}
	child.labels = out.NodeLabels
	child.children = make([]*node, len(out.NodeLabels))
	child.buckets = make([][]leafEntry, len(out.NodeLabels))

	for i, e := range bucket {
		dest := out.MapTuplesToNodes[i]
		child.buckets[dest] = append(child.buckets[dest], leafEntry{leafDatum: out.LeafTupleDatums[i], full: e.full})
	}

	n.children[slotIdx] = child
	n.buckets[slotIdx] = nil
}

// applySplit carries out a SplitTupleResult: n is reparented behind a
// new node taking its old position (root or a specific parent slot).
func (ix *Index) applySplit(n *node, r SplitTupleResult) {
	np := &node{level: n.level}
	if r.PrefixHasPrefix {
		p := r.PrefixPrefixDatum
		np.prefix = &p
		np.level = n.level - int(prefixLenOf(n)) + int(p.K)
	} else {
		np.level = n.level - int(prefixLenOf(n))
	}
	np.labels = []int16{r.PrefixNodeLabels[0]}
	np.children = []*node{n}
	np.buckets = [][]leafEntry{nil}

	if r.PostfixHasPrefix {
		p := r.PostfixPrefixDatum
		n.prefix = &p
	} else {
		n.prefix = nil
	}

	if n.parent == nil {
		ix.root = np
		np.parent = nil
	} else {
		parent := n.parent
		idx := n.slotInParent
		parent.children[idx] = np
		np.parent = parent
		np.slotInParent = idx
	}
	n.parent = np
	n.slotInParent = 0
}

func prefixLenOf(n *node) uint8 {
	if n.prefix == nil {
		return 0
	}
	return n.prefix.K
}

// Search returns every indexed K-mer accepted by the conjunction of
// keys, honoring ctx cancellation: checked once per child considered
// and once per leaf tuple considered.
func (ix *Index) Search(ctx context.Context, keys ...ScanKey) ([]bio.Kmer, error) {
	if ix.root == nil {
		return nil, nil
	}
	var out []bio.Kmer
	if err := ix.searchNode(ctx, ix.root, nil, keys, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ix *Index) searchNode(ctx context.Context, n *node, reconstructed *bio.Kmer, keys []ScanKey, out *[]bio.Kmer) error {
	levelIn := n.level - int(prefixLenOf(n))

	in := InnerConsistentIn{
		ReconstructedValue: reconstructed,
		Level:              levelIn,
		HasPrefix:          n.prefix != nil,
		PrefixDatum:        n.prefixDatum(),
		NodeLabels:         n.labels,
		ScanKeys:           keys,
	}
	res, err := InnerConsistent(in)
	if err != nil {
		return err
	}

	for _, kept := range res.Kept {
		if err := ctx.Err(); err != nil {
			return err
		}
		rv := kept.ReconstructedValue
		if child := n.children[kept.NodeIndex]; child != nil {
			if err := ix.searchNode(ctx, child, &rv, keys, out); err != nil {
				return err
			}
			continue
		}
		for _, e := range n.buckets[kept.NodeIndex] {
			if err := ctx.Err(); err != nil {
				return err
			}
			lres, err := LeafConsistent(LeafConsistentIn{
				LeafDatum:          e.leafDatum,
				ReconstructedValue: rv,
				ScanKeys:           keys,
			})
			if err != nil {
				return err
			}
			if lres.Accepted {
				*out = append(*out, e.full)
			}
		}
	}
	return nil
}
