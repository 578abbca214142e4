// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package assembly builds a de Bruijn graph over a stream of
// uniform-length K-mers and extracts contigs from its maximal
// non-branching paths. Grounded in the teacher's
// ReadPairList.DeBruijn/.Contigs (kmerpair.go), adapted from string
// k-mer reads to the packed bio.Kmer type and from read pairs to
// single reads, still wired through github.com/soniakeys/graph for
// both the graph representation and the path walk.
package assembly

import (
	"errors"
	"fmt"

	"github.com/soniakeys/graph"

	"github.com/kelvinhash/nucleospt"
)

// Graph is a de Bruijn graph over (k-1)-mers: Nodes[i] is the
// (k-1)-mer labeling node i, and G is the adjacency structure over
// those node indices, one arc per input K-mer.
type Graph struct {
	G     graph.Directed
	Nodes []bio.Kmer
}

type builder struct {
	index map[uint64]graph.NI
	nodes []bio.Kmer
	g     graph.Directed
}

func newBuilder() *builder {
	return &builder{index: map[uint64]graph.NI{}}
}

func (b *builder) node(m bio.Kmer) graph.NI {
	if n, ok := b.index[m.Value]; ok {
		return n
	}
	n := graph.NI(len(b.nodes))
	b.index[m.Value] = n
	b.nodes = append(b.nodes, m)
	b.g.AdjacencyList = append(b.g.AdjacencyList, nil)
	return n
}

func (b *builder) arc(fr, to graph.NI) {
	b.g.AdjacencyList[fr] = append(b.g.AdjacencyList[fr], to)
}

// Build constructs the de Bruijn graph for a stream of K-mers, all of
// which must share the same K. A graph node is a (k-1)-mer; each input
// K-mer contributes one arc from its first_k(k-1) prefix to its
// last_k(k-1) suffix.
func Build(kmers []bio.Kmer) (Graph, error) {
	if len(kmers) == 0 {
		return Graph{}, nil
	}
	k := kmers[0].K
	if k < 2 {
		return Graph{}, errors.New("assembly: kmers must have k >= 2 to form overlaps")
	}
	b := newBuilder()
	for _, m := range kmers {
		if m.K != k {
			return Graph{}, fmt.Errorf("assembly: kmers of mixed length (%d and %d) in one stream", k, m.K)
		}
		prefix, _ := bio.FirstK(m, k-1)
		suffix := bio.LastK(m, k-1)
		b.arc(b.node(prefix), b.node(suffix))
	}
	return Graph{G: b.g, Nodes: b.nodes}, nil
}

// Contigs builds the de Bruijn graph for kmers and extracts one contig
// per maximal non-branching path, per spec §4.J.
func Contigs(kmers []bio.Kmer) ([]bio.Kmer, error) {
	g, err := Build(kmers)
	if err != nil {
		return nil, err
	}
	var out []bio.Kmer
	var walkErr error
	g.G.MaximalNonBranchingPaths(func(path []graph.NI) bool {
		c, err := overlapKmer(g.Nodes, path)
		if err != nil {
			walkErr = err
			return false
		}
		out = append(out, c)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// overlapKmer reconstructs the contig K-mer walked by path: the first
// node's full (k-1)-mer, followed by the last symbol of every
// subsequent node (each node overlaps its predecessor in all but one
// symbol).
func overlapKmer(nodes []bio.Kmer, path []graph.NI) (bio.Kmer, error) {
	if len(path) == 0 {
		return bio.Kmer{}, errors.New("assembly: empty path")
	}
	first := nodes[path[0]]
	contigK := int(first.K) + len(path) - 1
	if contigK > bio.MaxK {
		return bio.Kmer{}, fmt.Errorf("assembly: contig length %d exceeds %d", contigK, bio.MaxK)
	}
	value := first.Value
	for _, ni := range path[1:] {
		value = (value << 2) | (nodes[ni].Value & 0b11)
	}
	return bio.Kmer{Value: value, K: uint8(contigK)}, nil
}
