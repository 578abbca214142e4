// Package bio defines compact, packed representations of three
// biological-sequence value types -- DNA, K-mer, and QK-mer -- and the
// algebra over them.
//
// DNA holds an arbitrary-length Sigma4 ({A,C,G,T}) string packed two
// bits per symbol. Kmer holds a fixed-length (<=32 symbol) Sigma4
// string packed into a single 64-bit word, ordered left-aligned so
// K-mers compare and hash the way their text renderings would. QKmer
// holds a fixed-length (<=32 symbol) string over the 15-letter IUPAC
// ambiguity alphabet, packed as a pair of 64-bit symbol masks, and
// supports containment queries against a K-mer of the same length.
//
// The spgist subpackage builds on these types to implement the
// operators of a space-partitioned radix trie (SPT): choose,
// pick-split, inner-consistent, and leaf-consistent, plus a concrete
// in-memory index driving them end to end for exact, prefix, and
// ambiguity-match queries.
package bio
