package spgist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinhash/nucleospt"
	"github.com/kelvinhash/nucleospt/spgist"
)

func TestPickSplitGroupsByFirstNonCommonSymbol(t *testing.T) {
	datums := []bio.Kmer{
		kmer(t, "ACG"),
		kmer(t, "ACT"),
		kmer(t, "AGT"),
	}
	out := spgist.PickSplit(spgist.PickSplitIn{Datums: datums})
	require.True(t, out.HasPrefix)
	assert.Equal(t, "A", out.PrefixDatum.String())
	// distinct first-non-common symbols (at position 1): C, C, G -> 2 groups
	assert.Equal(t, []int16{1, 2}, out.NodeLabels) // C=1, G=2
	assert.Equal(t, 0, out.MapTuplesToNodes[0])
	assert.Equal(t, 0, out.MapTuplesToNodes[1])
	assert.Equal(t, 1, out.MapTuplesToNodes[2])
	assert.Equal(t, "G", out.LeafTupleDatums[0].String())
	assert.Equal(t, "T", out.LeafTupleDatums[1].String())
	assert.Equal(t, "T", out.LeafTupleDatums[2].String())
}

func TestPickSplitSingleDatumPrefixesItself(t *testing.T) {
	out := spgist.PickSplit(spgist.PickSplitIn{Datums: []bio.Kmer{kmer(t, "ACGT")}})
	require.True(t, out.HasPrefix)
	assert.Equal(t, "ACGT", out.PrefixDatum.String())
	assert.Equal(t, []int16{-1}, out.NodeLabels)
	assert.Equal(t, uint8(0), out.LeafTupleDatums[0].K)
}

func TestPickSplitTerminatorAndContinuationShareLabelSpace(t *testing.T) {
	datums := []bio.Kmer{
		kmer(t, "AC"),   // ends exactly at cpl
		kmer(t, "ACG"),  // continues with G
		kmer(t, "ACT"),  // continues with T
	}
	out := spgist.PickSplit(spgist.PickSplitIn{Datums: datums})
	assert.Equal(t, "AC", out.PrefixDatum.String())
	assert.Equal(t, []int16{-1, 2, 3}, out.NodeLabels) // terminator, G, T
	assert.Equal(t, 0, out.MapTuplesToNodes[0])
	assert.Equal(t, 1, out.MapTuplesToNodes[1])
	assert.Equal(t, 2, out.MapTuplesToNodes[2])
}
