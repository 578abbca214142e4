package bio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinhash/nucleospt"
)

func TestFindAllExact(t *testing.T) {
	seq, err := bio.ParseDNA("ACGTACGTACG")
	require.NoError(t, err)
	motif, err := bio.ParseKmer("ACG")
	require.NoError(t, err)
	positions, err := bio.FindAll(seq, motif)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, positions)
}

func TestFindAllWithinMismatches(t *testing.T) {
	seq, err := bio.ParseDNA("ACGTACGG")
	require.NoError(t, err)
	motif, err := bio.ParseKmer("ACGT")
	require.NoError(t, err)
	positions, err := bio.FindAllWithin(seq, motif, 1)
	require.NoError(t, err)
	// exact match at 0, "ACGG" at position 4 differs by one symbol (T vs G)
	assert.Equal(t, []int{0, 4}, positions)
}

func TestFindAllWithinZeroMismatchesMatchesExact(t *testing.T) {
	seq, err := bio.ParseDNA("AAAA")
	require.NoError(t, err)
	motif, err := bio.ParseKmer("AC")
	require.NoError(t, err)
	positions, err := bio.FindAllWithin(seq, motif, 0)
	require.NoError(t, err)
	assert.Empty(t, positions)
}
