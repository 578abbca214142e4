package bio_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kelvinhash/nucleospt"
)

func TestParseKmerS1(t *testing.T) {
	m, err := bio.ParseKmer("ACGT")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), m.K)
	assert.Equal(t, uint64(0b00011011), m.Value)
	assert.Equal(t, "ACGT", m.String())
}

func TestParseKmerRejectsEmpty(t *testing.T) {
	_, err := bio.ParseKmer("")
	assert.ErrorIs(t, err, bio.ErrLengthOutOfRange)
}

func TestParseKmerRejectsTooLong(t *testing.T) {
	_, err := bio.ParseKmer("ACGTACGTACGTACGTACGTACGTACGTACGTA") // 33 chars
	assert.ErrorIs(t, err, bio.ErrLengthOutOfRange)
}

func TestParseKmerRejectsInvalidSymbol(t *testing.T) {
	_, err := bio.ParseKmer("ACGX")
	assert.ErrorIs(t, err, bio.ErrInvalidSymbol)
}

func TestParseKmerCaseInsensitive(t *testing.T) {
	m, err := bio.ParseKmer("acgt")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", m.String())
}

func TestStartsWithS4(t *testing.T) {
	acgtac, _ := bio.ParseKmer("ACGTAC")
	acg, _ := bio.ParseKmer("ACG")
	agg, _ := bio.ParseKmer("AGG")
	assert.True(t, bio.StartsWith(acgtac, acg))
	assert.False(t, bio.StartsWith(acgtac, agg))
}

func TestFirstKLastKRoundTrip(t *testing.T) {
	m, _ := bio.ParseKmer("ACGTACGT")
	first, err := bio.FirstK(m, 3)
	require.NoError(t, err)
	assert.Equal(t, "ACG", first.String())
	last := bio.LastK(m, 5)
	assert.Equal(t, "TACGT", last.String())
}

func TestFirstKRejectsTooLong(t *testing.T) {
	m, _ := bio.ParseKmer("ACGT")
	_, err := bio.FirstK(m, 5)
	assert.ErrorIs(t, err, bio.ErrPrefixTooLong)
}

func TestCommonPrefixLen(t *testing.T) {
	a, _ := bio.ParseKmer("ACGTACGT")
	b, _ := bio.ParseKmer("ACGTTTTT")
	assert.Equal(t, uint8(4), bio.CommonPrefixLen(a, b))
}

func TestHashDeterministicAndRespectsEquality(t *testing.T) {
	a, _ := bio.ParseKmer("ACGTACGT")
	b, _ := bio.ParseKmer("ACGTACGT")
	assert.Equal(t, bio.Hash(a), bio.Hash(b))
	assert.Equal(t, bio.Hash(a), bio.Hash(a))
}

func TestHashAtK32DoesNotPanic(t *testing.T) {
	s := "ACGTACGTACGTACGTACGTACGTACGTACGT" // 32 symbols
	m, err := bio.ParseKmer(s)
	require.NoError(t, err)
	assert.NotPanics(t, func() { bio.Hash(m) })
}

// --- property-based tests (spec.md S8) ---

func kmerGen(maxK int) *rapid.Generator[string] {
	return rapid.StringMatching(`^[ACGT]{1,` + strconv.Itoa(maxK) + `}$`)
}

func TestRoundTripParseRender(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := kmerGen(32).Draw(rt, "s")
		m, err := bio.ParseKmer(s)
		require.NoError(rt, err)
		assert.Equal(rt, s, m.String())
		assert.Equal(rt, len(s), int(m.K))
		assert.Less(rt, m.Value, uint64(1)<<(2*uint(len(s))))
	})
}

func TestCommonPrefixLenProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sa := kmerGen(16).Draw(rt, "a")
		sb := kmerGen(16).Draw(rt, "b")
		a, _ := bio.ParseKmer(sa)
		b, _ := bio.ParseKmer(sb)
		cpl := bio.CommonPrefixLen(a, b)
		minK := a.K
		if b.K < minK {
			minK = b.K
		}
		require.LessOrEqual(rt, cpl, minK)
		fa, _ := bio.FirstK(a, cpl)
		fb, _ := bio.FirstK(b, cpl)
		assert.Equal(rt, fa.String(), fb.String())
	})
}

func TestStartsWithImpliesCommonPrefix(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sa := kmerGen(20).Draw(rt, "a")
		prefixLen := rapid.IntRange(1, len(sa)).Draw(rt, "plen")
		a, _ := bio.ParseKmer(sa)
		p, err := bio.FirstK(a, uint8(prefixLen))
		require.NoError(rt, err)
		require.True(rt, bio.StartsWith(a, p))
		assert.GreaterOrEqual(rt, bio.CommonPrefixLen(a, p), p.K)
	})
}
