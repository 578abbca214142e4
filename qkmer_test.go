package bio_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kelvinhash/nucleospt"
)

func TestParseQKmer(t *testing.T) {
	q, err := bio.ParseQKmer("ANGT")
	require.NoError(t, err)
	assert.Equal(t, "ANGT", q.String())
	assert.Equal(t, uint8(4), q.K)
}

func TestParseQKmerRejectsInvalid(t *testing.T) {
	_, err := bio.ParseQKmer("ACGZ")
	assert.ErrorIs(t, err, bio.ErrInvalidSymbol)
}

func TestContainsEqualLengthS5(t *testing.T) {
	q, _ := bio.ParseQKmer("ANGT")
	m1, _ := bio.ParseKmer("ACGT")
	m2, _ := bio.ParseKmer("ATGG")
	assert.True(t, bio.ContainsEqualLength(q, m1))
	assert.False(t, bio.ContainsEqualLength(q, m2)) // last symbol G vs T
}

func TestContainsEqualLengthRequiresEqualLength(t *testing.T) {
	q, _ := bio.ParseQKmer("ANG")
	m, _ := bio.ParseKmer("ACGT")
	assert.False(t, bio.ContainsEqualLength(q, m))
}

func TestNQKmerContainsEveryKmerOfLengthK(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 32).Draw(rt, "k")
		ns := repeat('N', k)
		q, err := bio.ParseQKmer(ns)
		require.NoError(rt, err)
		s := rapid.StringMatching(`^[ACGT]{` + strconv.Itoa(k) + `}$`).Draw(rt, "m")
		m, err := bio.ParseKmer(s)
		require.NoError(rt, err)
		assert.True(rt, bio.ContainsEqualLength(q, m))
	})
}

func TestQKmerContainsEachSymbolInIUPACSet(t *testing.T) {
	cases := map[byte]string{
		'A': "A", 'C': "C", 'G': "G", 'T': "T",
		'W': "AT", 'S': "CG", 'M': "AC", 'K': "GT",
		'R': "AG", 'Y': "CT", 'B': "CGT", 'D': "AGT",
		'H': "ACT", 'V': "ACG", 'N': "ACGT",
	}
	for code, accepted := range cases {
		q, err := bio.ParseQKmer(string(code))
		require.NoError(t, err)
		for _, sym := range "ACGT" {
			m, _ := bio.ParseKmer(string(sym))
			want := containsByte(accepted, byte(sym))
			assert.Equal(t, want, bio.ContainsEqualLength(q, m), "code=%c sym=%c", code, sym)
		}
	}
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}

