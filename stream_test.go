package bio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinhash/nucleospt"
)

func TestKmerStreamS3(t *testing.T) {
	d, err := bio.ParseDNA("ACGTACG")
	require.NoError(t, err)
	ms, err := bio.Kmers(d, 3)
	require.NoError(t, err)
	var got []string
	for _, m := range ms {
		got = append(got, m.String())
	}
	assert.Equal(t, []string{"ACG", "CGT", "GTA", "TAC", "ACG"}, got)
}

func TestKmerStreamKTooLargeIsEmptyNotError(t *testing.T) {
	d, _ := bio.ParseDNA("ACG")
	ms, err := bio.Kmers(d, 10)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestKmerStreamRejectsKOutOfRange(t *testing.T) {
	d, _ := bio.ParseDNA("ACG")
	_, err := bio.NewKmerStream(d, 0)
	assert.ErrorIs(t, err, bio.ErrKmerStreamK)
	_, err = bio.NewKmerStream(d, 33)
	assert.ErrorIs(t, err, bio.ErrKmerStreamK)
}

func TestKmerStreamNotRestartable(t *testing.T) {
	d, _ := bio.ParseDNA("ACGT")
	s, err := bio.NewKmerStream(d, 2)
	require.NoError(t, err)
	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "AC", first.String())
	// draining continues from where it left off, it does not restart
	var rest []string
	for {
		m, ok := s.Next()
		if !ok {
			break
		}
		rest = append(rest, m.String())
	}
	assert.Equal(t, []string{"CG", "GT"}, rest)
}
