package bio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinhash/nucleospt"
)

func TestDNAWireRoundTrip(t *testing.T) {
	d, err := bio.ParseDNA("ACGTACG")
	require.NoError(t, err)
	data, err := d.MarshalBinary()
	require.NoError(t, err)

	var got bio.DNA
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, d.String(), got.String())
}

func TestKmerWireRoundTrip(t *testing.T) {
	m, err := bio.ParseKmer("ACGTACGT")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	got, err := bio.ReadKmerFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestQKmerWireRoundTrip(t *testing.T) {
	q, err := bio.ParseQKmer("ANGTW")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = q.WriteTo(&buf)
	require.NoError(t, err)

	got, err := bio.ReadQKmerFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, q, got)
}
