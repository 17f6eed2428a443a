package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58(t *testing.T) {
	const s = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	p, err := TryPubkeyFromBase58(s)
	require.NoError(t, err)
	assert.Equal(t, s, p.String())
	assert.Len(t, p.Bytes(), PubkeyLength)

	q, err := TryPubkeyFromBytes(p.Bytes())
	require.NoError(t, err)
	assert.True(t, p.Equals(q))

	_, err = TryPubkeyFromBase58("abc")
	assert.Error(t, err)
	_, err = TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)
	_, err = TryPubkeyFromBytes(make([]byte, 31))
	assert.Error(t, err)

	assert.Panics(t, func() { PubkeyFromBase58("abc") })
	assert.Equal(t, "11111111111111111111111111111111", Pubkey{}.String())
}

func TestHash(t *testing.T) {
	var h Hash
	h[0] = 1
	assert.Equal(t, Pubkey(h), h.Pubkey())

	parsed, err := HashFromBase58(h.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(h))

	_, err = HashFromBase58("abc")
	assert.Error(t, err)
}
