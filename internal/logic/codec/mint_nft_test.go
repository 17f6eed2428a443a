package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorDiscriminator(t *testing.T) {
	sum := sha256.Sum256([]byte("global:mint_nft"))
	d := AnchorDiscriminator("mint_nft")
	assert.Equal(t, sum[:8], d[:])
}

func TestEncodeMintNft(t *testing.T) {
	args := MintNftArgs{
		Title:  "YouTube NFT",
		Symbol: "TUBE",
		Uri:    "https://example.com/example.json",
	}
	data, err := EncodeMintNft(args)
	require.NoError(t, err)

	// discriminator + 3 * (u32 长度 + 字节)
	assert.Len(t, data, 8+4+len(args.Title)+4+len(args.Symbol)+4+len(args.Uri))
	assert.Equal(t, uint32(len(args.Title)), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, args.Title, string(data[12:12+len(args.Title)]))

	decoded, err := DecodeMintNft(data)
	require.NoError(t, err)
	assert.Equal(t, args, decoded)
}

func TestDecodeMintNft_Errors(t *testing.T) {
	_, err := DecodeMintNft([]byte{1, 2})
	assert.ErrorIs(t, err, ErrMalformedBuffer)

	_, err = DecodeMintNft(make([]byte, 16))
	assert.ErrorIs(t, err, ErrUnknownOperation)

	data, err := EncodeMintNft(MintNftArgs{Title: "t", Symbol: "s", Uri: "u"})
	require.NoError(t, err)
	_, err = DecodeMintNft(data[:len(data)-2])
	assert.ErrorIs(t, err, ErrMalformedBuffer)
}
