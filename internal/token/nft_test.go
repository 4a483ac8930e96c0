package token_test

import (
	"encoding/json"
	"testing"

	"github.com/nearkit/nearctl/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFTInitArgsDefaultMeta(t *testing.T) {
	args := token.NFTInitArgs{OwnerID: "alice.testnet"}
	require.NoError(t, args.Validate())
	assert.Equal(t, "new_default_meta", args.InitMethod())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner_id":"alice.testnet"}`, string(data))
}

func TestNFTInitArgsWithMetadata(t *testing.T) {
	meta := token.DefaultNFTMetadata()
	meta.BaseURI = token.Str("https://media.example.com")
	args := token.NFTInitArgs{OwnerID: "alice.testnet", Metadata: &meta}

	require.NoError(t, args.Validate())
	assert.Equal(t, "new", args.InitMethod())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"owner_id": "alice.testnet",
		"metadata": {
			"spec": "nft-1.0.0",
			"name": "Meta Gallery NFT",
			"symbol": "METAG",
			"base_uri": "https://media.example.com"
		}
	}`, string(data))
}

func TestNFTInitArgsValidation(t *testing.T) {
	assert.Error(t, token.NFTInitArgs{}.Validate())

	bad := token.NFTContractMetadata{Spec: "nft-9", Name: "x", Symbol: "X"}
	assert.ErrorIs(t, token.NFTInitArgs{OwnerID: "a.testnet", Metadata: &bad}.Validate(), token.ErrInvalidMetadata)
}

func TestNFTMintArgs(t *testing.T) {
	args := token.NFTMintArgs{
		TokenID:    "gallery-0",
		ReceiverID: "alice.testnet",
		TokenMetadata: token.TokenMetadata{
			Title:       token.Str("Gallery Piece #0"),
			Description: token.Str("First piece of the gallery"),
			Media:       token.Str("https://media.example.com/0.png"),
		},
	}
	require.NoError(t, args.Validate())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"token_id": "gallery-0",
		"receiver_id": "alice.testnet",
		"token_metadata": {
			"title": "Gallery Piece #0",
			"description": "First piece of the gallery",
			"media": "https://media.example.com/0.png"
		}
	}`, string(data))
}

func TestNFTMintArgsValidation(t *testing.T) {
	assert.Error(t, token.NFTMintArgs{ReceiverID: "a.testnet"}.Validate())
	assert.Error(t, token.NFTMintArgs{TokenID: "t0"}.Validate())
}

func TestTokenMetadataOmitsUnset(t *testing.T) {
	data, err := json.Marshal(token.TokenMetadata{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestTokensForOwnerArgs(t *testing.T) {
	limit := uint64(10)
	args := token.TokensForOwnerArgs{
		AccountID: "alice.testnet",
		FromIndex: token.Str("0"),
		Limit:     &limit,
	}
	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_id":"alice.testnet","from_index":"0","limit":10}`, string(data))
}
