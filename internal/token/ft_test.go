package token_test

import (
	"encoding/json"
	"testing"

	"github.com/nearkit/nearctl/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFTInitArgsDefaultMeta(t *testing.T) {
	args := token.FTInitArgs{
		OwnerID:     "alice.testnet",
		TotalSupply: "1000000000000000",
	}
	require.NoError(t, args.Validate())
	assert.Equal(t, "new_default_meta", args.InitMethod())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner_id":"alice.testnet","total_supply":"1000000000000000"}`, string(data))
}

func TestFTInitArgsWithMetadata(t *testing.T) {
	meta := token.DefaultFTMetadata()
	args := token.FTInitArgs{
		OwnerID:     "alice.testnet",
		TotalSupply: "100",
		Metadata:    &meta,
	}
	require.NoError(t, args.Validate())
	assert.Equal(t, "new", args.InitMethod())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"owner_id": "alice.testnet",
		"total_supply": "100",
		"metadata": {
			"spec": "ft-1.0.0",
			"name": "Meta Gallery token",
			"symbol": "METAG",
			"decimals": 24
		}
	}`, string(data))
}

func TestFTInitArgsValidation(t *testing.T) {
	assert.Error(t, token.FTInitArgs{TotalSupply: "1"}.Validate())
	assert.Error(t, token.FTInitArgs{OwnerID: "a.testnet"}.Validate())
	assert.Error(t, token.FTInitArgs{OwnerID: "a.testnet", TotalSupply: "-1"}.Validate())
	assert.Error(t, token.FTInitArgs{OwnerID: "a.testnet", TotalSupply: "1.5"}.Validate())
	assert.Error(t, token.FTInitArgs{OwnerID: "a.testnet", TotalSupply: "007"}.Validate())
}

func TestFTInitArgsU128Bounds(t *testing.T) {
	// 39 digits is still acceptable; 40 is not.
	ok := token.FTInitArgs{OwnerID: "a.testnet", TotalSupply: "340282366920938463463374607431768211455"}
	assert.NoError(t, ok.Validate())

	tooLong := token.FTInitArgs{OwnerID: "a.testnet", TotalSupply: "3402823669209384634633746074317682114550"}
	assert.Error(t, tooLong.Validate())
}

func TestFTMetadataValidate(t *testing.T) {
	meta := token.DefaultFTMetadata()
	assert.NoError(t, meta.Validate())

	bad := meta
	bad.Spec = "ft-2.0.0"
	assert.ErrorIs(t, bad.Validate(), token.ErrInvalidMetadata)

	bad = meta
	bad.Name = ""
	assert.ErrorIs(t, bad.Validate(), token.ErrInvalidMetadata)

	bad = meta
	bad.Symbol = ""
	assert.ErrorIs(t, bad.Validate(), token.ErrInvalidMetadata)

	bad = meta
	bad.Decimals = 39
	assert.ErrorIs(t, bad.Validate(), token.ErrInvalidMetadata)

	bad = meta
	bad.Reference = token.Str("https://example.com/meta.json")
	assert.ErrorIs(t, bad.Validate(), token.ErrInvalidMetadata)
}

func TestFTTransferArgs(t *testing.T) {
	args := token.FTTransferArgs{ReceiverID: "bob.testnet", Amount: "100"}
	require.NoError(t, args.Validate())

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"receiver_id":"bob.testnet","amount":"100"}`, string(data))

	assert.Error(t, token.FTTransferArgs{Amount: "1"}.Validate())
	assert.Error(t, token.FTTransferArgs{ReceiverID: "bob.testnet", Amount: ""}.Validate())
}

func TestStorageDepositArgsOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(token.StorageDepositArgs{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	data, err = json.Marshal(token.StorageDepositArgs{AccountID: "bob.testnet", RegistrationOnly: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_id":"bob.testnet","registration_only":true}`, string(data))
}
