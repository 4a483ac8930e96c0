package account_test

import (
	"testing"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIDAccepts(t *testing.T) {
	valid := []string{
		"alice.testnet",
		"ft.alice.testnet",
		"nft.alice.testnet",
		"bob",
		"a1",
		"dev-1660000000000-12345678",
		"sub_account.near",
		"0x-looking.near",
	}
	for _, id := range valid {
		assert.NoError(t, account.ValidateID(id), "id %q should be valid", id)
	}
}

func TestValidateIDRejects(t *testing.T) {
	invalid := []string{
		"",
		"a",
		"Alice.testnet",
		".alice.testnet",
		"alice.testnet.",
		"alice..testnet",
		"alice-.testnet",
		"alice testnet",
		"ALICE",
		"has$char",
	}
	for _, id := range invalid {
		assert.ErrorIs(t, account.ValidateID(id), account.ErrInvalidID, "id %q should be invalid", id)
	}
}

func TestValidateIDMaxLength(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, account.ValidateID(string(long)), account.ErrInvalidID)
	assert.NoError(t, account.ValidateID(string(long[:64])))
}

func TestSub(t *testing.T) {
	id, err := account.Sub("ft", "alice.testnet")
	require.NoError(t, err)
	assert.Equal(t, "ft.alice.testnet", id)
}

func TestSubInvalidPrefix(t *testing.T) {
	_, err := account.Sub("FT", "alice.testnet")
	assert.ErrorIs(t, err, account.ErrInvalidID)
}

func TestIsSubOf(t *testing.T) {
	assert.True(t, account.IsSubOf("ft.alice.testnet", "alice.testnet"))
	assert.True(t, account.IsSubOf("a.ft.alice.testnet", "alice.testnet"))
	assert.False(t, account.IsSubOf("alice.testnet", "alice.testnet"))
	assert.False(t, account.IsSubOf("malice.testnet", "alice.testnet"))
}
