package secrets_test

import (
	"testing"

	"github.com/nearkit/nearctl/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRoundTrip(t *testing.T) {
	s := secrets.NewInMemory()

	require.NoError(t, s.Set("node-key", "abc123"))

	v, err := s.Get("node-key")
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)
}

func TestInMemoryMissing(t *testing.T) {
	s := secrets.NewInMemory()
	_, err := s.Get("nope")
	assert.Error(t, err)
}

func TestInMemoryDelete(t *testing.T) {
	s := secrets.NewInMemory()
	require.NoError(t, s.Set("node-key", "abc"))
	require.NoError(t, s.Delete("node-key"))

	_, err := s.Get("node-key")
	assert.Error(t, err)
}

func TestInMemoryOverwrite(t *testing.T) {
	s := secrets.NewInMemory()
	require.NoError(t, s.Set("k", "v1"))
	require.NoError(t, s.Set("k", "v2"))

	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestKeystoreImplementsStore(t *testing.T) {
	var _ secrets.Store = (*secrets.Keystore)(nil)
	var _ secrets.Store = (*secrets.InMemory)(nil)
}
