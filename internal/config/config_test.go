package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nearkit/nearctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "testnet", cfg.NetworkID)
	assert.Equal(t, "near", cfg.Binary)
	assert.Equal(t, "10", cfg.InitialBal)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cfg.MasterAccount = "alice.testnet"
	cfg.NodeURL = "http://127.0.0.1:3030"
	require.NoError(t, cfg.Save())

	cfg2, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "alice.testnet", cfg2.MasterAccount)
	assert.Equal(t, "http://127.0.0.1:3030", cfg2.NodeURL)
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{bad"), 0o600))

	_, err := config.Load(dir)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"master_account":"a.testnet"}`), 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "near", cfg.Binary)
	assert.Equal(t, "testnet", cfg.NetworkID)
	assert.Equal(t, "a.testnet", cfg.MasterAccount)
}

func TestResolveNodeURL(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://rpc.testnet.near.org", cfg.ResolveNodeURL())

	cfg.NodeURL = "http://custom:3030"
	assert.Equal(t, "http://custom:3030", cfg.ResolveNodeURL())
}

func TestResolveHelperURL(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "https://helper.testnet.near.org", cfg.ResolveHelperURL())
}

func TestSetNetworkID(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.SetNetworkID("mainnet"))
	assert.Equal(t, "mainnet", cfg.NetworkID)
	assert.Equal(t, "https://rpc.mainnet.near.org", cfg.ResolveNodeURL())

	assert.Error(t, cfg.SetNetworkID("betanet"))

	// Custom networks are allowed once a node URL is set.
	cfg.NodeURL = "http://custom:3030"
	assert.NoError(t, cfg.SetNetworkID("betanet"))
}

func TestKnownNetworks(t *testing.T) {
	assert.Equal(t, []string{"localnet", "mainnet", "testnet"}, config.KnownNetworks())
}

func TestDeploymentsPath(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deployments.json"), cfg.DeploymentsPath())
}
