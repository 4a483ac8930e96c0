package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary before all E2E tests.
	tmp, err := os.MkdirTemp("", "nearctl-e2e-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	binaryPath = filepath.Join(tmp, "nearctl")
	// Build from the module root (two levels up from test/e2e/).
	moduleRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		panic(err)
	}
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = moduleRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "NEARCTL_CONFIG_DIR="+configDir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestVersionFlag(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "nearctl")
	assert.Contains(t, out, "0.1.0")
}

func TestHelpCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "nearctl")
	lower := strings.ToLower(out)
	for _, sub := range []string{"account", "deploy", "call", "view", "ft", "nft", "plan", "registry", "config", "doctor"} {
		assert.Contains(t, lower, sub, "help should mention %s", sub)
	}
	assert.Contains(t, out, "--testnet")
	assert.Contains(t, out, "--mainnet")
}

func TestConfigShowDefaults(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "testnet")
	assert.Contains(t, out, "near") // default binary
}

func TestConfigSetNetwork(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set-network", "mainnet")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "mainnet")
}

func TestConfigSetNetworkUnknown(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set-network", "nonet99")
	assert.Error(t, err)
}

func TestConfigSetMasterPersists(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set-master", "you.testnet")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "you.testnet")
}

func TestConfigSetMasterRejectsBadID(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set-master", "Not..Valid")
	assert.Error(t, err)
}

func TestTestnetMainnetMutuallyExclusive(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--testnet", "--mainnet", "config")
	assert.Error(t, err)
	assert.Contains(t, out, "mainnet")
}

func TestDoctorFailsWithBogusBinary(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set-binary", "definitely-not-a-real-binary-xyz")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "doctor")
	assert.Error(t, err)
	assert.Contains(t, out, "definitely-not-a-real-binary-xyz")
}

func TestDeployRejectsMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "deploy", filepath.Join(dir, "missing.wasm"), "--account", "ft.you.testnet")
	assert.Error(t, err)
}

func TestDeployRejectsBadWasmHeader(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.wasm")
	require.NoError(t, os.WriteFile(bad, []byte("not wasm at all"), 0o644))

	out, err := runCLI(t, dir, "deploy", bad, "--account", "ft.you.testnet")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(out), "wasm")
}

func TestRegistryListEmpty(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "registry", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No deployments")
}

func TestPlanLint(t *testing.T) {
	dir := t.TempDir()
	planFile := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(planFile, []byte(`
name: demo
vars:
  master: you.testnet
steps:
  - name: create ft account
    create-account:
      id: ft.{{master}}
      master: "{{master}}"
      initial-balance: "10"
  - view:
      contract: ft.{{master}}
      method: ft_total_supply
`), 0o644))

	out, err := runCLI(t, dir, "plan", "lint", planFile)
	require.NoError(t, err)
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "2 step(s)")
	assert.Contains(t, out, "ft.you.testnet")
}

func TestPlanLintRejectsTwoActions(t *testing.T) {
	dir := t.TempDir()
	planFile := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(planFile, []byte(`
name: bad
steps:
  - view:
      contract: a.testnet
      method: x
    delete-account:
      id: a.testnet
      beneficiary: b.testnet
`), 0o644))

	out, err := runCLI(t, dir, "plan", "lint", planFile)
	assert.Error(t, err)
	assert.Contains(t, out, "exactly one action")
}

func TestPlanRunWithStubBinary(t *testing.T) {
	dir := t.TempDir()

	// Stand in for the real near tool so the pipeline can run offline.
	stub := filepath.Join(dir, "near-stub")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\necho '\"1000000\"'\n"), 0o755))
	_, err := runCLI(t, dir, "config", "set-binary", stub)
	require.NoError(t, err)

	planFile := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(planFile, []byte(`
name: run-demo
steps:
  - name: check supply
    view:
      contract: ft.you.testnet
      method: ft_total_supply
  - name: transfer
    call:
      contract: ft.you.testnet
      method: ft_transfer
      signer: you.testnet
      deposit-yocto: "1"
      args:
        receiver_id: bob.testnet
        amount: "100"
`), 0o644))

	out, err := runCLI(t, dir, "plan", "run", planFile, "--yes")
	require.NoError(t, err, out)
	assert.Contains(t, out, "check supply")
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "completed")
}

func TestPlanRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()

	// Stub fails on ft_transfer, succeeds otherwise.
	stub := filepath.Join(dir, "near-stub")
	script := "#!/bin/sh\nfor a in \"$@\"; do\n  if [ \"$a\" = \"ft_transfer\" ]; then\n    echo 'panicked at transfer' >&2\n    exit 1\n  fi\ndone\necho ok\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0o755))
	_, err := runCLI(t, dir, "config", "set-binary", stub)
	require.NoError(t, err)

	planFile := filepath.Join(dir, "halt.yaml")
	require.NoError(t, os.WriteFile(planFile, []byte(`
name: halt-demo
steps:
  - name: transfer
    call:
      contract: ft.you.testnet
      method: ft_transfer
      signer: you.testnet
      args:
        receiver_id: bob.testnet
        amount: "100"
  - name: never runs
    view:
      contract: ft.you.testnet
      method: ft_total_supply
`), 0o644))

	out, err := runCLI(t, dir, "plan", "run", planFile, "--yes")
	assert.Error(t, err)
	assert.Contains(t, out, "transfer")
	assert.NotContains(t, out, "never runs")
	assert.Contains(t, out, "failed at step")
}

func TestPlanLintVarOverride(t *testing.T) {
	dir := t.TempDir()
	planFile := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(planFile, []byte(`
name: vars
vars:
  master: default.testnet
steps:
  - view:
      contract: ft.{{master}}
      method: ft_metadata
`), 0o644))

	out, err := runCLI(t, dir, "plan", "lint", planFile, "--var", "master=override.testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "ft.override.testnet")
}
