package nearcli_test

import (
	"context"
	"testing"

	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerSuccess(t *testing.T) {
	// Use a plain system binary so the test does not depend on near-cli.
	r := &nearcli.ExecRunner{Binary: "true"}
	res, err := r.Run(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	r := &nearcli.ExecRunner{Binary: "false"}
	res, err := r.Run(context.Background(), "view", "x", "y")
	require.Error(t, err)

	var exitErr *nearcli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, []string{"view", "x", "y"}, exitErr.Args)
	assert.NotZero(t, exitErr.ExitCode)
	assert.Equal(t, exitErr.ExitCode, res.ExitCode)
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := &nearcli.ExecRunner{Binary: "definitely-not-a-real-binary-12345"}
	_, err := r.Run(context.Background(), "view")
	assert.ErrorIs(t, err, nearcli.ErrBinaryNotFound)
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	r := &nearcli.ExecRunner{Binary: "echo"}
	res, err := r.Run(context.Background(), "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.Stdout)
}

func TestExecRunnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &nearcli.ExecRunner{Binary: "sleep"}
	_, err := r.Run(ctx, "10")
	assert.Error(t, err)
}

func TestCheckBinaryMissing(t *testing.T) {
	r := &nearcli.ExecRunner{Binary: "definitely-not-a-real-binary-12345"}
	_, err := r.CheckBinary(context.Background())
	assert.ErrorIs(t, err, nearcli.ErrBinaryNotFound)
}

func TestExitErrorMessage(t *testing.T) {
	err := &nearcli.ExitError{
		Args:     []string{"deploy", "--accountId", "ft.alice.testnet"},
		ExitCode: 1,
		Stderr:   "Account ft.alice.testnet does not exist\n",
	}
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "does not exist")
	assert.Contains(t, err.Error(), "deploy --accountId ft.alice.testnet")
}
