package nearcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the external tool invoked for every network operation.
const DefaultBinary = "near"

// ErrBinaryNotFound is returned when the external binary is not on PATH.
var ErrBinaryNotFound = errors.New("near binary not found")

// Result captures one finished invocation of the external tool.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// ExitError reports a non-zero exit from the external tool, keeping the
// argv and trailing stderr so failures are diagnosable without rerunning.
type ExitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("near %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if tail := lastLines(e.Stderr, 3); tail != "" {
		msg += ": " + tail
	}
	return msg
}

// Runner executes the external tool with the given arguments.
type Runner interface {
	Run(ctx context.Context, args ...string) (Result, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, args ...string) (Result, error)

func (f RunnerFunc) Run(ctx context.Context, args ...string) (Result, error) {
	return f(ctx, args...)
}

// ExecRunner shells out to the external binary. Every invocation's exit
// code is checked; a non-zero exit surfaces as *ExitError.
type ExecRunner struct {
	Binary string   // binary name or path (default: "near")
	Dir    string   // working directory ("" = inherit)
	Env    []string // extra environment entries appended to the parent env
	Logger *slog.Logger
}

// NewExecRunner returns an ExecRunner for the given binary, falling back to
// DefaultBinary when empty.
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{Binary: binary}
}

// Run invokes the binary and waits for completion.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (Result, error) {
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if r.Logger != nil {
		r.Logger.Debug("near.invoke",
			"args", strings.Join(args, " "),
			"duration_ms", res.Duration.Milliseconds(),
			"err", err != nil,
		)
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return res, fmt.Errorf("%w: %q is not on PATH (install near-cli or set the binary path in config)", ErrBinaryNotFound, bin)
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	default:
		return res, fmt.Errorf("running %s: %w", bin, err)
	}
}

// CheckBinary verifies the external tool is present and runnable.
func (r *ExecRunner) CheckBinary(ctx context.Context) (string, error) {
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBinaryNotFound, bin)
	}
	res, err := r.Run(ctx, "--version")
	if err != nil {
		return path, fmt.Errorf("%q found but not runnable: %w", path, err)
	}
	return path + " " + strings.TrimSpace(firstLine(res.Stdout)), nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := strings.TrimSpace(strings.Join(lines, " "))
	return out
}
