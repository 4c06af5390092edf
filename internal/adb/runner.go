package adb

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Config holds the configuration for adb execution.
type Config struct {
	// Path is the adb binary.
	// Default: "adb" (searches PATH)
	Path string

	// Serial selects a device when several are attached.
	// Default: "" (adb picks the only device)
	Serial string

	// Timeout bounds every invocation.
	// Default: 10 seconds
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:    "adb",
		Timeout: 10 * time.Second,
	}
}

// Runner runs adb with the given arguments and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs adb via os/exec.
type ExecRunner struct {
	config Config
	logger *zap.Logger
}

// NewExecRunner creates an ExecRunner. A nil logger disables logging.
func NewExecRunner(config Config, logger *zap.Logger) *ExecRunner {
	if config.Path == "" {
		config.Path = "adb"
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{config: config, logger: logger}
}

// Run executes adb with args.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(timeoutCtx, r.config.Path, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()

	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	r.logger.Debug("adb invocation complete",
		zap.Strings("args", args),
		zap.Duration("duration", time.Since(start)),
		zap.Int("stdout_size", len(stdout)),
		zap.String("stderr", stderr),
		zap.Error(err),
	)

	if timeoutCtx.Err() == context.DeadlineExceeded {
		return stdout, &TimeoutError{Args: args, Timeout: r.config.Timeout.String()}
	}

	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &PrerequisiteError{Path: r.config.Path, Err: err}
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return stdout, &ExecutionError{Args: args, ExitCode: exitCode, Stderr: stderr, Err: err}
	}

	return stdout, nil
}
