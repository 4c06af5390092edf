package adb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/debloater/internal/urls"
)

// ErrNoDevice is returned when adb reports no usable device.
var ErrNoDevice = errors.New("no device connected")

// ExecutionError represents an adb invocation that failed.
type ExecutionError struct {
	// Args are the adb arguments, without the binary
	Args []string
	// ExitCode is the adb process exit code
	ExitCode int
	// Stderr is the adb stderr output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *ExecutionError) Error() string {
	cmd := strings.Join(e.Args, " ")
	stderr := strings.TrimSpace(e.Stderr)
	if e.Err != nil {
		return fmt.Sprintf("adb %s failed (exit code %d): %v: %s", cmd, e.ExitCode, e.Err, stderr)
	}
	return fmt.Sprintf("adb %s failed (exit code %d): %s", cmd, e.ExitCode, stderr)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an adb invocation that did not finish in time.
type TimeoutError struct {
	Args    []string
	Timeout string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("adb %s timed out after %s\n"+
		"Hint: check the cable and accept the USB debugging prompt on the phone",
		strings.Join(e.Args, " "), e.Timeout)
}

// PrerequisiteError represents a missing adb binary.
type PrerequisiteError struct {
	Path string
	Err  error
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("adb not found at %q: %v\n"+
		"Install Android platform-tools: %s", e.Path, e.Err, urls.PlatformTools)
}

func (e *PrerequisiteError) Unwrap() error {
	return e.Err
}
