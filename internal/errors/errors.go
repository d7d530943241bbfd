// Package errors provides sentinel errors and custom error types for the gitseed application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"gitseed.dev/gitseed/internal/utils"
)

// Sentinel errors for common conditions
var (
	// ErrTargetMissing indicates that the directory to bootstrap does not exist
	ErrTargetMissing = errors.New("target directory does not exist")

	// ErrAborted indicates that the user declined a destructive step
	ErrAborted = errors.New("aborted by user")
)

// TargetMissingError represents an error when the target directory is absent
type TargetMissingError struct {
	Path string
}

func (e *TargetMissingError) Error() string {
	return fmt.Sprintf("directory does not exist: %s", e.Path)
}

// Is returns true if the target error is ErrTargetMissing
func (e *TargetMissingError) Is(target error) bool {
	return target == ErrTargetMissing
}

// NewTargetMissingError creates a new TargetMissingError
func NewTargetMissingError(path string) *TargetMissingError {
	return &TargetMissingError{Path: path}
}

// GitCommandError represents an error from a git command execution.
// Credentials embedded in URLs are masked when the error is rendered.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" [%s]", strings.Join(e.Args, " "))
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	if stdout := strings.TrimSpace(e.Stdout); stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return utils.Redact(msg)
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
