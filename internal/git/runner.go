package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	gitseederrors "gitseed.dev/gitseed/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	binary     string
	workingDir string
	env        []string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{binary: "git", workingDir: workingDir}
}

// SetWorkingDir sets the directory git commands run in.
func (r *CommandRunner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

// WorkingDir returns the directory git commands run in.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// SetEnv sets extra environment variables ("KEY=value") for every command.
func (r *CommandRunner) SetEnv(env []string) {
	r.env = env
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := r.runInternal(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *CommandRunner) runInternal(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	binary := r.binary
	if binary == "" {
		binary = "git"
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gitseederrors.NewGitCommandError(binary, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gitseederrors.NewGitCommandError(binary, args, stdout.String(), stderr.String(), err)
	}
	return stdout.String(), nil
}

// Runner defines the git operations the bootstrap needs.
// This allows the bootstrap to be driven by real git or by a fake in tests.
type Runner interface {
	// Init creates an empty repository in the working directory.
	Init(ctx context.Context) error
	// ListRemotes returns the raw output of `git remote -v`.
	ListRemotes(ctx context.Context) (string, error)
	AddRemote(ctx context.Context, name, url string) error
	SetRemoteURL(ctx context.Context, name, url string) error

	SetWorkingDir(dir string)
	WorkingDir() string
}

// NewRealRunner returns a Runner that executes the git binary.
func NewRealRunner() Runner {
	return &realRunner{cmd: NewCommandRunner("")}
}

// NewRealRunnerWithDir returns a Runner that executes the git binary in dir,
// appending env ("KEY=value") to the environment of every command.
func NewRealRunnerWithDir(dir string, env ...string) Runner {
	cmd := NewCommandRunner(dir)
	if len(env) > 0 {
		cmd.SetEnv(env)
	}
	return &realRunner{cmd: cmd}
}

// realRunner implements Runner on top of CommandRunner
type realRunner struct {
	cmd *CommandRunner
}

func (r *realRunner) SetWorkingDir(dir string) {
	r.cmd.SetWorkingDir(dir)
}

func (r *realRunner) WorkingDir() string {
	return r.cmd.WorkingDir()
}

func (r *realRunner) Init(ctx context.Context) error {
	_, err := r.cmd.Run(ctx, "init")
	return err
}

func (r *realRunner) ListRemotes(ctx context.Context) (string, error) {
	return r.cmd.Run(ctx, "remote", "-v")
}

func (r *realRunner) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.cmd.Run(ctx, "remote", "add", name, url)
	return err
}

func (r *realRunner) SetRemoteURL(ctx context.Context, name, url string) error {
	_, err := r.cmd.Run(ctx, "remote", "set-url", name, url)
	return err
}
