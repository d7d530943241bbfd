package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitEnv is appended to every git invocation made by test helpers so a
// developer's global config cannot leak into tests.
var GitEnv = []string{"GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1"}

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir)
	cmd.Env = append(os.Environ(), GitEnv...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w: %s", err, out)
	}
	return &GitRepo{Dir: dir}, nil
}

// OpenGitRepo wraps an existing repository directory without touching it.
func OpenGitRepo(dir string) *GitRepo {
	return &GitRepo{Dir: dir}
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	_, err := r.RunGitCommandAndGetOutput(args...)
	return err
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), GitEnv...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output)), nil
}

// AddRemote adds a named remote.
func (r *GitRepo) AddRemote(name, url string) error {
	return r.RunGitCommand("remote", "add", name, url)
}

// RemoteURL returns the configured URL of a remote.
func (r *GitRepo) RemoteURL(name string) (string, error) {
	return r.RunGitCommandAndGetOutput("remote", "get-url", name)
}

// RemoteNames returns the names of all configured remotes.
func (r *GitRepo) RemoteNames() ([]string, error) {
	out, err := r.RunGitCommandAndGetOutput("remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}

// CreateChangeAndCommit writes a file and commits it so the repo has history.
func (r *GitRepo) CreateChangeAndCommit(textValue, prefix string) error {
	name := prefix + "_test.txt"
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(textValue), 0600); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", name); err != nil {
		return err
	}
	return r.RunGitCommand("-c", "user.name=Test User", "-c", "user.email=test@example.com",
		"commit", "-m", textValue)
}

// CommitCount returns the number of commits reachable from HEAD, or 0 for an unborn branch.
func (r *GitRepo) CommitCount() int {
	out, err := r.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	var n int
	_, _ = fmt.Sscanf(out, "%d", &n)
	return n
}
