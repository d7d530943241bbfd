package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitseederrors "gitseed.dev/gitseed/internal/errors"
	"gitseed.dev/gitseed/internal/git"
	"gitseed.dev/gitseed/internal/tui"
)

// RemoteAction records how the remote was configured.
type RemoteAction string

const (
	RemoteAdded   RemoteAction = "added"
	RemoteUpdated RemoteAction = "updated"
)

// Options configures a bootstrap run.
type Options struct {
	TargetDir  string
	RemoteName string
	// RemoteURL is written to the repository config as-is and may carry credentials.
	RemoteURL string
	// Confirm, when set, is asked before existing git metadata is deleted.
	Confirm func(path string) (bool, error)
	// Verify reads the remote back from the repository config after writing it.
	Verify bool
}

// Result describes the state a successful run left behind.
type Result struct {
	Dir             string
	RemovedExisting bool
	RemoteAction    RemoteAction
	Remotes         []git.Remote
}

// Bootstrapper runs the reinitialization against a git.Runner.
type Bootstrapper struct {
	runner git.Runner
	splog  *tui.Splog
	opts   Options
}

// New creates a Bootstrapper. An empty RemoteName means "origin".
func New(runner git.Runner, splog *tui.Splog, opts Options) *Bootstrapper {
	if opts.RemoteName == "" {
		opts.RemoteName = git.DefaultRemote
	}
	return &Bootstrapper{runner: runner, splog: splog, opts: opts}
}

// Run executes every step in order. It stops at the first failure and
// returns it; nothing is retried.
func (b *Bootstrapper) Run(ctx context.Context) (*Result, error) {
	dir, err := b.enterTarget()
	if err != nil {
		return nil, err
	}
	result := &Result{Dir: dir}

	removed, err := b.removeExistingMetadata(dir)
	if err != nil {
		b.splog.Error("%v", err)
		return nil, err
	}
	result.RemovedExisting = removed

	if err := b.runner.Init(ctx); err != nil {
		b.splog.Error("Git init failed: %v", err)
		return nil, fmt.Errorf("git init failed: %w", err)
	}
	b.splog.Info("Initialized empty git repository")

	action, err := b.configureRemote(ctx)
	if err != nil {
		b.splog.Error("Failed to configure remote %s: %v", b.opts.RemoteName, err)
		return nil, fmt.Errorf("failed to configure remote %s: %w", b.opts.RemoteName, err)
	}
	result.RemoteAction = action

	if b.opts.Verify {
		if err := b.verifyRemote(dir); err != nil {
			b.splog.Error("%v", err)
			return nil, err
		}
	}

	listing, err := b.runner.ListRemotes(ctx)
	if err != nil {
		b.splog.Error("Failed to list remotes: %v", err)
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	result.Remotes = git.ParseRemotes(listing)
	if listing != "" {
		b.splog.Info("%s", listing)
	}
	b.splog.Debug("Remotes: %s", strings.Join(git.RemoteNames(result.Remotes), ", "))

	b.splog.Newline()
	b.splog.Success("Git repository setup complete!")

	return result, nil
}

// enterTarget checks the target exists and makes it the runner's working directory.
func (b *Bootstrapper) enterTarget() (string, error) {
	info, err := os.Stat(b.opts.TargetDir)
	if err != nil || !info.IsDir() {
		b.splog.Error("Directory does not exist: %s", b.opts.TargetDir)
		return "", gitseederrors.NewTargetMissingError(b.opts.TargetDir)
	}

	dir, err := filepath.Abs(b.opts.TargetDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", b.opts.TargetDir, err)
	}

	b.runner.SetWorkingDir(dir)
	b.splog.Info("Working directory: %s", tui.ColorPath(dir))
	return dir, nil
}

func (b *Bootstrapper) removeExistingMetadata(dir string) (bool, error) {
	exists, err := git.HasMetadataDir(dir)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if b.opts.Confirm != nil {
		ok, err := b.opts.Confirm(filepath.Join(dir, git.MetadataDir))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, gitseederrors.ErrAborted
		}
	}

	if err := git.RemoveMetadataDir(dir); err != nil {
		return false, err
	}
	b.splog.Info("Removed existing %s directory", git.MetadataDir)
	return true, nil
}

func (b *Bootstrapper) configureRemote(ctx context.Context) (RemoteAction, error) {
	listing, err := b.runner.ListRemotes(ctx)
	if err != nil {
		return "", err
	}

	name := b.opts.RemoteName
	if git.HasRemote(git.ParseRemotes(listing), name) {
		if err := b.runner.SetRemoteURL(ctx, name, b.opts.RemoteURL); err != nil {
			return "", err
		}
		b.splog.Info("Updated remote %s", tui.ColorCyan(name))
		return RemoteUpdated, nil
	}

	if err := b.runner.AddRemote(ctx, name, b.opts.RemoteURL); err != nil {
		return "", err
	}
	b.splog.Info("Added remote %s", tui.ColorCyan(name))
	return RemoteAdded, nil
}

// verifyRemote checks through go-git that the repository config now holds
// exactly the requested URL for the remote.
func (b *Bootstrapper) verifyRemote(dir string) error {
	urls, err := git.RemoteURLs(dir, b.opts.RemoteName)
	if err != nil {
		return fmt.Errorf("failed to verify remote %s: %w", b.opts.RemoteName, err)
	}
	if len(urls) != 1 || urls[0] != b.opts.RemoteURL {
		return fmt.Errorf("remote %s was not configured as requested (got %d URLs)", b.opts.RemoteName, len(urls))
	}
	b.splog.Debug("Verified remote %s", b.opts.RemoteName)
	return nil
}
