package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gitseederrors "gitseed.dev/gitseed/internal/errors"
	"gitseed.dev/gitseed/internal/git"
	"gitseed.dev/gitseed/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("runs in the working directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.ExistingRepoSetup)

		runner := git.NewCommandRunner(scene.Dir)
		runner.SetEnv(testhelpers.GitEnv)

		out, err := runner.Run(context.Background(), "rev-parse", "--is-inside-work-tree")
		require.NoError(t, err)
		require.Equal(t, "true", out)
	})

	t.Run("failures are GitCommandErrors", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		runner := git.NewCommandRunner(scene.Dir)
		runner.SetEnv(testhelpers.GitEnv)

		_, err := runner.Run(context.Background(), "remote", "set-url", "origin", "https://example.com/x.git")
		require.Error(t, err)

		var gitErr *gitseederrors.GitCommandError
		require.True(t, errors.As(err, &gitErr))
		require.Equal(t, []string{"remote", "set-url", "origin", "https://example.com/x.git"}, gitErr.Args)
		require.NotEmpty(t, gitErr.Stderr)
	})
}

func TestRealRunner(t *testing.T) {
	ctx := context.Background()

	t.Run("init then add and update a remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		runner := git.NewRealRunnerWithDir(scene.Dir, testhelpers.GitEnv...)
		require.Equal(t, scene.Dir, runner.WorkingDir())

		require.NoError(t, runner.Init(ctx))
		require.DirExists(t, scene.Dir+"/.git")

		out, err := runner.ListRemotes(ctx)
		require.NoError(t, err)
		require.Empty(t, out)

		require.NoError(t, runner.AddRemote(ctx, "origin", "https://example.com/first.git"))
		require.NoError(t, runner.SetRemoteURL(ctx, "origin", "https://example.com/second.git"))

		out, err = runner.ListRemotes(ctx)
		require.NoError(t, err)
		remotes := git.ParseRemotes(out)
		require.True(t, git.HasRemote(remotes, "origin"))
		require.Equal(t, "https://example.com/second.git", remotes[0].URL)
	})

	t.Run("adding a duplicate remote fails", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.ExistingRemoteSetup("origin", "https://example.com/old.git"))
		runner := git.NewRealRunnerWithDir("", testhelpers.GitEnv...)
		runner.SetWorkingDir(scene.Dir)

		err := runner.AddRemote(ctx, "origin", "https://example.com/new.git")
		require.Error(t, err)
	})

	t.Run("extra environment reaches git", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		env := append([]string{
			"GIT_CONFIG_COUNT=1",
			"GIT_CONFIG_KEY_0=init.defaultBranch",
			"GIT_CONFIG_VALUE_0=seeded",
		}, testhelpers.GitEnv...)
		runner := git.NewRealRunnerWithDir(scene.Dir, env...)

		require.NoError(t, runner.Init(ctx))

		head, err := os.ReadFile(filepath.Join(scene.Dir, ".git", "HEAD"))
		require.NoError(t, err)
		require.Equal(t, "ref: refs/heads/seeded", strings.TrimSpace(string(head)))
	})
}
