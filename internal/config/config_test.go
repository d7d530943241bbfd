package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads and stubs out the gh CLI.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTargetDir, EnvRemote, EnvURL, EnvLogFile, EnvConfig, EnvToken, EnvGitHubToken} {
		t.Setenv(key, "")
	}

	old := ghAuthToken
	ghAuthToken = func(context.Context) (string, error) { return "", errors.New("gh not available") }
	t.Cleanup(func() { ghAuthToken = old })
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitseed.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(ctx, Overrides{})
		require.NoError(t, err)
		require.Equal(t, DefaultTargetDir, cfg.TargetDir)
		require.Equal(t, "origin", cfg.RemoteName)
		require.Equal(t, DefaultRemoteURL, cfg.RemoteURL)
		require.Empty(t, cfg.LogFile)
		require.Empty(t, cfg.Token)
	})

	t.Run("flags beat env beat file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, `{"targetDir": "/from/file", "remoteName": "file-remote", "remoteURL": "https://file.example/r.git", "logFile": "/tmp/file.log"}`)
		t.Setenv(EnvRemote, "env-remote")
		t.Setenv(EnvURL, "https://env.example/r.git")

		cfg, err := Load(ctx, Overrides{ConfigPath: path, RemoteURL: "https://flag.example/r.git"})
		require.NoError(t, err)
		require.Equal(t, "/from/file", cfg.TargetDir)
		require.Equal(t, "env-remote", cfg.RemoteName)
		require.Equal(t, "https://flag.example/r.git", cfg.RemoteURL)
		require.Equal(t, "/tmp/file.log", cfg.LogFile)
	})

	t.Run("config path from env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfig, writeConfig(t, `{"targetDir": "/env/config"}`))

		cfg, err := Load(ctx, Overrides{})
		require.NoError(t, err)
		require.Equal(t, "/env/config", cfg.TargetDir)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(ctx, Overrides{ConfigPath: filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})

	t.Run("malformed config file is an error", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(ctx, Overrides{ConfigPath: writeConfig(t, `{"targetDir": `)})
		require.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("remote name with whitespace is rejected", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(ctx, Overrides{RemoteName: "my origin"})
		require.Error(t, err)
	})
}

func TestLookupToken(t *testing.T) {
	ctx := context.Background()

	t.Run("gitseed token wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvToken, "seed")
		t.Setenv(EnvGitHubToken, "gh-env")

		require.Equal(t, "seed", LookupToken(ctx))
	})

	t.Run("falls back to GITHUB_TOKEN", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvGitHubToken, " gh-env\n")

		require.Equal(t, "gh-env", LookupToken(ctx))
	})

	t.Run("falls back to gh auth token", func(t *testing.T) {
		clearEnv(t)
		ghAuthToken = func(context.Context) (string, error) { return "from-gh\n", nil }

		require.Equal(t, "from-gh", LookupToken(ctx))
	})

	t.Run("no token anywhere", func(t *testing.T) {
		clearEnv(t)

		require.Empty(t, LookupToken(ctx))
	})
}

func TestAuthenticatedURL(t *testing.T) {
	t.Run("embeds the token", func(t *testing.T) {
		cfg := &Config{RemoteURL: "https://github.com/leonxis/GP2040-CE.git", Token: "YOUR_TOKEN"}

		got, err := cfg.AuthenticatedURL()
		require.NoError(t, err)
		require.Equal(t, "https://YOUR_TOKEN@github.com/leonxis/GP2040-CE.git", got)
	})

	t.Run("replaces existing userinfo", func(t *testing.T) {
		cfg := &Config{RemoteURL: "https://old@github.com/acme/widget.git", Token: "new"}

		got, err := cfg.AuthenticatedURL()
		require.NoError(t, err)
		require.Equal(t, "https://new@github.com/acme/widget.git", got)
	})

	t.Run("no token leaves the url alone", func(t *testing.T) {
		cfg := &Config{RemoteURL: "git@github.com:acme/widget.git"}

		got, err := cfg.AuthenticatedURL()
		require.NoError(t, err)
		require.Equal(t, "git@github.com:acme/widget.git", got)
	})

	t.Run("token with a non-http url is an error", func(t *testing.T) {
		cfg := &Config{RemoteURL: "ssh://git@github.com/acme/widget.git", Token: "tok"}

		_, err := cfg.AuthenticatedURL()
		require.Error(t, err)
	})
}
