// Package testhelpers provides testing utilities for the gitseed CLI,
// including a scene system and Git repository helpers.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectSingleRemote asserts that the repository has exactly one remote,
// named name, pointing at url.
func ExpectSingleRemote(t *testing.T, repo *GitRepo, name, url string) {
	t.Helper()

	names, err := repo.RemoteNames()
	require.NoError(t, err)
	require.Equal(t, []string{name}, names)

	got, err := repo.RemoteURL(name)
	require.NoError(t, err)
	require.Equal(t, url, got)
}
