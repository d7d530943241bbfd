package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// MetadataDir is the name of the directory git keeps a repository's history in.
const MetadataDir = ".git"

// ErrRemoteNotFound indicates that the repository has no remote with the requested name
var ErrRemoteNotFound = errors.New("remote not found")

// HasMetadataDir reports whether dir already contains git metadata.
func HasMetadataDir(dir string) (bool, error) {
	_, err := os.Lstat(filepath.Join(dir, MetadataDir))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to inspect %s: %w", MetadataDir, err)
}

// RemoveMetadataDir deletes dir's git metadata and everything beneath it.
func RemoveMetadataDir(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, MetadataDir)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", MetadataDir, err)
	}
	return nil
}

// RemoteURLs reads the URLs configured for a remote straight from the
// repository config using go-git.
func RemoteURLs(dir, name string) ([]string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
		}
		return nil, fmt.Errorf("failed to read remote %s: %w", name, err)
	}

	return remote.Config().URLs, nil
}
