package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// MarkerFile is written inside a seeded .git directory so tests can tell
// whether old metadata survived a reinitialization.
const MarkerFile = "GITSEED_TEST_MARKER"

// Scene represents a test scene: a temporary target directory, optionally
// holding a pre-existing repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with an empty temporary target directory.
// Cleanup is handled by t.TempDir().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "target")
	if err := os.Mkdir(dir, 0750); err != nil {
		t.Fatalf("Failed to create target dir: %v", err)
	}

	scene := &Scene{Dir: dir}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// MissingDir returns a path inside the test temp dir that does not exist.
func MissingDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "does-not-exist")
}

// ExistingRepoSetup seeds the scene with a repository that has one commit
// and a marker file inside its metadata directory.
func ExistingRepoSetup(scene *Scene) error {
	repo, err := NewGitRepo(scene.Dir)
	if err != nil {
		return err
	}
	scene.Repo = repo
	if err := repo.CreateChangeAndCommit("old history", "old"); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(scene.Dir, ".git", MarkerFile), []byte("stale"), 0600)
}

// ExistingRemoteSetup returns a setup that seeds a repository with a remote
// already pointing somewhere else.
func ExistingRemoteSetup(name, url string) SceneSetup {
	return func(scene *Scene) error {
		if err := ExistingRepoSetup(scene); err != nil {
			return err
		}
		return scene.Repo.AddRemote(name, url)
	}
}

// HasMarker reports whether the seeded marker file is still present.
func (s *Scene) HasMarker() bool {
	_, err := os.Stat(filepath.Join(s.Dir, ".git", MarkerFile))
	return err == nil
}
