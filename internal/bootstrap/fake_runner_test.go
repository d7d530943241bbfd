package bootstrap_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gitseed.dev/gitseed/testhelpers"
)

// fakeRunner is an in-memory git.Runner that records every call.
type fakeRunner struct {
	workingDir string
	remotes    map[string]string
	calls      []string
	listCount  int

	initErr error
	listErr error
	// listErrOnCall limits listErr to the n-th listing (1-based); zero fails every listing.
	listErrOnCall int
	addErr        error
	setURLErr     error

	// storedURL, when set, is written to a real repository in the working
	// directory on AddRemote in place of the requested URL.
	storedURL string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{remotes: map[string]string{}}
}

func (f *fakeRunner) SetWorkingDir(dir string) { f.workingDir = dir }
func (f *fakeRunner) WorkingDir() string       { return f.workingDir }

func (f *fakeRunner) Init(_ context.Context) error {
	f.calls = append(f.calls, "init")
	return f.initErr
}

func (f *fakeRunner) ListRemotes(_ context.Context) (string, error) {
	f.calls = append(f.calls, "remote -v")
	f.listCount++
	if f.listErr != nil && (f.listErrOnCall == 0 || f.listErrOnCall == f.listCount) {
		return "", f.listErr
	}
	names := make([]string, 0, len(f.remotes))
	for name := range f.remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines,
			fmt.Sprintf("%s\t%s (fetch)", name, f.remotes[name]),
			fmt.Sprintf("%s\t%s (push)", name, f.remotes[name]))
	}
	return strings.Join(lines, "\n"), nil
}

func (f *fakeRunner) AddRemote(_ context.Context, name, url string) error {
	f.calls = append(f.calls, "remote add "+name)
	if f.addErr != nil {
		return f.addErr
	}
	if f.storedURL != "" {
		repo, err := testhelpers.NewGitRepo(f.workingDir)
		if err != nil {
			return err
		}
		if err := repo.AddRemote(name, f.storedURL); err != nil {
			return err
		}
		url = f.storedURL
	}
	f.remotes[name] = url
	return nil
}

func (f *fakeRunner) SetRemoteURL(_ context.Context, name, url string) error {
	f.calls = append(f.calls, "remote set-url "+name)
	if f.setURLErr != nil {
		return f.setURLErr
	}
	f.remotes[name] = url
	return nil
}
