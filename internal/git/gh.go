package git

import (
	"context"
	"strings"
)

// RunGHCommandWithContext executes a gh command with the given context.
func RunGHCommandWithContext(ctx context.Context, args ...string) (string, error) {
	runner := &CommandRunner{binary: "gh"}
	out, err := runner.runInternal(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
