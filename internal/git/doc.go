// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository creation (init, metadata directory handling)
//   - Remote management (list, add, set-url)
//   - Reading remote configuration back through go-git
//
// This package should be the only place where direct git commands are executed.
package git
