// Package runtime provides the execution context for gitseed commands.
//
// It encapsulates shared dependencies resolved once per invocation:
// the configuration, the logger, and the git runner.
package runtime
