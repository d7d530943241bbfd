// Package config resolves gitseed's settings.
//
// Each setting is taken from the first source that provides it:
//   - Command line flags
//   - GITSEED_* environment variables
//   - A JSON config file
//   - Built-in defaults
//
// The access token is only ever read from the environment or the gh CLI,
// never from flags or files, and is combined with the remote URL at runtime.
package config
