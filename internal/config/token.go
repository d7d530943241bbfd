package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gitseed.dev/gitseed/internal/git"
)

// Token environment variables, in lookup order.
const (
	EnvToken       = "GITSEED_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
)

// ghAuthToken asks the gh CLI for its token. Replaced in tests.
var ghAuthToken = func(ctx context.Context) (string, error) {
	return git.RunGHCommandWithContext(ctx, "auth", "token")
}

// LookupToken returns the access token to embed in the remote URL:
// GITSEED_TOKEN, then GITHUB_TOKEN, then `gh auth token`.
// An empty string means no token is available.
func LookupToken(ctx context.Context) string {
	for _, key := range []string{EnvToken, EnvGitHubToken} {
		if token := strings.TrimSpace(os.Getenv(key)); token != "" {
			return token
		}
	}

	token, err := ghAuthToken(ctx)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthenticatedURL returns RemoteURL with Token embedded as URL userinfo.
// Without a token the URL is returned unchanged.
func (c *Config) AuthenticatedURL() (string, error) {
	if c.Token == "" {
		return c.RemoteURL, nil
	}

	u, err := url.Parse(c.RemoteURL)
	if err != nil {
		return "", fmt.Errorf("invalid remote URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", fmt.Errorf("cannot embed a token in a %q remote URL; use an http(s) URL or unset the token", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("remote URL %q has no host", c.RemoteURL)
	}

	u.User = url.User(c.Token)
	return u.String(), nil
}
