package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultTargetDir is the directory reinitialized when nothing else is configured.
	DefaultTargetDir = "GP2040-CE-leonxis"
	// DefaultRemoteName is the remote that gets pointed at DefaultRemoteURL.
	DefaultRemoteName = "origin"
	// DefaultRemoteURL is the hosting URL, without credentials.
	DefaultRemoteURL = "https://github.com/leonxis/GP2040-CE.git"
)

// Environment variables consulted by Load.
const (
	EnvTargetDir = "GITSEED_DIR"
	EnvRemote    = "GITSEED_REMOTE"
	EnvURL       = "GITSEED_URL"
	EnvLogFile   = "GITSEED_LOG_FILE"
	EnvConfig    = "GITSEED_CONFIG"
)

// Config is the fully resolved configuration for one run.
type Config struct {
	TargetDir  string
	RemoteName string
	RemoteURL  string
	LogFile    string

	// Token is embedded into RemoteURL by AuthenticatedURL. It is never printed.
	Token string
}

// FileConfig is the on-disk JSON representation. Unset fields fall through
// to the defaults.
type FileConfig struct {
	TargetDir  *string `json:"targetDir,omitempty"`
	RemoteName *string `json:"remoteName,omitempty"`
	RemoteURL  *string `json:"remoteURL,omitempty"`
	LogFile    *string `json:"logFile,omitempty"`
}

// Overrides carries values given on the command line. Empty strings mean "not set".
type Overrides struct {
	ConfigPath string
	TargetDir  string
	RemoteName string
	RemoteURL  string
	LogFile    string
}

// ReadFileConfig reads a JSON config file.
func ReadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &fc, nil
}

// Load resolves the configuration from overrides, environment, config file and defaults,
// then looks up the access token.
func Load(ctx context.Context, o Overrides) (*Config, error) {
	fc := &FileConfig{}
	configPath := firstNonEmpty(o.ConfigPath, os.Getenv(EnvConfig))
	if configPath != "" {
		var err error
		fc, err = ReadFileConfig(configPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		TargetDir:  firstNonEmpty(o.TargetDir, os.Getenv(EnvTargetDir), deref(fc.TargetDir), DefaultTargetDir),
		RemoteName: firstNonEmpty(o.RemoteName, os.Getenv(EnvRemote), deref(fc.RemoteName), DefaultRemoteName),
		RemoteURL:  firstNonEmpty(o.RemoteURL, os.Getenv(EnvURL), deref(fc.RemoteURL), DefaultRemoteURL),
		LogFile:    firstNonEmpty(o.LogFile, os.Getenv(EnvLogFile), deref(fc.LogFile)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Token = LookupToken(ctx)

	return cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetDir) == "" {
		return fmt.Errorf("target directory must not be empty")
	}
	if strings.TrimSpace(c.RemoteName) == "" {
		return fmt.Errorf("remote name must not be empty")
	}
	if strings.ContainsAny(c.RemoteName, " \t\n") {
		return fmt.Errorf("remote name %q must not contain whitespace", c.RemoteName)
	}
	if strings.TrimSpace(c.RemoteURL) == "" {
		return fmt.Errorf("remote URL must not be empty")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
