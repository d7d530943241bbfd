package runtime

import (
	"context"
	"io"

	"gitseed.dev/gitseed/internal/config"
	"gitseed.dev/gitseed/internal/git"
	"gitseed.dev/gitseed/internal/tui"
)

// Context provides access to configuration, output and git for commands
type Context struct {
	Config *config.Config
	Splog  *tui.Splog
	Runner git.Runner
}

// NewContext resolves the configuration and builds the logger and git runner.
// The caller must Close the returned context.
func NewContext(ctx context.Context, overrides config.Overrides, stdout, stderr io.Writer) (*Context, error) {
	cfg, err := config.Load(ctx, overrides)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(stdout, stderr, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config: cfg,
		Splog:  splog,
		Runner: git.NewRealRunner(),
	}, nil
}

// Close releases the log file, if any.
func (c *Context) Close() error {
	return c.Splog.Close()
}
