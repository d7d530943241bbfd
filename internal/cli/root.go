// Package cli wires gitseed's cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitseed.dev/gitseed/internal/bootstrap"
	"gitseed.dev/gitseed/internal/config"
	"gitseed.dev/gitseed/internal/runtime"
	"gitseed.dev/gitseed/internal/tui"
	"gitseed.dev/gitseed/internal/utils"
)

type rootFlags struct {
	overrides config.Overrides
	confirm   bool
	noColor   bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gitseed",
		Short: "Reinitialize a directory as a fresh git repository with an authenticated remote",
		Long: `gitseed deletes any existing git metadata in the target directory, runs git init,
and points a remote (origin by default) at the configured hosting URL.

The access token is taken from GITSEED_TOKEN, GITHUB_TOKEN or "gh auth token"
and embedded in the remote URL. It is never printed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				err := fmt.Errorf("unexpected arguments: %v", args)
				cmd.PrintErrln("Error:", err)
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBootstrap(cmd, flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.overrides.TargetDir, "dir", "", fmt.Sprintf("Directory to reinitialize (default %q)", config.DefaultTargetDir))
	rootCmd.Flags().StringVar(&flags.overrides.RemoteName, "remote", "", fmt.Sprintf("Name of the remote to configure (default %q)", config.DefaultRemoteName))
	rootCmd.Flags().StringVar(&flags.overrides.RemoteURL, "url", "", "Remote URL without credentials")
	rootCmd.Flags().StringVar(&flags.overrides.ConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.Flags().StringVar(&flags.overrides.LogFile, "log-file", "", "Also write a rotating log to this file")
	rootCmd.Flags().BoolVar(&flags.confirm, "confirm", false, "Ask before deleting existing git history (interactive terminals only)")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrln("Error:", err)
		return err
	})

	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

func runBootstrap(cmd *cobra.Command, flags *rootFlags) error {
	tui.ApplyColorPreference(flags.noColor)

	ctx, err := runtime.NewContext(cmd.Context(), flags.overrides, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		tui.NewSplogTo(cmd.OutOrStdout(), cmd.ErrOrStderr()).Error("%v", err)
		return err
	}
	defer func() { _ = ctx.Close() }()

	remoteURL, err := ctx.Config.AuthenticatedURL()
	if err != nil {
		ctx.Splog.Error("%v", err)
		return err
	}
	if ctx.Config.Token == "" {
		ctx.Splog.Warn("No access token found (GITSEED_TOKEN, GITHUB_TOKEN, gh auth token); using the URL without credentials")
	}

	opts := bootstrap.Options{
		TargetDir:  ctx.Config.TargetDir,
		RemoteName: ctx.Config.RemoteName,
		RemoteURL:  remoteURL,
		Verify:     true,
	}
	if flags.confirm && utils.IsInteractive() {
		opts.Confirm = tui.ConfirmRemoval
	}

	_, err = bootstrap.New(ctx.Runner, ctx.Splog, opts).Run(cmd.Context())
	return err
}
