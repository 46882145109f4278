package cmd

import (
	"github.com/spf13/cobra"

	"github.com/philipseo/purge-deps/internal/config"
	"github.com/philipseo/purge-deps/internal/exitcodes"
)

var (
	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = newRootCmd()

// newRootCmd builds the root command. Flag parsing is disabled because the
// keyword grammar (path, -p, -gi, ...) is handled by the config package.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-deps [options]",
		Short: "Delete dependency folders and lock files",
		Long: `purge-deps - Delete dependency folders and lock files.

Walks a directory tree and removes node_modules folders and package
manager lock files, skipping project folders such as src and .git.
Run 'purge-deps help' for available options.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurge(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, config.PresetFull)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcodes.Success
	case config.IsUsageError(err):
		return exitcodes.Usage
	default:
		return exitcodes.RuntimeError
	}
}
