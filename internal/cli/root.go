package cli

import (
	"github.com/cmakeproj/cmakeproj/internal/branding"
	"github.com/cmakeproj/cmakeproj/internal/builddriver"
	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/cmakeproj/cmakeproj/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// buildExecutor starts cmake and the built program. Tests replace it.
var buildExecutor builddriver.Executor = builddriver.OSExecutor{}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds C++ projects built with CMake and drives the
configure, build and run cycle from the project root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// printerFor binds a Printer to the command's output streams.
func printerFor(cmd *cobra.Command) *ui.Printer {
	return ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}
