package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the project and run its newest executable",
	Long: `Build the project, then execute the most recently modified executable in
the build directory with no arguments.

Nothing is executed when the build fails or produced no executable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		result, err := d.Run(cmd.Context())
		if err != nil {
			return err
		}
		if result.BuildExitCode != 0 {
			printerFor(cmd).Warn(fmt.Sprintf("build exited with status %d, not running", result.BuildExitCode))
		}
		return nil
	},
}
