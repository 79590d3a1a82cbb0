package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a configured project",
	Long: `Run cmake --build on the build directory.

The build directory must have been configured with setup first. A failing
compile is reported as a warning; the command itself still succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		code, err := d.Build(cmd.Context())
		if err != nil {
			return err
		}
		if code != 0 {
			printerFor(cmd).Warn(fmt.Sprintf("build exited with status %d", code))
		}
		return nil
	},
}
