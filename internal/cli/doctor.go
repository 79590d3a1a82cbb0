package cli

import (
	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/cmakeproj/cmakeproj/internal/doctor"
	"github.com/spf13/cobra"
)

// newChecker is replaced in tests.
var newChecker = doctor.New

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that cmake, the generator and git are installed",
	Long:  `Run diagnostic checks on the build tools and the user config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		return newChecker().Run(cmd.Context(), cmd.OutOrStdout(), doctor.Options{
			CMake:      settings.CMake,
			Generator:  settings.Generator,
			Git:        settings.Git,
			ConfigPath: config.FilePath(),
		})
	},
}
