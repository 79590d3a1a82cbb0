package cli

import (
	"fmt"
	"os"

	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/cmakeproj/cmakeproj/internal/project"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initOpts createOptions

func init() {
	initOpts.register(initCmd)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a project in an existing empty directory",
	Long: `Generate a CMake project inside an existing, empty directory.

Without a path the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		settings := config.Current()
		std, err := initOpts.resolveStandard(settings)
		if err != nil {
			return err
		}

		p := printerFor(cmd)
		fsys := afero.NewOsFs()
		m, err := initOpts.materializer(fsys, p, settings)
		if err != nil {
			return err
		}

		var target string
		if len(args) == 1 {
			target = args[0]
		}
		details, err := project.PrepareInit(fsys, cwd, target, std)
		if err != nil {
			return err
		}
		if _, err := m.Materialize(cmd.Context(), details); err != nil {
			return err
		}

		printNextSteps(p, cwd, details, settings)
		return nil
	},
}
