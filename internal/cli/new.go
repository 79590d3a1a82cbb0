package cli

import (
	"fmt"
	"os"

	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/cmakeproj/cmakeproj/internal/project"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var newOpts createOptions

func init() {
	newOpts.register(newCmd)
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new project in a new directory",
	Long: `Create a directory at <path> and generate a CMake project inside it.

The directory may already exist as long as it is empty. The project name is
the last element of the path.`,
	Example: `  cmakeproj new hello
  cmakeproj new tools/hello --standard cpp23 --no-git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		settings := config.Current()
		std, err := newOpts.resolveStandard(settings)
		if err != nil {
			return err
		}

		p := printerFor(cmd)
		fsys := afero.NewOsFs()
		m, err := newOpts.materializer(fsys, p, settings)
		if err != nil {
			return err
		}

		details, err := project.PrepareNew(fsys, cwd, args[0], std, p)
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
