package cli

import (
	"fmt"
	"os"

	"github.com/cmakeproj/cmakeproj/internal/builddriver"
	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildDirFlag  string
	generatorFlag string
)

func init() {
	for _, c := range []*cobra.Command{setupCmd, buildCmd, runCmd} {
		c.Flags().StringVarP(&buildDirFlag, "build-dir", "b", "", "Build directory relative to the project root (default from config)")
	}
	setupCmd.Flags().StringVarP(&generatorFlag, "generator", "G", "", "CMake generator (default from config)")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the build directory with cmake",
	Long: `Run cmake in the current project to generate the build directory.

Must be run from the directory containing CMakeLists.txt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		code, err := d.Configure(cmd.Context())
		if err != nil {
			return err
		}
		if code != 0 {
			printerFor(cmd).Warn(fmt.Sprintf("cmake exited with status %d", code))
		}
		return nil
	},
}

// newDriver builds a Driver for the working directory, with flags taking
// precedence over config.
func newDriver(cmd *cobra.Command) (*builddriver.Driver, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	settings := config.Current()
	buildDir := settings.BuildDir
	if buildDirFlag != "" {
		buildDir = buildDirFlag
	}
	generator := settings.Generator
	if generatorFlag != "" {
		generator = generatorFlag
	}

	d := builddriver.New(cwd, buildDir, settings.CMake, generator)
	d.Exec = buildExecutor
	d.Stdin = cmd.InOrStdin()
	d.Stdout = cmd.OutOrStdout()
	d.Stderr = cmd.ErrOrStderr()
	return d, nil
}
