package builddriver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cmakeproj/cmakeproj/internal/platform"
)

// MarkerFile is the file whose presence marks a configured build tree.
const MarkerFile = "CMakeCache.txt"

// ProjectFile must exist in the project root before configuring.
const ProjectFile = "CMakeLists.txt"

var (
	ErrNoCMakeLists          = errors.New("no CMakeLists.txt found")
	ErrCMakeListsIsDirectory = errors.New("CMakeLists.txt found but is a directory")
	ErrNotConfigured         = errors.New("no CMakeCache.txt found")
	ErrMarkerIsDirectory     = errors.New("CMakeCache.txt found but is a directory")
	ErrConfigureFailed       = errors.New("failed to set up build")
	ErrBuildInvocationFailed = errors.New("failed to build")
	ErrRunInvocationFailed   = errors.New("failed to run")
)

// Driver invokes cmake for one project.
type Driver struct {
	// ProjectRoot is the directory containing CMakeLists.txt; every command
	// runs with it as the working directory.
	ProjectRoot string
	// BuildDir is relative to ProjectRoot unless absolute.
	BuildDir  string
	CMake     string
	Generator string

	Exec   Executor
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Driver that runs real processes on the standard streams.
func New(projectRoot, buildDir, cmake, generator string) *Driver {
	return &Driver{
		ProjectRoot: projectRoot,
		BuildDir:    buildDir,
		CMake:       cmake,
		Generator:   generator,
		Exec:        OSExecutor{},
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// BuildPath returns the absolute build directory.
func (d *Driver) BuildPath() string {
	if filepath.IsAbs(d.BuildDir) {
		return d.BuildDir
	}
	return filepath.Join(d.ProjectRoot, d.BuildDir)
}

// Configure creates the build directory and runs
// `cmake -B <buildDir> -G <generator>`. The returned exit code is not
// interpreted.
func (d *Driver) Configure(ctx context.Context) (int, error) {
	found, isDir, err := findEntry(d.ProjectRoot, ProjectFile)
	if err != nil {
		return 0, fmt.Errorf("reading project directory: %w", err)
	}
	if !found {
		return 0, ErrNoCMakeLists
	}
	if isDir {
		return 0, ErrCMakeListsIsDirectory
	}

	if err := os.MkdirAll(d.BuildPath(), 0755); err != nil {
		return 0, fmt.Errorf("failed to create build directory: %w", err)
	}

	code, err := d.run(ctx, d.CMake, "-B", d.BuildDir, "-G", d.Generator)
	if err != nil {
		return code, fmt.Errorf("%w: %v", ErrConfigureFailed, err)
	}
	return code, nil
}

// CheckConfigured inspects the build directory. A missing directory passes so
// that cmake reports the problem itself.
func (d *Driver) CheckConfigured() error {
	buildPath := d.BuildPath()
	info, err := os.Stat(buildPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting build directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNotConfigured, buildPath)
	}

	found, isDir, err := findEntry(buildPath, MarkerFile)
	if err != nil {
		return fmt.Errorf("reading build directory: %w", err)
	}
	if !found {
		return ErrNotConfigured
	}
	if isDir {
		return ErrMarkerIsDirectory
	}
	return nil
}

// Build checks the build directory and runs `cmake --build <buildDir>`.
// A non-zero exit is returned as the exit code, not as an error.
func (d *Driver) Build(ctx context.Context) (int, error) {
	if err := d.CheckConfigured(); err != nil {
		return 0, err
	}

	code, err := d.run(ctx, d.CMake, "--build", d.BuildDir)
	if err != nil {
		return code, fmt.Errorf("%w: %v", ErrBuildInvocationFailed, err)
	}
	return code, nil
}

// RunResult describes what Run did.
type RunResult struct {
	BuildExitCode int
	// Executable is the program that was started; empty when the build failed
	// or no executable was found.
	Executable string
	ExitCode   int
}

// Run builds the project and, when the build succeeds, starts the most
// recently modified executable in the build directory with no arguments.
func (d *Driver) Run(ctx context.Context) (*RunResult, error) {
	buildCode, err := d.Build(ctx)
	if err != nil {
		return nil, err
	}
	result := &RunResult{BuildExitCode: buildCode}
	if buildCode != 0 {
		return result, nil
	}

	exe, err := NewestExecutable(d.BuildPath())
	if err != nil {
		return result, err
	}
	if exe == "" {
		return result, nil
	}

	result.Executable = exe
	code, err := d.run(ctx, exe)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrRunInvocationFailed, err)
	}
	result.ExitCode = code
	return result, nil
}

// NewestExecutable returns the executable regular file in dir with the latest
// modification time, or "" when there is none or dir does not exist. Entries
// are visited in name order and only a strictly newer time replaces the
// current pick, so ties go to the first name.
func NewestExecutable(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading build directory: %w", err)
	}

	var (
		newest string
		found  bool
		best   os.FileInfo
	)
	for _, entry := range entries {
		// Info does not follow symlinks, so links are skipped.
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !platform.IsExecutable(entry.Name(), info) {
			continue
		}
		if !found || info.ModTime().After(best.ModTime()) {
			newest, best, found = filepath.Join(dir, entry.Name()), info, true
		}
	}
	return newest, nil
}

func (d *Driver) run(ctx context.Context, name string, args ...string) (int, error) {
	executor := d.Exec
	if executor == nil {
		executor = OSExecutor{}
	}
	return executor.Execute(ctx, Command{
		Name:   name,
		Args:   args,
		Dir:    d.ProjectRoot,
		Stdin:  d.Stdin,
		Stdout: d.Stdout,
		Stderr: d.Stderr,
	})
}

// findEntry scans dir's immediate entries for an exact name match.
func findEntry(dir, name string) (found, isDir bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, false, err
	}
	for _, entry := range entries {
		if entry.Name() == name {
			return true, entry.IsDir(), nil
		}
	}
	return false, false, nil
}
