package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Notifier receives progress notifications. *ui.Printer satisfies it.
type Notifier interface {
	Success(message string)
	Warn(message string)
}

// CheckNew verifies that path can be used by `new`: it either does not exist
// or is an empty directory.
func CheckNew(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	if !info.IsDir() {
		return &PreconditionError{Path: path, Err: ErrPathNotADirectory}
	}
	return checkEmpty(fsys, path)
}

// CheckExisting verifies that path is an existing, empty directory.
func CheckExisting(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &PreconditionError{Path: path, Err: ErrPathDoesNotExist}
	}
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	if !info.IsDir() {
		return &PreconditionError{Path: path, Err: ErrPathNotADirectory}
	}
	return checkEmpty(fsys, path)
}

func checkEmpty(fsys afero.Fs, path string) error {
	empty, err := afero.IsEmpty(fsys, path)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", path, err)
	}
	if !empty {
		return &PreconditionError{Path: path, Err: ErrPathNotEmpty}
	}
	return nil
}

// DeriveName returns the final element of path, which becomes the project
// name. Paths without a final element (root, ".") cannot name a project.
func DeriveName(path string) (string, error) {
	if path == "" {
		return "", &PreconditionError{Path: path, Err: ErrCannotDeriveName}
	}
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == filepath.VolumeName(path) {
		return "", &PreconditionError{Path: path, Err: ErrCannotDeriveName}
	}
	return base, nil
}

// resolvePath joins a user argument onto the working directory. An empty
// argument means the working directory itself.
func resolvePath(cwd, arg string) (string, error) {
	if !filepath.IsAbs(cwd) {
		return "", fmt.Errorf("working directory %q is not absolute", cwd)
	}
	if arg == "" {
		return filepath.Clean(cwd), nil
	}
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg), nil
	}
	return filepath.Join(cwd, arg), nil
}

// PrepareNew resolves the `new` target, checks it, and creates the project
// directory (with parents). Nothing is created when a check or the details
// validation fails.
func PrepareNew(fsys afero.Fs, cwd, arg string, std Standard, n Notifier) (*Details, error) {
	if arg == "" {
		return nil, fmt.Errorf("a project path is required")
	}
	path, err := resolvePath(cwd, arg)
	if err != nil {
		return nil, err
	}
	if err := CheckNew(fsys, path); err != nil {
		return nil, err
	}
	name, err := DeriveName(path)
	if err != nil {
		return nil, err
	}

	details := &Details{Name: name, Path: path, Standard: std, Mode: ModeNew}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if n != nil {
		n.Success(fmt.Sprintf("created `%s` directory", name))
	}

	return details, nil
}

// PrepareInit resolves the `init` target, which must be an existing empty
// directory. An empty arg targets the working directory.
func PrepareInit(fsys afero.Fs, cwd, arg string, std Standard) (*Details, error) {
	path, err := resolvePath(cwd, arg)
	if err != nil {
		return nil, err
	}
	mode := ModeInit
	if arg == "" {
		mode = ModeInitSameDir
	}

	if err := CheckExisting(fsys, path); err != nil {
		return nil, err
	}
	name, err := DeriveName(path)
	if err != nil {
		return nil, err
	}

	return &Details{Name: name, Path: path, Standard: std, Mode: mode}, nil
}
