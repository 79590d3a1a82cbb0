package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmakeproj/cmakeproj/internal/templates"
	"github.com/cmakeproj/cmakeproj/internal/vcs"
	"github.com/spf13/afero"
)

// Names of the generated artifacts, relative to the project root.
const (
	CMakeListsFile = "CMakeLists.txt"
	GitIgnoreFile  = ".gitignore"
	ClangdFile     = ".clangd"
	SourceDir      = "src"
	MainSourceFile = "main.cpp"
)

const (
	filePermissions = 0644
	dirPermissions  = 0755
	createExclusive = os.O_WRONLY | os.O_CREATE | os.O_EXCL
)

// Materializer writes a project's files into its (empty) directory.
type Materializer struct {
	Fs       afero.Fs
	Notifier Notifier

	// VCS initializes the repository; nil skips the step.
	VCS vcs.Initializer

	// EditorConfig controls whether .clangd is written.
	EditorConfig bool

	// StrictVCS turns a repository initialization failure into an error.
	// Otherwise it is reported as a warning and ignored.
	StrictVCS bool
}

// Result holds the outcome of a materialization.
type Result struct {
	Details  *Details
	Files    []string // Paths relative to Details.Path, in creation order
	Warnings []string
}

// Materialize runs every step in order and stops at the first failure.
// Nothing is rolled back on failure.
func (m *Materializer) Materialize(ctx context.Context, d *Details) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, &MaterializeError{Step: "validate project details", Err: err}
	}
	if err := CheckExisting(m.Fs, d.Path); err != nil {
		return nil, &MaterializeError{Step: "check project directory", Err: err}
	}

	result := &Result{Details: d}

	// CMakeLists.txt
	cmakeContents, err := templates.RenderCMakeLists(d.Name, d.Standard.Version())
	if err != nil {
		return result, &MaterializeError{Step: "render " + CMakeListsFile, Err: err}
	}
	if err := m.writeFile(result, CMakeListsFile, cmakeContents); err != nil {
		return result, err
	}

	// .gitignore
	if err := m.writeFile(result, GitIgnoreFile, templates.GitIgnore()); err != nil {
		return result, err
	}

	// .clangd
	if m.EditorConfig {
		if err := m.writeFile(result, ClangdFile, templates.Clangd()); err != nil {
			return result, err
		}
	}

	// src/ and src/main.cpp
	srcDir := filepath.Join(d.Path, SourceDir)
	if err := m.Fs.Mkdir(srcDir, dirPermissions); err != nil {
		return result, &MaterializeError{Step: "create " + SourceDir + " directory", Err: err}
	}
	m.success("created " + SourceDir + " directory")

	mainContents, err := templates.MainSource(d.Standard.Version())
	if err != nil {
		return result, &MaterializeError{Step: "select starter source", Err: err}
	}
	if err := m.writeFile(result, filepath.Join(SourceDir, MainSourceFile), mainContents); err != nil {
		return result, err
	}

	// Repository
	if m.VCS != nil {
		if err := m.VCS.Init(ctx, d.Path); err != nil {
			if m.StrictVCS {
				return result, &MaterializeError{Step: "initialise git repo", Err: err}
			}
			warning := fmt.Sprintf("skipped git repo initialisation with %s: %v", m.VCS.Name(), err)
			result.Warnings = append(result.Warnings, warning)
			if m.Notifier != nil {
				m.Notifier.Warn(warning)
			}
		} else {
			m.success("initialised git repo in project")
		}
	}

	return result, nil
}

// writeFile creates rel under the project root, failing if it already exists.
func (m *Materializer) writeFile(result *Result, rel string, contents []byte) error {
	path := filepath.Join(result.Details.Path, rel)
	display := filepath.Base(rel)

	f, err := m.Fs.OpenFile(path, createExclusive, filePermissions)
	if err != nil {
		return &MaterializeError{Step: "create " + display + " file", Err: err}
	}
	if _, err := f.Write(contents); err != nil {
		f.Close()
		return &MaterializeError{Step: "write into " + display + " file", Err: err}
	}
	if err := f.Close(); err != nil {
		return &MaterializeError{Step: "write into " + display + " file", Err: err}
	}

	result.Files = append(result.Files, filepath.ToSlash(rel))
	m.success("wrote " + display + " file")
	return nil
}

func (m *Materializer) success(message string) {
	if m.Notifier != nil {
		m.Notifier.Success(message)
	}
}
