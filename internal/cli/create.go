package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmakeproj/cmakeproj/internal/config"
	"github.com/cmakeproj/cmakeproj/internal/project"
	"github.com/cmakeproj/cmakeproj/internal/ui"
	"github.com/cmakeproj/cmakeproj/internal/vcs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createOptions holds the flags shared by new and init.
type createOptions struct {
	standard string
	noGit    bool
	noClangd bool
}

func (o *createOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.standard, "standard", "s", "", "C++ standard, one of "+project.StandardNames()+" (default from config)")
	cmd.Flags().BoolVar(&o.noGit, "no-git", false, "Skip git repository initialisation")
	cmd.Flags().BoolVar(&o.noClangd, "no-clangd", false, "Do not write a .clangd file")
}

// resolveStandard prefers the flag over the configured default.
func (o *createOptions) resolveStandard(s config.Settings) (project.Standard, error) {
	value := o.standard
	if value == "" {
		value = s.Standard
	}
	return project.ParseStandard(value)
}

func (o *createOptions) materializer(fsys afero.Fs, p *ui.Printer, s config.Settings) (*project.Materializer, error) {
	m := &project.Materializer{
		Fs:           fsys,
		Notifier:     p,
		EditorConfig: s.EditorConfig && !o.noClangd,
		StrictVCS:    s.StrictVCS,
	}
	if o.noGit {
		return m, nil
	}
	initializer, err := vcs.New(s.VCSBackend, s.Git)
	if err != nil {
		return nil, err
	}
	m.VCS = initializer
	return m, nil
}

// printNextSteps tells the user how to configure, build and run the new
// project.
func printNextSteps(p *ui.Printer, cwd string, d *project.Details, s config.Settings) {
	fmt.Fprintln(p.Out)
	p.Info("Project " + p.Accent(d.Name) + " created")
	p.Info("")
	p.Info(p.Subtle("Next steps:"))
	if d.Mode != project.ModeInitSameDir {
		dir := d.Path
		if rel, err := filepath.Rel(cwd, d.Path); err == nil && !strings.HasPrefix(rel, "..") {
			dir = rel
		}
		p.Info("  " + p.Command("cd "+shellQuote(dir)))
	}
	p.Info("  " + p.Command(fmt.Sprintf("cmake -B %s -G %s", shellQuote(s.BuildDir), shellQuote(s.Generator))))
	exe := filepath.ToSlash(filepath.Join(s.BuildDir, d.Name))
	p.Info("  " + p.Command(fmt.Sprintf("cmake --build %s && ./%s", shellQuote(s.BuildDir), exe)))
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t'\"$&;|<>()*?") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
