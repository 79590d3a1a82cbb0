package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed files
var templateFS embed.FS

// File names of the embedded templates.
const (
	cmakeListsTemplate = "CMakeLists.txt.tmpl"
	gitIgnoreFile      = "gitignore"
	clangdFile         = "clangd"
)

// CMakeData holds the variables available to the CMakeLists.txt template.
type CMakeData struct {
	Name     string // Project name, e.g. "myproj"
	Standard string // Numeric C++ standard, e.g. "20"
}

// RenderCMakeLists renders CMakeLists.txt for the given project name and
// numeric standard version.
func RenderCMakeLists(name, standardVersion string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("rendering %s: project name is empty", cmakeListsTemplate)
	}
	if standardVersion == "" {
		return nil, fmt.Errorf("rendering %s: standard version is empty", cmakeListsTemplate)
	}

	raw, err := read(cmakeListsTemplate)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(cmakeListsTemplate).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", cmakeListsTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, CMakeData{Name: name, Standard: standardVersion}); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", cmakeListsTemplate, err)
	}
	return buf.Bytes(), nil
}

// GitIgnore returns the .gitignore contents.
func GitIgnore() []byte { return mustRead(gitIgnoreFile) }

// Clangd returns the .clangd editor-integration contents.
func Clangd() []byte { return mustRead(clangdFile) }

// MainSource returns the starter main.cpp for a numeric standard version.
// "20" selects the iostream starter and "23" the std::println one.
func MainSource(standardVersion string) ([]byte, error) {
	name := "main" + standardVersion + ".cpp"
	if !Has(name) {
		return nil, fmt.Errorf("no starter source for C++%s", standardVersion)
	}
	return read(name)
}

// Has reports whether an embedded template with the given file name exists.
func Has(name string) bool {
	_, err := fs.Stat(templateFS, path.Join("files", name))
	return err == nil
}

func read(name string) ([]byte, error) {
	data, err := fs.ReadFile(templateFS, path.Join("files", name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	return data, nil
}

// mustRead is for templates that are always embedded; a miss is a build defect.
func mustRead(name string) []byte {
	data, err := read(name)
	if err != nil {
		panic(err)
	}
	return data
}
