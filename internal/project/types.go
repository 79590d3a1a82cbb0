package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Standard selects the C++ language standard of a generated project.
type Standard string

// Supported standards.
const (
	Cpp20 Standard = "cpp20"
	Cpp23 Standard = "cpp23"
)

// Standards lists the supported standards in ascending order.
var Standards = []Standard{Cpp20, Cpp23}

// ParseStandard accepts "cpp20"/"cpp23" as well as "20", "c++20" and the
// "v1"/"v2" variant names.
func ParseStandard(s string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpp20", "c++20", "20", "v1":
		return Cpp20, nil
	case "cpp23", "c++23", "23", "v2":
		return Cpp23, nil
	default:
		return "", fmt.Errorf("unsupported standard %q: must be one of %s", s, StandardNames())
	}
}

// StandardNames joins the canonical standard names for messages and help.
func StandardNames() string {
	names := make([]string, len(Standards))
	for i, std := range Standards {
		names[i] = string(std)
	}
	return strings.Join(names, ", ")
}

// Version returns the numeric token used by CMAKE_CXX_STANDARD.
func (s Standard) Version() string {
	switch s {
	case Cpp20:
		return "20"
	case Cpp23:
		return "23"
	default:
		return ""
	}
}

func (s Standard) String() string { return string(s) }

// CreationMode records which command produced a project.
type CreationMode int

const (
	// ModeNew creates the project directory itself.
	ModeNew CreationMode = iota
	// ModeInit fills an existing empty directory named by an argument.
	ModeInit
	// ModeInitSameDir fills the working directory.
	ModeInitSameDir
)

func (m CreationMode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeInit:
		return "init"
	case ModeInitSameDir:
		return "init-same-dir"
	default:
		return "unknown"
	}
}

// Details describes one project to materialize.
type Details struct {
	Name     string       `validate:"required,excludes=/"`
	Path     string       `validate:"required"`
	Standard Standard     `validate:"required,oneof=cpp20 cpp23"`
	Mode     CreationMode `validate:"gte=0,lte=2"`
}

var validate = validator.New()

// Validate checks field constraints and that Path is absolute.
func (d *Details) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid project details: %w", err)
	}
	if !filepath.IsAbs(d.Path) {
		return fmt.Errorf("invalid project details: path %q is not absolute", d.Path)
	}
	return nil
}
