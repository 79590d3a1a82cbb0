package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/cmakeproj/cmakeproj/internal/config"
)

// MinCMakeVersion is the oldest cmake that accepts CMAKE_CXX_STANDARD 23.
const MinCMakeVersion = "3.20"

var cmakeVersionRe = regexp.MustCompile(`cmake version (\S+)`)

// Options names the tools and config file to check.
type Options struct {
	CMake      string
	Generator  string
	Git        string
	ConfigPath string
}

// Checker runs the checks. LookPath and Output default to os/exec.
type Checker struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New returns a Checker backed by the host PATH.
func New() *Checker {
	return &Checker{
		LookPath: exec.LookPath,
		Output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Run writes a report to w and returns an error counting the problems found.
// A missing git is only a warning because repository initialisation is
// optional.
func (c *Checker) Run(ctx context.Context, w io.Writer, opts Options) error {
	problems := 0

	fmt.Fprintln(w, "Tool check:")
	if path, ok := c.checkBinary(w, opts.CMake); ok {
		if !c.checkCMakeVersion(ctx, w, path) {
			problems++
		}
	} else {
		problems++
	}

	if bin := GeneratorBinary(opts.Generator); bin != "" {
		if _, ok := c.checkBinary(w, bin); !ok {
			problems++
		}
	} else {
		fmt.Fprintf(w, "  [WARN] no known binary for generator %q, skipping\n", opts.Generator)
	}

	if path, err := c.LookPath(opts.Git); err != nil {
		fmt.Fprintf(w, "  [WARN] %s not found (repositories will not be initialised)\n", opts.Git)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", opts.Git, path)
	}

	fmt.Fprintln(w, "Config check:")
	if !checkConfig(w, opts.ConfigPath) {
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	return nil
}

func (c *Checker) checkBinary(w io.Writer, name string) (string, bool) {
	path, err := c.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return "", false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	return path, true
}

func (c *Checker) checkCMakeVersion(ctx context.Context, w io.Writer, path string) bool {
	out, err := c.Output(ctx, path, "--version")
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cmake --version: %v\n", err)
		return false
	}
	v, err := ParseCMakeVersion(string(out))
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	ok, err := SatisfiesMinimum(v)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if !ok {
		fmt.Fprintf(w, "  [FAIL] cmake %s is older than %s\n", v, MinCMakeVersion)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] cmake %s satisfies >= %s\n", v, MinCMakeVersion)
	return true
}

func checkConfig(w io.Writer, path string) bool {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "  [ OK ] no config file at %s, using defaults\n", path)
		return true
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return true
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return false
}

// ParseCMakeVersion extracts the version from `cmake --version` output.
// Pre-release and build suffixes are dropped.
func ParseCMakeVersion(output string) (*semver.Version, error) {
	m := cmakeVersionRe.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("unrecognised cmake --version output %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing cmake version %q: %w", m[1], err)
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return nil, err
	}
	release, err = release.SetMetadata("")
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// SatisfiesMinimum reports whether v is at least MinCMakeVersion.
func SatisfiesMinimum(v *semver.Version) (bool, error) {
	c, err := semver.NewConstraint(">= " + MinCMakeVersion)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

// GeneratorBinary maps a cmake generator name to the build tool it drives, or
// "" when unknown.
func GeneratorBinary(generator string) string {
	switch {
	case strings.HasPrefix(generator, "Ninja"):
		return "ninja"
	case generator == "Unix Makefiles":
		return "make"
	case generator == "MinGW Makefiles":
		return "mingw32-make"
	case generator == "NMake Makefiles":
		return "nmake"
	default:
		return ""
	}
}
