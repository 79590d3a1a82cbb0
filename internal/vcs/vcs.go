package vcs

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/go-git/go-git/v5"
)

// Supported backend identifiers (config key vcs.backend).
const (
	BackendExec    = "exec"
	BackendBuiltin = "builtin"
	BackendNone    = "none"
)

// Initializer creates an empty repository rooted at dir.
type Initializer interface {
	Init(ctx context.Context, dir string) error
	Name() string
}

// New returns the Initializer for a backend. BackendNone yields a nil
// Initializer, which callers treat as "skip repository creation".
func New(backend, gitBinary string) (Initializer, error) {
	switch backend {
	case BackendExec, "":
		if gitBinary == "" {
			gitBinary = "git"
		}
		return &Exec{Binary: gitBinary}, nil
	case BackendBuiltin:
		return &Builtin{}, nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown vcs backend %q: supported backends are %q, %q and %q",
			backend, BackendExec, BackendBuiltin, BackendNone)
	}
}

// Exec runs `<Binary> init` in the target directory. Output is discarded.
type Exec struct {
	Binary string
}

func (e *Exec) Name() string { return e.Binary }

func (e *Exec) Init(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(e.Binary)
	if err != nil {
		return fmt.Errorf("%s is required but not found in PATH", e.Binary)
	}

	cmd := exec.CommandContext(ctx, bin, "init")
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s init: %w", e.Binary, err)
	}
	return nil
}

// Builtin initializes the repository in-process.
type Builtin struct{}

func (b *Builtin) Name() string { return "go-git" }

func (b *Builtin) Init(_ context.Context, dir string) error {
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("initializing repository in %s: %w", dir, err)
	}
	return nil
}
