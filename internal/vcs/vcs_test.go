package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend  string
		wantType string
		wantNil  bool
		wantErr  bool
	}{
		{"exec", "*vcs.Exec", false, false},
		{"", "*vcs.Exec", false, false},
		{"builtin", "*vcs.Builtin", false, false},
		{"none", "", true, false},
		{"svn", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			got, err := New(tt.backend, "git")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("New(%q) = %T, want nil", tt.backend, got)
				}
				return
			}
			switch got.(type) {
			case *Exec:
				if tt.wantType != "*vcs.Exec" {
					t.Errorf("New(%q) returned *Exec", tt.backend)
				}
			case *Builtin:
				if tt.wantType != "*vcs.Builtin" {
					t.Errorf("New(%q) returned *Builtin", tt.backend)
				}
			default:
				t.Errorf("New(%q) returned unexpected %T", tt.backend, got)
			}
		})
	}
}

func TestNewDefaultsGitBinary(t *testing.T) {
	initializer, err := New("exec", "")
	if err != nil {
		t.Fatal(err)
	}
	if got := initializer.(*Exec).Binary; got != "git" {
		t.Errorf("Binary = %q, want %q", got, "git")
	}
}

func TestBuiltinInit(t *testing.T) {
	dir := t.TempDir()
	if err := (&Builtin{}).Init(context.Background(), dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		t.Fatalf(".git directory not created: %v", err)
	}

	// A second init on the same directory reports the existing repository.
	if err := (&Builtin{}).Init(context.Background(), dir); err == nil {
		t.Error("expected error re-initializing an existing repository")
	}
}

func TestExecInit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping")
	}

	dir := t.TempDir()
	if err := (&Exec{Binary: "git"}).Init(context.Background(), dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf(".git not created: %v", err)
	}
}

func TestExecMissingBinary(t *testing.T) {
	e := &Exec{Binary: "definitely-not-a-git-binary"}
	if err := e.Init(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
