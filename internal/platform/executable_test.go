package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not used on Windows")
	}

	tmp := t.TempDir()

	exe := filepath.Join(tmp, "app")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(tmp, "notes.txt")
	if err := os.WriteFile(plain, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	ownerOnly := filepath.Join(tmp, "tool")
	if err := os.WriteFile(ownerOnly, []byte("#!/bin/sh\n"), 0700); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(tmp, "CMakeFiles")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"executable file", exe, true},
		{"owner-only executable", ownerOnly, true},
		{"plain file", plain, false},
		{"directory with exec bits", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Lstat(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if got := IsExecutable(filepath.Base(tt.path), info); got != tt.want {
				t.Errorf("IsExecutable(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsExecutableSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}

	tmp := t.TempDir()
	target := filepath.Join(tmp, "app")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if IsExecutable("link", info) {
		t.Error("Lstat of a symlink should not count as executable")
	}
}

func TestIsExecutableNilInfo(t *testing.T) {
	if IsExecutable("x", nil) {
		t.Error("nil info should not be executable")
	}
}

func TestHasExecutableExt(t *testing.T) {
	tests := []struct {
		name    string
		pathExt string
		want    bool
	}{
		{"app.exe", "", true},
		{"APP.EXE", ".exe;.bat", true},
		{"run.cmd", "", true},
		{"lib.dll", "", false},
		{"noext", "", false},
		{"script.ps1", ".PS1;.EXE", true},
	}

	for _, tt := range tests {
		if got := hasExecutableExt(tt.name, tt.pathExt); got != tt.want {
			t.Errorf("hasExecutableExt(%q, %q) = %v, want %v", tt.name, tt.pathExt, got, tt.want)
		}
	}
}
