package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinterStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Success("wrote CMakeLists.txt file")
	p.Info("plain line")
	p.Warn("git init failed")
	p.Error(errors.New("specified path is not empty"))

	stdout := out.String()
	if !strings.Contains(stdout, "✓ wrote CMakeLists.txt file") {
		t.Errorf("stdout missing success line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "plain line\n") {
		t.Errorf("stdout missing info line:\n%s", stdout)
	}
	if strings.Contains(stdout, "Error:") || strings.Contains(stdout, "Warning:") {
		t.Errorf("errors and warnings must not go to stdout:\n%s", stdout)
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "Warning: git init failed") {
		t.Errorf("stderr missing warning:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Error: specified path is not empty") {
		t.Errorf("stderr missing error:\n%s", stderr)
	}
}

func TestPlainOutputHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)
	p.Success("done")
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("non-terminal output should not contain ANSI escapes: %q", out.String())
	}
}

func TestStyleHelpersKeepText(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)
	for _, tt := range []struct {
		name string
		got  string
	}{
		{"Accent", p.Accent("myproj")},
		{"Command", p.Command("myproj")},
		{"Subtle", p.Subtle("myproj")},
	} {
		if tt.got != "myproj" {
			t.Errorf("%s(myproj) = %q on a non-terminal writer", tt.name, tt.got)
		}
	}
}
