package main

import (
	"os"

	"github.com/cmakeproj/cmakeproj/internal/cli"
	"github.com/cmakeproj/cmakeproj/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		ui.Stdio().Error(err)
		os.Exit(1)
	}
}
