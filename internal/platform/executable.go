package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// defaultPathExt is used on Windows when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// IsExecutable reports whether the file described by info is an executable
// program on the host platform. Directories, symlinks and other non-regular
// entries are never executable.
func IsExecutable(name string, info fs.FileInfo) bool {
	if info == nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return hasExecutableExt(name, os.Getenv("PATHEXT"))
	}
	return info.Mode().Perm()&0o111 != 0
}

// hasExecutableExt checks name's extension against a PATHEXT-style list.
func hasExecutableExt(name, pathExt string) bool {
	if pathExt == "" {
		pathExt = defaultPathExt
	}
	ext := strings.ToUpper(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range strings.Split(pathExt, ";") {
		if strings.ToUpper(strings.TrimSpace(e)) == ext {
			return true
		}
	}
	return false
}
