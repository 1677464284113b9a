// Package projectroot locates the project directory the dump manifest is relative to.
package projectroot

import (
	"os"
	"path/filepath"
	"runtime"
)

// Levels is the number of parent directories between this package's
// source directory and the project root (pkg/projectroot -> root).
const Levels = 2

// Root returns the absolute project root derived from this file's own location,
// so manifest entries resolve the same way from any working directory.
//
// Builds made with -trimpath record module-relative source paths. Those
// binaries must live in the project root, which is then the executable's
// own directory (e.g. go build -trimpath -o codedump .).
func Root() string {
	_, file, _, ok := runtime.Caller(0)
	return resolve(file, ok, os.Executable, os.Getwd)
}

// resolve picks the root from the caller's source file when it is an absolute
// path, then from the executable's directory, then the working directory.
func resolve(sourceFile string, ok bool, executable, getwd func() (string, error)) string {
	if ok && filepath.IsAbs(sourceFile) {
		return Ascend(filepath.Dir(sourceFile), Levels)
	}
	if exe, err := executable(); err == nil {
		return Ascend(filepath.Dir(exe), 0)
	}
	wd, _ := getwd()
	return wd
}

// Ascend returns path made absolute and moved up the given number of parents.
// Ascending past the filesystem root stays at the root.
func Ascend(path string, levels int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	for i := 0; i < levels; i++ {
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return abs
}
