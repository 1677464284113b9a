// File: pkg/dump/section.go
package dump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// ErrNotRegularFile is returned when a manifest entry names a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// ReadSection resolves rel against root and reads it whole.
// The returned error satisfies IsMissing when the entry does not exist.
func ReadSection(root, rel string, languages map[string]string) (Section, error) {
	filePath := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(filePath)
	if err != nil {
		return Section{}, fmt.Errorf("stat %s: %w", rel, err)
	}
	if !info.Mode().IsRegular() {
		return Section{}, fmt.Errorf("%s: %w", rel, ErrNotRegularFile)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Section{}, fmt.Errorf("error reading file %s: %w", rel, err)
	}
	if err := checkText(data); err != nil {
		return Section{}, fmt.Errorf("%s: %w", rel, err)
	}

	return Section{
		Path:     rel,
		Language: LanguageFor(rel, languages),
		Content:  string(data),
	}, nil
}

// IsMissing reports whether err means the path does not resolve to anything:
// it does not exist, a parent component is a file, or a symlink loops.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
