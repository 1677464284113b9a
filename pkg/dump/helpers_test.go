package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFixture creates rel under root with the given content.
func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// testOptions returns default options rooted at a fresh temp dir with the given manifest.
func testOptions(t *testing.T, manifest ...string) (Options, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts := DefaultOptions(t.TempDir())
	opts.Manifest = manifest
	opts.Out = &out
	return opts, &out
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// notifyWriter calls onWrite with every chunk written to it.
type notifyWriter struct {
	onWrite func(p []byte)
}

func (w notifyWriter) Write(p []byte) (int, error) {
	w.onWrite(p)
	return len(p), nil
}

// openDescriptors lists the targets of this process's open file descriptors.
// It returns nil where /proc is unavailable.
func openDescriptors(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return nil
	}
	var targets []string
	for _, e := range entries {
		if target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name())); err == nil {
			targets = append(targets, target)
		}
	}
	return targets
}
