package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInspect(t *testing.T) {
	opts, _ := testOptions(t, "src/main.tsx", "missing.css", "notes")
	writeFixture(t, opts.Root, "src/main.tsx", "render()")
	writeFixture(t, opts.Root, "notes", "")

	entries, err := Inspect(opts, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Path: "src/main.tsx", Language: "tsx", Exists: true, SizeBytes: 8},
		{Path: "missing.css", Language: "css"},
		{Path: "notes", Exists: true},
	}, entries)
}

func TestInspect_FileAsParentIsMissing(t *testing.T) {
	opts, _ := testOptions(t, "file.txt/child.ts")
	writeFixture(t, opts.Root, "file.txt", "x")

	entries, err := Inspect(opts, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Exists)
}
