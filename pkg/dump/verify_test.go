package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseDocument_RoundTrip(t *testing.T) {
	contents := map[string]string{
		"a.ts":      "const x = 1;",
		"b.md":      "# heading\n\nbody\n",
		"empty.css": "",
		"noext":     "line1\n\n\nline4",
	}
	manifest := []string{"a.ts", "b.md", "empty.css", "noext"}

	opts, _ := testOptions(t, manifest...)
	for rel, content := range contents {
		writeFixture(t, opts.Root, rel, content)
	}
	path, err := Run(opts, zap.NewNop())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	title, sections, err := ParseDocument(data)
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, title)
	require.Len(t, sections, len(manifest))
	for i, rel := range manifest {
		assert.Equal(t, rel, sections[i].Path)
		assert.Equal(t, LanguageFor(rel, DefaultLanguages), sections[i].Language)
		assert.Equal(t, contents[rel], sections[i].Content, "content of %s", rel)
	}
}

func TestParseDocument_TitleOnly(t *testing.T) {
	title, sections, err := ParseDocument([]byte("# Query Library Code Dump\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "Query Library Code Dump", title)
	assert.Empty(t, sections)
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"heading without block", "# T\n\n## `a.ts`\n\n"},
		{"two headings", "# T\n\n## `a.ts`\n\n## `b.ts`\n\n```\nx\n```\n"},
		{"block without heading", "# T\n\n```\nx\n```\n"},
		{"paragraph", "# T\n\nsome prose\n"},
		{"level three heading", "# T\n\n### `a.ts`\n\n```\nx\n```\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseDocument([]byte(tc.doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestVerify_CurrentDocument(t *testing.T) {
	opts, _ := testOptions(t, "a.ts", "missing.json")
	writeFixture(t, opts.Root, "a.ts", "const x = 1;")
	_, err := Run(opts, zap.NewNop())
	require.NoError(t, err)

	drifts, err := Verify(opts, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestVerify_ReportsDrift(t *testing.T) {
	opts, _ := testOptions(t, "a.ts", "b.css", "c.json")
	writeFixture(t, opts.Root, "a.ts", "const x = 1;")
	writeFixture(t, opts.Root, "b.css", "body {}")
	_, err := Run(opts, zap.NewNop())
	require.NoError(t, err)

	writeFixture(t, opts.Root, "a.ts", "const x = 2;")
	writeFixture(t, opts.Root, "c.json", "{}")

	drifts, err := Verify(opts, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []Drift{
		{Path: "a.ts", Reason: "content differs"},
		{Path: "c.json", Reason: "missing from document"},
	}, drifts)
}

func TestVerify_RemovedFileAndTitle(t *testing.T) {
	opts, _ := testOptions(t, "a.ts")
	writeFixture(t, opts.Root, "a.ts", "x")
	_, err := Run(opts, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(opts.Root, "a.ts")))
	opts.Title = "Other"

	drifts, err := Verify(opts, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, drifts, 2)
	assert.Equal(t, `title is "Query Library Code Dump", expected "Other"`, drifts[0].String())
	assert.Equal(t, "a.ts: not expected in document", drifts[1].String())
}

func TestVerify_MissingDocument(t *testing.T) {
	opts, _ := testOptions(t, "a.ts")

	_, err := Verify(opts, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
