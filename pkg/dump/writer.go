// File: pkg/dump/writer.go
package dump

import (
	"fmt"
	"io"
	"strings"
)

// WriteTitle writes the level-1 heading and the blank line after it.
func WriteTitle(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	return nil
}

// WriteSection writes one file section in a single call:
// heading, blank line, fenced content, blank line.
func WriteSection(w io.Writer, s Section) error {
	var b strings.Builder
	b.Grow(len(s.Path) + len(s.Language) + len(s.Content) + 24)

	fmt.Fprintf(&b, "## `%s`\n\n", s.Path)
	b.WriteString(Fence + s.Language + "\n")
	b.WriteString(s.Content)
	b.WriteString("\n" + Fence + "\n\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write section %s: %w", s.Path, err)
	}
	return nil
}
