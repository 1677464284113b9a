package dump

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
)

var (
	// ErrMalformed is returned when a document does not follow the dump layout.
	ErrMalformed = errors.New("malformed dump document")
	// ErrDrift is returned when a document no longer matches the manifest.
	ErrDrift = errors.New("dump document is out of date")
)

// Drift describes one difference between a dump document and the files it was built from.
type Drift struct {
	Path   string
	Reason string
}

func (d Drift) String() string {
	if d.Path == "" {
		return d.Reason
	}
	return d.Path + ": " + d.Reason
}

// ParseDocument reads a dump document back into its title and sections.
func ParseDocument(data []byte) (string, []Section, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(data))

	var (
		title    string
		sections []Section
		pending  string
		inHeader bool
	)
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if inHeader {
				return "", nil, fmt.Errorf("%w: section %q has no code block", ErrMalformed, pending)
			}
			raw := headingText(node, data)
			switch {
			case node.Level == 1 && title == "" && len(sections) == 0:
				title = raw
			case node.Level == 2:
				pending = strings.TrimSuffix(strings.TrimPrefix(raw, "`"), "`")
				inHeader = true
			default:
				return "", nil, fmt.Errorf("%w: unexpected level %d heading %q", ErrMalformed, node.Level, raw)
			}
		case *ast.FencedCodeBlock:
			if !inHeader {
				return "", nil, fmt.Errorf("%w: code block without a section heading", ErrMalformed)
			}
			sections = append(sections, Section{
				Path:     pending,
				Language: string(node.Language(data)),
				Content:  blockContent(node, data),
			})
			inHeader = false
		default:
			return "", nil, fmt.Errorf("%w: unexpected %s block", ErrMalformed, n.Kind())
		}
	}
	if inHeader {
		return "", nil, fmt.Errorf("%w: section %q has no code block", ErrMalformed, pending)
	}
	return title, sections, nil
}

func headingText(h *ast.Heading, source []byte) string {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimSpace(buf.String())
}

// blockContent drops the newline WriteSection adds before the closing fence.
func blockContent(b *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := b.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Verify compares the document on disk with what Run would write now.
// It returns the differences found; a nil slice means the document is current.
func Verify(opts Options, logger *zap.Logger) ([]Drift, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	outputPath := filepath.Join(opts.Root, opts.OutputName)

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump document: %w", err)
	}
	title, got, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	var want []Section
	for _, rel := range opts.Manifest {
		section, err := ReadSection(opts.Root, rel, opts.Languages)
		if IsMissing(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", rel, err)
		}
		want = append(want, section)
	}

	var drifts []Drift
	if title != opts.Title {
		drifts = append(drifts, Drift{Reason: fmt.Sprintf("title is %q, expected %q", title, opts.Title)})
	}
	for i := 0; i < len(want) || i < len(got); i++ {
		switch {
		case i >= len(got):
			drifts = append(drifts, Drift{Path: want[i].Path, Reason: "missing from document"})
		case i >= len(want):
			drifts = append(drifts, Drift{Path: got[i].Path, Reason: "not expected in document"})
		case got[i].Path != want[i].Path:
			drifts = append(drifts, Drift{Path: want[i].Path, Reason: fmt.Sprintf("section %d is %q", i+1, got[i].Path)})
		case got[i].Language != want[i].Language:
			drifts = append(drifts, Drift{Path: want[i].Path, Reason: fmt.Sprintf("language tag is %q, expected %q", got[i].Language, want[i].Language)})
		case got[i].Content != want[i].Content:
			drifts = append(drifts, Drift{Path: want[i].Path, Reason: "content differs"})
		}
	}

	logger.Info("Verified dump document",
		zap.String("file", outputPath),
		zap.Int("sections", len(got)),
		zap.Int("drifts", len(drifts)))
	return drifts, nil
}
