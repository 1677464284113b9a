// File: pkg/dump/config.go
package dump

import (
	"io"
	"os"
)

// Compiled-in defaults for a dump run.
const (
	DefaultTitle      = "Query Library Code Dump" // Level-1 heading at the top of the document.
	DefaultOutputName = "code_dump.md"            // Output file name, created in the project root.
	Fence             = "```"                     // Code fence marker used around each file.
)

// Options holds the configuration for a single dump run.
type Options struct {
	Root       string            // Absolute project root that manifest entries are relative to.
	OutputName string            // File name of the output document inside Root.
	Title      string            // Text of the level-1 heading.
	Manifest   []string          // Ordered relative paths to include.
	Languages  map[string]string // Lowercase suffix (with dot) to fence language tag.
	Out        io.Writer         // Destination for skip and completion notices; stdout when nil.
}

// DefaultOptions returns the compiled-in configuration rooted at root.
func DefaultOptions(root string) Options {
	return Options{
		Root:       root,
		OutputName: DefaultOutputName,
		Title:      DefaultTitle,
		Manifest:   DefaultManifest,
		Languages:  DefaultLanguages,
		Out:        os.Stdout,
	}
}

// Section is one file rendered into the output document.
type Section struct {
	Path     string // Manifest entry, as written in the heading.
	Language string // Fence language tag; empty for an untagged fence.
	Content  string // Raw file text.
}

// Entry describes the current state of one manifest entry.
type Entry struct {
	Path      string `yaml:"path"`
	Language  string `yaml:"language,omitempty"`
	Exists    bool   `yaml:"exists"`
	SizeBytes int64  `yaml:"size_bytes,omitempty"`
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}
