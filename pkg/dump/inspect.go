package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Inspect reports the language tag and presence of every manifest entry, in
// manifest order. Only stat failures other than a missing path are errors.
func Inspect(opts Options, logger *zap.Logger) ([]Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries := make([]Entry, 0, len(opts.Manifest))

	for _, rel := range opts.Manifest {
		entry := Entry{
			Path:     rel,
			Language: LanguageFor(rel, opts.Languages),
		}

		info, err := os.Stat(filepath.Join(opts.Root, filepath.FromSlash(rel)))
		switch {
		case IsMissing(err):
			logger.Debug("Manifest entry not found", zap.String("path", rel))
		case err != nil:
			logger.Warn("Cannot stat manifest entry", zap.String("path", rel), zap.Error(err))
			return nil, fmt.Errorf("stat %s: %w", rel, err)
		default:
			entry.Exists = true
			entry.SizeBytes = info.Size()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
