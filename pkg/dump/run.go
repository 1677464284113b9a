// File: pkg/dump/run.go
package dump

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run writes the output document for opts and returns its path.
//
// Entries that do not exist are skipped with a notice on opts.Out. Any other
// failure aborts the run; the output file is closed on every path but its
// content is then incomplete.
func Run(opts Options, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	outputPath := filepath.Join(opts.Root, opts.OutputName)
	logger.Info("Starting code dump",
		zap.String("root", opts.Root),
		zap.Int("manifestEntries", len(opts.Manifest)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	closed := false
	defer func() {
		// Abort paths only; the success path closes before reporting.
		if !closed {
			if closeErr := outFile.Close(); closeErr != nil {
				logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if err := WriteTitle(writer, opts.Title); err != nil {
		return "", err
	}

	written, skipped := 0, 0
	for _, rel := range opts.Manifest {
		section, readErr := ReadSection(opts.Root, rel, opts.Languages)
		if IsMissing(readErr) {
			fmt.Fprintf(opts.out(), "skipping missing file: %s\n", rel)
			logger.Debug("Skipped missing manifest entry", zap.String("path", rel))
			skipped++
			continue
		}
		if readErr != nil {
			logger.Error("Failed to read manifest entry", zap.String("path", rel), zap.Error(readErr))
			return "", fmt.Errorf("failed to dump %s: %w", rel, readErr)
		}

		if err := WriteSection(writer, section); err != nil {
			logger.Error("Failed to write section", zap.String("path", rel), zap.Error(err))
			return "", err
		}
		written++
		logger.Debug("Wrote section",
			zap.String("path", rel),
			zap.String("language", section.Language),
			zap.Int("contentSizeBytes", len(section.Content)))
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return "", fmt.Errorf("failed to flush output: %w", err)
	}
	closed = true
	if err := outFile.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	fmt.Fprintf(opts.out(), "Wrote %s\n", outputPath)
	logger.Info("Code dump completed",
		zap.String("outputFile", outputPath),
		zap.Int("sections", written),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(startTime)))
	return outputPath, nil
}
