package main

import (
	"log"
	"os"
	"strings"

	"codedump/cmd"
	"codedump/pkg/logging"
	"codedump/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// Dev builds get human-readable debug logs; releases log JSON at info level.
	info := version.Get()
	if err := logging.Setup(info.IsDev(), "codedump", info.Version); err != nil {
		log.Printf("Failed to initialize logger, using fallback: %v", err)
	}
	logger := logging.Logger

	// Runs the dump (no arguments) or one of the read-only subcommands.
	// Fatal exits non-zero after logging the error.
	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("codedump execution failed", zap.Error(err))
	}

	// Syncing a pipe or /dev/stderr can fail with EINVAL; only sync real sinks.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile reports whether f is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Treat an unknown stderr like a pipe
	}
	return fileInfo.Mode().IsRegular()
}
