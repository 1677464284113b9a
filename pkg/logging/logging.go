// Package logging builds the zap logger shared by the codedump commands.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger built by Setup.
var Logger = zap.NewNop()

// Setup builds Logger. Debug selects zap's development config (console output,
// debug level); otherwise the production JSON config is used. On failure
// Logger falls back to zap's example logger and the build error is returned.
func Setup(debug bool, appName, appVersion string) error {
	// Development: console encoder at debug level. Production: JSON at info.
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Every entry carries the binary's name and version.
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	built, err := cfg.Build()
	if err != nil {
		// Keep logging usable even if the configured sinks cannot be opened.
		Logger = zap.NewExample()
		return err
	}

	Logger = built
	zap.ReplaceGlobals(Logger) // zap.L() and zap.S() now log through Logger
	return nil
}
