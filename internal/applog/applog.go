// Package applog configures process-wide structured logging for the
// fzmatch CLI.
package applog

import (
	"github.com/asticode/go-astilog"
)

// Init configures the default logger. fzmatch owns its own CLI flag
// namespace (see internal/config), so logging is configured from
// astilog's defaults rather than from argv, avoiding a second flag.Parse()
// over the same arguments under a different flag vocabulary. It must run
// once, before the first log call.
func Init() {
	c := astilog.FlagConfig()
	astilog.New(c)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	astilog.Debugf(format, args...)
}

// Error logs a recovered, non-fatal error (e.g. a single candidate whose
// scoring panicked) without aborting the run.
func Error(err error) {
	astilog.Error(err)
}

// Fatal logs err and terminates the process, for configuration or startup
// failures the CLI cannot proceed past.
func Fatal(err error) {
	astilog.Fatal(err)
}
