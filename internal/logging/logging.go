// Package logging hands out component-scoped loggers that share one output
// and one level.
//
// Loggers write to stderr so they never interleave with tree dumps printed
// on stdout. The initial level comes from TUIOS_LAYOUT_LOG_LEVEL (debug,
// info, warn, error); the CLI may override it later via SetLevel.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"charm.land/log/v2"
)

// EnvLevel names the environment variable read for the startup level.
const EnvLevel = "TUIOS_LAYOUT_LOG_LEVEL"

var (
	mu      sync.Mutex
	level   = parseLevel(os.Getenv(EnvLevel))
	output  io.Writer = os.Stderr
	loggers = map[string]*log.Logger{}
)

// New returns the logger for component, creating it on first use.
func New(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		Prefix:          component,
		Level:           level,
	})
	loggers[component] = l
	return l
}

// SetLevel changes the level of every logger, including ones created later.
func SetLevel(l log.Level) {
	mu.Lock()
	defer mu.Unlock()

	level = l
	for _, logger := range loggers {
		logger.SetLevel(l)
	}
}

// SetLevelString parses value and applies it. Unknown values select info.
func SetLevelString(value string) {
	SetLevel(parseLevel(value))
}

// SetOutput redirects every logger. Tests use it to silence or capture logs.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}

// parseLevel maps a level name to a log.Level, defaulting to info.
func parseLevel(value string) log.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
