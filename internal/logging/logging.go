// Package logging builds the structured logger shared by the CLI and the
// search library.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used for empty or unknown level names.
const DefaultLevel = "info"

// ValidLevels lists the accepted level names, most verbose first.
var ValidLevels = []string{"trace", "debug", "info", "warn", "error"}

// NormalizeLevel lowercases level and falls back to DefaultLevel when it is
// not one of ValidLevels.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	for _, valid := range ValidLevels {
		if normalized == valid {
			return normalized
		}
	}
	return DefaultLevel
}

// IsValidLevel reports whether level names a known level.
func IsValidLevel(level string) bool {
	normalized := strings.ToLower(strings.TrimSpace(level))
	for _, valid := range ValidLevels {
		if normalized == valid {
			return true
		}
	}
	return false
}

// New returns a logger writing to w. "trace" maps to debug, the most
// verbose level the logger has. A nil writer discards output.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pathtrack",
		Level:  toLogLevel(NormalizeLevel(level)),
	})
}

// toLogLevel maps trace, which the logger lacks, onto debug.
func toLogLevel(level string) log.Level {
	if level == "trace" {
		level = "debug"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}
