// Package logging wraps the standard library logger so every diagnostic
// line the engine prints goes to stderr, never stdout — stdout is the UCI
// protocol stream and nothing else may write to it.
package logging

import (
	"io"
	"log"
	"os"
)

// Default writes to stderr with the standard library's default flags.
var Default = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects the default logger, mainly for tests.
func SetOutput(w io.Writer) {
	Default.SetOutput(w)
}

// Printf logs a formatted diagnostic line.
func Printf(format string, args ...any) {
	Default.Printf(format, args...)
}

// Fatalf logs a formatted diagnostic line and exits(1).
func Fatalf(format string, args ...any) {
	Default.Fatalf(format, args...)
}
