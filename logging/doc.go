// Package logging builds the *slog.Logger handles injected into pipeio components.
// Records are JSON by default; a text format and a discarding logger are available for
// command-line use and tests.
package logging
