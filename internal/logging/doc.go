// Package logging assembles the structured slog loggers used by the podclip
// API server and CLI.
//
// It owns the console and JSON handlers, maps config log levels onto slog,
// and tags log lines with tenant, episode, and request identifiers carried on
// the context. NewNop supplies a discarding logger for tests and for
// components constructed without one.
package logging
