// Package logging provides concrete implementations of the propdoc.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Progress and diagnostic output goes to stderr so stdout stays reserved for
// document content, e.g. "propdoc template show".
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
