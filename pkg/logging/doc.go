// Package logging provides slog.Logger construction helpers shared by the
// CLI and the engine. It standardizes levels, output formats, and a no-op
// logger for tests and embedders that disable logging.
package logging
