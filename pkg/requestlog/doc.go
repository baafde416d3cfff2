// Package requestlog stores request history for inspection via the
// /debug/vars endpoint. Every request the engine receives is recorded here,
// whatever its outcome, in a fixed-capacity in-memory buffer.
package requestlog
