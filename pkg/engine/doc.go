// Package engine implements the mock API server core: the HTTP server
// lifecycle, the per-method routing and state transitions over the shared
// store, the size-bounded JSON body parser, and the JSON response writer.
//
// The engine is a test double, not a production API server: one fixed
// credential pair, opaque never-expiring tokens, and a single in-memory
// store. Callers construct a Server with NewServer, start it with Start,
// and stop it with Stop; multiple servers can coexist in one process.
package engine
