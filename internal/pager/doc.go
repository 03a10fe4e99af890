// Package pager coordinates pagination instances for a long-running process.
// It owns the instance registry and, per instance, the binding that parsed
// its expression and the controls that compute its navigation view.
// It is structured into small files by concern:
//
//   - pager.go: core Pager type, Bind/Unbind and lookups.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - ops.go: mutations (length, page, slice) and the stateless Pages call.
//   - status.go: instance summaries.
//   - errors.go: error types and helpers (IsBadRequest).
//   - events.go, eventpub_memory.go: page change events.
//   - metrics.go: Prometheus collectors.
//
// All exported methods are safe for concurrent use. Every mutation reports the
// change to the instance's controls, so a View read afterwards is current.
package pager
