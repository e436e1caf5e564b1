// Package status provides a fixed catalogue of HTTP status codes, each paired
// with its registered reason phrase, exposed as named immutable values.
//
// It exposes a single concrete type Status built by New, plus one package-level
// value per registered status, so callers reference a status by name
// (status.NotFound) instead of carrying a lookup table or remembering numbers.
//
// Key characteristics:
//   - Every catalogue entry is built once, at package initialization
//   - Records are immutable; values may be shared freely across goroutines
//   - Reason phrases reproduce the registry verbatim, casing and punctuation included
//   - JSON encoding yields the two-field {"status", "statusText"} response shape
//
// New is a general-purpose pairing constructor, not catalogue-private: code
// that needs an unregistered or experimental status can build its own record
// with identical behavior.
package status
