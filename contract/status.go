// Package contract exposes the minimal status interface used by other packages.
//
// Implementations must be immutable: every getter returns the value fixed at
// construction, on every call, so instances may be shared without locking.
package contract

import "fmt"

// Status is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the code and reason phrase fixed at construction from every call.
//   - Render via String as "<code> <phrase>", the status-line form.
//
// The interface intentionally contains only getters to keep the API surface
// minimal and transport-agnostic.
type Status interface {
	fmt.Stringer
	Code() int
	Text() string
}
