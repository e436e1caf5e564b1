// Package status provides an immutable HTTP status record and the catalogue
// of registered statuses built from it.
package status

import (
	"encoding/json"
	"fmt"

	"github.com/next-trace/scg-http-status/contract"
)

// Status pairs an HTTP status code with its registered reason phrase.
//
// Fields:
//   - code: numeric status code (100-599 for every catalogue entry)
//   - text: reason phrase, verbatim per the registry (e.g. "Not Found")
//
// A Status is immutable: both fields are unexported, no setter exists, and
// the type has value semantics, so nothing a caller obtains — a catalogue
// entry, a copy, a value returned by New — can alter a constructed record.
type Status struct {
	code int
	text string
}

// compile-time guarantee that Status implements contract.Status
var _ contract.Status = Status{}

// New pairs a code with a reason phrase.
//
// New performs no validation and cannot fail: the catalogue call sites supply
// registered values, and ad hoc callers own the correctness of theirs. It is
// a general-purpose constructor; New(999, "Custom") yields a record that
// behaves exactly like a catalogue entry.
func New(code int, text string) Status {
	return Status{code: code, text: text}
}

// ------ contract.Status getters

func (s Status) Code() int    { return s.code }
func (s Status) Text() string { return s.text }

// String renders the record the way it appears on an HTTP status line,
// e.g. "404 Not Found".
func (s Status) String() string { return fmt.Sprintf("%d %s", s.code, s.text) }

// MarshalJSON encodes the record as {"status": <code>, "statusText": <phrase>}
// and nothing else, so an encoded Status merges directly into response
// payloads that expect those two field names.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status     int    `json:"status"`
		StatusText string `json:"statusText"`
	}{Status: s.code, StatusText: s.text})
}
