// Package main demonstrates usage of the scg-http-status package.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/next-trace/scg-http-status/status"
)

func main() {
	// Catalogue entries are referenced by name.
	fmt.Println(status.OK, "/", status.NotFound, "/", status.ImATeapot)
	fmt.Println(status.NotFound.Code(), status.NotFound.Text())

	// JSON form: the two-field response shape.
	b, _ := json.Marshal(status.ServiceUnavailable)
	fmt.Println(string(b))

	// New builds ad hoc records for unregistered codes.
	custom := status.New(999, "Custom")
	fmt.Println(custom)
}
