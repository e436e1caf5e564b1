package status_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/next-trace/scg-http-status/status"
)

func TestNew_PairsArbitraryValues(t *testing.T) {
	t.Parallel()

	// New is not catalogue-private: unregistered pairs must work identically.
	s := status.New(999, "Custom")

	if got, want := s.Code(), 999; got != want {
		t.Fatalf("Code()=%d want=%d", got, want)
	}

	if got, want := s.Text(), "Custom"; got != want {
		t.Fatalf("Text()=%q want=%q", got, want)
	}
}

func TestNew_IdenticalInputsCompareEqual(t *testing.T) {
	t.Parallel()

	a := status.New(404, "Not Found")
	b := status.New(404, "Not Found")

	if a != b {
		t.Fatalf("New with identical inputs: %v != %v", a, b)
	}

	if a != status.NotFound {
		t.Fatalf("ad hoc record %v != catalogue entry %v", a, status.NotFound)
	}
}

func TestString_StatusLineForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s    status.Status
		want string
	}{
		{status.OK, "200 OK"},
		{status.NotFound, "404 Not Found"},
		{status.ImATeapot, "418 I'm a teapot"},
		{status.New(999, "Custom"), "999 Custom"},
	}

	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("String()=%q want=%q", got, c.want)
		}
	}
}

func TestMarshalJSON_TwoFieldShape(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(status.NotFound)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if got, want := string(b), `{"status":404,"statusText":"Not Found"}`; got != want {
		t.Fatalf("Marshal=%s want=%s", got, want)
	}

	// Decoding back must surface exactly the two fields, nothing extra.
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := map[string]any{"status": float64(404), "statusText": "Not Found"}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("decoded=%v want=%v", m, want)
	}
}

func TestMarshalJSON_MergesIntoResponseObject(t *testing.T) {
	t.Parallel()

	// A catalogue entry merged into a larger payload must contribute its two
	// fields next to the caller's own and nothing else.
	enc, err := json.Marshal(status.ImATeapot)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	merged := map[string]any{"detail": "short and stout"}
	if err := json.Unmarshal(enc, &merged); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := map[string]any{
		"status":     float64(418),
		"statusText": "I'm a teapot",
		"detail":     "short and stout",
	}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged=%v want=%v", merged, want)
	}
}

func TestZeroValue_IsUsable(t *testing.T) {
	t.Parallel()

	var s status.Status

	if s.Code() != 0 || s.Text() != "" {
		t.Fatalf("zero value carries data: %d %q", s.Code(), s.Text())
	}

	if got, want := s.String(), "0 "; got != want {
		t.Fatalf("String()=%q want=%q", got, want)
	}
}

// FuzzNew verifies the constructor is total: any pair in, same pair out.
func FuzzNew(f *testing.F) {
	f.Add(200, "OK")
	f.Add(999, "Custom")
	f.Add(-1, "")
	f.Fuzz(func(t *testing.T, code int, text string) {
		t.Parallel()

		s := status.New(code, text)

		if s.Code() != code || s.Text() != text {
			t.Fatalf("New(%d, %q) => %d %q", code, text, s.Code(), s.Text())
		}

		if again := status.New(code, text); again != s {
			t.Fatalf("repeated construction not equal: %v != %v", again, s)
		}
	})
}
