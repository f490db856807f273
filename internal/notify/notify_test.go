package notify

import (
	"strings"
	"testing"
)

type record struct {
	successes []string
	errors    []string
}

func (r *record) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *record) Error(msg string)   { r.errors = append(r.errors, msg) }

func TestWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := Writer{Out: &sb}

	w.Success("Copied path to clipboard")
	w.Error("proj-a: editor failed")

	got := sb.String()
	want := "✓ Copied path to clipboard\n✗ proj-a: editor failed\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMulti(t *testing.T) {
	t.Parallel()

	a, b := &record{}, &record{}
	m := Multi{a, b}

	m.Success("opened")
	m.Error("failed")

	for _, r := range []*record{a, b} {
		if len(r.successes) != 1 || r.successes[0] != "opened" {
			t.Errorf("successes = %v, want [opened]", r.successes)
		}
		if len(r.errors) != 1 || r.errors[0] != "failed" {
			t.Errorf("errors = %v, want [failed]", r.errors)
		}
	}
}

func TestMultiEmpty(t *testing.T) {
	t.Parallel()

	var m Multi
	m.Success("no receivers")
	m.Error("no receivers")
}
