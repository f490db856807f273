// Package cmdtest provides a fake Runner for testing code that crosses
// the process boundary without spawning processes.
package cmdtest

import (
	"context"
	"fmt"
	"sync"
)

// Call records one invocation against the fake Runner.
type Call struct {
	Op    string // "run", "output", "run-input", "start" or "look-path"
	Dir   string
	Name  string
	Args  []string
	Input string
}

// Fake is a scripted cmd.Runner.
// The zero value succeeds on everything, returns empty output and finds
// every binary.
type Fake struct {
	mu    sync.Mutex
	calls []Call

	// Missing lists binary names LookPath cannot resolve.
	Missing map[string]bool
	// FailOn maps binary names to the error their execution returns.
	FailOn map[string]error
	// Outputs maps binary names to their stdout for Output calls.
	Outputs map[string]string
}

func (f *Fake) record(c Call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// Calls returns a copy of all recorded calls.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsFor returns all recorded executions (not LookPath probes) of name.
func (f *Fake) CallsFor(name string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Name == name && c.Op != "look-path" {
			out = append(out, c)
		}
	}
	return out
}

func (f *Fake) Run(_ context.Context, dir, name string, args ...string) error {
	f.record(Call{Op: "run", Dir: dir, Name: name, Args: args})
	return f.FailOn[name]
}

func (f *Fake) Output(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.record(Call{Op: "output", Dir: dir, Name: name, Args: args})
	if err := f.FailOn[name]; err != nil {
		return nil, err
	}
	return []byte(f.Outputs[name]), nil
}

func (f *Fake) RunInput(_ context.Context, input, dir, name string, args ...string) error {
	f.record(Call{Op: "run-input", Dir: dir, Name: name, Args: args, Input: input})
	return f.FailOn[name]
}

func (f *Fake) Start(_ context.Context, dir, name string, args ...string) error {
	f.record(Call{Op: "start", Dir: dir, Name: name, Args: args})
	return f.FailOn[name]
}

func (f *Fake) LookPath(name string) (string, error) {
	f.record(Call{Op: "look-path", Name: name})
	if f.Missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}
