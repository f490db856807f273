// Package window locates and focuses desktop windows for the
// "already open" check of the editor action.
//
// Matching against window titles is inherently heuristic: false positives
// and negatives are acceptable, callers must treat every result as best
// effort. The Locator interface isolates the mechanism so a more precise
// backend (e.g. an editor's own session list) can be substituted without
// touching dispatch logic.
package window

import (
	"context"
	"strings"

	"github.com/gitpick/gitpick/internal/cmd"
)

// Window is one entry of the window manager's client list.
type Window struct {
	ID    string // window manager identifier, opaque to callers
	Class string // application class, e.g. "code.Code"
	Title string
}

// Locator lists open windows and focuses one of them.
type Locator interface {
	List(ctx context.Context) ([]Window, error)
	Focus(ctx context.Context, w Window) error
}

// Match returns the first window whose title or class contains name,
// compared case-insensitively.
func Match(windows []Window, name string) (Window, bool) {
	needle := strings.ToLower(name)
	if needle == "" {
		return Window{}, false
	}
	for _, w := range windows {
		if strings.Contains(strings.ToLower(w.Title), needle) ||
			strings.Contains(strings.ToLower(w.Class), needle) {
			return w, true
		}
	}
	return Window{}, false
}

// Wmctrl is the Locator backed by the wmctrl CLI (X11 / XWayland).
type Wmctrl struct {
	runner cmd.Runner
}

// NewWmctrl creates a wmctrl-backed Locator.
func NewWmctrl(r cmd.Runner) *Wmctrl {
	return &Wmctrl{runner: r}
}

// Available reports whether wmctrl is installed.
func Available(r cmd.Runner) bool {
	_, err := r.LookPath("wmctrl")
	return err == nil
}

// List returns the window manager's client list.
func (l *Wmctrl) List(ctx context.Context) ([]Window, error) {
	out, err := l.runner.Output(ctx, "", "wmctrl", "-l", "-x")
	if err != nil {
		return nil, err
	}
	return parseClientList(string(out)), nil
}

// Focus raises and activates the window.
func (l *Wmctrl) Focus(ctx context.Context, w Window) error {
	return l.runner.Run(ctx, "", "wmctrl", "-i", "-a", w.ID)
}

// parseClientList parses `wmctrl -l -x` output. Each line is
//
//	0x03a00003  0 code.Code  hostname Visual Studio Code - proj-a
//
// with columns id, desktop, class, host and the title as the remainder.
func parseClientList(out string) []Window {
	var windows []Window
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		w := Window{ID: fields[0], Class: fields[2]}
		if len(fields) > 4 {
			w.Title = strings.Join(fields[4:], " ")
		}
		windows = append(windows, w)
	}
	return windows
}

// Nop is the Locator used when no window-listing tool is available.
// It never matches, so the editor action always launches a new window.
type Nop struct{}

func (Nop) List(context.Context) ([]Window, error) { return nil, nil }
func (Nop) Focus(context.Context, Window) error    { return nil }
