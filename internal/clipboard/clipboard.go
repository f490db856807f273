// Package clipboard writes text to the system clipboard.
//
// It prefers piping into a native clipboard tool (wl-copy on Wayland,
// xclip or xsel on X11) and falls back to the atotto/clipboard library
// when none is installed.
package clipboard

import (
	"context"
	"fmt"
	"strings"

	atotto "github.com/atotto/clipboard"

	"github.com/gitpick/gitpick/internal/cmd"
)

// candidates are probed in order when no tool is configured.
var candidates = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--input", "--clipboard"},
}

// Detect returns the argv of the first installed candidate tool.
func Detect(r cmd.Runner) ([]string, bool) {
	for _, argv := range candidates {
		if _, err := r.LookPath(argv[0]); err == nil {
			return argv, true
		}
	}
	return nil, false
}

// Copy writes text to the clipboard, byte for byte.
//
// When tool is non-blank it names the command to pipe into (split on
// whitespace) and a failure is reported rather than papered over with a
// fallback. When tool is empty or blank the first installed candidate
// is used, and the atotto library serves as last resort.
func Copy(ctx context.Context, r cmd.Runner, tool, text string) error {
	if strings.TrimSpace(tool) != "" {
		argv := strings.Fields(tool)
		if _, err := r.LookPath(argv[0]); err != nil {
			return fmt.Errorf("clipboard tool %q not found: %w", argv[0], err)
		}
		if err := r.RunInput(ctx, text, "", argv[0], argv[1:]...); err != nil {
			return fmt.Errorf("clipboard tool %q: %w", argv[0], err)
		}
		return nil
	}

	if argv, ok := Detect(r); ok {
		if err := r.RunInput(ctx, text, "", argv[0], argv[1:]...); err != nil {
			return fmt.Errorf("clipboard tool %q: %w", argv[0], err)
		}
		return nil
	}

	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("no clipboard tool available, install wl-copy, xclip or xsel: %w", err)
	}
	return nil
}
