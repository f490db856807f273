// Package doctor diagnoses the environment gitpick depends on: the
// workspace root, the configured editor and terminals, a clipboard tool
// and the optional window-matching helper.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gitpick/gitpick/internal/clipboard"
	"github.com/gitpick/gitpick/internal/cmd"
	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/window"
)

// Status classifies a check result.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn" // degraded but usable
	StatusFail Status = "fail" // a core action will not work
)

// Check is one diagnostic result.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Run performs all checks against the given configuration.
func Run(_ context.Context, cfg config.Config, r cmd.Runner) []Check {
	return []Check{
		checkWorkspace(cfg),
		checkEditor(cfg, r),
		checkClipboard(cfg, r),
		checkWindowTool(r),
		checkTerminal(cfg, r),
	}
}

// Healthy reports whether no check failed. Warnings are fine.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusFail {
			return false
		}
	}
	return true
}

func checkWorkspace(cfg config.Config) Check {
	c := Check{Name: "workspace root"}
	info, err := os.Stat(cfg.WorkspaceDir)
	switch {
	case err != nil:
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s does not exist", cfg.WorkspaceDir)
	case !info.IsDir():
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s is not a directory", cfg.WorkspaceDir)
	default:
		c.Status = StatusOK
		c.Detail = cfg.WorkspaceDir
	}
	return c
}

func checkEditor(cfg config.Config, r cmd.Runner) Check {
	c := Check{Name: "editor"}
	argv := strings.Fields(cfg.Editor.Command)
	if len(argv) == 0 {
		c.Status = StatusFail
		c.Detail = "editor.command is empty"
		return c
	}
	if _, err := r.LookPath(argv[0]); err != nil {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s not found on PATH", argv[0])
		return c
	}
	c.Status = StatusOK
	c.Detail = argv[0]
	return c
}

func checkClipboard(cfg config.Config, r cmd.Runner) Check {
	c := Check{Name: "clipboard"}
	// A blank clipboard_tool means auto-detect, same as unset.
	if name := firstField(cfg.ClipboardTool); name != "" {
		if _, err := r.LookPath(name); err != nil {
			c.Status = StatusFail
			c.Detail = fmt.Sprintf("configured tool %s not found on PATH", name)
			return c
		}
		c.Status = StatusOK
		c.Detail = name
		return c
	}
	if argv, ok := clipboard.Detect(r); ok {
		c.Status = StatusOK
		c.Detail = argv[0]
		return c
	}
	c.Status = StatusWarn
	c.Detail = "no clipboard tool found, library fallback will be used (install wl-copy, xclip or xsel)"
	return c
}

func checkWindowTool(r cmd.Runner) Check {
	c := Check{Name: "window matching"}
	if window.Available(r) {
		c.Status = StatusOK
		c.Detail = "wmctrl"
		return c
	}
	c.Status = StatusWarn
	c.Detail = "wmctrl not found, open always launches a new editor window"
	return c
}

func checkTerminal(cfg config.Config, r cmd.Runner) Check {
	c := Check{Name: "terminal"}
	primary := firstField(cfg.Terminal.Command)
	fallback := firstField(cfg.Terminal.Fallback)

	primaryOK := primary != "" && lookPathOK(r, primary)
	fallbackOK := fallback != "" && lookPathOK(r, fallback)

	switch {
	case primaryOK:
		c.Status = StatusOK
		c.Detail = primary
	case fallbackOK:
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("%s not found, falling back to %s", primary, fallback)
	default:
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("neither %s nor a fallback terminal found on PATH", primary)
	}
	return c
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lookPathOK(r cmd.Runner, name string) bool {
	_, err := r.LookPath(name)
	return err == nil
}
