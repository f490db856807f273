// Package action executes the operations available on a selected
// repository: open it in the editor, copy its path or open a terminal
// in it.
//
// Every operation ends in exactly one notification, success or error.
// The Result tells the hosting UI whether the selection surface should
// close afterwards.
package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gitpick/gitpick/internal/clipboard"
	"github.com/gitpick/gitpick/internal/cmd"
	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/log"
	"github.com/gitpick/gitpick/internal/notify"
	"github.com/gitpick/gitpick/internal/scan"
	"github.com/gitpick/gitpick/internal/window"
)

// Result is the outcome of a dispatched action.
type Result struct {
	// Dismiss tells the hosting UI to close.
	Dismiss bool
	Err     error
}

// Dispatcher runs repository actions.
type Dispatcher struct {
	cfg      config.Config
	runner   cmd.Runner
	windows  window.Locator
	notifier notify.Notifier
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(cfg config.Config, r cmd.Runner, loc window.Locator, n notify.Notifier) *Dispatcher {
	return &Dispatcher{cfg: cfg, runner: r, windows: loc, notifier: n}
}

// OpenEditor opens the repository in the configured editor.
//
// If an existing window's title or application class contains the
// repository name that window is focused instead of launching a second
// editor instance. Window lookup is best effort: locator failures are
// logged and the launch proceeds.
func (d *Dispatcher) OpenEditor(ctx context.Context, e scan.Entry) Result {
	logger := log.FromContext(ctx)

	windows, err := d.windows.List(ctx)
	if err != nil {
		logger.Debug("window list failed", "error", err)
	}
	if w, ok := window.Match(windows, e.Name); ok {
		if err := d.windows.Focus(ctx, w); err == nil {
			d.notifier.Success(fmt.Sprintf("Focused existing window for %s", e.Name))
			return Result{Dismiss: true}
		} else {
			logger.Debug("window focus failed", "id", w.ID, "error", err)
		}
	}

	argv := strings.Fields(d.cfg.Editor.Command)
	if len(argv) == 0 {
		err := errors.New("editor command is empty")
		d.notifier.Error(err.Error())
		return Result{Err: err}
	}
	if flag := d.cfg.Editor.NewWindowFlag; flag != "" {
		argv = append(argv, flag)
	}
	argv = append(argv, e.Path)

	if err := d.runner.Start(ctx, "", argv[0], argv[1:]...); err != nil {
		d.notifier.Error(fmt.Sprintf("Opening %s in %s failed: %v", e.Name, argv[0], err))
		return Result{Err: err}
	}
	d.notifier.Success(fmt.Sprintf("Opened %s in %s", e.Name, argv[0]))
	return Result{Dismiss: true}
}

// CopyPath places the repository path on the clipboard, byte for byte.
func (d *Dispatcher) CopyPath(ctx context.Context, e scan.Entry) Result {
	if err := clipboard.Copy(ctx, d.runner, d.cfg.ClipboardTool, e.Path); err != nil {
		d.notifier.Error(fmt.Sprintf("Copy failed: %v", err))
		return Result{Err: err}
	}
	d.notifier.Success(fmt.Sprintf("Copied path of %s", e.Name))
	return Result{}
}

// OpenTerminal starts a terminal emulator with its working directory
// set to the repository path. When the primary emulator fails to start
// the configured fallback is tried once; its failure is the one that is
// reported.
func (d *Dispatcher) OpenTerminal(ctx context.Context, e scan.Entry) Result {
	logger := log.FromContext(ctx)

	primaryErr := d.launchTerminal(ctx, d.cfg.Terminal.Command, e.Path)
	if primaryErr != nil {
		logger.Debug("primary terminal failed", "command", d.cfg.Terminal.Command, "error", primaryErr)
		fallback := d.cfg.Terminal.Fallback
		if fallback == "" {
			d.notifier.Error(fmt.Sprintf("Terminal failed: %v", primaryErr))
			return Result{Err: primaryErr}
		}
		if err := d.launchTerminal(ctx, fallback, e.Path); err != nil {
			d.notifier.Error(fmt.Sprintf("Terminal failed: %v (fallback %s: %v)",
				primaryErr, strings.Fields(fallback)[0], err))
			return Result{Err: err}
		}
	}
	d.notifier.Success(fmt.Sprintf("Opened terminal in %s", e.Name))
	return Result{Dismiss: true}
}

// launchTerminal starts one emulator command detached. The {path}
// placeholder is substituted per argument so paths with spaces stay a
// single argument.
func (d *Dispatcher) launchTerminal(ctx context.Context, command, path string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return errors.New("terminal command is empty")
	}
	for i, a := range argv {
		argv[i] = strings.ReplaceAll(a, "{path}", path)
	}
	return d.runner.Start(ctx, path, argv[0], argv[1:]...)
}
