// Package cmd provides helpers for executing external commands with
// context support, verbose logging and proper error handling.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gitpick/gitpick/internal/log"
)

// Runner abstracts external process invocation so platform-specific
// backends can be substituted and tests can fake the process boundary.
type Runner interface {
	// Run executes a command and waits for it to finish.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Output executes a command and returns its stdout.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	// RunInput executes a command, feeding input on stdin, and waits.
	RunInput(ctx context.Context, input, dir, name string, args ...string) error
	// Start launches a command detached, without waiting for completion.
	Start(ctx context.Context, dir, name string, args ...string) error
	// LookPath resolves name to an executable in PATH.
	LookPath(name string) (string, error)
}

// System is the Runner backed by os/exec.
type System struct{}

func (System) Run(ctx context.Context, dir, name string, args ...string) error {
	return RunContext(ctx, dir, name, args...)
}

func (System) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return OutputContext(ctx, dir, name, args...)
}

func (System) RunInput(ctx context.Context, input, dir, name string, args ...string) error {
	return RunInputContext(ctx, input, dir, name, args...)
}

func (System) Start(ctx context.Context, dir, name string, args ...string) error {
	return StartContext(ctx, dir, name, args...)
}

func (System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunContext executes a command and returns stderr in the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	return RunInputContext(ctx, "", dir, name, args...)
}

// RunInputContext is like RunContext but feeds input on the command's stdin.
func RunInputContext(ctx context.Context, input, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	if input != "" {
		c.Stdin = strings.NewReader(input)
	}
	var stderr bytes.Buffer
	c.Stderr = &stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command and returns stdout, with stderr in the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	out, err := c.Output()
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return out, nil
}

// StartContext launches a command detached from gitpick's lifetime.
// The error only reflects launch failure (missing binary, bad dir); the
// process itself is released and never waited on.
func StartContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Deliberately not CommandContext: the launched editor or terminal
	// must outlive gitpick.
	c := exec.Command(name, args...)
	c.Dir = dir

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Start()
	done(time.Since(start))

	if err != nil {
		return err
	}
	return c.Process.Release()
}
