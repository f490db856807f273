// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. All helpers
// take a context and log the invocation through the log package when verbose
// mode is enabled.
//
// # Runner
//
// The [Runner] interface is the single seam between gitpick and the outside
// world: the window locator, clipboard, editor and terminal launches all go
// through it. [System] is the os/exec implementation; tests substitute fakes
// to assert exact argv without spawning processes.
//
// # Detached launches
//
// [StartContext] starts a process without waiting and releases it, so
// editors and terminal emulators opened by gitpick outlive the gitpick
// process itself. Errors from Start reflect launch failure only (missing
// binary, bad working directory), which is exactly the signal the terminal
// fallback logic needs.
//
// # Design Notes
//
// gitpick shells out to desktop tools (wmctrl, wl-copy/xclip, editors,
// terminal emulators) rather than binding to display-server libraries.
// This keeps the tool portable across X11/Wayland setups and ensures it
// respects user configuration.
package cmd
