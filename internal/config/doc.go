// Package config handles loading and validation of gitpick configuration.
//
// Configuration is read from ~/.config/gitpick/config.toml. A missing file
// is not an error: defaults apply. An invalid file returns defaults plus an
// error so the CLI can warn and stay usable.
//
// # Key Settings
//
//   - workspace_dir: root directory searched for repositories
//     (must be absolute or ~/..., default ~/workspace)
//   - search_depth: maximum directory levels below the root (default 3)
//   - clipboard_tool: explicit clipboard pipe tool, empty for auto-detect
//   - [editor]: command and new_window_flag for the open action
//   - [terminal]: command (with optional {path} placeholder) and a single
//     fallback emulator
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like
// "." or "..") to avoid confusion about the working directory. A leading ~
// is expanded at load time since the shell does not expand inside files.
package config
