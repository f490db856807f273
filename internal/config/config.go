package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EditorConfig holds editor launch settings.
type EditorConfig struct {
	Command       string `toml:"command"`         // editor binary, e.g. "code"
	NewWindowFlag string `toml:"new_window_flag"` // flag forcing a new window, empty to disable
}

// TerminalConfig holds terminal emulator settings.
// Command may contain a {path} placeholder which is replaced with the
// repository path; the process working directory is set to the repository
// path either way.
type TerminalConfig struct {
	Command  string `toml:"command"`
	Fallback string `toml:"fallback"` // tried once when Command fails to launch
}

// Config holds the gitpick configuration.
type Config struct {
	WorkspaceDir  string         `toml:"workspace_dir"`
	SearchDepth   int            `toml:"search_depth"`
	ClipboardTool string         `toml:"clipboard_tool"` // empty = auto-detect
	Editor        EditorConfig   `toml:"editor"`
	Terminal      TerminalConfig `toml:"terminal"`
}

// DefaultSearchDepth bounds the scan to keep it cheap on large trees.
const DefaultSearchDepth = 3

// Default returns the default configuration.
// WorkspaceDir is left in ~ form; Load expands it.
func Default() Config {
	return Config{
		WorkspaceDir: "~/workspace",
		SearchDepth:  DefaultSearchDepth,
		Editor: EditorConfig{
			Command:       "code",
			NewWindowFlag: "--new-window",
		},
		Terminal: TerminalConfig{
			Command:  "gnome-terminal --working-directory={path}",
			Fallback: "xterm",
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Relative paths like "." or ".." are rejected.
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitpick", "config.toml"), nil
}

// Load reads config from ~/.config/gitpick/config.toml.
// Returns Default() (with workspace_dir expanded) if the file doesn't exist.
// Returns an error only if the file exists but is invalid; the returned
// config is still usable (defaults) so callers can warn and continue.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return expandedDefault(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given file path. See Load.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return expandedDefault(), nil
		}
		return expandedDefault(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return expandedDefault(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.WorkspaceDir, "workspace_dir"); err != nil {
		return expandedDefault(), err
	}
	if cfg.SearchDepth < 1 {
		return expandedDefault(), fmt.Errorf("search_depth must be >= 1, got: %d", cfg.SearchDepth)
	}
	if cfg.Editor.Command == "" {
		return expandedDefault(), errors.New("editor.command must not be empty")
	}
	if cfg.Terminal.Command == "" {
		return expandedDefault(), errors.New("terminal.command must not be empty")
	}

	// Shell doesn't expand ~ inside config files.
	expanded, err := ExpandPath(cfg.WorkspaceDir)
	if err != nil {
		return expandedDefault(), fmt.Errorf("expand workspace_dir: %w", err)
	}
	cfg.WorkspaceDir = expanded

	return cfg, nil
}

func expandedDefault() Config {
	cfg := Default()
	if expanded, err := ExpandPath(cfg.WorkspaceDir); err == nil {
		cfg.WorkspaceDir = expanded
	}
	return cfg
}

const defaultConfig = `# gitpick configuration

# Root directory to search for git repositories
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
workspace_dir = "~/workspace"

# How many directory levels below workspace_dir to search.
# Repositories nested deeper than this are not found.
search_depth = 3

# Clipboard tool for "copy path". Leave empty to auto-detect
# (wl-copy, xclip, xsel, then the built-in fallback).
# clipboard_tool = "wl-copy"

[editor]
# Editor launched for the open action. The repository path is passed
# as the last argument.
command = "code"
# Flag forcing a new window; set to "" if your editor has none.
new_window_flag = "--new-window"

[terminal]
# Terminal emulator for the open-in-terminal action.
# {path} is replaced with the repository path; the working directory
# is set to the repository path either way.
command = "gnome-terminal --working-directory={path}"
# Tried once when the primary terminal fails to launch.
fallback = "xterm"
`

// Init creates a default config file at ~/.config/gitpick/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
