package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/scan"
)

func TestResolveEntry(t *testing.T) {
	t.Parallel()

	entries := []scan.Entry{
		{Name: "proj-a", Path: "/ws/proj-a"},
		{Name: "proj-ab", Path: "/ws/proj-ab"},
		{Name: "server", Path: "/ws/server"},
	}

	tests := []struct {
		name     string
		arg      string
		wantPath string
		wantErr  string
	}{
		{name: "exact match", arg: "proj-a", wantPath: "/ws/proj-a"},
		{name: "exact match beats substring", arg: "proj-ab", wantPath: "/ws/proj-ab"},
		{name: "unique substring", arg: "serv", wantPath: "/ws/server"},
		{name: "case-insensitive substring", arg: "SERV", wantPath: "/ws/server"},
		{name: "ambiguous substring", arg: "proj", wantErr: "ambiguous"},
		{name: "no match", arg: "missing", wantErr: "no repository"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := resolveEntry(entries, tt.arg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("resolveEntry(%q) error = %v, want containing %q", tt.arg, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveEntry(%q) error = %v", tt.arg, err)
			}
			if e.Path != tt.wantPath {
				t.Errorf("resolveEntry(%q) = %q, want %q", tt.arg, e.Path, tt.wantPath)
			}
		})
	}
}

func TestResolveEntryAmbiguousListsCandidates(t *testing.T) {
	t.Parallel()

	entries := []scan.Entry{
		{Name: "proj-b", Path: "/ws/proj-b"},
		{Name: "proj-a", Path: "/ws/proj-a"},
	}

	_, err := resolveEntry(entries, "proj")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "proj-a, proj-b") {
		t.Errorf("error = %v, want sorted candidate list", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	base := func() config.Config {
		c := config.Default()
		c.WorkspaceDir = "/ws"
		return c
	}

	t.Run("no overrides", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "", 0, false); err != nil {
			t.Fatalf("applyOverrides() error = %v", err)
		}
		if c.WorkspaceDir != "/ws" || c.SearchDepth != config.DefaultSearchDepth {
			t.Errorf("config changed without overrides: %+v", c)
		}
	})

	t.Run("root override expands tilde", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "~/src", 0, false); err != nil {
			t.Fatalf("applyOverrides() error = %v", err)
		}
		if want := filepath.Join(home, "src"); c.WorkspaceDir != want {
			t.Errorf("WorkspaceDir = %q, want %q", c.WorkspaceDir, want)
		}
	})

	t.Run("relative root rejected", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "src", 0, false); err == nil {
			t.Error("expected error for relative --root")
		}
	})

	t.Run("depth override", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "", 5, true); err != nil {
			t.Fatalf("applyOverrides() error = %v", err)
		}
		if c.SearchDepth != 5 {
			t.Errorf("SearchDepth = %d, want 5", c.SearchDepth)
		}
	})

	t.Run("explicit zero depth rejected", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "", 0, true); err == nil {
			t.Error("expected error for explicit --depth 0")
		}
	})

	t.Run("negative depth rejected", func(t *testing.T) {
		t.Parallel()
		c := base()
		if err := applyOverrides(&c, "", -1, true); err == nil {
			t.Error("expected error for negative --depth")
		}
	})
}
