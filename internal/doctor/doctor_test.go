package doctor

import (
	"context"
	"strings"
	"testing"

	"github.com/gitpick/gitpick/internal/cmd/cmdtest"
	"github.com/gitpick/gitpick/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		WorkspaceDir: t.TempDir(),
		SearchDepth:  3,
		Editor:       config.EditorConfig{Command: "code", NewWindowFlag: "--new-window"},
		Terminal:     config.TerminalConfig{Command: "gnome-terminal --working-directory={path}", Fallback: "xterm"},
	}
}

func byName(t *testing.T, checks []Check, name string) Check {
	t.Helper()
	for _, c := range checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in %v", name, checks)
	return Check{}
}

func TestRunAllHealthy(t *testing.T) {
	t.Parallel()

	checks := Run(context.Background(), testConfig(t), &cmdtest.Fake{})
	if !Healthy(checks) {
		t.Errorf("Healthy() = false: %+v", checks)
	}
	for _, c := range checks {
		if c.Status != StatusOK {
			t.Errorf("%s = %s (%s), want ok", c.Name, c.Status, c.Detail)
		}
	}
}

func TestMissingWorkspaceFails(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.WorkspaceDir = cfg.WorkspaceDir + "/does-not-exist"

	checks := Run(context.Background(), cfg, &cmdtest.Fake{})
	if c := byName(t, checks, "workspace root"); c.Status != StatusFail {
		t.Errorf("workspace root = %s, want fail", c.Status)
	}
	if Healthy(checks) {
		t.Error("Healthy() = true with missing workspace root")
	}
}

func TestMissingEditorFails(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"code": true}}
	checks := Run(context.Background(), testConfig(t), fake)

	c := byName(t, checks, "editor")
	if c.Status != StatusFail {
		t.Errorf("editor = %s, want fail", c.Status)
	}
	if !strings.Contains(c.Detail, "code") {
		t.Errorf("editor detail = %q, want mention of binary", c.Detail)
	}
}

func TestConfiguredClipboardToolMissingFails(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.ClipboardTool = "wl-copy"
	fake := &cmdtest.Fake{Missing: map[string]bool{"wl-copy": true}}

	if c := byName(t, Run(context.Background(), cfg, fake), "clipboard"); c.Status != StatusFail {
		t.Errorf("clipboard = %s, want fail", c.Status)
	}
}

func TestBlankClipboardToolAutoDetects(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.ClipboardTool = "   "

	c := byName(t, Run(context.Background(), cfg, &cmdtest.Fake{}), "clipboard")
	if c.Status != StatusOK {
		t.Errorf("clipboard = %s (%s), want ok via auto-detect", c.Status, c.Detail)
	}
	if c.Detail != "wl-copy" {
		t.Errorf("clipboard detail = %q, want detected tool", c.Detail)
	}
}

func TestNoClipboardToolWarns(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"wl-copy": true, "xclip": true, "xsel": true}}
	checks := Run(context.Background(), testConfig(t), fake)

	c := byName(t, checks, "clipboard")
	if c.Status != StatusWarn {
		t.Errorf("clipboard = %s, want warn", c.Status)
	}
	if Healthy(checks) != true {
		t.Error("Healthy() = false, warnings must not fail doctor")
	}
}

func TestMissingWmctrlWarns(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"wmctrl": true}}
	checks := Run(context.Background(), testConfig(t), fake)

	if c := byName(t, checks, "window matching"); c.Status != StatusWarn {
		t.Errorf("window matching = %s, want warn", c.Status)
	}
	if !Healthy(checks) {
		t.Error("Healthy() = false, wmctrl is optional")
	}
}

func TestTerminalFallbackOnlyWarns(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"gnome-terminal": true}}
	checks := Run(context.Background(), testConfig(t), fake)

	c := byName(t, checks, "terminal")
	if c.Status != StatusWarn {
		t.Errorf("terminal = %s, want warn", c.Status)
	}
	if !strings.Contains(c.Detail, "xterm") {
		t.Errorf("terminal detail = %q, want mention of fallback", c.Detail)
	}
}

func TestNoTerminalFails(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"gnome-terminal": true, "xterm": true}}
	checks := Run(context.Background(), testConfig(t), fake)

	if c := byName(t, checks, "terminal"); c.Status != StatusFail {
		t.Errorf("terminal = %s, want fail", c.Status)
	}
	if Healthy(checks) {
		t.Error("Healthy() = true with no terminal available")
	}
}
