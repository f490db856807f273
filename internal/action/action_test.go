package action

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gitpick/gitpick/internal/cmd/cmdtest"
	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/scan"
	"github.com/gitpick/gitpick/internal/window"
)

type capture struct {
	successes []string
	errors    []string
}

func (c *capture) Success(msg string) { c.successes = append(c.successes, msg) }
func (c *capture) Error(msg string)   { c.errors = append(c.errors, msg) }

// total returns how many notifications were delivered.
func (c *capture) total() int { return len(c.successes) + len(c.errors) }

type fakeLocator struct {
	windows  []window.Window
	listErr  error
	focusErr error
	focused  []window.Window
}

func (l *fakeLocator) List(context.Context) ([]window.Window, error) {
	return l.windows, l.listErr
}

func (l *fakeLocator) Focus(_ context.Context, w window.Window) error {
	if l.focusErr != nil {
		return l.focusErr
	}
	l.focused = append(l.focused, w)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		WorkspaceDir: "/home/u/workspace",
		SearchDepth:  3,
		Editor: config.EditorConfig{
			Command:       "code",
			NewWindowFlag: "--new-window",
		},
		Terminal: config.TerminalConfig{
			Command:  "gnome-terminal --working-directory={path}",
			Fallback: "xterm",
		},
	}
}

var entry = scan.Entry{
	Name:     "proj-a",
	Path:     "/home/u/workspace/proj-a",
	Subtitle: "proj-a",
}

func TestOpenEditorLaunchesNewWindow(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	d := NewDispatcher(testConfig(), fake, &fakeLocator{}, notes)

	res := d.OpenEditor(context.Background(), entry)
	if res.Err != nil {
		t.Fatalf("OpenEditor() err = %v", res.Err)
	}
	if !res.Dismiss {
		t.Error("OpenEditor() Dismiss = false, want true")
	}

	calls := fake.CallsFor("code")
	if len(calls) != 1 {
		t.Fatalf("code calls = %d, want 1", len(calls))
	}
	if calls[0].Op != "start" {
		t.Errorf("code op = %q, want start", calls[0].Op)
	}
	if want := []string{"--new-window", "/home/u/workspace/proj-a"}; !reflect.DeepEqual(calls[0].Args, want) {
		t.Errorf("code args = %v, want %v", calls[0].Args, want)
	}
	if notes.total() != 1 || len(notes.successes) != 1 {
		t.Errorf("notifications = %d successes, %d errors, want exactly one success",
			len(notes.successes), len(notes.errors))
	}
}

func TestOpenEditorWithoutNewWindowFlag(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Editor.NewWindowFlag = ""
	fake := &cmdtest.Fake{}
	d := NewDispatcher(cfg, fake, &fakeLocator{}, &capture{})

	d.OpenEditor(context.Background(), entry)

	calls := fake.CallsFor("code")
	if len(calls) != 1 {
		t.Fatalf("code calls = %d, want 1", len(calls))
	}
	if want := []string{"/home/u/workspace/proj-a"}; !reflect.DeepEqual(calls[0].Args, want) {
		t.Errorf("code args = %v, want %v", calls[0].Args, want)
	}
}

func TestOpenEditorFocusesExistingWindow(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	loc := &fakeLocator{windows: []window.Window{
		{ID: "0x1", Class: "code.Code", Title: "Visual Studio Code - proj-a"},
	}}
	d := NewDispatcher(testConfig(), fake, loc, notes)

	res := d.OpenEditor(context.Background(), entry)
	if !res.Dismiss || res.Err != nil {
		t.Fatalf("OpenEditor() = %+v, want dismiss without error", res)
	}

	if len(loc.focused) != 1 || loc.focused[0].ID != "0x1" {
		t.Errorf("focused = %v, want window 0x1", loc.focused)
	}
	if calls := fake.CallsFor("code"); len(calls) != 0 {
		t.Errorf("editor launched %d times although a window matched", len(calls))
	}
	if notes.total() != 1 || len(notes.successes) != 1 {
		t.Errorf("notifications = %+v, want exactly one success", notes)
	}
}

func TestOpenEditorLocatorErrorStillLaunches(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	loc := &fakeLocator{listErr: errors.New("no display")}
	d := NewDispatcher(testConfig(), fake, loc, notes)

	res := d.OpenEditor(context.Background(), entry)
	if !res.Dismiss || res.Err != nil {
		t.Fatalf("OpenEditor() = %+v, want dismiss without error", res)
	}
	if calls := fake.CallsFor("code"); len(calls) != 1 {
		t.Errorf("code calls = %d, want 1", len(calls))
	}
	if len(notes.errors) != 0 {
		t.Errorf("locator error surfaced as notification: %v", notes.errors)
	}
}

func TestOpenEditorFocusFailureFallsBackToLaunch(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	loc := &fakeLocator{
		windows:  []window.Window{{ID: "0x1", Title: "proj-a"}},
		focusErr: errors.New("window gone"),
	}
	d := NewDispatcher(testConfig(), fake, loc, notes)

	res := d.OpenEditor(context.Background(), entry)
	if !res.Dismiss || res.Err != nil {
		t.Fatalf("OpenEditor() = %+v, want dismiss without error", res)
	}
	if calls := fake.CallsFor("code"); len(calls) != 1 {
		t.Errorf("code calls = %d, want 1", len(calls))
	}
}

func TestOpenEditorLaunchFailure(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{FailOn: map[string]error{"code": errors.New("not installed")}}
	notes := &capture{}
	d := NewDispatcher(testConfig(), fake, &fakeLocator{}, notes)

	res := d.OpenEditor(context.Background(), entry)
	if res.Err == nil {
		t.Fatal("OpenEditor() expected error")
	}
	if res.Dismiss {
		t.Error("OpenEditor() Dismiss = true after failure")
	}
	if notes.total() != 1 || len(notes.errors) != 1 {
		t.Errorf("notifications = %+v, want exactly one error", notes)
	}
}

func TestCopyPath(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	cfg := testConfig()
	cfg.ClipboardTool = "wl-copy"
	d := NewDispatcher(cfg, fake, &fakeLocator{}, notes)

	res := d.CopyPath(context.Background(), entry)
	if res.Err != nil {
		t.Fatalf("CopyPath() err = %v", res.Err)
	}
	if res.Dismiss {
		t.Error("CopyPath() Dismiss = true, want false")
	}

	calls := fake.CallsFor("wl-copy")
	if len(calls) != 1 {
		t.Fatalf("wl-copy calls = %d, want 1", len(calls))
	}
	if calls[0].Input != entry.Path {
		t.Errorf("clipboard text = %q, want %q", calls[0].Input, entry.Path)
	}
	if notes.total() != 1 || len(notes.successes) != 1 {
		t.Errorf("notifications = %+v, want exactly one success", notes)
	}
}

func TestCopyPathMissingTool(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{Missing: map[string]bool{"xclip": true}}
	notes := &capture{}
	cfg := testConfig()
	cfg.ClipboardTool = "xclip -selection clipboard"
	d := NewDispatcher(cfg, fake, &fakeLocator{}, notes)

	res := d.CopyPath(context.Background(), entry)
	if res.Err == nil {
		t.Fatal("CopyPath() expected error")
	}
	if notes.total() != 1 || len(notes.errors) != 1 {
		t.Errorf("notifications = %+v, want exactly one error", notes)
	}
}

func TestOpenTerminal(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{}
	notes := &capture{}
	d := NewDispatcher(testConfig(), fake, &fakeLocator{}, notes)

	res := d.OpenTerminal(context.Background(), entry)
	if res.Err != nil || !res.Dismiss {
		t.Fatalf("OpenTerminal() = %+v, want dismiss without error", res)
	}

	calls := fake.CallsFor("gnome-terminal")
	if len(calls) != 1 {
		t.Fatalf("gnome-terminal calls = %d, want 1", len(calls))
	}
	if want := []string{"--working-directory=/home/u/workspace/proj-a"}; !reflect.DeepEqual(calls[0].Args, want) {
		t.Errorf("gnome-terminal args = %v, want %v", calls[0].Args, want)
	}
	if calls[0].Dir != entry.Path {
		t.Errorf("gnome-terminal dir = %q, want %q", calls[0].Dir, entry.Path)
	}
	if calls := fake.CallsFor("xterm"); len(calls) != 0 {
		t.Errorf("fallback ran although primary succeeded")
	}
}

func TestOpenTerminalFallbackSuccess(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{FailOn: map[string]error{"gnome-terminal": errors.New("not installed")}}
	notes := &capture{}
	d := NewDispatcher(testConfig(), fake, &fakeLocator{}, notes)

	res := d.OpenTerminal(context.Background(), entry)
	if res.Err != nil || !res.Dismiss {
		t.Fatalf("OpenTerminal() = %+v, want dismiss without error", res)
	}

	calls := fake.CallsFor("xterm")
	if len(calls) != 1 {
		t.Fatalf("xterm calls = %d, want 1", len(calls))
	}
	if calls[0].Dir != entry.Path {
		t.Errorf("xterm dir = %q, want %q", calls[0].Dir, entry.Path)
	}
	if notes.total() != 1 || len(notes.successes) != 1 {
		t.Errorf("notifications = %+v, want exactly one success", notes)
	}
}

func TestOpenTerminalBothFail(t *testing.T) {
	t.Parallel()

	fake := &cmdtest.Fake{FailOn: map[string]error{
		"gnome-terminal": errors.New("not installed"),
		"xterm":          errors.New("not installed either"),
	}}
	notes := &capture{}
	d := NewDispatcher(testConfig(), fake, &fakeLocator{}, notes)

	res := d.OpenTerminal(context.Background(), entry)
	if res.Err == nil {
		t.Fatal("OpenTerminal() expected error")
	}
	if res.Dismiss {
		t.Error("OpenTerminal() Dismiss = true after failure")
	}
	if notes.total() != 1 || len(notes.errors) != 1 {
		t.Errorf("notifications = %+v, want exactly one error", notes)
	}
}

func TestOpenTerminalNoFallbackConfigured(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Terminal.Fallback = ""
	fake := &cmdtest.Fake{FailOn: map[string]error{"gnome-terminal": errors.New("boom")}}
	notes := &capture{}
	d := NewDispatcher(cfg, fake, &fakeLocator{}, notes)

	res := d.OpenTerminal(context.Background(), entry)
	if res.Err == nil {
		t.Fatal("OpenTerminal() expected error")
	}
	if notes.total() != 1 || len(notes.errors) != 1 {
		t.Errorf("notifications = %+v, want exactly one error", notes)
	}
}
