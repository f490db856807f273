// Package ui implements the interactive repository picker.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/scan"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// flashDuration is how long an action outcome stays on screen.
const flashDuration = 3 * time.Second

// Actions are the repository operations the picker can trigger.
// *action.Dispatcher satisfies it.
type Actions interface {
	OpenEditor(ctx context.Context, e scan.Entry) action.Result
	CopyPath(ctx context.Context, e scan.Entry) action.Result
	OpenTerminal(ctx context.Context, e scan.Entry) action.Result
}

type actionDoneMsg struct {
	flash   string
	isError bool
	dismiss bool
}

type flashClearMsg struct {
	id int
}

type scanDoneMsg struct {
	entries []scan.Entry
	err     error
}

// pickerModel is the bubbletea model for repository selection.
type pickerModel struct {
	ctx     context.Context
	root    string
	actions Actions
	flash   *Flash
	rescan  func(context.Context) ([]scan.Entry, error)

	entries   []scan.Entry
	filtered  []scan.Entry
	textInput textinput.Model
	cursor    int
	maxHeight int

	flashMsg   string
	flashErr   bool
	flashSeq   int
	quitResult action.Result
}

func newPickerModel(ctx context.Context, root string, entries []scan.Entry, acts Actions, flash *Flash, rescan func(context.Context) ([]scan.Entry, error)) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle
	ti.TextStyle = lipgloss.NewStyle()

	return pickerModel{
		ctx:       ctx,
		root:      root,
		actions:   acts,
		flash:     flash,
		rescan:    rescan,
		entries:   entries,
		filtered:  entries,
		textInput: ti,
		maxHeight: 10,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			return m, m.runAction(m.actions.OpenEditor)

		case "ctrl+y":
			return m, m.runAction(m.actions.CopyPath)

		case "ctrl+t":
			return m, m.runAction(m.actions.OpenTerminal)

		case "ctrl+r":
			return m, m.runScan()

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}

	case actionDoneMsg:
		if msg.dismiss {
			return m, tea.Quit
		}
		return m.setFlash(msg.flash, msg.isError)

	case scanDoneMsg:
		if msg.err != nil {
			m.entries = nil
			m.filtered = nil
			m.cursor = 0
			return m.setFlash(fmt.Sprintf("Scan failed: %v", msg.err), true)
		}
		m.entries = msg.entries
		m.filtered = m.filterEntries(m.textInput.Value())
		m.clampCursor()
		return m.setFlash(fmt.Sprintf("Found %d repositories", len(msg.entries)), false)

	case flashClearMsg:
		// A newer flash owns the line now.
		if msg.id == m.flashSeq {
			m.flashMsg = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filterEntries(m.textInput.Value())
	m.clampCursor()

	return m, cmd
}

func (m *pickerModel) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m pickerModel) setFlash(msg string, isErr bool) (tea.Model, tea.Cmd) {
	if msg == "" {
		return m, nil
	}
	m.flashMsg = msg
	m.flashErr = isErr
	m.flashSeq++
	id := m.flashSeq
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

// runAction runs one dispatcher operation off the Update loop and turns
// its captured notification into a flash message.
func (m pickerModel) runAction(fn func(context.Context, scan.Entry) action.Result) tea.Cmd {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	e := m.filtered[m.cursor]
	ctx, flash := m.ctx, m.flash
	return func() tea.Msg {
		res := fn(ctx, e)
		msg, isErr, _ := flash.Take()
		return actionDoneMsg{flash: msg, isError: isErr, dismiss: res.Dismiss}
	}
}

func (m pickerModel) runScan() tea.Cmd {
	ctx, rescan := m.ctx, m.rescan
	if rescan == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := rescan(ctx)
		return scanDoneMsg{entries: entries, err: err}
	}
}

// filterEntries fuzzy-matches the query against "name subtitle".
func (m pickerModel) filterEntries(query string) []scan.Entry {
	if query == "" {
		return m.entries
	}
	matches := fuzzy.FindFrom(query, entrySource(m.entries))
	filtered := make([]scan.Entry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.entries[match.Index])
	}
	return filtered
}

type entrySource []scan.Entry

func (s entrySource) String(i int) string { return s[i].Name + " " + s[i].Subtitle }
func (s entrySource) Len() int            { return len(s) }

func (m pickerModel) View() string {
	var sb strings.Builder

	sb.WriteString("Select repository:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	switch {
	case len(m.entries) == 0:
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  No repositories under %s", m.root)))
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("  ctrl+r to rescan"))
		sb.WriteString("\n")

	case len(m.filtered) == 0:
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")

	default:
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			// Keep the cursor centered in the visible window.
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			e := m.filtered[i]
			line := e.Name
			if e.Subtitle != e.Name {
				line = fmt.Sprintf("%s  %s", e.Name, e.Subtitle)
			}

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(line))
				sb.WriteString(dimStyle.Render("  " + e.Path))
			} else {
				sb.WriteString("  ")
				sb.WriteString(unselectedStyle.Render(line))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	if m.flashMsg != "" {
		style := successStyle
		if m.flashErr {
			style = errorStyle
		}
		sb.WriteString(style.Render(m.flashMsg))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter open • ctrl+y copy • ctrl+t terminal • ctrl+r rescan • esc quit"))

	return sb.String()
}

// Run shows the picker and blocks until the user quits or an action
// dismisses it.
func Run(ctx context.Context, root string, entries []scan.Entry, acts Actions, flash *Flash, rescan func(context.Context) ([]scan.Entry, error)) error {
	model := newPickerModel(ctx, root, entries, acts, flash, rescan)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
