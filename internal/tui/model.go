// Package tui is the full-screen terminal host for the console. While the console
// is closed it shows the portfolio landing page and feeds every key to the
// activation detector; once open it shows the history above an input line.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/console"
	"termfolio/internal/logger"
	"termfolio/internal/output"
	"termfolio/pkg/consoletypes"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// inputHeight is the rows kept below the viewport for the input and status lines.
	inputHeight = 2

	busyStatus = "Still working on the previous command..."
)

// Options configures the model.
type Options struct {
	// Prompt is shown in front of the input and echoed before each entry.
	Prompt string

	// Landing is the pre-rendered page shown while the console is closed.
	Landing string

	// Printer renders entries. Defaults to a plain printer.
	Printer *output.Printer
}

// submittedMsg carries the result of a Submit run off the UI goroutine.
type submittedMsg struct {
	line     string
	entry    consoletypes.HistoryEntry
	recorded bool
	err      error
}

// Model is the bubbletea model wrapping one console.
type Model struct {
	console  *console.Console
	printer  *output.Printer
	prompt   string
	landing  string
	input    textinput.Model
	viewport viewport.Model
	status   string
	width    int
	height   int
	styles   styles
}

type styles struct {
	hint    lipgloss.Style
	status  lipgloss.Style
	landing lipgloss.Style
}

// New creates a model for c.
func New(c *console.Console, opts Options) Model {
	if opts.Printer == nil {
		opts.Printer = output.NewPrinter(output.PlainText(), output.WithPrompt(opts.Prompt))
	}

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.CharLimit = 512
	ti.Width = defaultWidth - lipgloss.Width(opts.Prompt) - 1
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	vp := viewport.New(defaultWidth, defaultHeight-inputHeight)

	m := Model{
		console:  c,
		printer:  opts.Printer,
		prompt:   opts.Prompt,
		landing:  opts.Landing,
		input:    ti,
		viewport: vp,
		width:    defaultWidth,
		height:   defaultHeight,
		styles: styles{
			hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			status:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			landing: lipgloss.NewStyle().Padding(1, 2),
		},
	}
	if c.IsOpen() {
		m.input.Focus()
		m.refresh()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case submittedMsg:
		m.status = ""
		switch {
		case errors.Is(msg.err, console.ErrBusy):
			m.status = busyStatus
			if m.input.Value() == "" {
				m.input.SetValue(msg.line)
				m.input.CursorEnd()
				m.console.SetInput(msg.line)
			}
		case msg.err != nil:
			logger.Debug("Submit failed", "error", msg.err)
		}
		if !m.console.IsOpen() {
			m.input.Blur()
			m.input.Reset()
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := m.console.HandleKey(keyEvent(msg))

	switch result.Action {
	case console.ActionOpened:
		m.input.Reset()
		m.refresh()
		return m, m.input.Focus()

	case console.ActionClosed:
		m.input.Blur()
		m.input.Reset()
		m.status = ""
		return m, nil

	case console.ActionRecall:
		m.input.SetValue(result.Input)
		m.input.CursorEnd()
		return m, nil

	case console.ActionSubmit:
		if m.console.Busy() {
			// Typed-ahead text stays in the field until the running command finishes
			m.status = busyStatus
			return m, nil
		}
		line := m.input.Value()
		m.input.Reset()
		return m, m.submit(line)

	case console.ActionText:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.console.SetInput(m.input.Value())
		return m, cmd

	default:
		if m.console.IsOpen() {
			// Page through long output when recall has nothing to offer
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// submit runs the line through the console off the UI goroutine so the input stays live.
func (m Model) submit(line string) tea.Cmd {
	c := m.console
	return func() tea.Msg {
		entry, recorded, err := c.Submit(context.Background(), line)
		return submittedMsg{line: line, entry: entry, recorded: recorded, err: err}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-inputHeight)
	m.input.Width = max(10, width-lipgloss.Width(m.prompt)-1)
	m.refresh()
}

// refresh redraws the history into the viewport and scrolls to the newest entry.
func (m *Model) refresh() {
	entries := m.console.Entries()
	rendered := make([]string, 0, len(entries))
	for _, entry := range entries {
		if text := m.printer.RenderEntry(entry); text != "" {
			rendered = append(rendered, lipgloss.NewStyle().Width(m.width).Render(text))
		}
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.console.IsOpen() {
		return m.styles.landing.Render(m.landing)
	}

	status := m.styles.hint.Render("Esc to close")
	if m.status != "" {
		status = m.styles.status.Render(m.status)
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}

// Run starts the full-screen program and blocks until the user quits.
func Run(c *console.Console, opts Options) error {
	program := tea.NewProgram(New(c, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
