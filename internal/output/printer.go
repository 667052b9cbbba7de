package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"

	"termfolio/pkg/consoletypes"
)

// Printer writes messages and history entries, styled when a provider is available.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	testMode      bool
	silent        bool
	prompt        string

	// Thread safety for concurrent output
	mu sync.Mutex
}

// entryJSON is the ModeJSON shape of an entry.
type entryJSON struct {
	ID      string `json:"id,omitempty"`
	Input   string `json:"input,omitempty"`
	Output  string `json:"output"`
	Kind    string `json:"kind"`
	Outcome string `json:"outcome"`
	Time    string `json:"timestamp,omitempty"`
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text)
}

// Success outputs success text with success styling (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text)
}

// Warning outputs warning text with warning styling (typically yellow).
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text)
}

// Error outputs error text with error styling (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text)
}

// Entry writes one history entry: the echoed input line, if any, then its output.
func (p *Printer) Entry(entry consoletypes.HistoryEntry) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var text string
	if p.mode == ModeJSON {
		text = p.renderEntryJSON(entry)
	} else {
		text = p.renderEntry(entry)
		if text == "" {
			return
		}
		text += "\n"
	}
	_, _ = fmt.Fprint(p.writer, text)
}

// Entries writes each entry in order.
func (p *Printer) Entries(entries []consoletypes.HistoryEntry) {
	for _, entry := range entries {
		p.Entry(entry)
	}
}

// RenderEntry returns the text Entry would write, without a trailing newline.
// Hosts that manage their own screen use it.
func (p *Printer) RenderEntry(entry consoletypes.HistoryEntry) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderEntry(entry)
}

func (p *Printer) renderEntry(entry consoletypes.HistoryEntry) string {
	var lines []string
	if entry.HasInput {
		lines = append(lines, p.style(SemanticPrompt, p.prompt+entry.Input))
	}
	if entry.Output != "" {
		lines = append(lines, p.style(semanticFor(entry), Sanitize(entry.Output, p.swatch())))
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) renderEntryJSON(entry consoletypes.HistoryEntry) string {
	record := entryJSON{
		ID:      entry.ID,
		Input:   entry.Input,
		Output:  Sanitize(entry.Output, nil),
		Kind:    entry.Kind.String(),
		Outcome: entry.Outcome.String(),
	}
	if !p.testMode && !entry.Timestamp.IsZero() {
		record.Time = entry.Timestamp.Format(time.RFC3339)
	}
	if p.testMode {
		record.ID = ""
	}

	data, err := json.Marshal(record)
	if err != nil {
		return entry.Output + "\n"
	}
	return string(data) + "\n"
}

// output is the core output method for plain messages.
func (p *Printer) output(semantic SemanticType, text string) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string
	if p.mode == ModeJSON {
		finalText = p.renderJSON(semantic, text)
	} else {
		finalText = p.style(semantic, text)
		if !strings.HasSuffix(finalText, "\n") {
			finalText += "\n"
		}
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

// style applies the semantic style, falling back to plain prefixes. Plain output
// never carries ANSI escapes, even when text was pre-rendered by glamour.
func (p *Printer) style(semantic SemanticType, text string) string {
	if p.isStylable() {
		return p.styleProvider.GetStyle(string(semantic)).Render(text)
	}
	return NewPlainStyleProvider().GetStyle(string(semantic)).Render(ansi.Strip(text))
}

func (p *Printer) swatch() Swatch {
	if theme, ok := p.styleProvider.(*ThemeStyleProvider); ok && p.isStylable() {
		return theme.Swatch
	}
	return nil
}

// renderJSON renders a message as structured JSON.
func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	output := map[string]interface{}{
		"type":    semantic,
		"message": ansi.Strip(text),
	}

	jsonBytes, err := json.Marshal(output)
	if err != nil {
		// Fall back to plain text if JSON encoding fails
		return text + "\n"
	}

	return string(jsonBytes) + "\n"
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetStyleProvider changes the style provider. Pass nil to disable styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isStylable()
}

func (p *Printer) isStylable() bool {
	return p.mode != ModePlain && !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}

// semanticFor maps an entry's kind to the style its output is drawn with.
func semanticFor(entry consoletypes.HistoryEntry) SemanticType {
	switch entry.Kind {
	case consoletypes.KindError:
		return SemanticError
	case consoletypes.KindInfo:
		return SemanticInfo
	default:
		return SemanticPlain
	}
}
