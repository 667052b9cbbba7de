// Package output renders console history entries for terminal hosts.
// Styling is injected through a StyleProvider so the printer itself stays plain and
// testable; inline markup carried by entries is sanitized before anything is written.
package output

// StyleProvider supplies a TextStyle per semantic type.
// The printer depends only on this interface, never on a concrete theme.
type StyleProvider interface {
	// GetStyle returns the TextStyle for a semantic type such as "info" or "error".
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether the provider can style output. The printer falls
	// back to plain text when it cannot.
	IsAvailable() bool
}

// TextStyle renders text with styling applied. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// Mode defines the output modes a printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a provider is available, plain otherwise.
	ModeAuto Mode = iota

	// ModeStyled forces styled output.
	ModeStyled

	// ModePlain strips styling and ANSI escapes.
	ModePlain

	// ModeJSON writes one JSON object per entry or message.
	ModeJSON
)

// SemanticType is the meaning of a piece of output, used to pick its style.
type SemanticType string

const (
	// SemanticPlain is ordinary command output.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is a notice or hint.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess is a confirmation.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning is a warning.
	SemanticWarning SemanticType = "warning"
	// SemanticError is a failure.
	SemanticError SemanticType = "error"
	// SemanticPrompt is the echoed prompt and input line.
	SemanticPrompt SemanticType = "prompt"
	// SemanticMuted is secondary text such as image placeholders.
	SemanticMuted SemanticType = "muted"
)
