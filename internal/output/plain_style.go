package output

import "fmt"

// PlainTextStyle implements TextStyle for plain text output without any styling.
// This is used as a fallback when no StyleProvider is available.
type PlainTextStyle struct {
	prefix string // Optional prefix for semantic meaning
}

// NewPlainTextStyle creates a new plain text style with an optional prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render joins text with spaces and adds the prefix, if any.
func (p *PlainTextStyle) Render(text ...string) string {
	joined := joinText(text)
	if p.prefix != "" {
		return p.prefix + joined
	}
	return joined
}

// PlainStyleProvider implements StyleProvider for plain text output.
// Semantic meaning survives as a short prefix so transcripts stay readable.
type PlainStyleProvider struct {
	available bool
}

// NewPlainStyleProvider creates a new plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{available: true}
}

// GetStyle implements StyleProvider.GetStyle for plain text styles with semantic prefixes.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return NewPlainTextStyle("✓ ")
	case SemanticWarning:
		return NewPlainTextStyle("⚠ ")
	case SemanticError:
		return NewPlainTextStyle("✗ ")
	case SemanticInfo:
		return NewPlainTextStyle("ℹ ")
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable implements StyleProvider.IsAvailable.
func (p *PlainStyleProvider) IsAvailable() bool {
	return p.available
}

// String returns a string representation for debugging.
func (p *PlainStyleProvider) String() string {
	return fmt.Sprintf("PlainStyleProvider{available: %t}", p.available)
}

func joinText(text []string) string {
	switch len(text) {
	case 0:
		return ""
	case 1:
		return text[0]
	}
	out := text[0]
	for _, t := range text[1:] {
		out += " " + t
	}
	return out
}
