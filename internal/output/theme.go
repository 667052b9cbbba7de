package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeStyleProvider styles output with lipgloss, using the color profile detected
// for the destination writer.
type ThemeStyleProvider struct {
	renderer *lipgloss.Renderer
	styles   map[SemanticType]lipgloss.Style
}

// NewThemeStyleProvider creates a provider for output written to w.
func NewThemeStyleProvider(w io.Writer) *ThemeStyleProvider {
	renderer := lipgloss.NewRenderer(w)

	s := func() lipgloss.Style { return renderer.NewStyle() }
	return &ThemeStyleProvider{
		renderer: renderer,
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   s(),
			SemanticInfo:    s().Foreground(lipgloss.Color("39")),
			SemanticSuccess: s().Foreground(lipgloss.Color("42")),
			SemanticWarning: s().Foreground(lipgloss.Color("214")),
			SemanticError:   s().Foreground(lipgloss.Color("196")),
			SemanticPrompt:  s().Foreground(lipgloss.Color("46")).Bold(true),
			SemanticMuted:   s().Foreground(lipgloss.Color("244")).Italic(true),
		},
	}
}

// GetStyle implements StyleProvider.GetStyle. Unknown semantics render unstyled.
func (t *ThemeStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return style
	}
	return t.styles[SemanticPlain]
}

// SetColorProfile overrides the detected color profile.
func (t *ThemeStyleProvider) SetColorProfile(profile termenv.Profile) {
	t.renderer.SetColorProfile(profile)
}

// IsAvailable reports whether the destination supports color.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}

// Swatch draws a block in the given color, for use with Sanitize.
func (t *ThemeStyleProvider) Swatch(hex string) string {
	return t.renderer.NewStyle().Foreground(lipgloss.Color(hex)).Render("████") + " " + hex
}
