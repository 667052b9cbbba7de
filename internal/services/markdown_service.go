package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"termfolio/internal/logger"
)

// MarkdownServiceName is the registry name of the markdown service.
const MarkdownServiceName = "markdown"

// DefaultWordWrap is the column width markdown is wrapped at.
const DefaultWordWrap = 80

// MarkdownService renders markdown to ANSI terminal output using glamour.
type MarkdownService struct {
	mu          sync.Mutex
	initialized bool
	style       string
	width       int
	renderer    *glamour.TermRenderer
}

// NewMarkdownService creates a markdown service. An empty style selects glamour's
// auto-detected style; "notty" produces plain text.
func NewMarkdownService(style string) *MarkdownService {
	return &MarkdownService{
		style: style,
		width: DefaultWordWrap,
	}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return MarkdownServiceName
}

// Initialize sets up the renderer.
func (m *MarkdownService) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	renderer, err := m.newRenderer(m.width)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	m.renderer = renderer
	m.initialized = true
	logger.Debug("MarkdownService initialized successfully", "style", m.styleName())
	return nil
}

// Render renders markdown content to ANSI terminal output.
func (m *MarkdownService) Render(markdown string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// SetWordWrap sets the word wrap width for markdown rendering.
func (m *MarkdownService) SetWordWrap(width int) error {
	if width <= 0 {
		return fmt.Errorf("word wrap width must be positive, got %d", width)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("markdown service not initialized")
	}

	renderer, err := m.newRenderer(width)
	if err != nil {
		return fmt.Errorf("failed to create renderer with word wrap %d: %w", width, err)
	}

	m.renderer = renderer
	m.width = width
	logger.Debug("MarkdownService word wrap updated", "width", width)
	return nil
}

func (m *MarkdownService) newRenderer(width int) (*glamour.TermRenderer, error) {
	if m.style == "" || m.style == "auto" {
		return glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
}

func (m *MarkdownService) styleName() string {
	if m.style == "" {
		return "auto"
	}
	return m.style
}
