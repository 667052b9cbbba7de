package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "newline", input: `# Title\nbody`, expected: "# Title\nbody"},
		{name: "tab", input: `a\tb`, expected: "a\tb"},
		{name: "quotes", input: `say \"hi\" and \'bye\'`, expected: `say "hi" and 'bye'`},
		{name: "escaped backslash", input: `C:\\new`, expected: `C:\new`},
		{name: "no escapes", input: "plain", expected: "plain"},
		{name: "unknown escape kept", input: `\x`, expected: `\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InterpretEscapes(tt.input))
		})
	}
}
