package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input       string
		count       int
		offset      int
		description string
	}{
		{input: "1", count: 5, offset: 4, description: "last"},
		{input: "2", count: 5, offset: 3, description: "second-to-last"},
		{input: "3", count: 5, offset: 2, description: "third-to-last"},
		{input: "4", count: 5, offset: 1, description: "4th from last"},
		{input: ".1", count: 5, offset: 0, description: "first"},
		{input: ".2", count: 5, offset: 1, description: "second"},
		{input: ".5", count: 5, offset: 4, description: "5th"},
		{input: ".11", count: 30, offset: 10, description: "11th"},
		{input: ".21", count: 30, offset: 20, description: "21st"},
		{input: "22", count: 30, offset: 8, description: "22nd from last"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			idx, err := ParseIndex(tt.input, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.offset, idx.Offset)
			assert.Equal(t, tt.description, idx.Description)
		})
	}
}

func TestParseIndex_Errors(t *testing.T) {
	tests := []struct {
		input string
		count int
		want  string
	}{
		{input: ".", count: 3, want: "invalid index"},
		{input: "abc", count: 3, want: "invalid index"},
		{input: ".x", count: 3, want: "invalid index"},
		{input: "0", count: 3, want: "out of range"},
		{input: "4", count: 3, want: "out of range"},
		{input: ".4", count: 3, want: "out of range"},
		{input: "1", count: 0, want: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseIndex(tt.input, tt.count)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
