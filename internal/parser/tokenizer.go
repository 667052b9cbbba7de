// Package parser turns a raw console line into positional arguments and flags.
// Parsing never fails: malformed input degrades to a plain whitespace/quote split.
package parser

import (
	"strings"
	"unicode"
)

// token is one whitespace-delimited unit of a line.
// Quoted tokens are always treated as positional arguments.
type token struct {
	text   string
	quoted bool
}

// tokenize splits input on whitespace while treating double-quoted spans as part of a
// single token. Quote characters are stripped. An unterminated quote runs to the end
// of the line.
func tokenize(input string) []token {
	var tokens []token
	var current strings.Builder
	inQuotes := false
	quoted := false
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, token{text: current.String(), quoted: quoted})
		}
		current.Reset()
		quoted = false
		started = false
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
			started = true
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	return tokens
}

// Split performs the fallback split used when flag parsing cannot complete:
// whitespace separated, double quotes grouping, no flag interpretation.
func Split(input string) []string {
	tokens := tokenize(input)
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.text)
	}
	return parts
}
