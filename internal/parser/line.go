package parser

import (
	"fmt"
	"strings"

	"termfolio/internal/logger"
)

// ParsedLine is the result of parsing one console line.
type ParsedLine struct {
	// Positional holds the non-flag tokens in order. Positional[0] is the command name.
	Positional []string

	// Flags maps flag names to their values.
	Flags map[string]FlagValue

	// FlagOrder records flag names in first-seen order so flattening is deterministic.
	FlagOrder []string

	// Degraded is true when flag parsing failed and the line was split without flags.
	Degraded bool
}

// Parse turns a raw line into positional arguments and flags.
//
// Rules, applied per token:
//   - "--name=value" is a flag; numeric values are coerced to numbers
//   - "--name" consumes the next token as its value unless that token starts with "-";
//     otherwise it is a boolean switch
//   - "-abc" sets a, b and c as independent switches
//   - "--" ends flag parsing; everything after it is positional
//   - quoted tokens, negative numbers and a lone "-" are positional
//
// Parse never fails. Empty or whitespace-only input yields no positionals.
func Parse(line string) ParsedLine {
	return parseTokens(tokenize(line), line)
}

// ParseArgs applies the same flag rules to an argument vector that has already been
// split, such as the flattened args a handler receives.
func ParseArgs(args []string) ParsedLine {
	tokens := make([]token, 0, len(args))
	for _, a := range args {
		tokens = append(tokens, token{text: a})
	}
	return parseTokens(tokens, strings.Join(args, " "))
}

// tokenHook runs before each token is classified. Tests set it to fail parsing midway.
var tokenHook func(token)

func parseTokens(tokens []token, original string) (result ParsedLine) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("Flag parsing failed, falling back to plain split", "input", original, "error", fmt.Sprint(r))
			result = degraded(tokens)
		}
	}()

	result = ParsedLine{
		Positional: []string{},
		Flags:      make(map[string]FlagValue),
	}

	endOfFlags := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tokenHook != nil {
			tokenHook(tok)
		}
		text := tok.text

		if endOfFlags || tok.quoted || !isFlagToken(text) {
			result.Positional = append(result.Positional, text)
			continue
		}

		if text == "--" {
			endOfFlags = true
			continue
		}

		if strings.HasPrefix(text, "--") {
			body := text[2:]
			if name, value, ok := strings.Cut(body, "="); ok {
				if name == "" {
					result.Positional = append(result.Positional, text)
					continue
				}
				result.setFlag(name, valueFor(value))
				continue
			}

			if i+1 < len(tokens) && acceptsAsValue(tokens[i+1]) {
				result.setFlag(body, valueFor(tokens[i+1].text))
				i++
				continue
			}
			result.setFlag(body, boolFlag())
			continue
		}

		for _, r := range text[1:] {
			result.setFlag(string(r), boolFlag())
		}
	}

	return result
}

// isFlagToken reports whether an unquoted token should be read as a flag.
func isFlagToken(text string) bool {
	if len(text) < 2 || text[0] != '-' {
		return false
	}
	return !isNumeric(text)
}

// acceptsAsValue reports whether tok may be consumed as the value of a preceding "--name".
func acceptsAsValue(tok token) bool {
	if tok.quoted {
		return true
	}
	if !strings.HasPrefix(tok.text, "-") {
		return true
	}
	return isNumeric(tok.text)
}

func (p *ParsedLine) setFlag(name string, value FlagValue) {
	if existing, ok := p.Flags[name]; ok {
		p.Flags[name] = merge(existing, value)
		return
	}
	p.Flags[name] = value
	p.FlagOrder = append(p.FlagOrder, name)
}

func degraded(tokens []token) ParsedLine {
	positional := make([]string, 0, len(tokens))
	for _, t := range tokens {
		positional = append(positional, t.text)
	}
	return ParsedLine{
		Positional: positional,
		Flags:      make(map[string]FlagValue),
		Degraded:   true,
	}
}

// IsEmpty reports whether the line has nothing to dispatch.
func (p ParsedLine) IsEmpty() bool {
	return len(p.Positional) == 0
}

// Name returns the command name token, or "" for an empty line.
func (p ParsedLine) Name() string {
	if len(p.Positional) == 0 {
		return ""
	}
	return p.Positional[0]
}

// Args returns the positional arguments after the command name.
func (p ParsedLine) Args() []string {
	if len(p.Positional) <= 1 {
		return []string{}
	}
	out := make([]string, len(p.Positional)-1)
	copy(out, p.Positional[1:])
	return out
}

// Has reports whether the flag was given.
func (p ParsedLine) Has(name string) bool {
	_, ok := p.Flags[name]
	return ok
}

// Bool reports whether the flag was given as a switch or with a truthy value.
func (p ParsedLine) Bool(name string) bool {
	v, ok := p.Flags[name]
	if !ok {
		return false
	}
	if v.Kind == FlagBool {
		return v.Bool
	}
	switch strings.ToLower(v.String()) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// String returns the flag's raw value, or fallback when the flag is absent or a switch.
func (p ParsedLine) String(name, fallback string) string {
	v, ok := p.Flags[name]
	if !ok || v.Kind == FlagBool {
		return fallback
	}
	return v.String()
}

// Number returns the flag's numeric value, or fallback when absent or not numeric.
func (p ParsedLine) Number(name string, fallback float64) float64 {
	v, ok := p.Flags[name]
	if !ok || v.Kind != FlagNumber {
		return fallback
	}
	return v.Number
}

// FlattenFlags renders the flags back into argv form for handlers that expect flat
// arguments: a switch becomes "--name", a valued flag "--name value", and a list one
// "--name value" pair per element.
func (p ParsedLine) FlattenFlags() []string {
	var out []string
	for _, name := range p.FlagOrder {
		v := p.Flags[name]
		flag := "--" + name
		if v.Kind == FlagBool {
			out = append(out, flag)
			continue
		}
		for _, value := range v.Values() {
			out = append(out, flag, value)
		}
	}
	return out
}

// HandlerArgs returns the arguments handed to a command handler: the positionals after
// the name followed by the flattened flags.
func (p ParsedLine) HandlerArgs() []string {
	return append(p.Args(), p.FlattenFlags()...)
}
