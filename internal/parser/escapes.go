package parser

import "strings"

var escapeReplacer = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\t`, "\t",
	`\"`, `"`,
	`\'`, "'",
)

// InterpretEscapes turns backslash escapes typed on a single console line into the
// characters they stand for. An escaped backslash is never reinterpreted, so `\\n`
// yields a backslash followed by n.
func InterpretEscapes(s string) string {
	return escapeReplacer.Replace(s)
}
