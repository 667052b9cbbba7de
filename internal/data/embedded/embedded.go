// Package embedded provides access to data files compiled into the binary.
package embedded

import _ "embed"

// TriviaData contains the embedded trivia question bank YAML data.
//
//go:embed trivia.yaml
var TriviaData []byte

// AboutData contains the default markdown shown by the about command when no
// profile text is configured.
//
//go:embed about.md
var AboutData []byte
