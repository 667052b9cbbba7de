package output

import (
	"os"

	"github.com/muesli/termenv"
)

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

// SupportsColor reports whether stdout should receive colored output, honoring
// NO_COLOR and the terminal's detected profile.
func SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal() && termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}

// Standard returns the options hosts use for stdout: colored when supported, plain
// and deterministic in test mode.
func Standard(prompt string, testMode bool) []Option {
	opts := []Option{WithPrompt(prompt)}
	switch {
	case testMode:
		opts = append(opts, TestMode())
	case SupportsColor():
		opts = append(opts, WithStyles(NewThemeStyleProvider(os.Stdout)))
	default:
		opts = append(opts, PlainText())
	}
	return opts
}
