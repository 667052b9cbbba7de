package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/pkg/consoletypes"
)

// keyEvent converts a bubbletea key into the host-neutral event the console reads.
// Letters map to "KeyA".."KeyZ" and digits to "Digit0".."Digit9" so activation
// sequences use the same codes in every host.
func keyEvent(msg tea.KeyMsg) consoletypes.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return consoletypes.KeyEvent{Code: consoletypes.CodeArrowUp}
	case tea.KeyDown:
		return consoletypes.KeyEvent{Code: consoletypes.CodeArrowDown}
	case tea.KeyLeft:
		return consoletypes.KeyEvent{Code: consoletypes.CodeArrowLeft}
	case tea.KeyRight:
		return consoletypes.KeyEvent{Code: consoletypes.CodeArrowRight}
	case tea.KeyEsc:
		return consoletypes.KeyEvent{Code: consoletypes.CodeEscape}
	case tea.KeyEnter:
		return consoletypes.KeyEvent{Code: consoletypes.CodeEnter}
	case tea.KeyBackspace:
		return consoletypes.KeyEvent{Code: consoletypes.CodeBackspace}
	case tea.KeyTab:
		return consoletypes.KeyEvent{Code: consoletypes.CodeTab}
	case tea.KeySpace:
		return consoletypes.KeyEvent{Code: consoletypes.CodeSpace, Key: " "}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return runeEvent(msg.Runes[0])
		}
		return consoletypes.KeyEvent{Key: string(msg.Runes)}
	default:
		return consoletypes.KeyEvent{Code: msg.String()}
	}
}

func runeEvent(r rune) consoletypes.KeyEvent {
	key := string(r)
	switch {
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return consoletypes.KeyEvent{Code: "Key" + strings.ToUpper(key), Key: key}
	case r < unicode.MaxASCII && unicode.IsDigit(r):
		return consoletypes.KeyEvent{Code: "Digit" + key, Key: key}
	default:
		return consoletypes.KeyEvent{Key: key}
	}
}
