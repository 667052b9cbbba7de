package history

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is a resolved position in a list of submitted lines.
type Index struct {
	// Offset is the 0-based position in the list.
	Offset int

	// Description names the position for display, such as "second-to-last".
	Description string
}

// ParseIndex resolves an index string against count items. Plain numbers count back
// from the newest item ("1" is the last); numbers with a leading dot count forward
// from the oldest (".1" is the first).
func ParseIndex(s string, count int) (Index, error) {
	forward := strings.HasPrefix(s, ".")
	digits := strings.TrimPrefix(s, ".")
	if digits == "" {
		return Index{}, fmt.Errorf("invalid index %q (use 1, 2 or .1, .2)", s)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return Index{}, fmt.Errorf("invalid index %q (use 1, 2 or .1, .2)", s)
	}
	if n < 1 || n > count {
		return Index{}, fmt.Errorf("index %s is out of range (history has %d commands)", s, count)
	}

	if forward {
		return Index{Offset: n - 1, Description: ordinalPosition(n, false)}, nil
	}
	return Index{Offset: count - n, Description: ordinalPosition(n, true)}, nil
}

func ordinalPosition(n int, fromEnd bool) string {
	if fromEnd {
		switch n {
		case 1:
			return "last"
		case 2:
			return "second-to-last"
		case 3:
			return "third-to-last"
		default:
			return fmt.Sprintf("%d%s from last", n, ordinalSuffix(n))
		}
	}
	switch n {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("%d%s", n, ordinalSuffix(n))
	}
}

// ordinalSuffix returns st, nd, rd or th; 11 through 13 always take th.
func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
