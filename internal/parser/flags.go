package parser

import (
	"regexp"
	"strconv"
)

// FlagKind identifies which field of a FlagValue is meaningful.
type FlagKind int

const (
	// FlagBool is a switch with no value ("--verbose", "-v").
	FlagBool FlagKind = iota
	// FlagString is a valued flag whose value is not numeric.
	FlagString
	// FlagNumber is a valued flag whose value parsed as a number.
	FlagNumber
	// FlagList is a valued flag given more than once.
	FlagList
)

// FlagValue is the value of one parsed flag.
// Raw always keeps the text as typed so leading zeros survive re-flattening.
type FlagValue struct {
	Kind   FlagKind
	Bool   bool
	Raw    string
	Number float64
	List   []string
}

var numericPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// isNumeric reports whether s looks like a plain decimal number.
func isNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// valueFor builds a valued flag, coercing numeric text to a number.
func valueFor(raw string) FlagValue {
	if isNumeric(raw) {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return FlagValue{Kind: FlagNumber, Raw: raw, Number: n}
		}
	}
	return FlagValue{Kind: FlagString, Raw: raw}
}

// boolFlag is the value given to switches.
func boolFlag() FlagValue {
	return FlagValue{Kind: FlagBool, Bool: true}
}

// Values returns every value carried by the flag in the order given.
// Switches carry no values.
func (v FlagValue) Values() []string {
	switch v.Kind {
	case FlagString, FlagNumber:
		return []string{v.Raw}
	case FlagList:
		out := make([]string, len(v.List))
		copy(out, v.List)
		return out
	default:
		return nil
	}
}

// String returns the last value of a valued flag, "true" for a switch.
func (v FlagValue) String() string {
	switch v.Kind {
	case FlagBool:
		return strconv.FormatBool(v.Bool)
	case FlagList:
		if len(v.List) == 0 {
			return ""
		}
		return v.List[len(v.List)-1]
	default:
		return v.Raw
	}
}

// merge combines a repeated flag with its earlier occurrence.
// Repeated values accumulate into a list; a repeated switch stays a switch.
func merge(existing, next FlagValue) FlagValue {
	if next.Kind == FlagBool {
		return existing
	}
	switch existing.Kind {
	case FlagBool:
		return next
	case FlagList:
		existing.List = append(existing.List, next.Raw)
		return existing
	default:
		return FlagValue{Kind: FlagList, List: []string{existing.Raw, next.Raw}}
	}
}
