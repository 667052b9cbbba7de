package output

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// markupPattern recognizes the inline tags handlers may emit. Usage text such as
	// "calc <expression>" does not match and is passed through untouched.
	markupPattern = regexp.MustCompile(`(?i)</?\s*(img|div|span|p|br|a|b|i|em|strong|code)(\s[^>]*)?/?>`)

	imgPattern         = regexp.MustCompile(`(?i)<img\s[^>]*>`)
	altPattern         = regexp.MustCompile(`(?i)\balt\s*=\s*"([^"]*)"`)
	srcPattern         = regexp.MustCompile(`(?i)\bsrc\s*=\s*"([^"]*)"`)
	swatchPattern      = regexp.MustCompile(`(?i)<div\s[^>]*class\s*=\s*"swatch"[^>]*background\s*:\s*(#[0-9a-f]{6})[^>]*>\s*</div>`)
	placeholderPattern = regexp.MustCompile(`\[swatch (#[0-9a-f]{6})\]`)
	breakPattern       = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>`)

	strictPolicy = bluemonday.StrictPolicy()
)

// Swatch renders a color sample for a hex color.
type Swatch func(hex string) string

// HasMarkup reports whether text carries inline markup that Sanitize would change.
func HasMarkup(text string) bool {
	return markupPattern.MatchString(text)
}

// Sanitize turns entry markup into terminal text. Images become "[image: alt]",
// color swatches are drawn by swatch (or shown as "[swatch #hex]" when nil), line
// breaking tags become newlines and every other tag is dropped.
func Sanitize(text string, swatch Swatch) string {
	if !HasMarkup(text) {
		return text
	}

	text = swatchPattern.ReplaceAllStringFunc(text, func(tag string) string {
		return "[swatch " + strings.ToLower(swatchPattern.FindStringSubmatch(tag)[1]) + "]"
	})
	text = imgPattern.ReplaceAllStringFunc(text, imagePlaceholder)
	text = breakPattern.ReplaceAllString(text, "\n")

	cleaned := strings.TrimRight(html.UnescapeString(strictPolicy.Sanitize(text)), "\n")
	if swatch == nil {
		return cleaned
	}
	// Styling goes on after sanitizing so escape sequences never reach the policy
	return placeholderPattern.ReplaceAllStringFunc(cleaned, func(m string) string {
		return swatch(placeholderPattern.FindStringSubmatch(m)[1])
	})
}

func imagePlaceholder(tag string) string {
	label := ""
	if m := altPattern.FindStringSubmatch(tag); m != nil {
		label = strings.TrimSpace(m[1])
	}
	if label == "" {
		if m := srcPattern.FindStringSubmatch(tag); m != nil {
			label = strings.TrimSpace(m[1])
		}
	}
	if label == "" {
		return "[image]"
	}
	return "[image: " + label + "]"
}
