package builtin

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"termfolio/pkg/consoletypes"
)

// ColorCommand converts a hex color and shows its complement.
type ColorCommand struct{}

// Name returns the command name "color" for registration and lookup.
func (c *ColorCommand) Name() string {
	return "color"
}

// Description returns a brief description of what the color command does.
func (c *ColorCommand) Description() string {
	return "Convert a hex color to RGB and HSL"
}

// Usage returns the syntax for the color command.
func (c *ColorCommand) Usage() string {
	return "color <#rrggbb>"
}

// Execute prints the color in hex, RGB and HSL form, its complement and an inline swatch.
func (c *ColorCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	if len(args) != 1 {
		return "", usageError(c)
	}

	hex := strings.TrimSpace(args[0])
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}

	col, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return "", fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", args[0])
	}

	r, g, b := col.RGB255()
	h, s, l := col.Hsl()
	complement := colorful.Hsl(math.Mod(h+180, 360), s, l).Clamped()

	return fmt.Sprintf("%s\nrgb(%d, %d, %d)\nhsl(%.0f, %.0f%%, %.0f%%)\ncomplement %s\n<div class=\"swatch\" style=\"background:%s\"></div>",
		col.Hex(), r, g, b, h, s*100, l*100, complement.Hex(), col.Hex()), nil
}
