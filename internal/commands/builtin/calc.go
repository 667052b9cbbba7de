package builtin

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"termfolio/pkg/consoletypes"
)

// calcEnv is the set of names available inside calc expressions.
var calcEnv = map[string]any{
	"pi":    math.Pi,
	"e":     math.E,
	"sqrt":  math.Sqrt,
	"pow":   math.Pow,
	"log":   math.Log,
	"log10": math.Log10,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
}

// CalcCommand evaluates an arithmetic expression.
type CalcCommand struct{}

// Name returns the command name "calc" for registration and lookup.
func (c *CalcCommand) Name() string {
	return "calc"
}

// Description returns a brief description of what the calc command does.
func (c *CalcCommand) Description() string {
	return "Evaluate a math expression"
}

// Usage returns the syntax for the calc command.
func (c *CalcCommand) Usage() string {
	return "calc <expression>"
}

// Execute evaluates the arguments joined with spaces as one expression.
func (c *CalcCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return "", usageError(c)
	}

	program, err := expr.Compile(input, expr.Env(calcEnv))
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	out, err := expr.Run(program, calcEnv)
	if err != nil {
		return "", fmt.Errorf("evaluation failed: %w", err)
	}

	return formatNumber(out)
}

func formatNumber(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return "", fmt.Errorf("result is not a finite number")
		}
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(n), nil
	default:
		return "", fmt.Errorf("expression did not produce a number (got %T)", v)
	}
}
