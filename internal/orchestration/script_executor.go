// Package orchestration runs scripted console sessions: each line of a script is
// submitted to the console in order and every recorded entry is printed.
package orchestration

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"termfolio/internal/console"
	"termfolio/internal/logger"
	"termfolio/internal/output"
)

// CommentPrefix marks script lines that are skipped.
const CommentPrefix = "#"

// Result summarizes a script run.
type Result struct {
	Submitted int
	Errors    int
}

// ExecuteScript loads the script at scriptPath and runs it through c.
func ExecuteScript(ctx context.Context, scriptPath string, c *console.Console, printer *output.Printer) (Result, error) {
	logger.Debug("Starting script execution", "script", scriptPath)

	file, err := os.Open(scriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load script: %w", err)
	}
	defer func() { _ = file.Close() }()

	result, err := Execute(ctx, file, c, printer)
	if err != nil {
		return result, fmt.Errorf("%s: %w", scriptPath, err)
	}

	logger.Info("Script execution completed", "script", scriptPath, "submitted", result.Submitted, "errors", result.Errors)
	return result, nil
}

// Execute opens c and submits each line read from r. Blank lines and comments are
// skipped. A script that closes the console stops early. Execute returns an error
// when any recorded entry is an error entry, after the whole script has run.
func Execute(ctx context.Context, r io.Reader, c *console.Console, printer *output.Printer) (Result, error) {
	c.Open()

	var result Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry, recorded, err := c.Submit(ctx, line)
		if err != nil {
			return result, fmt.Errorf("line %d: %w", lineNo, err)
		}
		result.Submitted++
		if !recorded {
			continue
		}

		printer.Entry(entry)
		if entry.IsError() {
			result.Errors++
			logger.Debug("Script line failed", "line", lineNo, "input", line, "outcome", entry.Outcome.String())
		}

		if !c.IsOpen() {
			logger.Debug("Script closed the console", "line", lineNo)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read script: %w", err)
	}

	if result.Errors > 0 {
		return result, fmt.Errorf("%d of %d commands failed", result.Errors, result.Submitted)
	}
	return result, nil
}
