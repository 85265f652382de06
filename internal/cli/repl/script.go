package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/twokey-go/internal/cli/output"
	"github.com/yndnr/twokey-go/internal/core/domain"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// ScriptOptions controls RunScript.
type ScriptOptions struct {
	// KeepGoing reports failed lines to ErrOut and continues.
	KeepGoing bool
	// ErrOut receives per-line errors when KeepGoing is set.
	ErrOut io.Writer
	// Progress, when set, receives a progress bar over the script's commands.
	Progress io.Writer
}

// ScriptError reports the failed lines of a script run.
type ScriptError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *ScriptError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}
	return fmt.Sprintf("%d of %d commands failed", e.Failed, e.Total)
}

// Unwrap exposes the line errors to errors.Is and errors.As.
func (e *ScriptError) Unwrap() []error {
	return e.Errs
}

// scriptLine is a command with its 1-based line number.
type scriptLine struct {
	num  int
	text string
}

// RunScript executes every command in src. Without KeepGoing the first
// failure stops the run. An exit command ends the script successfully.
func (e *Engine) RunScript(ctx context.Context, src io.Reader, opts ScriptOptions) error {
	lines, err := readScript(src)
	if err != nil {
		return err
	}

	var bar *output.ProgressBar
	if opts.Progress != nil {
		bar = output.NewProgressBar(opts.Progress, "script", len(lines))
	}
	// A completed run fills the bar; a failed one leaves it where it stopped.
	finish := func(completed bool) {
		switch {
		case bar == nil:
		case completed:
			bar.Finish()
		default:
			fmt.Fprintln(opts.Progress)
		}
	}

	log := logger.L(ctx)
	result := &ScriptError{Total: len(lines)}
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			finish(false)
			return err
		}

		err := e.Execute(ctx, line.text)
		if bar != nil {
			bar.Increment(1)
		}
		if errors.Is(err, ErrExit) {
			break
		}
		if err == nil {
			continue
		}

		err = fmt.Errorf("line %d: %w", line.num, err)
		log.Debug("script command failed", "line", line.num, "code", domain.GetErrorCode(err), "error", err)
		result.Failed++
		result.Errs = append(result.Errs, err)
		if !opts.KeepGoing {
			finish(false)
			return result
		}
		if opts.ErrOut != nil {
			fmt.Fprintf(opts.ErrOut, "Error: %v\n", err)
		}
	}

	finish(true)
	if result.Failed > 0 {
		return result
	}
	return nil
}

// readScript returns the non-blank, non-comment lines of src.
func readScript(src io.Reader) ([]scriptLine, error) {
	var lines []scriptLine
	scanner := bufio.NewScanner(src)
	for num := 1; scanner.Scan(); num++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, scriptLine{num: num, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}
