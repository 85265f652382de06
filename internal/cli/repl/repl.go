package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "twokey> "

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input   io.Reader
	output  io.Writer
	errOut  io.Writer
	prompt  string
	engine  *Engine
	history *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
		r.errOut = errOut
	}
}

// WithPrompt sets the prompt. An empty prompt suits piped input.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// New creates a REPL that runs lines on engine and records them in history.
func New(engine *Engine, history *History, opts ...Option) *REPL {
	r := &REPL{
		input:   os.Stdin,
		output:  os.Stdout,
		errOut:  os.Stderr,
		prompt:  DefaultPrompt,
		engine:  engine,
		history: history,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.history == nil {
		r.history = NewHistory("", 0)
	}
	return r
}

// Run reads and executes lines until exit, end of input or ctx is done.
// History is loaded first and saved on the way out.
func (r *REPL) Run(ctx context.Context) error {
	log := logger.L(ctx)
	if err := r.history.Load(); err != nil {
		log.Warn("failed to load history", "error", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			log.Warn("failed to save history", "error", err)
		}
	}()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(r.input, lines, readErr)

	for {
		fmt.Fprint(r.output, r.prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.output)
			return nil
		case err := <-readErr:
			fmt.Fprintln(r.output)
			return err
		case line = <-lines:
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.history.Add(line)

		err := r.engine.Execute(ctx, line)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
		}
	}
}

// readLines sends each line of in to lines. It reports nil on end of
// input. The goroutine lives until in is exhausted, so a REPL stopped by
// its context leaves it blocked on stdin until the process exits.
func readLines(in io.Reader, lines chan<- string, done chan<- error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	done <- scanner.Err()
}
