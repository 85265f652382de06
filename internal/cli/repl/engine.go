package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yndnr/twokey-go/internal/cli/output"
	"github.com/yndnr/twokey-go/internal/core/domain"
	"github.com/yndnr/twokey-go/internal/core/service"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// ErrExit is returned by Execute for exit and quit.
var ErrExit = errors.New("exit")

// command is one REPL command.
type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	maxArgs int
	run     func(e *Engine, ctx context.Context, args []string) error
}

// commands is filled in init because help refers back to it.
var commands []command

func init() {
	commands = []command{
		{"put", "put OUTER INNER VALUE", "store VALUE under (OUTER, INNER)", 3, 3, (*Engine).put},
		{"get", "get OUTER INNER", "show the value under (OUTER, INNER)", 2, 2, (*Engine).get},
		{"modify", "modify OUTER INNER OP [ARG]", "recompute a value (ops: " + strings.Join(service.RemapOps, ", ") + ")", 3, 4, (*Engine).modify},
		{"nested", "nested OUTER", "show the inner map of OUTER", 1, 1, (*Engine).nested},
		{"size", "size OUTER", "inner map size of OUTER, -1 if absent", 1, 1, (*Engine).size},
		{"flatten", "flatten [SEP]", "join keys with SEP and list all values", 0, 1, (*Engine).flatten},
		{"entries", "entries", "list every outer key with its inner map", 0, 0, (*Engine).entries},
		{"keys", "keys", "list outer keys", 0, 0, (*Engine).keys},
		{"records", "records", "list every stored value with its keys", 0, 0, (*Engine).records},
		{"len", "len", "count outer keys and stored values", 0, 0, (*Engine).length},
		{"stats", "stats", "show operation metrics", 0, 0, (*Engine).stats},
		{"history", "history [N]", "show the last N commands", 0, 1, (*Engine).showHistory},
		{"complete", "complete LINE", "list completions for a partial LINE", 0, 1, (*Engine).complete},
		{"help", "help [COMMAND]", "show help", 0, 1, (*Engine).help},
		{"exit", "exit", "leave the session", 0, 0, exitCommand},
		{"quit", "quit", "leave the session", 0, 0, exitCommand},
	}
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	return names
}

func lookup(name string) (command, bool) {
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		return command{}, false
	}
	return commands[i], true
}

// Engine executes command lines against a MapService.
type Engine struct {
	svc       *service.MapService
	out       io.Writer
	formatter output.Formatter
	separator string
	completer *Completer
	history   *History
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFormatter sets how results are rendered. The default is a table.
func WithFormatter(f output.Formatter) EngineOption {
	return func(e *Engine) {
		e.formatter = f
	}
}

// WithSeparator sets the default flatten separator.
func WithSeparator(sep string) EngineOption {
	return func(e *Engine) {
		e.separator = sep
	}
}

// WithHistory lets the history command read h.
func WithHistory(h *History) EngineOption {
	return func(e *Engine) {
		e.history = h
	}
}

// NewEngine creates an engine writing results to out.
func NewEngine(svc *service.MapService, out io.Writer, opts ...EngineOption) *Engine {
	e := &Engine{
		svc:       svc,
		out:       out,
		formatter: &output.TableFormatter{},
		separator: "-",
		completer: NewCompleter(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one command line. Blank lines and comments do nothing.
// A unique command prefix selects that command, so "fl" runs flatten.
func (e *Engine) Execute(ctx context.Context, line string) error {
	args, err := Tokenize(line)
	if err != nil {
		return domain.ErrInvalidArgument.WithDetails(err.Error())
	}
	if len(args) == 0 {
		return nil
	}

	cmd, err := e.resolve(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	args = args[1:]

	if len(args) < cmd.minArgs {
		return domain.ErrMissingArgument.WithDetails("usage: " + cmd.usage)
	}
	if len(args) > cmd.maxArgs {
		return domain.ErrInvalidArgument.WithDetails("too many arguments, usage: " + cmd.usage)
	}

	logger.L(ctx).Debug("execute command", "command", cmd.name, "args", len(args))
	return cmd.run(e, ctx, args)
}

func (e *Engine) resolve(name string) (command, error) {
	if cmd, ok := lookup(name); ok {
		return cmd, nil
	}

	matches := e.completer.Commands(name)
	if len(matches) == 1 {
		if cmd, ok := lookup(matches[0]); ok {
			return cmd, nil
		}
	}

	err := domain.ErrUnknownCommand.WithDetails(name)
	if len(matches) > 1 {
		err = err.WithDetails(fmt.Sprintf("%s (did you mean %s?)", name, strings.Join(matches, ", ")))
	}
	return command{}, err
}

func (e *Engine) render(data any) error {
	return e.formatter.Format(e.out, data)
}

func (e *Engine) put(ctx context.Context, args []string) error {
	rec, err := e.svc.Put(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return e.render([]domain.Record{rec})
}

func (e *Engine) get(ctx context.Context, args []string) error {
	rec, err := e.svc.Get(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return e.render([]domain.Record{rec})
}

func (e *Engine) modify(ctx context.Context, args []string) error {
	remap, err := service.ParseRemap(args[2], args[3:]...)
	if err != nil {
		return err
	}
	mod, err := e.svc.Modify(ctx, args[0], args[1], remap)
	if err != nil {
		return err
	}
	return e.render([]domain.Modification{mod})
}

func (e *Engine) nested(ctx context.Context, args []string) error {
	return e.render(e.svc.Nested(ctx, args[0]).Entries)
}

func (e *Engine) size(ctx context.Context, args []string) error {
	return e.render(e.svc.Size(ctx, args[0]))
}

func (e *Engine) flatten(ctx context.Context, args []string) error {
	sep := e.separator
	if len(args) == 1 {
		sep = args[0]
	}
	flat, err := e.svc.Flatten(ctx, sep)
	if err != nil {
		return err
	}
	return e.render(flat)
}

func (e *Engine) entries(ctx context.Context, _ []string) error {
	return e.render(e.svc.Entries(ctx))
}

func (e *Engine) keys(ctx context.Context, _ []string) error {
	return e.render(e.svc.Keys(ctx))
}

// lengths is the result of the len command.
type lengths struct {
	OuterKeys int `json:"outer_keys" yaml:"outer_keys"`
	Entries   int `json:"entries" yaml:"entries"`
}

func (e *Engine) records(ctx context.Context, _ []string) error {
	return e.render(e.svc.Records(ctx))
}

func (e *Engine) length(_ context.Context, _ []string) error {
	return e.render(lengths{OuterKeys: e.svc.Len(), Entries: e.svc.Count()})
}

func (e *Engine) stats(_ context.Context, _ []string) error {
	return e.svc.Stats(e.out)
}

func (e *Engine) showHistory(_ context.Context, args []string) error {
	if e.history == nil {
		return nil
	}
	n := 0
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return domain.ErrInvalidArgument.WithDetails("history count must be a positive number")
		}
		n = v
	}

	table := &output.Table{}
	table.SetHeaders("#", "COMMAND")
	recent := e.history.Recent(n)
	first := e.history.Len() - len(recent) + 1
	for i, line := range recent {
		table.AddRow(strconv.Itoa(first+i), line)
	}
	return table.Render(e.out)
}

func (e *Engine) help(_ context.Context, args []string) error {
	table := &output.Table{}
	if len(args) == 1 {
		cmd, err := e.resolve(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		table.AddRow(cmd.usage, cmd.summary)
		return table.RenderWithOptions(e.out, true)
	}

	for _, cmd := range commands {
		table.AddRow(cmd.usage, cmd.summary)
	}
	if err := table.RenderWithOptions(e.out, true); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.out, "\nQuote arguments containing spaces; '#' starts a comment.")
	return err
}

func (e *Engine) complete(_ context.Context, args []string) error {
	line := ""
	if len(args) == 1 {
		line = args[0]
	}
	for _, c := range e.completer.Complete(line) {
		if _, err := fmt.Fprintln(e.out, c); err != nil {
			return err
		}
	}
	return nil
}

func exitCommand(_ *Engine, _ context.Context, _ []string) error {
	return ErrExit
}
