package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/cli/repl"
	"github.com/yndnr/twokey-go/internal/infra/shutdown"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// RunCommand returns the script execution command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute commands from a script file, or stdin with -",
		ArgsUsage: "FILE|-",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "keep-going",
				Aliases: []string{"k"},
				Usage:   "Report failed commands and continue",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress bar on stderr",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}
	if c.NArg() != 1 {
		return cli.Exit("error: run needs exactly one FILE argument (use - for stdin)", 2)
	}

	src, closeSrc, err := openScript(c, c.Args().First())
	if err != nil {
		return err
	}
	defer closeSrc()

	sess, err := newSession(c, rt)
	if err != nil {
		return err
	}

	ctx, stop := shutdown.NewHandler(shutdownTimeout).Context(c.Context)
	defer stop()
	ctx = sess.withContext(ctx, rt)

	opts := repl.ScriptOptions{
		KeepGoing: c.Bool("keep-going"),
		ErrOut:    errWriter(c),
	}
	if c.Bool("progress") {
		opts.Progress = errWriter(c)
	}

	logger.L(ctx).Debug("running script", "source", c.Args().First(), "keep_going", opts.KeepGoing)
	return sess.engine.RunScript(ctx, src, opts)
}

func openScript(c *cli.Context, name string) (io.Reader, func(), error) {
	if name == "-" {
		return inReader(c), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}
