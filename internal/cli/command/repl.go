package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/cli/repl"
	"github.com/yndnr/twokey-go/internal/infra/buildinfo"
	"github.com/yndnr/twokey-go/internal/infra/shutdown"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// shutdownTimeout bounds the cleanup hooks run on exit.
const shutdownTimeout = 5 * time.Second

// ReplCommand returns the interactive session command.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Start an interactive session (default)",
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}

	sess, err := newSession(c, rt)
	if err != nil {
		return err
	}

	h := shutdown.NewHandler(shutdownTimeout)
	ctx, stop := h.Context(c.Context)
	defer stop()
	ctx = sess.withContext(ctx, rt)
	log := logger.L(ctx)

	defer func() {
		if err := h.Shutdown(); err != nil {
			log.Warn("shutdown hooks failed", "error", err)
		}
	}()

	if w := watchConfig(ctx, rt); w != nil {
		h.OnShutdown(func(context.Context) error { return w.Stop() })
	}

	in := inReader(c)
	opts := []repl.Option{repl.WithIO(in, outWriter(c), errWriter(c))}
	if isTerminal(in) {
		fmt.Fprintf(outWriter(c), "twokey-cli %s. Type \"help\" for commands.\n", buildinfo.Get().Version)
	} else {
		opts = append(opts, repl.WithPrompt(""))
	}

	log.Info("session started")
	defer func() {
		log.Info("session ended", "outer_keys", sess.svc.Len(), "entries", sess.svc.Count())
	}()

	return repl.New(sess.engine, sess.history, opts...).Run(ctx)
}
