package command

import (
	"context"
	"errors"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/cli/config"
	"github.com/yndnr/twokey-go/internal/cli/repl"
	"github.com/yndnr/twokey-go/internal/core/service"
	"github.com/yndnr/twokey-go/internal/infra/confloader"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
	"github.com/yndnr/twokey-go/internal/telemetry/metric"
)

// session is one map instance with the engine that drives it.
type session struct {
	id      string
	svc     *service.MapService
	engine  *repl.Engine
	history *repl.History
}

// newSession creates an empty map and an engine rendering to the app's
// writer with the configured format. Each session gets a fresh ULID.
func newSession(c *cli.Context, rt *Runtime) (*session, error) {
	f, err := rt.formatter()
	if err != nil {
		return nil, err
	}

	svc, err := service.NewMapService(service.WithMetrics(metric.NewRegistry()))
	if err != nil {
		return nil, err
	}

	history := repl.NewHistory(rt.Config.History.File, rt.Config.History.Size)
	engine := repl.NewEngine(svc, outWriter(c),
		repl.WithFormatter(f),
		repl.WithSeparator(rt.Config.Separator),
		repl.WithHistory(history),
	)

	return &session{
		id:      ulid.Make().String(),
		svc:     svc,
		engine:  engine,
		history: history,
	}, nil
}

// withContext attaches the session logger and id to ctx.
func (s *session) withContext(ctx context.Context, rt *Runtime) context.Context {
	return logger.WithSessionID(logger.WithLogger(ctx, rt.Logger), s.id)
}

// watchConfig reloads the config file on change and applies a new log
// level. It returns nil when there is no file to watch.
func watchConfig(ctx context.Context, rt *Runtime) *confloader.Watcher {
	log := logger.L(ctx)
	if _, err := os.Stat(rt.ConfigPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		log.Warn("config watcher unavailable", "error", err)
		return nil
	}
	if err := w.Watch(rt.ConfigPath); err != nil {
		_ = w.Stop()
		return nil
	}

	w.OnChange(func(path string) {
		reloadConfig(log, rt, path)
	})
	w.StartAsync()
	return w
}

// reloadConfig re-reads path and applies a changed log level. It reports
// whether the level changed.
func reloadConfig(log logger.Logger, rt *Runtime, path string) bool {
	cfg, err := config.Load(path, rt.Overrides)
	if err != nil {
		log.Warn("config reload failed", "path", path, "error", err)
		return false
	}

	level := logger.NormalizeLevel(cfg.Log.Level)
	if level == logger.GetLevel() {
		return false
	}
	logger.SetLevel(level)
	log.Info("log level changed", "level", level)
	return true
}
