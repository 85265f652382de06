package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/cli/config"
	"github.com/yndnr/twokey-go/internal/cli/output"
	"github.com/yndnr/twokey-go/internal/core/domain"
	"github.com/yndnr/twokey-go/internal/infra/buildinfo"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

const runtimeKey = "runtime"

// Runtime is the state prepared by the Before hook for every command.
type Runtime struct {
	Config     *config.CLIConfig
	ConfigPath string
	Overrides  map[string]any
	Logger     logger.Logger
}

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:                 "twokey-cli",
		Usage:                "Interactive two-level map keyed by (outer, inner) pairs",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			ReplCommand(),
			RunCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: before,
		Action: replAction,
	}

	return app
}

// before loads configuration and installs the logger.
func before(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	path := flags.Config
	if path == "" {
		path = config.DefaultConfigPath()
	}
	overrides := flags.Overrides(c)

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: load config: %v", err), 2)
	}

	lc := cfg.LoggerConfig()
	lc.Output = errWriter(c)
	log, err := logger.New(lc)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: init logger: %v", err), 2)
	}
	logger.SetDefault(log)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = &Runtime{
		Config:     cfg,
		ConfigPath: path,
		Overrides:  overrides,
		Logger:     log,
	}
	log.Debug("configuration loaded", "path", path, "output", cfg.Output)
	return nil
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path (default ~/.twokey/cli.yaml)",
			EnvVars: []string{"TWOKEY_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Do not truncate long values in tables",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config    string
	Output    string
	Wide      bool
	LogLevel  string
	LogFormat string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:    c.String("config"),
		Output:    c.String("output"),
		Wide:      c.Bool("wide"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
	}
}

// Overrides returns the explicitly set flags as dotted config keys, so
// they take priority over the file and environment.
func (f *GlobalFlags) Overrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output"] = f.Output
	}
	if c.IsSet("wide") {
		overrides["wide"] = f.Wide
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = f.LogLevel
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = f.LogFormat
	}
	return overrides
}

// GetRuntime retrieves the state prepared by the Before hook.
func GetRuntime(c *cli.Context) *Runtime {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt
	}
	return nil
}

// formatter builds the configured output formatter.
func (rt *Runtime) formatter() (output.Formatter, error) {
	format, err := output.ParseFormat(rt.Config.Output)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(format, rt.Config.Wide), nil
}

func outWriter(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

func inReader(c *cli.Context) io.Reader {
	if c.App.Reader != nil {
		return c.App.Reader
	}
	return os.Stdin
}

// isTerminal reports whether r is an interactive character device.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Exit statuses reported by ExitStatus.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitInternal = 3
)

// ExitStatus maps an error returned by App().Run to a process exit status.
// Argument and command errors are usage errors; internal errors get their
// own status so scripts can tell them apart from misses.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if domain.IsDomainError(err, domain.ErrInternal.Code) {
		return ExitInternal
	}

	code := domain.GetErrorCode(err)
	if strings.HasPrefix(code, "TK-ARG-") || strings.HasPrefix(code, "TK-CMD-") {
		return ExitUsage
	}
	return ExitFailure
}
