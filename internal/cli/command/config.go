package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/cli/config"
	"github.com/yndnr/twokey-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:  "init",
				Usage: "Write a configuration file with default values",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}

	f, err := rt.formatter()
	if err != nil {
		return err
	}

	// Tables read better as dotted keys; structured formats keep nesting.
	if _, ok := f.(*output.TableFormatter); ok {
		return f.Format(outWriter(c), dottedConfig(rt))
	}
	return f.Format(outWriter(c), rt.Config)
}

func dottedConfig(rt *Runtime) map[string]any {
	cfg := rt.Config
	file := rt.ConfigPath
	if _, err := os.Stat(file); err != nil {
		file += " (not found)"
	}
	return map[string]any{
		"config_file":  file,
		"output":       cfg.Output,
		"wide":         cfg.Wide,
		"separator":    cfg.Separator,
		"history.file": cfg.History.File,
		"history.size": cfg.History.Size,
		"log.level":    cfg.Log.Level,
		"log.format":   cfg.Log.Format,
	}
}

func configInit(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}

	path := rt.ConfigPath
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("error: %s already exists (use --force to overwrite)", path), 1)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.Save(config.Default(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(outWriter(c), "Wrote %s\n", path)
	return nil
}
