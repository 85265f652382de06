package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/twokey-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			rt := GetRuntime(c)
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}
			f, err := rt.formatter()
			if err != nil {
				return err
			}
			return f.Format(outWriter(c), buildinfo.Get())
		},
	}
}
