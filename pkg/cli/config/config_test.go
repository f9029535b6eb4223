package config_test

import (
	"context"

	"github.com/urfave/cli/v3"
)

// testCommand wraps a flag set in a no-op command so flag parsing runs the
// same way it does in the real CLI.
func testCommand(flags []cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
}
