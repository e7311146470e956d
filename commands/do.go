package commands

import (
	"github.com/urfave/cli/v2"
)

var DoCommand = cli.Command{
	Name:            "do",
	Usage:           "do COMMAND [ARGS...]",
	Description:     "Run an arbitrary command sandboxed under the service account",
	SkipFlagParsing: true,

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "do")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		args := ctx.Args().Slice()
		if len(args) == 0 {
			return cli.Exit("invalid arguments - usage: do COMMAND [ARGS...]", 1)
		}

		if err := newExecutor(cfg).RunSandboxed(logger, args); err != nil {
			logger.Error("sandboxed-command-failed", err)
			return exitError(err)
		}

		return nil
	},
}
