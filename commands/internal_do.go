package commands

import (
	"github.com/urfave/cli/v2"
)

// InternalDoCommand is the entry point the sandboxed re-invocation lands
// on. It is not meant to be called by end users directly.
var InternalDoCommand = cli.Command{
	Name:            "_do",
	Usage:           "_do COMMAND [ARGS...]",
	Hidden:          true,
	SkipFlagParsing: true,

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "_do")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		args := ctx.Args().Slice()
		if len(args) == 0 {
			return cli.Exit("invalid arguments - usage: _do COMMAND [ARGS...]", 1)
		}

		if err := newExecutor(cfg).RunInternal(logger, args); err != nil {
			logger.Error("internal-command-failed", err)
			return exitError(err)
		}

		return nil
	},
}
