package commands

import (
	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"
)

var MkdirsCommand = cli.Command{
	Name:        "mkdirs",
	Usage:       "mkdirs",
	Description: "Create the home directory and hand it to the service account",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "mkdirs")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		if err := newPreparer(cfg).EnsureHome(logger); err != nil {
			logger.Error("ensure-home-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}

var MkLogDirCommand = cli.Command{
	Name:        "mklogdir",
	Usage:       "mklogdir",
	Description: "Create the log directory and hand it to the service account",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "mklogdir")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		if err := newPreparer(cfg).EnsureLogDir(logger); err != nil {
			logger.Error("ensure-log-dir-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}
