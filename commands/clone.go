package commands

import (
	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"
)

var CloneCommand = cli.Command{
	Name:        "clone",
	Usage:       "clone",
	Description: "Clone the package manager repository into the home directory as the service account",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "clone")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		if err := newCloner(cfg).Clone(logger); err != nil {
			logger.Error("clone-failed", err)
			return exitError(errorspkg.Cause(err))
		}

		return nil
	},
}
