package commands

import (
	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"
)

var AddUserCommand = cli.Command{
	Name:        "adduser",
	Usage:       "adduser",
	Description: "Create the service account's user and group records",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "adduser")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		if err := newProvisioner(cfg).CreateAccount(logger); err != nil {
			logger.Error("create-account-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}

var DelUserCommand = cli.Command{
	Name:        "deluser",
	Usage:       "deluser",
	Description: "Delete the service account's user and group records",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "deluser")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		if err := newProvisioner(cfg).DeleteAccount(logger); err != nil {
			logger.Error("delete-account-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}
