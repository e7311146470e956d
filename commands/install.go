package commands

import (
	"time"

	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
)

var InstallCommand = cli.Command{
	Name:        "install",
	Usage:       "install",
	Description: "Provision the service account and install the package manager from scratch",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "install")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		defer func(start time.Time) {
			extractMetricsEmitter(ctx).TryEmitDuration(logger, "InstallTime", time.Since(start))
		}(time.Now())

		installer := gate.NewInstaller(newProvisioner(cfg), newPreparer(cfg), newCloner(cfg), newMigrator(cfg))
		if err := installer.Install(logger); err != nil {
			logger.Error("install-failed", err)
			return exitError(errorspkg.Cause(err))
		}

		return nil
	},
}

var SwitchCommand = cli.Command{
	Name:        "switch",
	Usage:       "switch",
	Description: "Provision the service account and take over an existing installation",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "switch")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		defer func(start time.Time) {
			extractMetricsEmitter(ctx).TryEmitDuration(logger, "SwitchTime", time.Since(start))
		}(time.Now())

		installer := gate.NewInstaller(newProvisioner(cfg), newPreparer(cfg), newCloner(cfg), newMigrator(cfg))
		if err := installer.Switch(logger); err != nil {
			logger.Error("switch-failed", err)
			return exitError(errorspkg.Cause(err))
		}

		return nil
	},
}
