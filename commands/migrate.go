package commands

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"
)

var MigrateCommand = cli.Command{
	Name:        "migrate",
	Usage:       "migrate",
	Description: "Reassign ownership of the home and cache trees to the service account",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "migrate")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		defer func(start time.Time) {
			extractMetricsEmitter(ctx).TryEmitDuration(logger, "MigrationTime", time.Since(start))
		}(time.Now())

		if err := newMigrator(cfg).Migrate(logger); err != nil {
			logger.Error("migrate-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}

var UnmigrateCommand = cli.Command{
	Name:        "unmigrate",
	Usage:       "unmigrate USERNAME",
	Description: "Return ownership of the home and cache trees to the given user",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "unmigrate")

		if ctx.NArg() != 1 {
			logger.Error("parsing-command", errorspkg.New("invalid arguments"), lager.Data{"args": ctx.Args()})
			return cli.Exit(fmt.Sprintf("invalid arguments - usage: %s", ctx.Command.Usage), 1)
		}
		username := ctx.Args().First()

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		defer func(start time.Time) {
			extractMetricsEmitter(ctx).TryEmitDuration(logger, "UnmigrationTime", time.Since(start))
		}(time.Now())

		if err := newMigrator(cfg).Unmigrate(logger, username); err != nil {
			logger.Error("unmigrate-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}

		return nil
	},
}
