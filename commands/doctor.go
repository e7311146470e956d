package commands

import (
	"os"

	"github.com/urfave/cli/v2"

	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
)

var DoctorCommand = cli.Command{
	Name:        "doctor",
	Usage:       "doctor",
	Description: "Diagnose the installation; one line per failed check, exit 1 on any failure",

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "doctor")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		doctor := gate.NewDoctor(cfg.AccountName, cfg.HomePath, cfg.CachePath, cfg.LogPath,
			identity.NewOSResolver(), gate.NewOSChowner())

		failures, err := doctor.Check(logger, os.Stdout)
		if err != nil {
			logger.Error("doctor-failed", err)
			return cli.Exit(errorspkg.Cause(err).Error(), 1)
		}
		if failures > 0 {
			return cli.Exit("", 1)
		}

		return nil
	},
}
