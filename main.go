package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/urfave/cli/v2"

	"github.com/brewgate/brewgate/commands"
	"github.com/brewgate/brewgate/commands/config"
	"github.com/brewgate/brewgate/metrics"
)

const version = "0.1.0"

func main() {
	brewgate := cli.NewApp()
	brewgate.Name = "brewgate"
	brewgate.Usage = "Run the package manager under a dedicated unprivileged service account"
	brewgate.Version = version

	brewgate.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to the config file",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Set for verbose logging",
		},
		&cli.StringFlag{
			Name:  "metron-endpoint",
			Usage: "Metron endpoint used to send metrics",
		},
	}

	brewgate.Commands = []*cli.Command{
		&commands.BrewCommand,
		&commands.DoCommand,
		&commands.InternalDoCommand,
		&commands.InstallCommand,
		&commands.SwitchCommand,
		&commands.DoctorCommand,
		&commands.AddUserCommand,
		&commands.DelUserCommand,
		&commands.MkdirsCommand,
		&commands.MkLogDirCommand,
		&commands.CloneCommand,
		&commands.MigrateCommand,
		&commands.UnmigrateCommand,
	}

	brewgate.Before = func(ctx *cli.Context) error {
		logger := lager.NewLogger("brewgate")
		logLevel := lager.INFO
		if ctx.Bool("debug") {
			logLevel = lager.DEBUG
		}
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel))
		ctx.App.Metadata["logger"] = logger

		configBuilder, err := newConfigBuilder(ctx)
		if err != nil {
			logger.Error("config-loading-failed", err)
			return cli.Exit(err.Error(), 1)
		}
		ctx.App.Metadata["configBuilder"] = configBuilder

		cfg, err := configBuilder.Build()
		if err != nil {
			logger.Error("config-building-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		metricsEmitter, err := metrics.NewEmitter(cfg.MetronEndpoint)
		if err != nil {
			logger.Error("metrics-initialization-failed", err)
			return cli.Exit(err.Error(), 1)
		}
		ctx.App.Metadata["metricsEmitter"] = metricsEmitter

		return nil
	}

	brewgate.CommandNotFound = func(ctx *cli.Context, command string) {
		fmt.Fprintf(ctx.App.Writer, "unknown command `%s`\n\n", command)
		_ = cli.ShowAppHelp(ctx)
		os.Exit(1)
	}

	if err := brewgate.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newConfigBuilder(ctx *cli.Context) (*config.Builder, error) {
	if ctx.IsSet("config") {
		builder, err := config.NewBuilderFromFile(ctx.String("config"))
		if err != nil {
			return nil, err
		}
		return builder.WithMetronEndpoint(ctx.String("metron-endpoint")), nil
	}

	return config.NewBuilder().WithMetronEndpoint(ctx.String("metron-endpoint")), nil
}
