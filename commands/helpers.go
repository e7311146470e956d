package commands // import "github.com/brewgate/brewgate/commands"

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/urfave/cli/v2"

	"github.com/brewgate/brewgate/accounts"
	"github.com/brewgate/brewgate/commands/commandrunner"
	"github.com/brewgate/brewgate/commands/config"
	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
	"github.com/brewgate/brewgate/metrics"
	"github.com/brewgate/brewgate/migrator"
	"github.com/brewgate/brewgate/prefix"
	"github.com/brewgate/brewgate/sandbox"
)

func extractLogger(ctx *cli.Context, session string) lager.Logger {
	logger := ctx.App.Metadata["logger"].(lager.Logger)
	return logger.Session(session)
}

func extractConfig(ctx *cli.Context) (config.Config, error) {
	configBuilder := ctx.App.Metadata["configBuilder"].(*config.Builder)
	return configBuilder.Build()
}

func extractMetricsEmitter(ctx *cli.Context) *metrics.Emitter {
	return ctx.App.Metadata["metricsEmitter"].(*metrics.Emitter)
}

func newProvisioner(cfg config.Config) *accounts.Provisioner {
	return accounts.NewProvisioner(cfg.AccountName, cfg.DirectoryBin, cfg.IDCeiling,
		identity.NewOSResolver(), commandrunner.New())
}

func newPreparer(cfg config.Config) *prefix.Preparer {
	return prefix.NewPreparer(cfg.AccountName, cfg.HomePath, cfg.LogPath,
		identity.NewOSResolver(), gate.NewOSChowner())
}

func newMigrator(cfg config.Config) *migrator.Migrator {
	return migrator.NewMigrator(cfg.AccountName, cfg.RevertHomeGroup, cfg.RevertCacheGroup,
		migrator.Tree{Path: cfg.HomePath, Anchor: cfg.HomeAnchor},
		migrator.Tree{Path: cfg.CachePath, Anchor: cfg.CacheAnchor},
		identity.NewOSResolver(), gate.NewOSChowner())
}

func newExecutor(cfg config.Config) *sandbox.Executor {
	return sandbox.NewExecutor(cfg.AccountName, cfg.SudoBin, cfg.LogPath,
		identity.NewOSResolver(), commandrunner.New())
}

func newCloner(cfg config.Config) *prefix.Cloner {
	return prefix.NewCloner(cfg.GitBin, cfg.RepoURL, cfg.HomePath, newExecutor(cfg))
}

// exitError turns a component error into the process exit status: wrapped
// child processes exit with the child's own code, everything else with 1.
func exitError(err error) cli.ExitCoder {
	exitCode := 1

	var cmdErr *gate.ExternalCommandErr
	if errors.As(err, &cmdErr) {
		exitCode = cmdErr.ExitCode()
	}

	return cli.Exit(err.Error(), exitCode)
}
