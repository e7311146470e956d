package commands

import (
	"os"
	"os/exec"

	cfcommandrunner "code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/brewgate/brewgate/commands/commandrunner"
	"github.com/brewgate/brewgate/commands/config"
	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
	"github.com/brewgate/brewgate/sandbox"
)

// safeBrewVerbs only read state, so they run directly as the invoking
// user and keep working when the service account is not set up yet.
var safeBrewVerbs = map[string]struct{}{
	"--version": {},
	"cat":       {},
	"commands":  {},
	"config":    {},
	"desc":      {},
	"doctor":    {},
	"help":      {},
	"home":      {},
	"info":      {},
	"list":      {},
	"log":       {},
	"options":   {},
	"outdated":  {},
	"search":    {},
}

var BrewCommand = cli.Command{
	Name:            "brew",
	Usage:           "brew ARGS...",
	Description:     "Run the package manager, sandboxed under the service account unless the sub-verb is read-only",
	SkipFlagParsing: true,

	Action: func(ctx *cli.Context) error {
		logger := extractLogger(ctx, "brew")

		cfg, err := extractConfig(ctx)
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		args := ctx.Args().Slice()
		if len(args) == 0 {
			return cli.Exit("invalid arguments - usage: brew ARGS...", 1)
		}

		if err := runBrew(logger, cfg, args, commandrunner.New()); err != nil {
			logger.Error("brew-failed", err)
			return exitError(err)
		}

		return nil
	},
}

// runBrew executes a read-only sub-verb directly as the invoking user
// and routes everything else through the sandboxed executor.
func runBrew(logger lager.Logger, cfg config.Config, args []string, commandRunner cfcommandrunner.CommandRunner) error {
	if _, safe := safeBrewVerbs[args[0]]; safe {
		cmd := exec.Command(cfg.BrewBin, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := commandRunner.Run(cmd); err != nil {
			return gate.NewExternalCommandErr(errorspkg.Wrap(err, "running package manager"), brewExitCode(err))
		}

		return nil
	}

	executor := sandbox.NewExecutor(cfg.AccountName, cfg.SudoBin, cfg.LogPath,
		identity.NewOSResolver(), commandRunner)
	sandboxedArgs := append([]string{cfg.BrewBin}, args...)

	return executor.RunSandboxed(logger, sandboxedArgs)
}

func brewExitCode(err error) int {
	var exitErr *exec.ExitError
	if errorspkg.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
