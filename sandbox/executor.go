package sandbox // import "github.com/brewgate/brewgate/sandbox"

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
	shortid "github.com/ventu-io/go-shortid"
	"golang.org/x/sys/unix"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
)

const (
	// HomeEnvVar is rewritten for the sandboxed child so that anything it
	// drops into its home lands in the ephemeral directory.
	HomeEnvVar = "HOME"
	// LogsEnvVar points the package manager at the service log directory.
	LogsEnvVar = "HOMEBREW_LOGS"

	internalVerb = "_do"
)

// Executor switches identity to the service account by re-invoking this
// tool's internal entry point through the privilege-elevation command.
type Executor struct {
	accountName   string
	sudoBin       string
	logPath       string
	resolver      identity.Resolver
	commandRunner commandrunner.CommandRunner
}

func NewExecutor(accountName, sudoBin, logPath string, resolver identity.Resolver, commandRunner commandrunner.CommandRunner) *Executor {
	return &Executor{
		accountName:   accountName,
		sudoBin:       sudoBin,
		logPath:       logPath,
		resolver:      resolver,
		commandRunner: commandRunner,
	}
}

// RunSandboxed re-invokes this tool under the service account's identity,
// in the caller's working directory. When the current directory is
// unavailable, or the service account lacks search permission on it, the
// child runs from the filesystem root instead, which is readable by any
// identity.
func (e *Executor) RunSandboxed(logger lager.Logger, args []string) error {
	logger = logger.Session("run-sandboxed", lager.Data{"args": args})
	logger.Debug("starting")
	defer logger.Debug("ending")

	self, err := os.Executable()
	if err != nil {
		return errorspkg.Wrap(err, "locating own executable")
	}

	cmdArgs := append([]string{"-u", e.accountName, self, internalVerb}, args...)
	cmd := exec.Command(e.sudoBin, cmdArgs...)
	cmd.Dir = e.workingDirectory(logger)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("starting-sandboxed-command", lager.Data{"path": cmd.Path, "dir": cmd.Dir})
	if err := e.commandRunner.Run(cmd); err != nil {
		return gate.NewExternalCommandErr(errorspkg.Wrap(err, "running sandboxed command"), exitCode(err))
	}

	return nil
}

// RunInternal executes args inside a fresh temporary home directory. The
// directory lives exactly as long as the child: it is removed on every
// exit path, whether the child succeeded or not.
func (e *Executor) RunInternal(logger lager.Logger, args []string) error {
	logger = logger.Session("run-internal", lager.Data{"args": args})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if len(args) == 0 {
		return errorspkg.New("no command given")
	}

	tempHome, err := e.createTempHome()
	if err != nil {
		return errorspkg.Wrap(err, "creating temporary home directory")
	}
	defer func() {
		if err := os.RemoveAll(tempHome); err != nil {
			logger.Error("removing-temporary-home-failed", err, lager.Data{"tempHome": tempHome})
		}
	}()
	logger.Debug("temporary-home-created", lager.Data{"tempHome": tempHome})

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(),
		HomeEnvVar+"="+tempHome,
		LogsEnvVar+"="+e.logPath,
	)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := e.commandRunner.Run(cmd); err != nil {
		return gate.NewExternalCommandErr(errorspkg.Wrap(err, "running internal command"), exitCode(err))
	}

	return nil
}

func (e *Executor) createTempHome() (string, error) {
	id, err := shortid.Generate()
	if err != nil {
		return "", err
	}

	path := filepath.Join(os.TempDir(), "brewgate-home-"+id+strconv.Itoa(os.Getpid()))
	if err := os.Mkdir(path, 0700); err != nil {
		return "", err
	}

	return path, nil
}

// workingDirectory returns the caller's working directory when the
// service account can search it, the filesystem root otherwise. An
// account that cannot be resolved yet leaves the directory alone; the
// privilege-elevation command will report its own failure.
func (e *Executor) workingDirectory(logger lager.Logger) string {
	cwd, err := os.Getwd()
	if err != nil {
		return "/"
	}

	uid, found, err := e.resolver.LookupUser(e.accountName)
	if err != nil || !found {
		return cwd
	}
	gid, found, err := e.resolver.LookupGroup(e.accountName)
	if err != nil || !found {
		return cwd
	}

	if !searchable(cwd, uid, gid) {
		logger.Info("falling-back-to-root-directory", lager.Data{"cwd": cwd, "uid": uid})
		return "/"
	}

	return cwd
}

func searchable(path string, uid, gid int) bool {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return false
	}

	switch {
	case uid == 0:
		return true
	case int(stat.Uid) == uid:
		return stat.Mode&unix.S_IXUSR != 0
	case int(stat.Gid) == gid:
		return stat.Mode&unix.S_IXGRP != 0
	}

	return stat.Mode&unix.S_IXOTH != 0
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if !errorspkg.As(err, &exitErr) {
		return 1
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}

	if code := exitErr.ExitCode(); code > 0 {
		return code
	}

	return 1
}
