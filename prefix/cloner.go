package prefix

import (
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

//go:generate counterfeiter . Executor
type Executor interface {
	RunSandboxed(logger lager.Logger, args []string) error
}

// Cloner checks the package-manager repository out into the home
// directory. The clone runs through the sandboxed executor so every file
// it creates is owned by the service account from the start.
type Cloner struct {
	gitBin   string
	repoURL  string
	homePath string
	executor Executor
}

func NewCloner(gitBin, repoURL, homePath string, executor Executor) *Cloner {
	return &Cloner{
		gitBin:   gitBin,
		repoURL:  repoURL,
		homePath: homePath,
		executor: executor,
	}
}

func (c *Cloner) Clone(logger lager.Logger) error {
	logger = logger.Session("clone", lager.Data{"repoURL": c.repoURL, "homePath": c.homePath})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := c.executor.RunSandboxed(logger, []string{c.gitBin, "clone", c.repoURL, c.homePath}); err != nil {
		return errorspkg.Wrap(err, "cloning repository")
	}

	return nil
}
