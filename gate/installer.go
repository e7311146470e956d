package gate

import (
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

// Installer runs the multi-step install and switch sequences. Steps are
// not rolled back on failure: a partially completed sequence is surfaced
// to the caller and every step is safe to re-run or fix up by hand.
type Installer struct {
	accountManager AccountManager
	preparer       Preparer
	cloner         Cloner
	migrator       TreeMigrator
}

func NewInstaller(accountManager AccountManager, preparer Preparer, cloner Cloner, migrator TreeMigrator) *Installer {
	return &Installer{
		accountManager: accountManager,
		preparer:       preparer,
		cloner:         cloner,
		migrator:       migrator,
	}
}

// Install provisions the service account, the directories and a fresh
// package-manager checkout owned by the account.
func (i *Installer) Install(logger lager.Logger) error {
	logger = logger.Session("install")
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := i.accountManager.CreateAccount(logger); err != nil {
		return errorspkg.Wrap(err, "creating service account")
	}

	if err := i.preparer.EnsureHome(logger); err != nil {
		return errorspkg.Wrap(err, "preparing home directory")
	}

	if err := i.preparer.EnsureLogDir(logger); err != nil {
		return errorspkg.Wrap(err, "preparing log directory")
	}

	if err := i.cloner.Clone(logger); err != nil {
		return errorspkg.Wrap(err, "cloning package manager repository")
	}

	return nil
}

// Switch takes over an existing installation: it provisions the service
// account and directories, then migrates ownership of the existing trees.
func (i *Installer) Switch(logger lager.Logger) error {
	logger = logger.Session("switch")
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := i.accountManager.CreateAccount(logger); err != nil {
		return errorspkg.Wrap(err, "creating service account")
	}

	if err := i.preparer.EnsureHome(logger); err != nil {
		return errorspkg.Wrap(err, "preparing home directory")
	}

	if err := i.preparer.EnsureLogDir(logger); err != nil {
		return errorspkg.Wrap(err, "preparing log directory")
	}

	if err := i.migrator.Migrate(logger); err != nil {
		return errorspkg.Wrap(err, "migrating ownership")
	}

	return nil
}
