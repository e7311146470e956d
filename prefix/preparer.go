package prefix // import "github.com/brewgate/brewgate/prefix"

import (
	"os"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
)

// Preparer creates the managed directories and hands them to the service
// account.
type Preparer struct {
	accountName string
	homePath    string
	logPath     string
	resolver    identity.Resolver
	chowner     gate.Chowner
	euid        func() int
}

func NewPreparer(accountName, homePath, logPath string, resolver identity.Resolver, chowner gate.Chowner) *Preparer {
	return &Preparer{
		accountName: accountName,
		homePath:    homePath,
		logPath:     logPath,
		resolver:    resolver,
		chowner:     chowner,
		euid:        os.Geteuid,
	}
}

// EnsureHome creates the home directory when absent and chowns it to the
// service account's uid. The group is left untouched. A pre-existing home
// is not an error.
func (p *Preparer) EnsureHome(logger lager.Logger) error {
	logger = logger.Session("ensure-home", lager.Data{"homePath": p.homePath})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if p.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("preparing the home directory requires root privileges"))
	}

	uid, _, err := p.accountIDs()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p.homePath); err != nil {
		if !os.IsNotExist(err) {
			return errorspkg.Wrapf(err, "checking home directory `%s`", p.homePath)
		}
		if err := os.Mkdir(p.homePath, 0755); err != nil {
			return errorspkg.Wrapf(err, "making home directory `%s`", p.homePath)
		}
	}

	if err := p.chowner.Chown(p.homePath, uid, -1); err != nil {
		return errorspkg.Wrapf(err, "chowning home directory `%s`", p.homePath)
	}

	return nil
}

// EnsureLogDir creates the log directory and fails when it already exists:
// a leftover log directory may indicate a prior unclean state worth
// surfacing.
func (p *Preparer) EnsureLogDir(logger lager.Logger) error {
	logger = logger.Session("ensure-log-dir", lager.Data{"logPath": p.logPath})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if p.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("preparing the log directory requires root privileges"))
	}

	uid, gid, err := p.accountIDs()
	if err != nil {
		return err
	}

	if err := os.Mkdir(p.logPath, 0755); err != nil {
		return errorspkg.Wrapf(err, "making log directory `%s`", p.logPath)
	}

	if err := p.chowner.Chown(p.logPath, uid, gid); err != nil {
		return errorspkg.Wrapf(err, "chowning log directory `%s`", p.logPath)
	}

	if err := os.Chmod(p.logPath, 0755); err != nil {
		return errorspkg.Wrapf(err, "chmoding log directory `%s`", p.logPath)
	}

	return nil
}

func (p *Preparer) accountIDs() (int, int, error) {
	uid, found, err := p.resolver.LookupUser(p.accountName)
	if err != nil {
		return 0, 0, errorspkg.Wrap(err, "resolving service account")
	}
	if !found {
		return 0, 0, errorspkg.Errorf("service account `%s` is not present - create it first", p.accountName)
	}

	gid, found, err := p.resolver.LookupGroup(p.accountName)
	if err != nil {
		return 0, 0, errorspkg.Wrap(err, "resolving service group")
	}
	if !found {
		return 0, 0, errorspkg.Errorf("service group `%s` is not present - create it first", p.accountName)
	}

	return uid, gid, nil
}
