package gate // import "github.com/brewgate/brewgate/gate"

import "code.cloudfoundry.org/lager/v3"

//go:generate counterfeiter . AccountManager
type AccountManager interface {
	CreateAccount(logger lager.Logger) error
	DeleteAccount(logger lager.Logger) error
}

//go:generate counterfeiter . Preparer
type Preparer interface {
	EnsureHome(logger lager.Logger) error
	EnsureLogDir(logger lager.Logger) error
}

//go:generate counterfeiter . Cloner
type Cloner interface {
	Clone(logger lager.Logger) error
}

//go:generate counterfeiter . TreeMigrator
type TreeMigrator interface {
	Migrate(logger lager.Logger) error
}

// Chowner abstracts filesystem ownership reads and writes so that
// privileged operations can be exercised in tests without root.
//go:generate counterfeiter . Chowner
type Chowner interface {
	Owner(path string) (uid, gid int, err error)
	Chown(path string, uid, gid int) error
	Lchown(path string, uid, gid int) error
}

// Resolver answers identity-database lookups. Absence of a record is
// reported via the boolean, not an error.
type Resolver interface {
	LookupUser(name string) (uid int, found bool, err error)
	LookupGroup(name string) (gid int, found bool, err error)
	UserIDExists(uid int) (bool, error)
	GroupIDExists(gid int) (bool, error)
}
