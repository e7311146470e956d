package migrator // import "github.com/brewgate/brewgate/migrator"

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
)

// Tree is a managed directory tree. Anchor is a subpath, relative to
// Path, that is expected to exist and to carry the tree's current owning
// identity; an empty Anchor means the tree root itself.
type Tree struct {
	Path   string
	Anchor string
}

func (t Tree) anchorPath() string {
	if t.Anchor == "" {
		return t.Path
	}
	return filepath.Join(t.Path, t.Anchor)
}

// Migrator reassigns ownership of the home and cache trees between the
// service account and an ordinary user. Only entries still owned by the
// identity captured from the tree's anchor are touched, which makes a
// partially migrated tree safe to walk again.
type Migrator struct {
	accountName      string
	revertHomeGroup  string
	revertCacheGroup string
	homeTree         Tree
	cacheTree        Tree
	resolver         identity.Resolver
	chowner          gate.Chowner
	euid             func() int
}

func NewMigrator(accountName, revertHomeGroup, revertCacheGroup string, homeTree, cacheTree Tree, resolver identity.Resolver, chowner gate.Chowner) *Migrator {
	return &Migrator{
		accountName:      accountName,
		revertHomeGroup:  revertHomeGroup,
		revertCacheGroup: revertCacheGroup,
		homeTree:         homeTree,
		cacheTree:        cacheTree,
		resolver:         resolver,
		chowner:          chowner,
		euid:             os.Geteuid,
	}
}

// Migrate hands both trees to the service account and sets the tree roots
// to 0755.
func (m *Migrator) Migrate(logger lager.Logger) error {
	logger = logger.Session("migrate")
	logger.Debug("starting")
	defer logger.Debug("ending")

	if m.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("migrating ownership requires root privileges"))
	}

	uid, gid, err := m.accountIDs()
	if err != nil {
		return err
	}

	if err := m.migrateTrees(logger, uid, gid, gid); err != nil {
		return err
	}

	for _, tree := range []Tree{m.homeTree, m.cacheTree} {
		if err := os.Chmod(tree.Path, 0755); err != nil {
			return errorspkg.Wrapf(err, "chmoding tree root `%s`", tree.Path)
		}
	}

	return nil
}

// Unmigrate hands both trees back to the named user, restores the
// conventional per-tree groups, and leaves the tree roots root-owned and
// group-writable.
func (m *Migrator) Unmigrate(logger lager.Logger, username string) error {
	logger = logger.Session("unmigrate", lager.Data{"username": username})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if m.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("migrating ownership requires root privileges"))
	}

	uid, found, err := m.resolver.LookupUser(username)
	if err != nil {
		return errorspkg.Wrapf(err, "resolving user `%s`", username)
	}
	if !found {
		return errorspkg.Errorf("user `%s` is not present", username)
	}

	homeGID, err := m.groupID(m.revertHomeGroup)
	if err != nil {
		return err
	}
	cacheGID, err := m.groupID(m.revertCacheGroup)
	if err != nil {
		return err
	}

	if err := m.migrateTrees(logger, uid, homeGID, cacheGID); err != nil {
		return err
	}

	for _, root := range []struct {
		path string
		gid  int
	}{{m.homeTree.Path, homeGID}, {m.cacheTree.Path, cacheGID}} {
		if err := m.chowner.Lchown(root.path, 0, root.gid); err != nil {
			return errorspkg.Wrapf(err, "chowning tree root `%s`", root.path)
		}
		if err := os.Chmod(root.path, 0775); err != nil {
			return errorspkg.Wrapf(err, "chmoding tree root `%s`", root.path)
		}
	}

	return nil
}

// migrateTrees captures both anchors before touching anything. When both
// anchors already belong to the target owner the whole operation is
// rejected; a tree whose anchor alone matches is skipped so that a prior
// partial migration can be completed.
func (m *Migrator) migrateTrees(logger lager.Logger, newUID, homeGID, cacheGID int) error {
	homeUID, homeGIDCur, err := m.chowner.Owner(m.homeTree.anchorPath())
	if err != nil {
		return errorspkg.Wrapf(err, "probing home anchor `%s`", m.homeTree.anchorPath())
	}

	cacheUID, cacheGIDCur, err := m.chowner.Owner(m.cacheTree.anchorPath())
	if err != nil {
		return errorspkg.Wrapf(err, "probing cache anchor `%s`", m.cacheTree.anchorPath())
	}

	if homeUID == newUID && cacheUID == newUID {
		return gate.NewAlreadyMigratedErr(errorspkg.Errorf("trees `%s` and `%s` already belong to uid %d", m.homeTree.Path, m.cacheTree.Path, newUID))
	}

	if homeUID != newUID {
		if err := m.walkTree(logger, m.homeTree, homeUID, homeGIDCur, newUID, homeGID); err != nil {
			return err
		}
	} else {
		logger.Info("skipping-migrated-tree", lager.Data{"path": m.homeTree.Path})
	}

	if cacheUID != newUID {
		if err := m.walkTree(logger, m.cacheTree, cacheUID, cacheGIDCur, newUID, cacheGID); err != nil {
			return err
		}
	} else {
		logger.Info("skipping-migrated-tree", lager.Data{"path": m.cacheTree.Path})
	}

	return nil
}

// walkTree reassigns the tree root and every entry whose ownership still
// matches the anchor's captured (uid, gid). Symbolic links are reowned
// themselves, never their targets. The first error aborts the walk; the
// per-entry matching rule makes a rerun on the partial result safe.
func (m *Migrator) walkTree(logger lager.Logger, tree Tree, anchorUID, anchorGID, newUID, newGID int) error {
	logger = logger.Session("walk-tree", lager.Data{
		"path":    tree.Path,
		"fromUID": anchorUID, "fromGID": anchorGID,
		"toUID": newUID, "toGID": newGID,
	})
	logger.Debug("starting")
	defer logger.Debug("ending")

	return filepath.Walk(tree.Path, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return errorspkg.Wrapf(err, "walking `%s`", path)
		}

		if path == tree.Path {
			return m.chowner.Lchown(path, newUID, newGID)
		}

		uid, gid, err := m.chowner.Owner(path)
		if err != nil {
			return errorspkg.Wrapf(err, "reading ownership of `%s`", path)
		}

		if uid != anchorUID || gid != anchorGID {
			return nil
		}

		if err := m.chowner.Lchown(path, newUID, newGID); err != nil {
			return errorspkg.Wrapf(err, "chowning `%s`", path)
		}

		return nil
	})
}

func (m *Migrator) accountIDs() (int, int, error) {
	uid, found, err := m.resolver.LookupUser(m.accountName)
	if err != nil {
		return 0, 0, errorspkg.Wrap(err, "resolving service account")
	}
	if !found {
		return 0, 0, errorspkg.Errorf("service account `%s` is not present - create it first", m.accountName)
	}

	gid, err := m.groupID(m.accountName)
	if err != nil {
		return 0, 0, err
	}

	return uid, gid, nil
}

func (m *Migrator) groupID(name string) (int, error) {
	gid, found, err := m.resolver.LookupGroup(name)
	if err != nil {
		return 0, errorspkg.Wrapf(err, "resolving group `%s`", name)
	}
	if !found {
		return 0, errorspkg.Errorf("group `%s` is not present", name)
	}

	return gid, nil
}
