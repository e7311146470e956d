package identity // import "github.com/brewgate/brewgate/identity"

import (
	"os/user"
	"strconv"

	errorspkg "github.com/pkg/errors"
)

// Resolver looks records up in the host's identity database. A record
// that does not exist is a normal result, reported via the boolean;
// errors are reserved for genuine lookup failures.
type Resolver interface {
	LookupUser(name string) (uid int, found bool, err error)
	LookupGroup(name string) (gid int, found bool, err error)
	UserIDExists(uid int) (bool, error)
	GroupIDExists(gid int) (bool, error)
}

type OSResolver struct {
}

func NewOSResolver() *OSResolver {
	return &OSResolver{}
}

func (r *OSResolver) LookupUser(name string) (int, bool, error) {
	usr, err := user.Lookup(name)
	if err != nil {
		if _, unknown := err.(user.UnknownUserError); unknown {
			return 0, false, nil
		}
		return 0, false, errorspkg.Wrapf(err, "looking up user `%s`", name)
	}

	uid, err := strconv.Atoi(usr.Uid)
	if err != nil {
		return 0, false, errorspkg.Wrapf(err, "parsing uid of user `%s`", name)
	}

	return uid, true, nil
}

func (r *OSResolver) LookupGroup(name string) (int, bool, error) {
	group, err := user.LookupGroup(name)
	if err != nil {
		if _, unknown := err.(user.UnknownGroupError); unknown {
			return 0, false, nil
		}
		return 0, false, errorspkg.Wrapf(err, "looking up group `%s`", name)
	}

	gid, err := strconv.Atoi(group.Gid)
	if err != nil {
		return 0, false, errorspkg.Wrapf(err, "parsing gid of group `%s`", name)
	}

	return gid, true, nil
}

func (r *OSResolver) UserIDExists(uid int) (bool, error) {
	_, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		if _, unknown := err.(user.UnknownUserIdError); unknown {
			return false, nil
		}
		return false, errorspkg.Wrapf(err, "looking up uid %d", uid)
	}

	return true, nil
}

func (r *OSResolver) GroupIDExists(gid int) (bool, error) {
	_, err := user.LookupGroupId(strconv.Itoa(gid))
	if err != nil {
		if _, unknown := err.(user.UnknownGroupIdError); unknown {
			return false, nil
		}
		return false, errorspkg.Wrapf(err, "looking up gid %d", gid)
	}

	return true, nil
}
