package identity

import (
	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
)

// FindUnusedID returns the highest id at or below ceiling that is absent
// from both the user and the group id spaces, so the same number can serve
// as the service account's uid and gid. The scan runs high-to-low: the low
// end of the range is where the host OS pre-assigns its own system
// accounts.
func FindUnusedID(resolver Resolver, ceiling int) (int, error) {
	for id := ceiling; id >= 1; id-- {
		userTaken, err := resolver.UserIDExists(id)
		if err != nil {
			return 0, err
		}
		if userTaken {
			continue
		}

		groupTaken, err := resolver.GroupIDExists(id)
		if err != nil {
			return 0, err
		}
		if groupTaken {
			continue
		}

		return id, nil
	}

	return 0, gate.NewNoFreeIDErr(errorspkg.Errorf("no unused id found at or below %d", ceiling))
}
