package gate

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

// Doctor runs every diagnostic check and reports all failures together,
// one line per failed check, instead of aborting at the first.
type Doctor struct {
	accountName string
	homePath    string
	cachePath   string
	logPath     string
	resolver    Resolver
	chowner     Chowner
}

func NewDoctor(accountName, homePath, cachePath, logPath string, resolver Resolver, chowner Chowner) *Doctor {
	return &Doctor{
		accountName: accountName,
		homePath:    homePath,
		cachePath:   cachePath,
		logPath:     logPath,
		resolver:    resolver,
		chowner:     chowner,
	}
}

// Check writes one diagnostic line per failed check to out and returns the
// number of failures. Ownership checks are skipped when the service account
// is absent, so a missing account yields exactly one diagnostic.
func (d *Doctor) Check(logger lager.Logger, out io.Writer) (int, error) {
	logger = logger.Session("doctor")
	logger.Debug("starting")
	defer logger.Debug("ending")

	uid, found, err := d.resolver.LookupUser(d.accountName)
	if err != nil {
		return 0, errorspkg.Wrap(err, "looking up service account")
	}
	if !found {
		fmt.Fprintf(out, "owner account %s is not present\n", d.accountName)
		return 1, nil
	}

	failures := 0

	_, groupFound, err := d.resolver.LookupGroup(d.accountName)
	if err != nil {
		return 0, errorspkg.Wrap(err, "looking up service group")
	}
	if !groupFound {
		fmt.Fprintf(out, "owner group %s is not present\n", d.accountName)
		failures++
	}

	homeUID, _, err := d.chowner.Owner(d.homePath)
	switch {
	case err != nil:
		fmt.Fprintf(out, "home directory %s is missing\n", d.homePath)
		failures++
	case homeUID != uid:
		fmt.Fprintf(out, "home directory %s is not owned by %s\n", d.homePath, d.accountName)
		failures++
	}

	// The cache and log directories are created lazily, so only their
	// ownership is diagnosed, not their absence.
	for _, path := range []string{d.cachePath, d.logPath} {
		ownerUID, _, err := d.chowner.Owner(path)
		if err != nil {
			continue
		}
		if ownerUID != uid {
			fmt.Fprintf(out, "directory %s is not owned by %s\n", path, d.accountName)
			failures++
		}
	}

	logger.Debug("checks-done", lager.Data{"failures": failures})
	return failures, nil
}
