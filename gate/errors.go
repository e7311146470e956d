package gate

type PrivilegeRequiredErr struct {
	error
}

type AccountExistsErr struct {
	error
}

type NoFreeIDErr struct {
	error
}

type AlreadyMigratedErr struct {
	error
}

type ExternalCommandErr struct {
	error
	exitCode int
}

func NewPrivilegeRequiredErr(err error) error {
	return &PrivilegeRequiredErr{err}
}

func NewAccountExistsErr(err error) error {
	return &AccountExistsErr{err}
}

func NewNoFreeIDErr(err error) error {
	return &NoFreeIDErr{err}
}

func NewAlreadyMigratedErr(err error) error {
	return &AlreadyMigratedErr{err}
}

func NewExternalCommandErr(err error, exitCode int) error {
	return &ExternalCommandErr{err, exitCode}
}

// ExitCode is the exit status the wrapped child process finished with.
func (e *ExternalCommandErr) ExitCode() int {
	return e.exitCode
}
