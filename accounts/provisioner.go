package accounts // import "github.com/brewgate/brewgate/accounts"

import (
	"bytes"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
)

const (
	accountRealName = "brewgate service account"
	accountHomeDir  = "/var/empty"
	accountShell    = "/usr/bin/false"
	disabledPasswd  = "*"
)

// Provisioner creates and deletes the service account's group and user
// records by driving the host's directory-service command-line tool.
type Provisioner struct {
	accountName   string
	dsBin         string
	idCeiling     int
	resolver      identity.Resolver
	commandRunner commandrunner.CommandRunner
	euid          func() int
}

func NewProvisioner(accountName, dsBin string, idCeiling int, resolver identity.Resolver, commandRunner commandrunner.CommandRunner) *Provisioner {
	return &Provisioner{
		accountName:   accountName,
		dsBin:         dsBin,
		idCeiling:     idCeiling,
		resolver:      resolver,
		commandRunner: commandRunner,
		euid:          os.Geteuid,
	}
}

// CreateAccount provisions the group record, then the user record, then
// strips the login-enabling attributes from the user record. A failing
// sub-command aborts the sequence; records created up to that point are
// left in place and surfaced through the returned error.
func (p *Provisioner) CreateAccount(logger lager.Logger) error {
	logger = logger.Session("create-account", lager.Data{"accountName": p.accountName})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if p.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("creating the service account requires root privileges"))
	}

	_, found, err := p.resolver.LookupUser(p.accountName)
	if err != nil {
		return errorspkg.Wrap(err, "checking for existing account")
	}
	if found {
		return gate.NewAccountExistsErr(errorspkg.Errorf("service account `%s` already exists", p.accountName))
	}

	id, err := identity.FindUnusedID(p.resolver, p.idCeiling)
	if err != nil {
		return err
	}
	logger.Debug("unused-id-found", lager.Data{"id": id})

	groupPath := "/Groups/" + p.accountName
	userPath := "/Users/" + p.accountName

	mutations := [][]string{
		{"-create", groupPath},
		{"-create", groupPath, "Password", disabledPasswd},
		{"-create", groupPath, "PrimaryGroupID", strconv.Itoa(id)},
		{"-create", groupPath, "RealName", accountRealName},
		{"-create", userPath},
		{"-create", userPath, "NFSHomeDirectory", accountHomeDir},
		{"-create", userPath, "Password", disabledPasswd},
		{"-create", userPath, "PrimaryGroupID", strconv.Itoa(id)},
		{"-create", userPath, "RealName", accountRealName},
		{"-create", userPath, "UniqueID", strconv.Itoa(id)},
		{"-create", userPath, "UserShell", accountShell},
		{"-delete", userPath, "AuthenticationAuthority"},
		{"-delete", userPath, "PasswordPolicyOptions"},
	}

	for _, args := range mutations {
		if err := p.runDS(logger, args...); err != nil {
			return err
		}
	}

	return nil
}

// DeleteAccount removes the group record, then the user record. It does
// not check for prior existence; the directory-service tool's own failure
// is surfaced when a record is absent.
func (p *Provisioner) DeleteAccount(logger lager.Logger) error {
	logger = logger.Session("delete-account", lager.Data{"accountName": p.accountName})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if p.euid() != 0 {
		return gate.NewPrivilegeRequiredErr(errorspkg.New("deleting the service account requires root privileges"))
	}

	if err := p.runDS(logger, "-delete", "/Groups/"+p.accountName); err != nil {
		return err
	}

	return p.runDS(logger, "-delete", "/Users/"+p.accountName)
}

func (p *Provisioner) runDS(logger lager.Logger, args ...string) error {
	cmdArgs := append([]string{"."}, args...)
	cmd := exec.Command(p.dsBin, cmdArgs...)
	combinedBuffer := bytes.NewBuffer([]byte{})
	cmd.Stdout = combinedBuffer
	cmd.Stderr = combinedBuffer

	logger.Debug("starting-directory-service-command", lager.Data{"path": cmd.Path, "args": cmd.Args})
	if err := p.commandRunner.Run(cmd); err != nil {
		logger.Error("directory-service-command-failed", err, lager.Data{"commandOutput": combinedBuffer.String()})
		return errorspkg.Wrapf(err, "running `%s %s`: %s",
			p.dsBin, strings.Join(cmdArgs, " "), strings.TrimSpace(combinedBuffer.String()))
	}

	return nil
}
