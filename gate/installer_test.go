package gate_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/gate/gatefakes"
)

var _ = Describe("Installer", func() {
	var (
		fakeAccountManager *gatefakes.FakeAccountManager
		fakePreparer       *gatefakes.FakePreparer
		fakeCloner         *gatefakes.FakeCloner
		fakeMigrator       *gatefakes.FakeTreeMigrator
		installer          *gate.Installer
		logger             lager.Logger
	)

	BeforeEach(func() {
		fakeAccountManager = new(gatefakes.FakeAccountManager)
		fakePreparer = new(gatefakes.FakePreparer)
		fakeCloner = new(gatefakes.FakeCloner)
		fakeMigrator = new(gatefakes.FakeTreeMigrator)
		installer = gate.NewInstaller(fakeAccountManager, fakePreparer, fakeCloner, fakeMigrator)
		logger = lagertest.NewTestLogger("installer")
	})

	Describe("Install", func() {
		It("provisions the account, the directories and the checkout", func() {
			Expect(installer.Install(logger)).To(Succeed())

			Expect(fakeAccountManager.CreateAccountCallCount()).To(Equal(1))
			Expect(fakePreparer.EnsureHomeCallCount()).To(Equal(1))
			Expect(fakePreparer.EnsureLogDirCallCount()).To(Equal(1))
			Expect(fakeCloner.CloneCallCount()).To(Equal(1))
			Expect(fakeMigrator.MigrateCallCount()).To(BeZero())
		})

		Context("when creating the account fails", func() {
			BeforeEach(func() {
				fakeAccountManager.CreateAccountReturns(errors.New("no free id"))
			})

			It("does not go on to the directories", func() {
				err := installer.Install(logger)

				Expect(err).To(MatchError(ContainSubstring("creating service account")))
				Expect(fakePreparer.EnsureHomeCallCount()).To(BeZero())
				Expect(fakeCloner.CloneCallCount()).To(BeZero())
			})
		})

		Context("when preparing the home directory fails", func() {
			BeforeEach(func() {
				fakePreparer.EnsureHomeReturns(errors.New("disk full"))
			})

			It("does not go on to the checkout", func() {
				err := installer.Install(logger)

				Expect(err).To(MatchError(ContainSubstring("preparing home directory")))
				Expect(fakePreparer.EnsureLogDirCallCount()).To(BeZero())
				Expect(fakeCloner.CloneCallCount()).To(BeZero())
			})
		})

		Context("when preparing the log directory fails", func() {
			BeforeEach(func() {
				fakePreparer.EnsureLogDirReturns(errors.New("log dir exists"))
			})

			It("does not go on to the checkout", func() {
				err := installer.Install(logger)

				Expect(err).To(MatchError(ContainSubstring("preparing log directory")))
				Expect(fakeCloner.CloneCallCount()).To(BeZero())
			})
		})

		Context("when the checkout fails", func() {
			BeforeEach(func() {
				fakeCloner.CloneReturns(errors.New("network unreachable"))
			})

			It("surfaces the failure", func() {
				err := installer.Install(logger)

				Expect(err).To(MatchError(ContainSubstring("cloning package manager repository")))
				Expect(err).To(MatchError(ContainSubstring("network unreachable")))
			})
		})
	})

	Describe("Switch", func() {
		It("provisions the account and directories, then migrates the existing trees", func() {
			Expect(installer.Switch(logger)).To(Succeed())

			Expect(fakeAccountManager.CreateAccountCallCount()).To(Equal(1))
			Expect(fakePreparer.EnsureHomeCallCount()).To(Equal(1))
			Expect(fakePreparer.EnsureLogDirCallCount()).To(Equal(1))
			Expect(fakeMigrator.MigrateCallCount()).To(Equal(1))
			Expect(fakeCloner.CloneCallCount()).To(BeZero())
		})

		Context("when the migration fails", func() {
			BeforeEach(func() {
				fakeMigrator.MigrateReturns(errors.New("already migrated"))
			})

			It("surfaces the failure", func() {
				err := installer.Switch(logger)

				Expect(err).To(MatchError(ContainSubstring("migrating ownership")))
				Expect(err).To(MatchError(ContainSubstring("already migrated")))
			})
		})

		Context("when creating the account fails", func() {
			BeforeEach(func() {
				fakeAccountManager.CreateAccountReturns(errors.New("account exists"))
			})

			It("does not migrate", func() {
				err := installer.Switch(logger)

				Expect(err).To(MatchError(ContainSubstring("creating service account")))
				Expect(fakeMigrator.MigrateCallCount()).To(BeZero())
			})
		})
	})
})
