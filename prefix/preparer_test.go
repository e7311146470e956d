package prefix_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/gate/gatefakes"
	"github.com/brewgate/brewgate/identity/identityfakes"
	"github.com/brewgate/brewgate/prefix"
)

var _ = Describe("Preparer", func() {
	var (
		tmpDir       string
		homePath     string
		logPath      string
		fakeResolver *identityfakes.FakeResolver
		fakeChowner  *gatefakes.FakeChowner
		preparer     *prefix.Preparer
		logger       lager.Logger
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "prefix-test")
		Expect(err).NotTo(HaveOccurred())
		homePath = filepath.Join(tmpDir, "usr-local")
		logPath = filepath.Join(tmpDir, "logs")

		fakeResolver = new(identityfakes.FakeResolver)
		fakeResolver.LookupUserReturns(210, true, nil)
		fakeResolver.LookupGroupReturns(211, true, nil)
		fakeChowner = new(gatefakes.FakeChowner)

		preparer = prefix.NewPreparer("_testgate", homePath, logPath, fakeResolver, fakeChowner).
			WithEUID(func() int { return 0 })
		logger = lagertest.NewTestLogger("preparer")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Describe("EnsureHome", func() {
		It("creates the home directory", func() {
			Expect(preparer.EnsureHome(logger)).To(Succeed())

			stat, err := os.Stat(homePath)
			Expect(err).NotTo(HaveOccurred())
			Expect(stat.IsDir()).To(BeTrue())
		})

		It("hands the home directory to the account without touching its group", func() {
			Expect(preparer.EnsureHome(logger)).To(Succeed())

			Expect(fakeChowner.ChownCallCount()).To(Equal(1))
			path, uid, gid := fakeChowner.ChownArgsForCall(0)
			Expect(path).To(Equal(homePath))
			Expect(uid).To(Equal(210))
			Expect(gid).To(Equal(-1))
		})

		Context("when the home directory already exists", func() {
			BeforeEach(func() {
				Expect(os.Mkdir(homePath, 0755)).To(Succeed())
			})

			It("does not fail and still hands it to the account", func() {
				Expect(preparer.EnsureHome(logger)).To(Succeed())
				Expect(fakeChowner.ChownCallCount()).To(Equal(1))
			})
		})

		Context("when not running as root", func() {
			BeforeEach(func() {
				preparer = preparer.WithEUID(func() int { return 501 })
			})

			It("returns a PrivilegeRequiredErr without creating anything", func() {
				err := preparer.EnsureHome(logger)

				Expect(err).To(BeAssignableToTypeOf(&gate.PrivilegeRequiredErr{}))
				Expect(homePath).NotTo(BeADirectory())
			})
		})

		Context("when the account is not present", func() {
			BeforeEach(func() {
				fakeResolver.LookupUserReturns(0, false, nil)
			})

			It("tells the caller to create it first", func() {
				err := preparer.EnsureHome(logger)

				Expect(err).To(MatchError(ContainSubstring("service account `_testgate` is not present - create it first")))
				Expect(homePath).NotTo(BeADirectory())
			})
		})
	})

	Describe("EnsureLogDir", func() {
		It("creates the log directory with mode 0755", func() {
			Expect(preparer.EnsureLogDir(logger)).To(Succeed())

			stat, err := os.Stat(logPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(stat.Mode().Perm()).To(Equal(os.FileMode(0755)))
		})

		It("hands the log directory to the account's user and group", func() {
			Expect(preparer.EnsureLogDir(logger)).To(Succeed())

			Expect(fakeChowner.ChownCallCount()).To(Equal(1))
			path, uid, gid := fakeChowner.ChownArgsForCall(0)
			Expect(path).To(Equal(logPath))
			Expect(uid).To(Equal(210))
			Expect(gid).To(Equal(211))
		})

		Context("when the log directory already exists", func() {
			BeforeEach(func() {
				Expect(os.Mkdir(logPath, 0755)).To(Succeed())
			})

			It("fails instead of reusing it", func() {
				err := preparer.EnsureLogDir(logger)

				Expect(err).To(MatchError(ContainSubstring("making log directory")))
			})
		})

		Context("when the group is not present", func() {
			BeforeEach(func() {
				fakeResolver.LookupGroupReturns(0, false, nil)
			})

			It("tells the caller to create it first", func() {
				err := preparer.EnsureLogDir(logger)

				Expect(err).To(MatchError(ContainSubstring("service group `_testgate` is not present - create it first")))
			})
		})

		Context("when not running as root", func() {
			BeforeEach(func() {
				preparer = preparer.WithEUID(func() int { return 501 })
			})

			It("returns a PrivilegeRequiredErr", func() {
				err := preparer.EnsureLogDir(logger)

				Expect(err).To(BeAssignableToTypeOf(&gate.PrivilegeRequiredErr{}))
			})
		})
	})
})
